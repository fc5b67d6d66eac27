// Package family defines the catalog of known Metal GPU families.
//
// Each family is described by a display name, a stable numeric identifier
// and an optional note. Identifiers are assigned from reserved namespace
// blocks (1000 Apple, 2000 Mac, 3000 Common, 4000 Mac Catalyst,
// 5000 Metal) so that blocks never collide. The grouping is documentary.
//
// The built-in catalog is returned by Default:
//
//	for _, d := range family.Default().Descriptors() {
//	    fmt.Println(d.ID, d.Name)
//	}
//
// The catalog is append-only across releases. A shipped identifier keeps
// its meaning and its position relative to existing entries; new families
// go at the end of their block.
package family
