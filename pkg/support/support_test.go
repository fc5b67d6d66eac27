package support

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/device"
	"github.com/mchmarny/mtl-gpu-family-check/pkg/family"
)

// runtime resolves only the identifiers it knows.
type runtime map[family.ID]bool

func (r runtime) ResolveFamily(id family.ID) (device.Family, bool) {
	if !r[id] {
		return 0, false
	}
	return device.Family(id), true
}

func allKnown(cat *family.Catalog) runtime {
	r := runtime{}
	for _, d := range cat.Descriptors() {
		r[d.ID] = true
	}
	return r
}

type gpu struct {
	supports map[device.Family]bool
	queries  int
}

func (g *gpu) ID() uint64 { return 1 }

func (g *gpu) Name() string { return "test" }

func (g *gpu) Characteristics() device.Characteristics { return nil }

func (g *gpu) SupportsFamily(f device.Family) bool {
	g.queries++
	return g.supports[f]
}

func newGPU(ids ...family.ID) *gpu {
	g := &gpu{supports: map[device.Family]bool{}}
	for _, id := range ids {
		g.supports[device.Family(id)] = true
	}
	return g
}

func scenarioCatalog(t *testing.T) *family.Catalog {
	t.Helper()
	cat, err := family.New(
		family.Descriptor{Name: "Apple 1", ID: 1001, Note: "baseline"},
		family.Descriptor{Name: "Apple 2", ID: 1002},
		family.Descriptor{Name: "Common 1", ID: 3001},
	)
	require.NoError(t, err)
	return cat
}

func names(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Display())
	}
	return out
}

func TestEvaluate_Scenario(t *testing.T) {
	cat := scenarioCatalog(t)
	res := Evaluate(allKnown(cat), newGPU(1001, 3001), cat)

	assert.Equal(t, []string{"Apple 1 – baseline", "Common 1"}, names(res.Supported))
	assert.Equal(t, []string{"Apple 2"}, names(res.Unsupported))
}

func TestEvaluate_SkipsUnresolved(t *testing.T) {
	cat := scenarioCatalog(t)
	gpu := newGPU(1001, 1002, 3001)
	res := Evaluate(runtime{1001: true, 3001: true}, gpu, cat)

	assert.Equal(t, []string{"Apple 1 – baseline", "Common 1"}, names(res.Supported))
	assert.Empty(t, res.Unsupported)
	assert.Equal(t, 2, gpu.queries, "unresolved families must not be queried")
}

func TestEvaluate_UnsupportedNeverCarriesNote(t *testing.T) {
	cat := family.Default()
	res := Evaluate(allKnown(cat), newGPU(), cat)

	assert.Empty(t, res.Supported)
	require.Len(t, res.Unsupported, cat.Len())
	for _, e := range res.Unsupported {
		assert.Empty(t, e.Note, e.Name)
		assert.Equal(t, e.Name, e.Display())
	}
}

func TestEvaluate_Partition(t *testing.T) {
	cat := family.Default()
	rt := runtime{}
	var supported []family.ID
	for i, d := range cat.Descriptors() {
		// resolve two thirds, support every other resolved id
		if i%3 != 2 {
			rt[d.ID] = true
		}
		if i%2 == 0 {
			supported = append(supported, d.ID)
		}
	}

	res := Evaluate(rt, newGPU(supported...), cat)

	placed := map[family.ID]int{}
	for _, e := range res.Supported {
		placed[e.ID]++
	}
	for _, e := range res.Unsupported {
		placed[e.ID]++
	}

	for _, d := range cat.Descriptors() {
		_, resolved := rt.ResolveFamily(d.ID)
		if resolved {
			assert.Equalf(t, 1, placed[d.ID], "%s must be in exactly one partition", d.Name)
		} else {
			assert.Zerof(t, placed[d.ID], "%s must be skipped", d.Name)
		}
	}
}

func TestEvaluate_PreservesOrder(t *testing.T) {
	cat := family.Default()
	res := Evaluate(allKnown(cat), newGPU(5002, 1001, 3003, 2002), cat)

	assert.Equal(t, []family.ID{1001, 2002, 3003, 5002}, ids(res.Supported))

	order := map[family.ID]int{}
	for i, d := range cat.Descriptors() {
		order[d.ID] = i
	}
	for i := 1; i < len(res.Unsupported); i++ {
		assert.Less(t, order[res.Unsupported[i-1].ID], order[res.Unsupported[i].ID])
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	cat := family.Default()
	gpu := newGPU(1001, 1007, 2002, 5001)
	first := Evaluate(allKnown(cat), gpu, cat)
	second := Evaluate(allKnown(cat), gpu, cat)

	assert.Equal(t, first, second)
	assert.Equal(t, 2*cat.Len(), gpu.queries, "each evaluation queries the device again")
}

func TestEntry_Display(t *testing.T) {
	assert.Equal(t, "Mac 2", Entry{Name: "Mac 2"}.Display())
	assert.Equal(t, "Mac 1 – deprecated in favor of Mac 2",
		Entry{Name: "Mac 1", Note: "deprecated in favor of Mac 2"}.Display())
}

func ids(entries []Entry) []family.ID {
	out := make([]family.ID, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}
