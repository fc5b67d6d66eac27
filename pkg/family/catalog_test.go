package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/mtl-gpu-family-check/pkg/errors"
)

func TestDefault_Validate(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_Integrity(t *testing.T) {
	seen := make(map[ID]bool)
	for _, d := range Default().Descriptors() {
		assert.Falsef(t, seen[d.ID], "duplicate id %d", d.ID)
		seen[d.ID] = true
		assert.Truef(t, d.Namespace.Contains(d.ID), "%s (%d) outside %s block", d.Name, d.ID, d.Namespace)
		assert.Equal(t, d.ID.Namespace(), d.Namespace)
	}
}

func TestDefault_Stable(t *testing.T) {
	a := Default()
	b := Default()
	assert.Same(t, a, b)
	assert.Equal(t, a.Descriptors(), b.Descriptors())
}

// TestDefault_ShippedOrder pins the identifiers and their relative order.
// New families may be added, but these must keep their positions.
func TestDefault_ShippedOrder(t *testing.T) {
	shipped := []ID{
		1001, 1002, 1003, 1004, 1005, 1006, 1007, 1008, 1009, 1010,
		2001, 2002,
		3001, 3002, 3003,
		4001, 4002,
		5001, 5002,
	}

	var got []ID
	for _, d := range Default().Descriptors() {
		for _, id := range shipped {
			if d.ID == id {
				got = append(got, d.ID)
			}
		}
	}
	assert.Equal(t, shipped, got)
}

func TestDefault_Notes(t *testing.T) {
	tests := []struct {
		id   ID
		name string
		note string
	}{
		{1001, "Apple 1", "baseline iOS/tvOS family"},
		{1002, "Apple 2", ""},
		{2001, "Mac 1", "deprecated in favor of Mac 2"},
		{4001, "Mac Catalyst 1", "deprecated in favor of Mac 2"},
		{4002, "Mac Catalyst 2", "deprecated in favor of Mac 2"},
		{5002, "Metal 4", "requires macOS 26 or newer"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := find(Default(), tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.name, d.Name)
			assert.Equal(t, tt.note, d.Note)
		})
	}
}

func TestCatalog_DescriptorsIsCopy(t *testing.T) {
	c := Default()
	ds := c.Descriptors()
	ds[0].Name = "mutated"
	assert.Equal(t, "Apple 1", c.Descriptors()[0].Name)
}

func TestDefault_NamespaceBlocks(t *testing.T) {
	counts := make(map[Namespace]int)
	for _, d := range Default().Descriptors() {
		assert.Truef(t, d.Namespace.Contains(d.ID), "%s outside %s", d.Name, d.Namespace)
		counts[d.Namespace]++
	}
	assert.Equal(t, map[Namespace]int{
		NamespaceApple:       10,
		NamespaceMac:         2,
		NamespaceCommon:      3,
		NamespaceMacCatalyst: 2,
		NamespaceMetal:       2,
	}, counts)
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		descriptors []Descriptor
	}{
		{
			name: "duplicate id",
			descriptors: []Descriptor{
				{Name: "Apple 1", ID: 1001},
				{Name: "Apple One", ID: 1001},
			},
		},
		{
			name: "duplicate name",
			descriptors: []Descriptor{
				{Name: "Apple 1", ID: 1001},
				{Name: "Apple 1", ID: 1002},
			},
		},
		{
			name: "outside declared namespace",
			descriptors: []Descriptor{
				{Name: "Mac 1", ID: 1001, Namespace: NamespaceMac},
			},
		},
		{
			name: "namespace base is reserved",
			descriptors: []Descriptor{
				{Name: "Apple 0", ID: 1000},
			},
		},
		{
			name: "unknown namespace",
			descriptors: []Descriptor{
				{Name: "Future 1", ID: 9001},
			},
		},
		{
			name: "empty name",
			descriptors: []Descriptor{
				{ID: 3001},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.descriptors...)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidRequest))
		})
	}
}

func TestNew_AssignsNamespace(t *testing.T) {
	c, err := New(
		Descriptor{Name: "Apple 1", ID: 1001, Note: "baseline"},
		Descriptor{Name: "Common 1", ID: 3001},
	)
	require.NoError(t, err)

	d, ok := find(c, 3001)
	require.True(t, ok)
	assert.Equal(t, NamespaceCommon, d.Namespace)
	assert.Equal(t, 2, c.Len())
}

func TestNamespace_String(t *testing.T) {
	tests := []struct {
		ns   Namespace
		want string
	}{
		{NamespaceApple, "Apple"},
		{NamespaceMac, "Mac"},
		{NamespaceCommon, "Common"},
		{NamespaceMacCatalyst, "Mac Catalyst"},
		{NamespaceMetal, "Metal"},
		{Namespace(7000), "Namespace(7000)"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ns.String())
		})
	}
}

func TestNamespace_Contains(t *testing.T) {
	assert.True(t, NamespaceApple.Contains(1001))
	assert.True(t, NamespaceApple.Contains(1999))
	assert.False(t, NamespaceApple.Contains(1000))
	assert.False(t, NamespaceApple.Contains(2000))
	assert.False(t, NamespaceApple.Contains(2001))
}

func TestNamespace_IsValid(t *testing.T) {
	for _, n := range Namespaces {
		assert.True(t, n.IsValid(), n.String())
	}
	assert.False(t, Namespace(0).IsValid())
	assert.False(t, Namespace(6000).IsValid())
}

func find(c *Catalog, id ID) (Descriptor, bool) {
	for _, d := range c.Descriptors() {
		if d.ID == id {
			return d, true
		}
	}
	return Descriptor{}, false
}
