package catalog

import (
	"testing"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(id, name string, v version.Code) *mod.Record {
	return &mod.Record{UUID: mod.UUID(id), Name: name, Folder: name, Version: v}
}

func project(id, name string, v version.Code) *mod.Record {
	r := record(id, name, v)
	r.IsProject = true
	return r
}

var (
	v1 = version.Encode(1, 0, 0, 0)
	v2 = version.Encode(2, 0, 0, 0)
)

func TestMergeAddsNewRecords(t *testing.T) {
	c := New()
	stats, err := c.Merge(record("a", "A", v1), record("b", "B", v1))
	require.NoError(t, err)

	assert.Equal(t, MergeStats{Added: 2}, stats)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("a"))
	assert.True(t, c.Has("b"))
}

func TestMergePrecedence(t *testing.T) {
	tests := []struct {
		name        string
		existing    *mod.Record
		incoming    *mod.Record
		wantName    string
		wantVersion version.Code
		wantStats   MergeStats
	}{
		{
			name:        "higher version replaces",
			existing:    record("a", "old", v1),
			incoming:    record("a", "new", v2),
			wantName:    "new",
			wantVersion: v2,
			wantStats:   MergeStats{Replaced: 1},
		},
		{
			name:        "lower version never downgrades",
			existing:    record("a", "old", v2),
			incoming:    record("a", "new", v1),
			wantName:    "old",
			wantVersion: v2,
			wantStats:   MergeStats{Kept: 1},
		},
		{
			name:        "tie keeps existing",
			existing:    record("a", "old", v1),
			incoming:    record("a", "new", v1),
			wantName:    "old",
			wantVersion: v1,
			wantStats:   MergeStats{Kept: 1},
		},
		{
			name:        "project wins on tie",
			existing:    record("a", "package", v1),
			incoming:    project("a", "project", v1),
			wantName:    "project",
			wantVersion: v1,
			wantStats:   MergeStats{Replaced: 1},
		},
		{
			name:        "project wins with lower version",
			existing:    record("a", "package", v2),
			incoming:    project("a", "project", v1),
			wantName:    "project",
			wantVersion: v1,
			wantStats:   MergeStats{Replaced: 1},
		},
		{
			name:        "identity is case insensitive",
			existing:    record("28ac9ce2-2aba-8cda-b3b5-6e922f71b6b8", "old", v1),
			incoming:    record("28AC9CE2-2ABA-8CDA-B3B5-6E922F71B6B8", "new", v2),
			wantName:    "new",
			wantVersion: v2,
			wantStats:   MergeStats{Replaced: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromRecords(tt.existing)
			require.NoError(t, err)

			stats, err := c.Merge(tt.incoming)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStats, stats)
			assert.Equal(t, 1, c.Len())

			got, ok := c.Get(tt.existing.UUID)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Equal(t, tt.wantVersion, got.Version)
		})
	}
}

func TestMergeIsIdempotentWithoutProjects(t *testing.T) {
	base, err := FromRecords(record("a", "A", v1), record("b", "B", v2))
	require.NoError(t, err)
	batch := []*mod.Record{record("b", "B2", v1), record("c", "C", v1), record("a", "A2", v2)}

	once, err := Merge(base, batch)
	require.NoError(t, err)
	twice, err := Merge(once, batch)
	require.NoError(t, err)

	assert.Equal(t, once.Records(), twice.Records())
	assert.Equal(t, 2, base.Len(), "pure merge must not touch its input")
}

func TestMergeOrderIndependentExceptProjects(t *testing.T) {
	builtin := []*mod.Record{record("a", "A", v1)}
	installed := []*mod.Record{record("a", "A", v2), record("b", "B", v1)}

	forward := New()
	_, err := forward.Merge(builtin...)
	require.NoError(t, err)
	_, err = forward.Merge(installed...)
	require.NoError(t, err)

	backward := New()
	_, err = backward.Merge(installed...)
	require.NoError(t, err)
	_, err = backward.Merge(builtin...)
	require.NoError(t, err)

	assert.Equal(t, forward.Records(), backward.Records())
}

func TestMergeRejectsMissingIdentity(t *testing.T) {
	c := New()
	_, err := c.Merge(record("a", "A", v1), &mod.Record{Name: "anonymous"})

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingIdentity))
	assert.Equal(t, 0, c.Len(), "a failed merge leaves the catalog unchanged")

	_, err = c.Merge(nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingIdentity))
}

func TestMergeNormalizesDependencies(t *testing.T) {
	r := record("a", "A", v1)
	r.Dependencies = []mod.Dependency{{UUID: "A"}, {UUID: "B"}, {UUID: "b"}}

	c, err := FromRecords(r)
	require.NoError(t, err)

	got, _ := c.Get("a")
	require.Len(t, got.Dependencies, 1)
	assert.Equal(t, mod.UUID("b"), got.Dependencies[0].UUID)
}

func TestRecordsSortedAndFind(t *testing.T) {
	c, err := FromRecords(record("c", "Zeta", v1), record("b", "Alpha", v1), record("a", "Alpha", v1))
	require.NoError(t, err)

	names := []mod.UUID{}
	for _, r := range c.Records() {
		names = append(names, r.UUID)
	}
	assert.Equal(t, []mod.UUID{"a", "b", "c"}, names)

	found := c.Find(func(r *mod.Record) bool { return r.Name == "Zeta" })
	require.Len(t, found, 1)
	assert.Equal(t, mod.UUID("c"), found[0].UUID)
}

func TestRemoveAndClone(t *testing.T) {
	c, err := FromRecords(record("a", "A", v1), record("b", "B", v1))
	require.NoError(t, err)

	clone := c.Clone()
	assert.True(t, c.Remove("a"))
	assert.False(t, c.Remove("a"))

	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, clone.Len())
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.False(t, c.Has("a"))
	assert.Nil(t, c.Records())
	assert.Equal(t, 0, c.Clone().Len())
}
