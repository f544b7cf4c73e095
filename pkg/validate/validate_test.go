package validate

import (
	"testing"

	"github.com/arthur-debert/modorder/pkg/catalog"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	records []*mod.Record
	ignore  catalog.Ignore
}

func rec(id, name string, deps ...string) *mod.Record {
	r := &mod.Record{UUID: mod.UUID(id), Name: name, Version: version.Encode(1, 0, 0, 0)}
	for _, d := range deps {
		r.Dependencies = append(r.Dependencies, mod.Dependency{UUID: mod.UUID(d), Name: "Dep " + d})
	}
	return r
}

func library(t *testing.T, f fixture) *catalog.Library {
	t.Helper()
	lib := catalog.NewLibrary(f.ignore)
	_, err := lib.AbsorbLoaded(f.records)
	require.NoError(t, err)
	return lib
}

func order(t *testing.T, ids ...string) *loadorder.LoadOrder {
	t.Helper()
	o := loadorder.New("test")
	for _, id := range ids {
		require.NoError(t, o.Add(mod.UUID(id), "Entry "+id))
	}
	return o
}

func TestValidateCleanOrder(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{rec("a", "A"), rec("b", "B", "a")}})

	report := Validate(order(t, "a", "b"), lib, Options{})

	assert.False(t, report.HasIssues())
	assert.Empty(t, report.Summary())
}

func TestValidateMissingDirectEntry(t *testing.T) {
	lib := library(t, fixture{})

	report := Validate(order(t, "x"), lib, Options{})

	require.Len(t, report.Missing, 1)
	assert.Equal(t, 0, report.Missing["x"].Index)
	assert.Equal(t, "Entry x", report.Missing["x"].Name)
	assert.Empty(t, report.DependencyMissing)
	assert.True(t, report.HasBlockingIssues())
}

func TestValidateMissingDependency(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{
		rec("a", "A", "gone"),
		rec("b", "B", "gone"),
	}})

	report := Validate(order(t, "a", "b"), lib, Options{})

	assert.Empty(t, report.Missing)
	require.Contains(t, report.DependencyMissing, mod.UUID("gone"))
	dep := report.DependencyMissing["gone"]
	assert.Equal(t, "Dep gone", dep.Name)
	assert.Equal(t, []string{"A", "B"}, dep.RequiredBy)
}

func TestValidatePromotesDependencyToMissing(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{rec("a", "A", "x")}})

	report := Validate(order(t, "a", "x"), lib, Options{})

	assert.Empty(t, report.DependencyMissing)
	require.Contains(t, report.Missing, mod.UUID("x"))
	assert.Equal(t, 1, report.Missing["x"].Index)
	assert.Equal(t, []string{"A"}, report.Missing["x"].RequiredBy)
}

func TestValidateLaterDependentJoinsMissingEntry(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{rec("a", "A", "x"), rec("b", "B", "x")}})

	report := Validate(order(t, "a", "x", "b"), lib, Options{})

	assert.Empty(t, report.DependencyMissing)
	assert.Equal(t, []string{"A", "B"}, report.Missing["x"].RequiredBy)
}

func TestValidateMapsAreDisjoint(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{
		rec("a", "A", "x", "y"),
		rec("b", "B", "y", "z"),
	}})

	report := Validate(order(t, "a", "b", "y", "w"), lib, Options{})

	for id := range report.Missing {
		assert.NotContains(t, report.DependencyMissing, id)
	}
	assert.ElementsMatch(t, []mod.UUID{"y", "w"}, keys(report.Missing))
	assert.ElementsMatch(t, []mod.UUID{"x", "z"}, keys(report.DependencyMissing))
}

func TestValidateRespectsIgnoreConfiguration(t *testing.T) {
	base := rec("base", "Base")
	base.IsBuiltin = true
	lib := library(t, fixture{
		records: []*mod.Record{base, rec("a", "A", "base", "ignored-dep", "ignored-mod")},
		ignore: catalog.Ignore{
			Mods:         mod.NewSet("ignored-mod"),
			Dependencies: mod.NewSet("ignored-dep"),
		},
	})

	report := Validate(order(t, "base", "a", "ignored-dep"), lib, Options{})

	assert.False(t, report.HasIssues(), report.Summary())
}

func TestValidateFollowsTransitiveDependencies(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{
		rec("a", "A", "b"),
		rec("b", "B", "c"),
		rec("c", "C", "gone"),
	}})

	report := Validate(order(t, "a"), lib, Options{})

	require.Contains(t, report.DependencyMissing, mod.UUID("gone"))
	assert.Equal(t, []string{"C"}, report.DependencyMissing["gone"].RequiredBy)
}

func TestValidateToleratesDependencyCycles(t *testing.T) {
	lib := library(t, fixture{records: []*mod.Record{rec("a", "A", "b"), rec("b", "B", "a")}})

	report := Validate(order(t, "a"), lib, Options{})
	assert.False(t, report.HasIssues())
}

func TestValidateExtensionRequirements(t *testing.T) {
	needsAny := rec("a", "A", "helper")
	needsAny.Extension = mod.Extension{Required: true}
	helper := rec("helper", "Helper")
	helper.Extension = mod.Extension{Required: true, Version: 10}
	plain := rec("p", "Plain", "helper")

	lib := library(t, fixture{records: []*mod.Record{needsAny, helper, plain}})
	o := order(t, "a", "p")

	tests := []struct {
		name string
		ext  Extension
		want []mod.UUID
	}{
		{"not installed", Extension{}, []mod.UUID{"a", "helper"}},
		{"installed unknown version", Extension{Installed: true}, nil},
		{"installed too old", Extension{Installed: true, Version: 9}, []mod.UUID{"helper"}},
		{"installed new enough", Extension{Installed: true, Version: 10}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Validate(o, lib, Options{Extension: tt.ext})
			assert.ElementsMatch(t, tt.want, keys(report.ExtensionRequired))
		})
	}

	report := Validate(o, lib, Options{})
	assert.Equal(t, []string{"A", "Plain"}, report.ExtensionRequired["helper"].RequiredBy)
	assert.Equal(t, 10, report.ExtensionRequired["helper"].RequiredVersion)
	assert.False(t, report.HasBlockingIssues())
}

func TestValidateSkipsExtensionPassWhenBlocked(t *testing.T) {
	needs := rec("a", "A")
	needs.Extension = mod.Extension{Required: true}
	lib := library(t, fixture{records: []*mod.Record{needs}})

	report := Validate(order(t, "a", "missing"), lib, Options{})

	assert.Len(t, report.Missing, 1)
	assert.Empty(t, report.ExtensionRequired)
}

func TestSummaries(t *testing.T) {
	needs := rec("e", "Needs")
	needs.Extension = mod.Extension{Required: true, Version: 4}

	lib := library(t, fixture{records: []*mod.Record{rec("a", "A", "x", "gone"), needs}})

	report := Validate(order(t, "a", "x"), lib, Options{})
	assert.Equal(t, "2. Entry x (x) - required by A\n", report.MissingSummary())
	assert.Equal(t, "Dep gone (gone) - required by A\n", report.DependencySummary())
	assert.Contains(t, report.Summary(), "Missing mods:\n")
	assert.Contains(t, report.Summary(), "Missing dependencies:\n")

	clean := Validate(order(t, "e"), lib, Options{})
	assert.Equal(t, "Needs needs extension v4\n", clean.ExtensionSummary())
	assert.Equal(t, "Extension required:\nNeeds needs extension v4\n", clean.Summary())
}

func TestMissingListSortedByPosition(t *testing.T) {
	lib := library(t, fixture{})
	report := Validate(order(t, "c", "a", "b"), lib, Options{})

	list := report.MissingList()
	require.Len(t, list, 3)
	assert.Equal(t, []mod.UUID{"c", "a", "b"}, []mod.UUID{list[0].UUID, list[1].UUID, list[2].UUID})
}

func keys[V any](m map[mod.UUID]V) []mod.UUID {
	out := []mod.UUID{}
	for k := range m {
		out = append(out, k)
	}
	return out
}
