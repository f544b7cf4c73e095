package catalog

import (
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
)

// Ignore lists the identities that are never reported as missing. It is
// built once from configuration and passed in explicitly.
type Ignore struct {
	// Mods are treated like builtin packages: absorbed records with these
	// identities go to the builtin registry.
	Mods mod.Set
	// Dependencies are dependency identities that always count as resolved.
	Dependencies mod.Set
}

// Library is the user-facing catalog together with the builtin registry
// and the ignore configuration.
type Library struct {
	Mods    *Catalog
	Builtin *Catalog
	Ignore  Ignore
}

// NewLibrary creates an empty library with the given ignore configuration.
func NewLibrary(ignore Ignore) *Library {
	if ignore.Mods == nil {
		ignore.Mods = mod.Set{}
	}
	if ignore.Dependencies == nil {
		ignore.Dependencies = mod.Set{}
	}
	return &Library{
		Mods:    New(),
		Builtin: New(),
		Ignore:  ignore,
	}
}

// AbsorbLoaded folds a loader's records into the library. Builtin records
// and records listed in Ignore.Mods go to the builtin registry, the rest to
// the catalog, both with the catalog precedence rule. Afterwards every
// record's unresolved dependencies are cached as a display hint.
func (l *Library) AbsorbLoaded(records []*mod.Record) (MergeStats, error) {
	logger := logging.GetLogger("catalog.library")

	var builtin, user []*mod.Record
	for _, r := range records {
		if r != nil {
			r.Normalize()
		}
		if err := r.Validate(); err != nil {
			return MergeStats{}, err
		}
		if r.IsBuiltin || l.Ignore.Mods.Has(r.UUID) {
			builtin = append(builtin, r)
		} else {
			user = append(user, r)
		}
	}

	builtinStats, err := l.Builtin.Merge(builtin...)
	if err != nil {
		return MergeStats{}, err
	}
	userStats, err := l.Mods.Merge(user...)
	if err != nil {
		return MergeStats{}, err
	}

	l.refreshMissingDependencies()

	stats := MergeStats{
		Added:    builtinStats.Added + userStats.Added,
		Replaced: builtinStats.Replaced + userStats.Replaced,
		Kept:     builtinStats.Kept + userStats.Kept,
	}
	logger.Info().
		Int("builtin", len(builtin)).
		Int("user", len(user)).
		Int("catalog", l.Mods.Len()).
		Int("registry", l.Builtin.Len()).
		Msg("Absorbed loaded records")
	return stats, nil
}

// Resolves reports whether a dependency on id is satisfied by the library:
// it is in the catalog, the builtin registry, or the ignore configuration.
func (l *Library) Resolves(id mod.UUID) bool {
	return l.Mods.Has(id) || l.IsIgnored(id)
}

// IsIgnored reports whether id is builtin or configured as ignored.
func (l *Library) IsIgnored(id mod.UUID) bool {
	return l.Builtin.Has(id) || l.Ignore.Mods.Has(id) || l.Ignore.Dependencies.Has(id)
}

// Resolve looks id up in the catalog, then in the builtin registry.
func (l *Library) Resolve(id mod.UUID) (*mod.Record, bool) {
	if r, ok := l.Mods.Get(id); ok {
		return r, true
	}
	return l.Builtin.Get(id)
}

func (l *Library) refreshMissingDependencies() {
	refresh := func(r *mod.Record) {
		var missing []mod.Dependency
		for _, d := range r.Dependencies {
			if !l.Resolves(d.UUID) {
				missing = append(missing, d)
			}
		}
		r.MissingDependencies = missing
	}
	l.Mods.Each(refresh)
	l.Builtin.Each(refresh)
}
