// Package catalog consolidates mod records coming from several sources into
// one collection keyed by identity.
//
// Records are folded in with a single precedence rule: an incoming record
// replaces the one already held for its UUID when it has a strictly higher
// version, or when it is a project (loose) mod. Ties keep the existing record.
// Duplicate identities are therefore never an error.
package catalog

import (
	"sort"

	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/rs/zerolog"
)

// Catalog maps identities to canonical records.
type Catalog struct {
	records map[mod.UUID]*mod.Record
	logger  zerolog.Logger
}

// MergeStats counts what a merge did with each incoming record.
type MergeStats struct {
	Added    int
	Replaced int
	Kept     int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		records: make(map[mod.UUID]*mod.Record),
		logger:  logging.GetLogger("catalog"),
	}
}

// FromRecords builds a catalog by merging records into an empty one.
func FromRecords(records ...*mod.Record) (*Catalog, error) {
	c := New()
	if _, err := c.Merge(records...); err != nil {
		return nil, err
	}
	return c, nil
}

// Merge returns a new catalog holding existing folded with incoming.
// existing is left untouched.
func Merge(existing *Catalog, incoming []*mod.Record) (*Catalog, error) {
	merged := existing.Clone()
	if _, err := merged.Merge(incoming...); err != nil {
		return nil, err
	}
	return merged, nil
}

// ShouldReplace reports whether incoming takes precedence over existing.
func ShouldReplace(existing, incoming *mod.Record) bool {
	if incoming.IsProject {
		return true
	}
	return existing.Version.Less(incoming.Version)
}

// Merge folds incoming records into the catalog. Every record is validated
// and normalized first; a record without identity aborts the merge before
// anything is changed.
func (c *Catalog) Merge(incoming ...*mod.Record) (MergeStats, error) {
	var stats MergeStats

	for _, r := range incoming {
		if r != nil {
			r.Normalize()
		}
		if err := r.Validate(); err != nil {
			return stats, err
		}
	}

	for _, r := range incoming {
		existing, ok := c.records[r.UUID]
		switch {
		case !ok:
			c.records[r.UUID] = r
			stats.Added++
		case ShouldReplace(existing, r):
			c.logger.Debug().
				Str("uuid", string(r.UUID)).
				Str("name", r.Name).
				Str("from", existing.Version.String()).
				Str("to", r.Version.String()).
				Bool("project", r.IsProject).
				Msg("Replacing catalog record")
			c.records[r.UUID] = r
			stats.Replaced++
		default:
			c.logger.Trace().
				Str("uuid", string(r.UUID)).
				Str("kept", existing.Version.String()).
				Str("ignored", r.Version.String()).
				Msg("Keeping existing catalog record")
			stats.Kept++
		}
	}

	c.logger.Debug().
		Int("added", stats.Added).
		Int("replaced", stats.Replaced).
		Int("kept", stats.Kept).
		Int("total", len(c.records)).
		Msg("Merged records")

	return stats, nil
}

// Get returns the record for id.
func (c *Catalog) Get(id mod.UUID) (*mod.Record, bool) {
	if c == nil {
		return nil, false
	}
	r, ok := c.records[id]
	return r, ok
}

// Has reports whether id is in the catalog.
func (c *Catalog) Has(id mod.UUID) bool {
	_, ok := c.Get(id)
	return ok
}

// Remove deletes id and reports whether it was present.
func (c *Catalog) Remove(id mod.UUID) bool {
	if _, ok := c.records[id]; !ok {
		return false
	}
	delete(c.records, id)
	return true
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Records returns all records sorted by name, then UUID.
func (c *Catalog) Records() []*mod.Record {
	return c.Find(func(*mod.Record) bool { return true })
}

// Find returns the records matching match, sorted like Records.
func (c *Catalog) Find(match func(*mod.Record) bool) []*mod.Record {
	if c == nil {
		return nil
	}
	out := make([]*mod.Record, 0, len(c.records))
	for _, r := range c.records {
		if match(r) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].UUID < out[j].UUID
	})
	return out
}

// Each calls fn for every record in unspecified order.
func (c *Catalog) Each(fn func(*mod.Record)) {
	if c == nil {
		return
	}
	for _, r := range c.records {
		fn(r)
	}
}

// Clone returns a catalog sharing no map state with c. Records themselves
// are shared; the catalog never mutates a record after inserting it except
// for the MissingDependencies hint.
func (c *Catalog) Clone() *Catalog {
	clone := New()
	if c == nil {
		return clone
	}
	for id, r := range c.records {
		clone.records[id] = r
	}
	return clone
}
