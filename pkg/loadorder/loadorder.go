// Package loadorder models the user-authored sequence of active mods.
//
// A LoadOrder only holds identity references; it never consults a catalog.
// Index is a derived position kept in step with the slice by the mutating
// operations, except after Remove, where the caller decides when to Reindex.
package loadorder

import (
	"slices"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/mod"
)

// Entry is one reference in a load order.
type Entry struct {
	UUID  mod.UUID
	Name  string
	Index int
}

// Removed remembers where an entry was before it left the order, so a
// now-missing mod can still be displayed at its old position.
type Removed struct {
	Entry
	LastIndex int
}

// LoadOrder is a named, ordered list of entries with unique identities.
type LoadOrder struct {
	Name    string
	entries []*Entry
	removed map[mod.UUID]Removed
}

// New creates an empty load order.
func New(name string) *LoadOrder {
	return &LoadOrder{
		Name:    name,
		removed: make(map[mod.UUID]Removed),
	}
}

// FromEntries builds an order from references, rejecting duplicates.
func FromEntries(name string, refs ...Entry) (*LoadOrder, error) {
	o := New(name)
	for _, ref := range refs {
		if err := o.Add(ref.UUID, ref.Name); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Add appends a reference and sets its Index to the last position.
func (o *LoadOrder) Add(id mod.UUID, name string) error {
	id = mod.ParseUUID(string(id))
	if id.IsZero() {
		return errors.New(errors.ErrInvalidOrder, "load order entry has no UUID").
			WithDetail("name", name)
	}
	if existing := o.find(id); existing >= 0 {
		return errors.Newf(errors.ErrInvalidOrder, "mod %q is already in load order %q", name, o.Name).
			WithDetail("uuid", string(id)).
			WithDetail("index", existing).
			WithDetail("reason", errors.ErrDuplicateIdentity)
	}

	o.entries = append(o.entries, &Entry{UUID: id, Name: name, Index: len(o.entries)})
	delete(o.removed, id)
	return nil
}

// AddRecord appends a catalog record.
func (o *LoadOrder) AddRecord(r *mod.Record) error {
	return o.Add(r.UUID, r.Name)
}

// Remove deletes id and reports whether it was present. Indices of the
// remaining entries are left as they were; call Reindex to recompute them.
func (o *LoadOrder) Remove(id mod.UUID) bool {
	id = mod.ParseUUID(string(id))
	pos := o.find(id)
	if pos < 0 {
		return false
	}
	e := o.entries[pos]
	if o.removed == nil {
		o.removed = make(map[mod.UUID]Removed)
	}
	o.removed[id] = Removed{Entry: *e, LastIndex: e.Index}
	o.entries = slices.Delete(o.entries, pos, pos+1)
	return true
}

// Move relocates id to position, clamped to the order bounds, keeping the
// relative order of every other entry. Indices are recomputed.
func (o *LoadOrder) Move(id mod.UUID, position int) error {
	id = mod.ParseUUID(string(id))
	pos := o.find(id)
	if pos < 0 {
		return errors.New(errors.ErrUnresolvedReference, "mod is not in load order").
			WithDetail("uuid", string(id)).
			WithDetail("order", o.Name)
	}

	e := o.entries[pos]
	o.entries = slices.Delete(o.entries, pos, pos+1)
	position = max(0, min(position, len(o.entries)))
	o.entries = slices.Insert(o.entries, position, e)
	o.Reindex()
	return nil
}

// SetOrder replaces the contents with a copy of other's entries and resets
// every Index.
func (o *LoadOrder) SetOrder(other *LoadOrder) {
	o.entries = make([]*Entry, 0, len(other.entries))
	for _, e := range other.entries {
		c := *e
		o.entries = append(o.entries, &c)
	}
	o.removed = make(map[mod.UUID]Removed)
	o.Reindex()
}

// Sort reorders entries with cmp (stable) and recomputes indices.
func (o *LoadOrder) Sort(cmp func(a, b *Entry) int) {
	slices.SortStableFunc(o.entries, cmp)
	o.Reindex()
}

// SortByIndex restores physical order from the logical Index values after a
// bulk mutation of indices.
func (o *LoadOrder) SortByIndex() {
	o.Sort(func(a, b *Entry) int { return a.Index - b.Index })
}

// Reindex sets every Index to its physical position.
func (o *LoadOrder) Reindex() {
	for i, e := range o.entries {
		e.Index = i
	}
}

// Entries returns the entries in physical order. The entries are shared;
// the slice is not.
func (o *LoadOrder) Entries() []*Entry {
	return slices.Clone(o.entries)
}

// Entry returns the entry for id.
func (o *LoadOrder) Entry(id mod.UUID) (*Entry, bool) {
	pos := o.find(mod.ParseUUID(string(id)))
	if pos < 0 {
		return nil, false
	}
	return o.entries[pos], true
}

// RemovedEntry returns what was known about id when it was last removed.
func (o *LoadOrder) RemovedEntry(id mod.UUID) (Removed, bool) {
	r, ok := o.removed[mod.ParseUUID(string(id))]
	return r, ok
}

// Contains reports whether id is in the order.
func (o *LoadOrder) Contains(id mod.UUID) bool {
	return o.find(mod.ParseUUID(string(id))) >= 0
}

// IndexOf returns the physical position of id, or -1.
func (o *LoadOrder) IndexOf(id mod.UUID) int {
	return o.find(mod.ParseUUID(string(id)))
}

// Len returns the number of entries.
func (o *LoadOrder) Len() int {
	return len(o.entries)
}

// UUIDs returns the identities in physical order.
func (o *LoadOrder) UUIDs() []mod.UUID {
	ids := make([]mod.UUID, len(o.entries))
	for i, e := range o.entries {
		ids[i] = e.UUID
	}
	return ids
}

// Clone returns an independent copy, including removal history.
func (o *LoadOrder) Clone() *LoadOrder {
	c := New(o.Name)
	for _, e := range o.entries {
		copied := *e
		c.entries = append(c.entries, &copied)
	}
	for id, r := range o.removed {
		c.removed[id] = r
	}
	return c
}

func (o *LoadOrder) find(id mod.UUID) int {
	return slices.IndexFunc(o.entries, func(e *Entry) bool { return e.UUID == id })
}
