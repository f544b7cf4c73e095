// Package session coordinates the library and the user's load orders
// behind one lock, so callers on several goroutines always see a catalog
// and an order that belong together.
package session

import (
	"sort"
	"strings"
	"sync"

	"github.com/arthur-debert/modorder/pkg/catalog"
	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/export"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/orderstore"
	"github.com/arthur-debert/modorder/pkg/sources"
	"github.com/arthur-debert/modorder/pkg/validate"
)

// Options configures a Session.
type Options struct {
	Ignore   catalog.Ignore
	Validate validate.Options
	Export   ExportOptions
	// Store persists orders when set. Without it orders live in memory only.
	Store orderstore.Store
}

// ExportOptions is the export policy of a session.
type ExportOptions struct {
	AutoAddMissingDependencies bool
	// WorldModType is the ModType that marks world/campaign records.
	WorldModType string
}

// Session owns a Library, the saved orders and the active order.
type Session struct {
	mu     sync.Mutex
	lib    *catalog.Library
	orders map[string]*loadorder.LoadOrder
	active string
	opts   Options
}

// New creates a session with an empty library. Orders already in the store
// are loaded; the first one by name becomes active.
func New(opts Options) (*Session, error) {
	s := &Session{
		lib:    catalog.NewLibrary(opts.Ignore),
		orders: make(map[string]*loadorder.LoadOrder),
		opts:   opts,
	}
	if opts.Store != nil {
		saved, err := opts.Store.LoadAll()
		if err != nil {
			return nil, err
		}
		for _, o := range saved {
			s.orders[o.Name] = o
		}
		if len(saved) > 0 {
			s.active = saved[0].Name
		}
	}
	return s, nil
}

// Absorb folds one source's records into the library. Project sources have
// their records flagged as projects, builtin sources as builtin.
func (s *Session) Absorb(kind sources.Kind, records []*mod.Record) (catalog.MergeStats, error) {
	for _, r := range records {
		if r == nil {
			continue
		}
		switch kind {
		case sources.KindBuiltin:
			r.IsBuiltin = true
		case sources.KindProject:
			r.IsProject = true
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.AbsorbLoaded(records)
}

// Records returns the user-facing catalog contents sorted by name.
func (s *Session) Records() []*mod.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.Mods.Records()
}

// Lookup resolves a UUID against the catalog and the builtin registry.
func (s *Session) Lookup(id mod.UUID) (*mod.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lib.Resolve(mod.ParseUUID(string(id)))
}

// IsBuiltin reports whether id is provided by the game or ignored by
// configuration rather than by a user-installed mod.
func (s *Session) IsBuiltin(id mod.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id = mod.ParseUUID(string(id))
	return !s.lib.Mods.Has(id) && s.lib.IsIgnored(id)
}

// Orders returns the names of all orders, sorted.
func (s *Session) Orders() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.orders))
	for name := range s.orders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Active returns a copy of the active order.
func (s *Session) Active() (*loadorder.LoadOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, err := s.activeOrder()
	if err != nil {
		return nil, err
	}
	return o.Clone(), nil
}

// CreateOrder adds an empty order and makes it active. Creating an order
// that exists just selects it.
func (s *Session) CreateOrder(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		return errors.New(errors.ErrInvalidInput, "order name cannot be empty")
	}
	if _, ok := s.orders[name]; !ok {
		o := loadorder.New(name)
		s.orders[name] = o
		if err := s.persist(o); err != nil {
			delete(s.orders, name)
			return err
		}
	}
	s.active = name
	return nil
}

// ImportOrder stores o under its name, replacing any order with that name,
// and makes it active.
func (s *Session) ImportOrder(o *loadorder.LoadOrder) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if o.Name == "" {
		return errors.New(errors.ErrInvalidInput, "order name cannot be empty")
	}
	o = o.Clone()
	if err := s.persist(o); err != nil {
		return err
	}
	s.orders[o.Name] = o
	s.active = o.Name
	return nil
}

// SelectOrder makes an existing order active.
func (s *Session) SelectOrder(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[name]; !ok {
		return errors.Newf(errors.ErrOrderNotFound, "no order named %q", name)
	}
	s.active = name
	return nil
}

// DeleteOrder discards an order. Deleting the active order leaves no order
// active.
func (s *Session) DeleteOrder(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[name]; !ok {
		return errors.Newf(errors.ErrOrderNotFound, "no order named %q", name)
	}
	if s.opts.Store != nil {
		if err := s.opts.Store.Delete(name); err != nil && !errors.IsErrorCode(err, errors.ErrOrderNotFound) {
			return err
		}
	}
	delete(s.orders, name)
	if s.active == name {
		s.active = ""
	}
	return nil
}

// Add appends a mod to the active order. The name is taken from the
// catalog when the mod is known.
func (s *Session) Add(id mod.UUID) error {
	return s.mutate(func(o *loadorder.LoadOrder) error {
		id = mod.ParseUUID(string(id))
		name := string(id)
		if r, ok := s.lib.Resolve(id); ok {
			name = r.DisplayName()
		}
		return o.Add(id, name)
	})
}

// Remove drops a mod from the active order and reindexes the rest.
func (s *Session) Remove(id mod.UUID) error {
	return s.mutate(func(o *loadorder.LoadOrder) error {
		id = mod.ParseUUID(string(id))
		if !o.Remove(id) {
			return errors.Newf(errors.ErrUnresolvedReference, "%s is not in order %q", id, o.Name)
		}
		o.Reindex()
		return nil
	})
}

// Move relocates a mod within the active order.
func (s *Session) Move(id mod.UUID, position int) error {
	return s.mutate(func(o *loadorder.LoadOrder) error {
		return o.Move(mod.ParseUUID(string(id)), position)
	})
}

// Validate checks the active order against the library.
func (s *Session) Validate() (*validate.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.activeOrder()
	if err != nil {
		return nil, err
	}
	return validate.Validate(o, s.lib, s.opts.Validate), nil
}

// Export builds the output sequence of the active order. The leading
// world/campaign record is the first catalog record whose ModType matches
// the configured world type, preferring one that the order references.
func (s *Session) Export() (export.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.activeOrder()
	if err != nil {
		return export.Result{}, err
	}
	return export.Build(o, s.lib.Mods, export.Options{
		AutoAddMissingDependencies: s.opts.Export.AutoAddMissingDependencies,
		Leading:                    s.leading(o),
	}), nil
}

func (s *Session) leading(o *loadorder.LoadOrder) *mod.Record {
	worldType := s.opts.Export.WorldModType
	if worldType == "" {
		worldType = mod.TypeAdventure
	}
	isWorld := func(r *mod.Record) bool { return strings.EqualFold(r.ModType, worldType) }

	for _, id := range o.UUIDs() {
		if r, ok := s.lib.Resolve(id); ok && isWorld(r) {
			return r
		}
	}
	if worlds := s.lib.Builtin.Find(isWorld); len(worlds) > 0 {
		return worlds[0]
	}
	if worlds := s.lib.Mods.Find(isWorld); len(worlds) > 0 {
		return worlds[0]
	}
	return nil
}

func (s *Session) mutate(fn func(o *loadorder.LoadOrder) error) error {
	logger := logging.GetLogger("session")

	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.activeOrder()
	if err != nil {
		return err
	}
	next := o.Clone()
	if err := fn(next); err != nil {
		return err
	}
	if err := s.persist(next); err != nil {
		return err
	}
	s.orders[next.Name] = next
	logger.Debug().Str("order", next.Name).Int("entries", next.Len()).Msg("Order updated")
	return nil
}

func (s *Session) activeOrder() (*loadorder.LoadOrder, error) {
	o, ok := s.orders[s.active]
	if !ok {
		return nil, errors.New(errors.ErrOrderNotFound, "no active load order")
	}
	return o, nil
}

func (s *Session) persist(o *loadorder.LoadOrder) error {
	if s.opts.Store == nil {
		return nil
	}
	return s.opts.Store.Save(o)
}
