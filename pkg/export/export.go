// Package export turns a load order into the flat sequence of records that
// is written to the game's settings file.
package export

import (
	"github.com/arthur-debert/modorder/pkg/catalog"
	"github.com/arthur-debert/modorder/pkg/loadorder"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
)

// Options controls Build.
type Options struct {
	// AutoAddMissingDependencies emits catalog-resolvable dependencies of
	// every entry right before the entry itself.
	AutoAddMissingDependencies bool
	// Leading is the world/campaign record placed first when the order does
	// not already contain it.
	// Leading is also emitted at its own slot when the order contains it
	// but cat does not, as happens for builtin campaigns.
	Leading *mod.Record
}

// Result is the output sequence plus bookkeeping for display.
type Result struct {
	// Order is the name of the order the sequence was built from.
	Order   string
	Records []*mod.Record
	// AutoAdded lists dependencies emitted that the order did not contain.
	AutoAdded []mod.UUID
	// Skipped lists order entries the catalog could not resolve.
	Skipped []mod.UUID
}

// UUIDs returns the identities of the output sequence in order.
func (r Result) UUIDs() []mod.UUID {
	out := make([]mod.UUID, len(r.Records))
	for i, rec := range r.Records {
		out[i] = rec.UUID
	}
	return out
}

type builder struct {
	cat      *catalog.Catalog
	order    *loadorder.LoadOrder
	autoAdd  bool
	emitted  mod.Set
	visiting mod.Set
	result   Result
}

// Build produces the output sequence. Every UUID appears at most once. With
// auto-add enabled a dependency always precedes its dependents; if the
// dependency also has its own slot further down the order, it is moved up
// to sit before its first dependent and the later slot is skipped.
func Build(order *loadorder.LoadOrder, cat *catalog.Catalog, opts Options) Result {
	logger := logging.GetLogger("export")

	b := &builder{
		cat:      cat,
		order:    order,
		autoAdd:  opts.AutoAddMissingDependencies,
		emitted:  make(mod.Set),
		visiting: make(mod.Set),
	}
	b.result.Order = order.Name

	if lead := opts.Leading; lead != nil && !lead.UUID.IsZero() && !order.Contains(lead.UUID) {
		b.emit(lead)
	}

	for _, e := range order.Entries() {
		if b.emitted.Has(e.UUID) {
			continue
		}
		rec, ok := cat.Get(e.UUID)
		if !ok && opts.Leading != nil && opts.Leading.UUID == e.UUID {
			rec, ok = opts.Leading, true
		}
		if !ok {
			logger.Debug().Str("uuid", string(e.UUID)).Str("name", e.Name).Msg("Skipping unresolved entry")
			b.result.Skipped = append(b.result.Skipped, e.UUID)
			continue
		}
		b.visit(rec)
	}

	logger.Info().
		Str("order", order.Name).
		Int("records", len(b.result.Records)).
		Int("autoAdded", len(b.result.AutoAdded)).
		Int("skipped", len(b.result.Skipped)).
		Msg("Built output list")

	return b.result
}

func (b *builder) visit(rec *mod.Record) {
	if b.emitted.Has(rec.UUID) || b.visiting.Has(rec.UUID) {
		return
	}
	if b.autoAdd {
		b.visiting.Add(rec.UUID)
		for _, d := range rec.Dependencies {
			dep, ok := b.cat.Get(d.UUID)
			if !ok || b.emitted.Has(dep.UUID) {
				continue
			}
			if !b.order.Contains(dep.UUID) && !b.visiting.Has(dep.UUID) {
				b.result.AutoAdded = append(b.result.AutoAdded, dep.UUID)
			}
			b.visit(dep)
		}
		delete(b.visiting, rec.UUID)
	}
	b.emit(rec)
}

func (b *builder) emit(rec *mod.Record) {
	b.emitted.Add(rec.UUID)
	b.result.Records = append(b.result.Records, rec)
}
