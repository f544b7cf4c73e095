package loadorder

import (
	"encoding/json"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	"gopkg.in/yaml.v3"
)

// Saved is the on-disk shape of a named load order.
type Saved struct {
	Name  string     `json:"name" yaml:"name"`
	Order []SavedRef `json:"order" yaml:"order"`
}

// SavedRef is one reference of a saved order.
type SavedRef struct {
	UUID string `json:"uuid" yaml:"uuid"`
	Name string `json:"name" yaml:"name"`
}

// ToSaved converts the order into its serializable shape.
func (o *LoadOrder) ToSaved() Saved {
	s := Saved{Name: o.Name, Order: make([]SavedRef, 0, len(o.entries))}
	for _, e := range o.entries {
		s.Order = append(s.Order, SavedRef{UUID: string(e.UUID), Name: e.Name})
	}
	return s
}

// FromSaved rebuilds an order. Entries without identity and repeated
// identities are dropped with a warning; the first occurrence wins.
func FromSaved(s Saved) *LoadOrder {
	logger := logging.GetLogger("loadorder")
	o := New(s.Name)
	for i, ref := range s.Order {
		if err := o.Add(mod.UUID(ref.UUID), ref.Name); err != nil {
			logger.Warn().
				Err(err).
				Str("order", s.Name).
				Int("position", i).
				Msg("Dropping invalid saved order entry")
		}
	}
	return o
}

// MarshalJSON implements json.Marshaler.
func (o *LoadOrder) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.ToSaved())
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *LoadOrder) UnmarshalJSON(data []byte) error {
	var s Saved
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid saved load order")
	}
	*o = *FromSaved(s)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o *LoadOrder) MarshalYAML() (interface{}, error) {
	return o.ToSaved(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *LoadOrder) UnmarshalYAML(node *yaml.Node) error {
	var s Saved
	if err := node.Decode(&s); err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid saved load order")
	}
	*o = *FromSaved(s)
	return nil
}
