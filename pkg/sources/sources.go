// Package sources decodes loader manifests into mod records.
//
// Each storage location (the game's bundled mods, the user profile, editor
// projects) is described by one manifest file in JSON, YAML or TOML.
package sources

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/logging"
	"github.com/arthur-debert/modorder/pkg/mod"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var log = logging.GetLogger("sources")

// Kind is the storage location a manifest describes.
type Kind string

const (
	KindBuiltin   Kind = "builtin"
	KindInstalled Kind = "installed"
	KindProject   Kind = "project"
)

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindBuiltin, KindInstalled, KindProject:
		return k, nil
	}
	return "", errors.Newf(errors.ErrInvalidInput, "unknown source kind %q", s).
		WithDetail("valid", []Kind{KindBuiltin, KindInstalled, KindProject})
}

// Format is a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", errors.Newf(errors.ErrSourceParse, "unsupported manifest extension %q", filepath.Ext(path)).
		WithDetail("path", path)
}

// Decode parses manifest data and returns its records, flagged according to
// kind. A record without UUID is a precondition violation and fails the
// whole manifest.
func Decode(data []byte, format Format, kind Kind) ([]*mod.Record, error) {
	var m Manifest
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	default:
		return nil, errors.Newf(errors.ErrSourceParse, "unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrSourceParse, "failed to parse %s manifest", format)
	}

	records := make([]*mod.Record, 0, len(m.Mods))
	for i, entry := range m.Mods {
		r, err := entry.Record()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrSourceParse, "invalid mod entry").
				WithDetail("index", i).
				WithDetail("name", entry.Name)
		}
		switch kind {
		case KindBuiltin:
			r.IsBuiltin = true
		case KindProject:
			r.IsProject = true
		}
		if err := r.Validate(); err != nil {
			if me, ok := err.(*errors.ModorderError); ok {
				me.WithDetail("index", i).WithDetail("kind", string(kind))
			}
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Load reads and decodes the manifest at path.
func Load(path string, kind Kind) ([]*mod.Record, error) {
	logger := log.With().Str("path", path).Str("kind", string(kind)).Logger()

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrSourceLoad, "failed to read manifest").
			WithDetail("path", path)
	}

	records, err := Decode(data, format, kind)
	if err != nil {
		if me, ok := err.(*errors.ModorderError); ok {
			me.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().Int("mods", len(records)).Msg("Manifest loaded")
	return records, nil
}

// Source pairs a manifest path with its kind.
type Source struct {
	Path string
	Kind Kind
}

// LoadAll loads sources in order. Callers fold them builtin, installed,
// project so project mods get the last word.
func LoadAll(srcs []Source) (map[Kind][]*mod.Record, error) {
	out := make(map[Kind][]*mod.Record)
	for _, s := range srcs {
		records, err := Load(s.Path, s.Kind)
		if err != nil {
			return nil, err
		}
		out[s.Kind] = append(out[s.Kind], records...)
	}
	return out, nil
}

// Kinds lists kinds in folding order.
func Kinds() []Kind {
	return []Kind{KindBuiltin, KindInstalled, KindProject}
}
