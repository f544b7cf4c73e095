// Package mod defines the canonical mod record shared by the catalog, the
// validator and the exporter.
package mod

import (
	"strings"
	"time"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/version"
)

// TypeAdventure is the ModType reserved for world/campaign packages.
const TypeAdventure = "Adventure"

// Dependency is the lightweight projection of a mod used in dependency lists
// and settings files.
type Dependency struct {
	UUID    UUID
	Name    string
	Folder  string
	MD5     string
	Version version.Code
}

// Extension describes a record's need for the optional runtime extension.
type Extension struct {
	Required bool
	// Version is the minimum extension version; zero accepts any.
	Version int
}

// Record is the canonical per-mod entity.
type Record struct {
	UUID          UUID
	Name          string
	Folder        string
	MD5           string
	PublishHandle uint64
	Version       version.Code
	LastModified  *time.Time
	ModType       string
	Author        string
	Description   string
	Tags          []string
	Dependencies  []Dependency
	IsBuiltin     bool
	IsProject     bool
	Extension     Extension

	// MissingDependencies caches dependencies that could not be resolved
	// the last time the record was absorbed. It is a display hint only.
	MissingDependencies []Dependency
}

// Validate checks the preconditions a loader must satisfy.
func (r *Record) Validate() error {
	if r == nil {
		return errors.New(errors.ErrMissingIdentity, "nil mod record")
	}
	if r.UUID.IsZero() {
		return errors.New(errors.ErrMissingIdentity, "mod record has no UUID").
			WithDetail("name", r.Name).
			WithDetail("folder", r.Folder)
	}
	return nil
}

// Normalize canonicalises identities and drops self-references and repeated
// dependency entries. The first declaration of a dependency wins.
func (r *Record) Normalize() {
	r.UUID = ParseUUID(string(r.UUID))

	seen := make(Set, len(r.Dependencies))
	deps := make([]Dependency, 0, len(r.Dependencies))
	for _, d := range r.Dependencies {
		d.UUID = ParseUUID(string(d.UUID))
		if d.UUID.IsZero() || d.UUID == r.UUID || seen.Has(d.UUID) {
			continue
		}
		seen.Add(d.UUID)
		deps = append(deps, d)
	}
	r.Dependencies = deps
}

// IsAdventure reports whether the record is a world/campaign package.
func (r *Record) IsAdventure() bool {
	return strings.EqualFold(r.ModType, TypeAdventure)
}

// DisplayName returns the name, falling back to folder and identity.
func (r *Record) DisplayName() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.Folder != "":
		return r.Folder
	default:
		return string(r.UUID)
	}
}

// AsDependency projects the record into its lightweight form.
func (r *Record) AsDependency() Dependency {
	return Dependency{
		UUID:    r.UUID,
		Name:    r.Name,
		Folder:  r.Folder,
		MD5:     r.MD5,
		Version: r.Version,
	}
}

// DependsOn reports whether id is a declared dependency.
func (r *Record) DependsOn(id UUID) bool {
	for _, d := range r.Dependencies {
		if d.UUID == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy.
func (r *Record) Clone() *Record {
	c := *r
	if r.LastModified != nil {
		t := *r.LastModified
		c.LastModified = &t
	}
	c.Tags = append([]string(nil), r.Tags...)
	c.Dependencies = append([]Dependency(nil), r.Dependencies...)
	c.MissingDependencies = append([]Dependency(nil), r.MissingDependencies...)
	return &c
}
