package sources

import (
	"time"

	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/version"
)

// Manifest is the document a loader hands over: every mod it found in one
// storage location.
type Manifest struct {
	Mods []ManifestMod `json:"mods" yaml:"mods" toml:"mods"`
}

// ManifestMod is one mod entry of a Manifest.
type ManifestMod struct {
	UUID          string               `json:"uuid" yaml:"uuid" toml:"uuid"`
	Name          string               `json:"name" yaml:"name" toml:"name"`
	Folder        string               `json:"folder" yaml:"folder" toml:"folder"`
	MD5           string               `json:"md5" yaml:"md5" toml:"md5"`
	Version64     int64                `json:"version64" yaml:"version64" toml:"version64"`
	Version       string               `json:"version" yaml:"version" toml:"version"`
	PublishHandle uint64               `json:"publish_handle" yaml:"publish_handle" toml:"publish_handle"`
	ModType       string               `json:"mod_type" yaml:"mod_type" toml:"mod_type"`
	Author        string               `json:"author" yaml:"author" toml:"author"`
	Description   string               `json:"description" yaml:"description" toml:"description"`
	Tags          []string             `json:"tags" yaml:"tags" toml:"tags"`
	LastModified  *time.Time           `json:"last_modified" yaml:"last_modified" toml:"last_modified"`
	IsProject     bool                 `json:"is_project" yaml:"is_project" toml:"is_project"`
	Extension     ManifestExtension    `json:"extension" yaml:"extension" toml:"extension"`
	Dependencies  []ManifestDependency `json:"dependencies" yaml:"dependencies" toml:"dependencies"`
}

// ManifestExtension is a mod's runtime extension requirement.
type ManifestExtension struct {
	Required bool `json:"required" yaml:"required" toml:"required"`
	Version  int  `json:"version" yaml:"version" toml:"version"`
}

// ManifestDependency is one declared dependency of a ManifestMod.
type ManifestDependency struct {
	UUID      string `json:"uuid" yaml:"uuid" toml:"uuid"`
	Name      string `json:"name" yaml:"name" toml:"name"`
	Folder    string `json:"folder" yaml:"folder" toml:"folder"`
	MD5       string `json:"md5" yaml:"md5" toml:"md5"`
	Version64 int64  `json:"version64" yaml:"version64" toml:"version64"`
}

// Record converts the entry into a mod record. Version64 takes precedence
// over the dotted Version string, which is only consulted when the packed
// value is absent.
func (m ManifestMod) Record() (*mod.Record, error) {
	v := version.FromInt64(m.Version64)
	if v.IsZero() && m.Version != "" {
		parsed, err := version.Parse(m.Version)
		if err != nil {
			return nil, err
		}
		v = parsed
	}

	r := &mod.Record{
		UUID:          mod.ParseUUID(m.UUID),
		Name:          m.Name,
		Folder:        m.Folder,
		MD5:           m.MD5,
		PublishHandle: m.PublishHandle,
		Version:       v,
		LastModified:  m.LastModified,
		ModType:       m.ModType,
		Author:        m.Author,
		Description:   m.Description,
		Tags:          m.Tags,
		IsProject:     m.IsProject,
		Extension: mod.Extension{
			Required: m.Extension.Required,
			Version:  m.Extension.Version,
		},
	}
	for _, d := range m.Dependencies {
		r.Dependencies = append(r.Dependencies, mod.Dependency{
			UUID:    mod.ParseUUID(d.UUID),
			Name:    d.Name,
			Folder:  d.Folder,
			MD5:     d.MD5,
			Version: version.FromInt64(d.Version64),
		})
	}
	return r, nil
}
