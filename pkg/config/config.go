package config

import (
	"github.com/arthur-debert/modorder/pkg/catalog"
	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/mod"
	"github.com/arthur-debert/modorder/pkg/validate"
	"github.com/arthur-debert/modorder/pkg/version"
)

// Output formats accepted by output.format.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatText     = "text"
	FormatJSON     = "json"
)

// Config is the complete modorder configuration.
type Config struct {
	Export    Export    `koanf:"export"`
	Extension Extension `koanf:"extension"`
	Ignore    Ignore    `koanf:"ignore"`
	Output    Output    `koanf:"output"`
}

// Export holds the output list and settings file policy.
type Export struct {
	AutoAddDependencies bool   `koanf:"auto_add_dependencies"`
	GameVersion         string `koanf:"game_version"`
	WorldModType        string `koanf:"world_mod_type"`
}

// Extension describes the installed runtime extension.
type Extension struct {
	Installed bool `koanf:"installed"`
	Version   int  `koanf:"version"`
}

// Ignore lists identities that are never reported missing.
type Ignore struct {
	Dependencies []string     `koanf:"dependencies"`
	Mods         []IgnoredMod `koanf:"mods"`
}

// IgnoredMod is one [[ignore.mods]] entry. Name is informational.
type IgnoredMod struct {
	UUID string `koanf:"uuid"`
	Name string `koanf:"name"`
}

// Output controls how results are printed.
type Output struct {
	Format string `koanf:"format"`
}

// Validate checks values that cannot be expressed by the TOML types alone.
func (c *Config) Validate() error {
	if _, err := c.GameVersion(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid export.game_version").
			WithDetail("value", c.Export.GameVersion)
	}
	switch c.Output.Format {
	case FormatAuto, FormatTerminal, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid output.format %q", c.Output.Format).
			WithDetail("valid", []string{FormatAuto, FormatTerminal, FormatText, FormatJSON})
	}
	if c.Extension.Version < 0 {
		return errors.New(errors.ErrConfigParse, "extension.version cannot be negative")
	}
	return nil
}

// GameVersion parses export.game_version. An empty value yields zero.
func (c *Config) GameVersion() (version.Code, error) {
	if c.Export.GameVersion == "" {
		return 0, nil
	}
	return version.Parse(c.Export.GameVersion)
}

// IgnoreSets converts the ignore section into the library's configuration.
func (c *Config) IgnoreSets() catalog.Ignore {
	ignore := catalog.Ignore{
		Mods:         mod.NewSet(),
		Dependencies: mod.NewSet(c.Ignore.Dependencies...),
	}
	for _, m := range c.Ignore.Mods {
		ignore.Mods.Add(mod.ParseUUID(m.UUID))
	}
	return ignore
}

// ValidateOptions converts the extension section into validator options.
func (c *Config) ValidateOptions() validate.Options {
	return validate.Options{
		Extension: validate.Extension{
			Installed: c.Extension.Installed,
			Version:   c.Extension.Version,
		},
	}
}
