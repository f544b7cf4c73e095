// Package config handles configuration management for modorder.
// Values are layered from the embedded defaults, the user's config.toml and
// MODORDER_ environment variables, then decoded into a typed Config that the
// rest of the program receives explicitly.
package config
