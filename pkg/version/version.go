// Package version implements the packed 64-bit version code used by mod
// metadata and the game's settings file.
//
// A Code stores four fields in a single uint64:
//
//	bits 55-63  major     (9 bits)
//	bits 47-54  minor     (8 bits)
//	bits 31-46  revision  (16 bits)
//	bits  0-30  build     (31 bits)
//
// Ordering is always decided on the integer value, never field by field.
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arthur-debert/modorder/pkg/errors"
	"github.com/arthur-debert/modorder/pkg/logging"
)

const (
	majorShift    = 55
	minorShift    = 47
	revisionShift = 31

	MaxMajor    = 1<<9 - 1
	MaxMinor    = 1<<8 - 1
	MaxRevision = 1<<16 - 1
	MaxBuild    = 0x7FFFFFFF
)

// Raw values produced by an older packing scheme for "1.0.0.0".
const (
	legacyOne    Code = 1
	legacyOneBig Code = 268435456
	canonicalOne Code = 1 << majorShift
)

// Code is a packed version value. Zero means "unknown version".
type Code uint64

// Version is the decoded form of a Code.
type Version struct {
	Major    uint32
	Minor    uint32
	Revision uint32
	Build    uint32
}

// Encode packs the four fields into a Code. Fields above their bit width are
// clamped to the field maximum.
func Encode(major, minor, revision, build uint32) Code {
	major = clamp("major", major, MaxMajor)
	minor = clamp("minor", minor, MaxMinor)
	revision = clamp("revision", revision, MaxRevision)
	build = clamp("build", build, MaxBuild)

	return Code(uint64(major)<<majorShift +
		uint64(minor)<<minorShift +
		uint64(revision)<<revisionShift +
		uint64(build))
}

func clamp(field string, value, max uint32) uint32 {
	if value <= max {
		return value
	}
	logger := logging.GetLogger("version")
	logger.Debug().
		Str("field", field).
		Uint32("value", value).
		Uint32("max", max).
		Msg("Version field out of range, clamping")
	return max
}

// Normalize maps the legacy encodings of 1.0.0.0 onto the current packing.
func (c Code) Normalize() Code {
	if c == legacyOne || c == legacyOneBig {
		return canonicalOne
	}
	return c
}

// Decode unpacks the Code.
func (c Code) Decode() Version {
	n := uint64(c.Normalize())
	return Version{
		Major:    uint32(n >> majorShift),
		Minor:    uint32((n >> minorShift) & MaxMinor),
		Revision: uint32((n >> revisionShift) & MaxRevision),
		Build:    uint32(n & MaxBuild),
	}
}

// IsZero reports whether the version is unknown.
func (c Code) IsZero() bool {
	return c == 0
}

// Less reports whether c orders before other.
func (c Code) Less(other Code) bool {
	return c.Normalize() < other.Normalize()
}

// Int64 returns the value as the signed integer written to settings files.
func (c Code) Int64() int64 {
	return int64(c.Normalize())
}

// String renders the decoded version as major.minor.revision.build.
func (c Code) String() string {
	return c.Decode().String()
}

// FromInt64 converts a signed Version64 attribute into a Code.
func FromInt64(v int64) Code {
	return Code(uint64(v))
}

// Compare returns -1, 0 or 1 comparing the packed integers of a and b.
func Compare(a, b Code) int {
	na, nb := a.Normalize(), b.Normalize()
	switch {
	case na < nb:
		return -1
	case na > nb:
		return 1
	default:
		return 0
	}
}

// Code packs v.
func (v Version) Code() Code {
	return Encode(v.Major, v.Minor, v.Revision, v.Build)
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Revision, v.Build)
}

// Parse reads a dotted version string with one to four numeric fields.
// Missing trailing fields are zero.
func Parse(s string) (Code, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New(errors.ErrMalformedVersion, "empty version string")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 4 {
		return 0, errors.Newf(errors.ErrMalformedVersion, "version %q has %d fields, at most 4 allowed", s, len(parts))
	}

	var fields [4]uint32
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return 0, errors.Wrapf(err, errors.ErrMalformedVersion, "invalid version field %q", part).
				WithDetail("version", s)
		}
		fields[i] = uint32(n)
	}

	return Encode(fields[0], fields[1], fields[2], fields[3]), nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Code {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
