package mod

import (
	"strings"

	"github.com/google/uuid"
)

// UUID is a canonical mod identity. Two identities are equal iff their
// canonical forms are equal, which makes comparison case-insensitive.
type UUID string

// ParseUUID canonicalises a raw identity. Values that parse as RFC 4122
// UUIDs (with or without braces or a urn prefix) are rendered in the
// lowercase hyphenated form; anything else is trimmed and lowercased so
// non-standard identities still compare case-insensitively.
func ParseUUID(raw string) UUID {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if parsed, err := uuid.Parse(trimmed); err == nil {
		return UUID(parsed.String())
	}
	return UUID(strings.ToLower(trimmed))
}

// IsZero reports whether the identity is empty.
func (u UUID) IsZero() bool {
	return u == ""
}

// IsStandard reports whether the identity is a well-formed RFC 4122 UUID.
func (u UUID) IsStandard() bool {
	return uuid.Validate(string(u)) == nil
}

func (u UUID) String() string {
	return string(u)
}

// Set is a set of identities.
type Set map[UUID]struct{}

// NewSet builds a set from raw identities, canonicalising each one.
func NewSet(raw ...string) Set {
	s := make(Set, len(raw))
	for _, r := range raw {
		if id := ParseUUID(r); !id.IsZero() {
			s[id] = struct{}{}
		}
	}
	return s
}

// Add inserts id.
func (s Set) Add(id UUID) {
	s[id] = struct{}{}
}

// Has reports membership. A nil set contains nothing.
func (s Set) Has(id UUID) bool {
	_, ok := s[id]
	return ok
}
