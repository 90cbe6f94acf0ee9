package storage

import (
	"regexp"

	"github.com/google/uuid"
)

// IDLength is the number of hex characters in a session id.
const IDLength = 8

var idPattern = regexp.MustCompile(`^[0-9a-f]{8}$`)

// IDSource produces candidate session ids.
type IDSource func() string

// UUIDSource returns the first 8 hex characters of a random UUID v4.
func UUIDSource() string {
	return uuid.NewString()[:IDLength]
}

// IsValidID reports whether id is 8 lowercase hex characters.
func IsValidID(id string) bool {
	return idPattern.MatchString(id)
}

// NextID draws ids from source until one is valid and absent from existing.
// A nil source uses UUIDSource. The caller must leave at least one free id
// in the source's space.
func NextID(existing map[string]struct{}, source IDSource) string {
	if source == nil {
		source = UUIDSource
	}
	for {
		id := source()
		if !IsValidID(id) {
			continue
		}
		if _, taken := existing[id]; !taken {
			return id
		}
	}
}
