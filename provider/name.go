package provider

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Name represents a validated provider identifier.
type Name struct {
	value string
}

// NewName creates a Name with strict validation.
// A valid provider name must:
// - Be non-empty
// - contain only alphanumeric characters, underscores, hyphens and dots
// - not start with a dot or contain ".."
// - Be at most 64 characters long
func NewName(name string) (Name, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Name{}, fmt.Errorf("provider name cannot be empty")
	}

	if len(name) > 64 {
		return Name{}, fmt.Errorf("provider name too long (max 64 chars)")
	}

	if strings.HasPrefix(name, ".") || strings.Contains(name, "..") {
		return Name{}, fmt.Errorf("invalid provider name %q: dots must separate segments", name)
	}

	for _, ch := range name {
		if !isValidNameChar(ch) {
			return Name{}, fmt.Errorf("invalid provider name %q: must contain only alphanumeric characters, underscores, hyphens and dots", name)
		}
	}

	return Name{value: name}, nil
}

func isValidNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '_' ||
		r == '-' ||
		r == '.'
}

// MustNewName creates a Name or panics
func MustNewName(name string) Name {
	n, err := NewName(name)
	if err != nil {
		panic(err)
	}
	return n
}

// String returns the string representation
func (n Name) String() string {
	return n.value
}

// IsEmpty returns true if this is the zero value
func (n Name) IsEmpty() bool {
	return n.value == ""
}

// Equals checks if two provider names are equal
func (n Name) Equals(other Name) bool {
	return n.value == other.value
}

// MarshalJSON implements json.Marshaler.
func (n Name) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.value)
}

// UnmarshalJSON implements json.Unmarshaler
func (n *Name) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid provider name JSON: %w", err)
	}

	name, err := NewName(s)
	if err != nil {
		return err
	}
	*n = name
	return nil
}
