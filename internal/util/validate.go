package util

import (
	"fmt"
	"regexp"
	"strings"
)

// validLabelChars matches only alphanumeric characters and hyphens.
var validLabelChars = regexp.MustCompile(`^[a-zA-Z0-9\-]+$`)

// ValidateDomainName checks that a registrable domain name follows RFC 1123
// hostname rules:
//   - At most 253 characters, at least two labels
//   - Each label 1 to 63 characters of a-z, A-Z, 0-9 and hyphens
//   - Labels must not start or end with a hyphen
//
// A single trailing dot is accepted.
func ValidateDomainName(name string) error {
	name = strings.TrimSuffix(name, ".")
	if name == "" {
		return fmt.Errorf("domain name cannot be empty")
	}
	if len(name) > 253 {
		return fmt.Errorf("domain name must be at most 253 characters, got %d", len(name))
	}

	labels := strings.Split(name, ".")
	if len(labels) < 2 {
		return fmt.Errorf("domain name %q must include a TLD", name)
	}

	for _, label := range labels {
		if label == "" {
			return fmt.Errorf("domain name %q contains an empty label", name)
		}
		if len(label) > 63 {
			return fmt.Errorf("label %q must be at most 63 characters, got %d", label, len(label))
		}
		if !validLabelChars.MatchString(label) {
			return fmt.Errorf("domain name %q contains invalid characters (only a-z, A-Z, 0-9, and hyphens are allowed)", name)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("label %q must not start or end with a hyphen", label)
		}
	}

	return nil
}
