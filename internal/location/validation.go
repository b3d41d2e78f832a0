package location

import (
	"fmt"
	"strings"
)

// maxNameLength matches the device package convention.
const maxNameLength = 100

// ValidateName checks if a house or room name is valid.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, maxNameLength)
	}
	return nil
}
