package slcan

import "fmt"

// Identifier limits.
const (
	maxStandardID = 0x7FF
	maxExtendedID = 0x1FFFFFFF
)

// Identifier is an 11-bit standard or 29-bit extended CAN identifier.
// The zero value is standard identifier 0. Use StandardID or ExtendedID
// to construct one; they are the only range check in the package, every
// other path funnels through them.
type Identifier struct {
	raw      uint32
	extended bool
}

// StandardID returns an 11-bit identifier.
func StandardID(id uint32) (Identifier, error) {
	if id > maxStandardID {
		return Identifier{}, fmt.Errorf("standard identifier 0x%X: %w", id, ErrIdentifierRange)
	}
	return Identifier{raw: id}, nil
}

// ExtendedID returns a 29-bit identifier.
func ExtendedID(id uint32) (Identifier, error) {
	if id > maxExtendedID {
		return Identifier{}, fmt.Errorf("extended identifier 0x%X: %w", id, ErrIdentifierRange)
	}
	return Identifier{raw: id, extended: true}, nil
}

// Raw returns the identifier value.
func (i Identifier) Raw() uint32 { return i.raw }

// Extended reports whether the identifier is 29-bit.
func (i Identifier) Extended() bool { return i.extended }

func (i Identifier) String() string {
	if i.extended {
		return fmt.Sprintf("0x%08X", i.raw)
	}
	return fmt.Sprintf("0x%03X", i.raw)
}
