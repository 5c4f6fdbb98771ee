package types

import "github.com/google/uuid"

// Identity is a process-unique reference to a definition. It is generated once
// at creation time and never recomputed, so renaming a definition never breaks
// anything that points at it. The zero value means "no reference".
type Identity string

// NewIdentity returns a fresh random 128-bit identity.
func NewIdentity() Identity {
	return Identity(uuid.NewString())
}

func (id Identity) IsNil() bool {
	return id == ""
}

func (id Identity) String() string {
	return string(id)
}
