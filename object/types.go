package object

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrIncompatible indicates a distance request between objects of
	// different concrete types.
	ErrIncompatible = errors.New("object: incompatible object types")
	// ErrUnknownKind indicates a registry lookup for an unregistered kind.
	ErrUnknownKind = errors.New("object: unknown object kind")
	// ErrDuplicateKind indicates a second registration under the same kind.
	ErrDuplicateKind = errors.New("object: kind already registered")
	// ErrWeightMismatch indicates composite children and weights of unequal
	// length, or an empty composite.
	ErrWeightMismatch = errors.New("object: children and weights must be non-empty and of equal length")
)

// Object is one searchable item: a stable identity, a locator pointing back
// at the source content, and a distance to a peer of the same kind. The
// threshold enables early abandonment in engines that support it; engines
// that do not simply ignore it.
type Object interface {
	ID() uuid.UUID
	Locator() string
	Distance(other Object, threshold float64) (float64, error)
}

// meta carries the identity shared by every concrete descriptor.
type meta struct {
	id      uuid.UUID
	locator string
}

func newMeta(locator string) meta {
	return meta{id: uuid.New(), locator: locator}
}

// ID returns the generated object identity.
func (m meta) ID() uuid.UUID { return m.id }

// Locator returns the application-supplied content reference.
func (m meta) Locator() string { return m.locator }
