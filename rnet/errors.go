package rnet

import "errors"

// Error types for network validation.
var (
	// ErrEmptySpeciesName is returned when the species list contains an empty string.
	ErrEmptySpeciesName = errors.New("empty species name")

	// ErrRateArity is returned when rate names and values differ in count.
	ErrRateArity = errors.New("rate names and values differ in count")

	// ErrDuplicateName is returned when a species or rate name appears twice.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNameCollision is returned when a name is both a species and a rate.
	ErrNameCollision = errors.New("name used for both species and rate")

	// ErrReservedName is returned when a name shadows a propensity function parameter.
	ErrReservedName = errors.New("reserved name")

	// ErrBadIdentifier is returned when a name is not a valid C identifier.
	ErrBadIdentifier = errors.New("not a valid identifier")
)
