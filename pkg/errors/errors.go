// Package errors provides common domain error types for meetmind.
//
// It defines sentinel errors for conditions like "not found" or
// "unsupported file type" that are shared across packages. Using typed
// errors enables consistent handling with errors.Is() checks.
package errors

import "errors"

// Domain errors - common sentinel errors for domain conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates invalid input or validation failure.
	ErrValidation = errors.New("validation error")

	// ErrUnsupportedType indicates a file type that cannot be processed.
	ErrUnsupportedType = errors.New("unsupported file type")

	// ErrDimensionMismatch indicates an embedding whose dimensionality
	// does not match the index.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrLengthMismatch indicates embeddings and metadata of different lengths.
	ErrLengthMismatch = errors.New("embeddings and metadata length mismatch")

	// ErrAlreadyExists indicates the resource already exists.
	ErrAlreadyExists = errors.New("already exists")
)

// IsNotFound reports whether any error in err's chain is ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation reports whether any error in err's chain is ErrValidation.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUnsupportedType reports whether any error in err's chain is ErrUnsupportedType.
func IsUnsupportedType(err error) bool {
	return errors.Is(err, ErrUnsupportedType)
}

// IsDimensionMismatch reports whether any error in err's chain is ErrDimensionMismatch.
func IsDimensionMismatch(err error) bool {
	return errors.Is(err, ErrDimensionMismatch)
}

// IsAlreadyExists reports whether any error in err's chain is ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	return errors.Is(err, ErrAlreadyExists)
}
