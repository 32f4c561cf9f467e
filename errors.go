package shear

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrNotStruct indicates a type cannot be introspected because it is not a struct.
	ErrNotStruct = errors.New("not a struct type")

	// ErrUnknownType indicates a field source has no descriptors for a type.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidRegistry indicates registry data could not be parsed or is inconsistent.
	ErrInvalidRegistry = errors.New("invalid registry")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// SourceError represents a field enumeration failure.
// It wraps a sentinel error with the type that could not be introspected.
type SourceError struct {
	Err  error  // Underlying sentinel error (ErrNotStruct, ErrUnknownType)
	Type string // Type whose fields were requested
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s %s", e.Err.Error(), e.Type)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// RegistryError represents a malformed registry entry.
type RegistryError struct {
	Err   error  // Underlying sentinel error (ErrInvalidRegistry)
	Type  string // Type entry that failed, empty for document-level failures
	Cause error  // Original error, if any
}

func (e *RegistryError) Error() string {
	switch {
	case e.Type != "" && e.Cause != nil:
		return fmt.Sprintf("%s (type %s): %v", e.Err.Error(), e.Type, e.Cause)
	case e.Type != "":
		return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.Type)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newSourceError creates a SourceError for field enumeration failures.
func newSourceError(sentinel error, typeName string) error {
	return &SourceError{
		Err:  sentinel,
		Type: typeName,
	}
}

// newRegistryError creates a RegistryError for malformed registry data.
func newRegistryError(typeName string, cause error) error {
	return &RegistryError{
		Err:   ErrInvalidRegistry,
		Type:  typeName,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
