package stomata

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for estimator validation failures.
// Compare with errors.Is; never match on message text.
var (
	// ErrInvalidNumericInput indicates a width, height, leaf count or people
	// count that does not parse as a number of the required kind.
	ErrInvalidNumericInput = constError("invalid numeric input")

	// ErrUnknownLeafType indicates a leaf type not present in the density table.
	ErrUnknownLeafType = constError("unknown leaf type")
)

// FailureKind classifies a ValidationError.
type FailureKind int

const (
	// InvalidNumericInput is a numeric parse failure.
	InvalidNumericInput FailureKind = iota + 1
	// UnknownLeafType is a leaf type missing from the table.
	UnknownLeafType
)

// String returns a stable identifier for the failure kind.
func (k FailureKind) String() string {
	switch k {
	case InvalidNumericInput:
		return "InvalidNumericInput"
	case UnknownLeafType:
		return "UnknownLeafType"
	default:
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
}

// ValidationError is the failure side of an estimate. It carries enough
// context for a caller to display it without further handling.
type ValidationError struct {
	Kind  FailureKind
	Field string
	Value string
}

// Error implements error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %q", e.sentinel(), e.Field, e.Value)
}

// Unwrap exposes the sentinel so errors.Is works.
func (e *ValidationError) Unwrap() error {
	return e.sentinel()
}

// Reason returns the descriptive text shown to users.
func (e *ValidationError) Reason() string {
	switch e.Kind {
	case InvalidNumericInput:
		return "please enter valid numbers"
	case UnknownLeafType:
		return "unknown leaf type"
	default:
		return e.Error()
	}
}

// ReasonKorean returns the Korean descriptive text shown to users.
func (e *ValidationError) ReasonKorean() string {
	switch e.Kind {
	case InvalidNumericInput:
		return "숫자를 올바르게 입력해주세요."
	case UnknownLeafType:
		return "알 수 없는 잎 종류입니다."
	default:
		return e.Error()
	}
}

func (e *ValidationError) sentinel() error {
	if e.Kind == UnknownLeafType {
		return ErrUnknownLeafType
	}
	return ErrInvalidNumericInput
}

func invalidNumber(field, value string) *ValidationError {
	return &ValidationError{Kind: InvalidNumericInput, Field: field, Value: value}
}
