package bitarray

import (
	"errors"
	"fmt"
)

var (
	// ErrContractViolation is the kind shared by every precondition failure.
	// A call that returns it has left its receiver untouched.
	ErrContractViolation = errors.New("contract violation")

	// ErrInvalidEncoding is returned when binary or text input does not
	// describe a bit array.
	ErrInvalidEncoding = errors.New("invalid bit array encoding")
)

// ArgumentError reports an argument or receiver state that breaks an
// operation's precondition.
//
// The message reads "<Name> (<Value>) must <Constraint>." and the error
// unwraps to ErrContractViolation.
type ArgumentError struct {
	Name       string
	Value      any
	Constraint string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s (%v) must %s.", e.Name, e.Value, e.Constraint)
}

func (e *ArgumentError) Unwrap() error { return ErrContractViolation }

func checkBetween(name string, value, lower, upper int) error {
	if value < lower || value > upper {
		return &ArgumentError{
			Name:       name,
			Value:      value,
			Constraint: fmt.Sprintf("be between %d and %d", lower, upper),
		}
	}
	return nil
}

func checkAtLeast(name string, value, lower int) error {
	if value < lower {
		return &ArgumentError{
			Name:       name,
			Value:      value,
			Constraint: fmt.Sprintf("be greater than or equal to %d", lower),
		}
	}
	return nil
}

func checkIndex(index, count int) error {
	return checkBetween("index", index, 0, count-1)
}

func checkBitValue(value int) error {
	if value != 0 && value != 1 {
		return &ArgumentError{Name: "value", Value: value, Constraint: "be 0 or 1"}
	}
	return nil
}

func checkCount(count int) error {
	if count < 0 || int64(count) > MaxCount {
		return &ArgumentError{
			Name:       "count",
			Value:      count,
			Constraint: fmt.Sprintf("be between 0 and %d", int64(MaxCount)),
		}
	}
	return nil
}

func checkNotNil(name string, b *BitArray) error {
	if b == nil {
		return &ArgumentError{Name: name, Value: nil, Constraint: "not be nil"}
	}
	return nil
}
