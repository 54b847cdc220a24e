package pricing

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned (wrapped in a *DomainError) when an input lies
// outside the region where the Black-Scholes formula is defined.
var ErrDomain = errors.New("domain error")

// DomainError identifies the input that violated its constraint.
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %s %s, got %v", ErrDomain, e.Field, e.Reason, e.Value)
}

func (e *DomainError) Unwrap() error { return ErrDomain }

// Validate checks S, X, T and sigma are positive and finite and r is finite.
func (in Inputs) Validate() error {
	if err := positive("spot", in.Spot); err != nil {
		return err
	}
	if err := positive("strike", in.Strike); err != nil {
		return err
	}
	if err := positive("expiry", in.Expiry); err != nil {
		return err
	}
	if err := positive("volatility", in.Volatility); err != nil {
		return err
	}
	if !finite(in.Rate) {
		return &DomainError{Field: "rate", Value: in.Rate, Reason: "must be finite"}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func overflow(field string, v float64, term string) error {
	return &DomainError{Field: field, Value: v, Reason: "overflows " + term}
}

func positive(field string, v float64) error {
	if !finite(v) {
		return &DomainError{Field: field, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &DomainError{Field: field, Value: v, Reason: "must be > 0"}
	}
	return nil
}
