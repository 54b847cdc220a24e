// Package parity measures how far a call/put price pair is from satisfying
// put-call parity for European options:
//
//	C - P = S - X * exp(-r*T)
//
// The check is observational. A small non-zero residual is expected from
// floating point and the normal CDF evaluation, so Check reports the
// residual rather than returning a verdict.
package parity

import (
	"math"

	"github.com/contactkeval/bs-parity/internal/pricing"
)

// Result of a parity check.
//
// Residual is (C - P) - (S - X*exp(-r*T)), signed: positive means the
// call is rich relative to the put. Difference is |Residual|.
type Result struct {
	Residual   float64 `json:"residual"`
	Difference float64 `json:"difference"`
	Forward    float64 `json:"forward"` // S - X*exp(-r*T), the right-hand side
}

// Check computes the parity residual of call and put under in. Only S, X,
// r and T enter the identity; the volatility in in is ignored.
func Check(call, put float64, in pricing.Inputs) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}
	fwd := in.Spot - in.Strike*in.Discount()
	if math.IsNaN(fwd) || math.IsInf(fwd, 0) {
		return Result{}, &pricing.DomainError{Field: "rate", Value: in.Rate, Reason: "overflows X*exp(-r*T)"}
	}
	res := call - put - fwd
	return Result{
		Residual:   res,
		Difference: math.Abs(res),
		Forward:    fwd,
	}, nil
}

// Holds reports whether the residual is within tol.
func (r Result) Holds(tol float64) bool {
	return r.Difference <= tol
}

func validate(in pricing.Inputs) error {
	// volatility plays no part in the identity; substitute a valid one so
	// the shared validation only judges S, X, r and T
	in.Volatility = 1
	return in.Validate()
}
