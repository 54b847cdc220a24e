// Package pricing evaluates the Black-Scholes closed form for European
// options: call and put prices, the shared d1/d2 terms and the first
// sensitivities. Inputs outside the model's domain, or large enough to
// overflow an intermediate term, are rejected with a *DomainError.
package pricing

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Inputs holds the market parameters of a single European option.
type Inputs struct {
	Spot       float64 // S, current underlying price
	Strike     float64 // X, strike price
	Rate       float64 // r, annualized risk-free rate (continuous)
	Expiry     float64 // T, time to expiry in years
	Volatility float64 // sigma, annualized volatility
}

// Discount returns the discount factor exp(-r*T).
func (in Inputs) Discount() float64 {
	return math.Exp(-in.Rate * in.Expiry)
}

// D1D2 computes the standardized distances d1 and d2 shared by the call
// and put formulas.
//
//	d1 = (ln(S/X) + (r + sigma^2/2) * T) / (sigma * sqrt(T))
//	d2 = d1 - sigma * sqrt(T)
//
// Returns a *DomainError when the inputs are outside the model's domain.
func D1D2(in Inputs) (d1, d2 float64, err error) {
	if err := in.Validate(); err != nil {
		return 0, 0, err
	}
	if !finite(in.Discount()) {
		return 0, 0, overflow("rate", in.Rate, "exp(-r*T)")
	}
	volT := in.Volatility * math.Sqrt(in.Expiry)
	d1 = (math.Log(in.Spot/in.Strike) + (in.Rate+0.5*in.Volatility*in.Volatility)*in.Expiry) / volT
	d2 = d1 - volT
	if !finite(d1) || !finite(d2) {
		switch {
		case !finite(in.Volatility * in.Volatility * in.Expiry):
			return 0, 0, overflow("volatility", in.Volatility, "sigma^2*T")
		case !finite(math.Log(in.Spot / in.Strike)):
			return 0, 0, overflow("spot", in.Spot, "ln(S/X)")
		case !finite(in.Rate * in.Expiry):
			return 0, 0, overflow("rate", in.Rate, "r*T")
		default:
			return 0, 0, overflow("expiry", in.Expiry, "d1/d2")
		}
	}
	return d1, d2, nil
}

// CallPrice calculates the Black-Scholes price of a European call.
//
//	call = S * N(d1) - X * exp(-r*T) * N(d2)
func CallPrice(in Inputs) (float64, error) {
	d1, d2, err := D1D2(in)
	if err != nil {
		return 0, err
	}
	return checked(in.Spot*NormCDF(d1)-in.Strike*in.Discount()*NormCDF(d2), in)
}

// PutPrice calculates the Black-Scholes price of a European put.
//
//	put = X * exp(-r*T) * N(-d2) - S * N(-d1)
func PutPrice(in Inputs) (float64, error) {
	d1, d2, err := D1D2(in)
	if err != nil {
		return 0, err
	}
	return checked(in.Strike*in.Discount()*NormCDF(-d2)-in.Spot*NormCDF(-d1), in)
}

// checked rejects a non-finite price. S is finite and N is bounded, so the
// only term that can overflow is the discounted strike.
func checked(price float64, in Inputs) (float64, error) {
	if finite(price) {
		return price, nil
	}
	if !finite(in.Strike * in.Discount()) {
		return 0, overflow("strike", in.Strike, "X*exp(-r*T)")
	}
	return 0, overflow("spot", in.Spot, "the price")
}

// NormCDF is the standard normal cumulative distribution function.
// gonum evaluates it through math.Erfc, which keeps the absolute error
// below 1e-15 including deep in both tails.
func NormCDF(x float64) float64 {
	return distuv.UnitNormal.CDF(x)
}

// NormPDF is the standard normal probability density function.
func NormPDF(x float64) float64 {
	return distuv.UnitNormal.Prob(x)
}
