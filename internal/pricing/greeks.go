package pricing

import (
	"fmt"
	"math"
)

// OptionType distinguishes calls from puts.
type OptionType string

const (
	Call OptionType = "call" // right to buy at the strike
	Put  OptionType = "put"  // right to sell at the strike
)

func errUnknownType(typ OptionType) error {
	return fmt.Errorf("unknown option type %q", typ)
}

// Delta returns dV/dS: N(d1) for a call, N(d1) - 1 for a put.
func Delta(in Inputs, typ OptionType) (float64, error) {
	d1, _, err := D1D2(in)
	if err != nil {
		return 0, err
	}
	switch typ {
	case Call:
		return NormCDF(d1), nil
	case Put:
		return NormCDF(d1) - 1, nil
	}
	return 0, errUnknownType(typ)
}

// Gamma returns d2V/dS2, identical for calls and puts.
func Gamma(in Inputs) (float64, error) {
	d1, _, err := D1D2(in)
	if err != nil {
		return 0, err
	}
	return NormPDF(d1) / (in.Spot * in.Volatility * math.Sqrt(in.Expiry)), nil
}

// Vega returns dV/dsigma per unit of volatility (not per 1%),
// identical for calls and puts.
func Vega(in Inputs) (float64, error) {
	d1, _, err := D1D2(in)
	if err != nil {
		return 0, err
	}
	return in.Spot * NormPDF(d1) * math.Sqrt(in.Expiry), nil
}
