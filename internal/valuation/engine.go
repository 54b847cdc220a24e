// Package valuation prices a scenario end to end: call, put, the parity
// check on the two prices, and the sensitivities.
package valuation

import (
	"fmt"

	"github.com/contactkeval/bs-parity/internal/logger"
	"github.com/contactkeval/bs-parity/internal/parity"
	"github.com/contactkeval/bs-parity/internal/pricing"
	"github.com/contactkeval/bs-parity/internal/scenario"
)

// parityTol is the residual above which a scenario is flagged in the log.
const parityTol = 1e-9

// Greeks are the sensitivities reported alongside the prices.
type Greeks struct {
	CallDelta float64 `json:"call_delta"`
	PutDelta  float64 `json:"put_delta"`
	Gamma     float64 `json:"gamma"`
	Vega      float64 `json:"vega"`
}

// Valuation is the outcome of pricing one scenario.
type Valuation struct {
	Scenario scenario.Scenario `json:"scenario"`
	D1       float64           `json:"d1"`
	D2       float64           `json:"d2"`
	Call     float64           `json:"call"`
	Put      float64           `json:"put"`
	Parity   parity.Result     `json:"parity"`
	Greeks   Greeks            `json:"greeks"`
}

// Engine runs scenarios through the pricers. It holds no state.
type Engine struct{}

// NewEngine returns an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Run prices s: call, then put, then the parity check on the two prices.
func (e *Engine) Run(s scenario.Scenario) (*Valuation, error) {
	in := s.Inputs()
	logger.Tracef("scenario %s: S=%v X=%v r=%v T=%v sigma=%v", s.Name, in.Spot, in.Strike, in.Rate, in.Expiry, in.Volatility)

	d1, d2, err := pricing.D1D2(in)
	if err != nil {
		return nil, err
	}
	logger.Debugf("scenario %s: d1=%.10f d2=%.10f", s.Name, d1, d2)

	call, err := pricing.CallPrice(in)
	if err != nil {
		return nil, fmt.Errorf("call price: %w", err)
	}
	put, err := pricing.PutPrice(in)
	if err != nil {
		return nil, fmt.Errorf("put price: %w", err)
	}

	par, err := parity.Check(call, put, in)
	if err != nil {
		return nil, fmt.Errorf("parity check: %w", err)
	}
	logger.Debugf("scenario %s: parity residual=%g", s.Name, par.Residual)
	if !par.Holds(parityTol) {
		logger.Infof("scenario %s: parity residual %g exceeds %g", s.Name, par.Residual, parityTol)
	}

	g, err := greeks(in)
	if err != nil {
		return nil, err
	}

	logger.Infof("scenario %s: call=%.4f put=%.4f", s.Name, call, put)
	return &Valuation{
		Scenario: s,
		D1:       d1,
		D2:       d2,
		Call:     call,
		Put:      put,
		Parity:   par,
		Greeks:   g,
	}, nil
}

// RunAll prices every scenario in order and stops at the first error.
func (e *Engine) RunAll(list []scenario.Scenario) ([]*Valuation, error) {
	out := make([]*Valuation, 0, len(list))
	for _, s := range list {
		v, err := e.Run(s)
		if err != nil {
			return out, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func greeks(in pricing.Inputs) (Greeks, error) {
	var (
		g   Greeks
		err error
	)
	if g.CallDelta, err = pricing.Delta(in, pricing.Call); err != nil {
		return g, err
	}
	if g.PutDelta, err = pricing.Delta(in, pricing.Put); err != nil {
		return g, err
	}
	if g.Gamma, err = pricing.Gamma(in); err != nil {
		return g, err
	}
	if g.Vega, err = pricing.Vega(in); err != nil {
		return g, err
	}
	return g, nil
}
