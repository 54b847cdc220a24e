package parity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contactkeval/bs-parity/internal/pricing"
)

func TestCheck_ComputedPrices(t *testing.T) {
	in := pricing.Inputs{Spot: 42.35, Strike: 42, Rate: 0.038, Expiry: 0.5, Volatility: math.Sqrt(0.12)}

	call, err := pricing.CallPrice(in)
	require.NoError(t, err)
	put, err := pricing.PutPrice(in)
	require.NoError(t, err)

	res, err := Check(call, put, in)
	require.NoError(t, err)

	assert.InDelta(t, 0, res.Residual, 1e-12)
	assert.Equal(t, math.Abs(res.Residual), res.Difference)
	assert.InDelta(t, 1.1404667858021469, res.Forward, 1e-12)
	assert.True(t, res.Holds(1e-9))
}

func TestCheck_SignedResidual(t *testing.T) {
	in := pricing.Inputs{Spot: 100, Strike: 100, Rate: 0, Expiry: 1}

	// with r = 0 the identity reduces to C - P = S - X = 0
	rich, err := Check(5.25, 5, in)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, rich.Residual, 1e-15)
	assert.InDelta(t, 0.25, rich.Difference, 1e-15)
	assert.False(t, rich.Holds(0.1))

	cheap, err := Check(5, 5.5, in)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, cheap.Residual, 1e-15)
	assert.InDelta(t, 0.5, cheap.Difference, 1e-15)
	assert.True(t, cheap.Holds(0.5))
}

func TestCheck_IgnoresVolatility(t *testing.T) {
	in := pricing.Inputs{Spot: 100, Strike: 95, Rate: 0.02, Expiry: 1, Volatility: 0}

	_, err := Check(10, 3, in)
	assert.NoError(t, err)
}

func TestCheck_DomainErrors(t *testing.T) {
	for _, in := range []pricing.Inputs{
		{Spot: 0, Strike: 100, Rate: 0.05, Expiry: 1},
		{Spot: 100, Strike: -5, Rate: 0.05, Expiry: 1},
		{Spot: 100, Strike: 100, Rate: 0.05, Expiry: 0},
		{Spot: 100, Strike: 100, Rate: math.Inf(1), Expiry: 1},
		{Spot: 100, Strike: 100, Rate: -1, Expiry: 1000},
	} {
		_, err := Check(1, 1, in)
		assert.True(t, errors.Is(err, pricing.ErrDomain), "inputs %+v", in)
	}
}
