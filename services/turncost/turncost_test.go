package turncost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	// 1M input tokens at $0.80 plus 1M output tokens at $4.00
	cost := EstimateCost(1_000_000, 1_000_000)
	assert.True(t, cost.Equal(decimal.NewFromFloat(4.8)), "got %s", cost.String())
}

func TestEstimateCost_Zero(t *testing.T) {
	assert.True(t, EstimateCost(0, 0).IsZero())
}

func TestEstimateCost_SmallCounts(t *testing.T) {
	// 120 input + 40 output tokens
	cost := EstimateCost(120, 40)
	expected := decimal.NewFromFloat(0.000096).Add(decimal.NewFromFloat(0.00016))
	assert.True(t, cost.Equal(expected), "got %s", cost.String())
}
