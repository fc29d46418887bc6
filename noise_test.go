package gonoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpFunc(t *testing.T) {
	double := OpFunc[int, int](func(v int) int { return v * 2 })
	assert.Equal(t, 8, double.Apply(4))
}

func TestIdentity(t *testing.T) {
	id := Identity[string]()
	assert.Equal(t, "noise", id.Apply("noise"))
}

func TestChain(t *testing.T) {
	double := OpFunc[int, int](func(v int) int { return v * 2 })
	toFloat := OpFunc[int, float32](func(v int) float32 { return float32(v) + 0.5 })

	chained := Chain[int, int, float32](double, toFloat)
	assert.InDelta(t, 6.5, chained.Apply(3), 1e-6)
}

func TestChain3(t *testing.T) {
	inc := OpFunc[int, int](func(v int) int { return v + 1 })
	double := OpFunc[int, int](func(v int) int { return v * 2 })
	neg := OpFunc[int, int](func(v int) int { return -v })

	// Stages apply left to right.
	chained := Chain3[int, int, int, int](inc, double, neg)
	assert.Equal(t, -8, chained.Apply(3))
}

func TestChain_Nests(t *testing.T) {
	inc := OpFunc[int, int](func(v int) int { return v + 1 })

	five := Chain[int, int, int](Chain[int, int, int](inc, inc), Chain[int, int, int](inc, Chain[int, int, int](inc, inc)))
	assert.Equal(t, 5, five.Apply(0))
}
