package gonoise

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_Accessors(t *testing.T) {
	s := NewSeeded(42, "payload")
	assert.Equal(t, uint32(42), SeedOf(s))
	assert.Equal(t, "payload", ValueOf(s))
}

func TestMapSeeded_PreservesSeed(t *testing.T) {
	double := OpFunc[int, int](func(v int) int { return v * 2 })
	lifted := MapSeeded[int, int](double)

	out := lifted.Apply(NewSeeded(7, 21))
	assert.Equal(t, uint32(7), out.Seed)
	assert.Equal(t, 42, out.Value)
}

func TestSeeding_ConsumesSeed(t *testing.T) {
	base, err := White(0).Build()
	require.NoError(t, err)

	reseed := Seeding[*WhiteNoise]()
	n := reseed.Apply(NewSeeded(99, base))

	want := White(99).MustBuild()
	assert.Equal(t, want.Sample2(1.5, 2.5), n.Sample2(1.5, 2.5))
}

func TestAssociated_MetaRidesAlong(t *testing.T) {
	double := OpFunc[float32, float32](func(v float32) float32 { return v * 2 })
	lifted := MapValue[float32, float32, string](double)

	out := lifted.Apply(NewAssociated(float32(1.5), "position"))
	assert.InDelta(t, 3, out.Value, 1e-6)
	assert.Equal(t, "position", out.Meta)
	assert.Equal(t, "position", MetaOf(out))
}

func TestMapMeta(t *testing.T) {
	upper := OpFunc[int, int](func(v int) int { return v + 100 })
	lifted := MapMeta[string, int, int](upper)

	out := lifted.Apply(NewAssociated("value", 1))
	assert.Equal(t, "value", out.Value)
	assert.Equal(t, 101, out.Meta)
}
