package randvar_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probkit/probkit/randvar"
)

// TestTransform_GroupsCollidingImages mirrors the original x→x² case on a
// support straddling zero: (-2)² and 2² collide, (-1)² and 1² collide.
func TestTransform_GroupsCollidingImages(t *testing.T) {
	v, err := randvar.New(
		[]float64{-2, -1, 1, 2, 3},
		[]float64{0.1, 0.2, 0.5, 0.1, 0.1},
	)
	require.NoError(t, err)

	sq, err := v.Transform(func(x float64) float64 { return x * x })
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4, 9}, sq.Values(), "sorted distinct images")
	assert.InDelta(t, 0.7, sq.PMF(1), 1e-12, "mass of -1 and 1 merged")
	assert.InDelta(t, 0.2, sq.PMF(4), 1e-12, "mass of -2 and 2 merged")
	assert.InDelta(t, 0.1, sq.PMF(9), 1e-12)
}

// TestTransform_PreservesMass holds for any f, including constant maps
// that collapse the whole support onto one point.
func TestTransform_PreservesMass(t *testing.T) {
	v := mustNew(t)

	for name, f := range map[string]func(float64) float64{
		"affine":   func(x float64) float64 { return 3*x - 2 },
		"square":   func(x float64) float64 { return x * x },
		"constant": func(float64) float64 { return 42 },
		"floorlog": func(x float64) float64 { return math.Floor(math.Log2(x)) },
	} {
		got, err := v.Transform(f)
		require.NoError(t, err, name)

		var total float64
		for _, p := range got.Probs() {
			total += p
		}
		assert.InDelta(t, 1.0, total, 1e-9, "total mass after %s", name)
	}
}

// TestTransform_InheritsNameAndShift keeps the label and shifts moments
// as expected under an affine map.
func TestTransform_InheritsNameAndShift(t *testing.T) {
	v := mustNew(t)

	shifted, err := v.Transform(func(x float64) float64 { return x + 10 })
	require.NoError(t, err)

	assert.Equal(t, v.Name(), shifted.Name(), "derived variable keeps the label")
	assert.InDelta(t, v.Expectation(nil)+10, shifted.Expectation(nil), 1e-12)
	assert.InDelta(t, v.Variance(), shifted.Variance(), 1e-9, "shift leaves variance alone")
}

// TestMap_ReweightsPositionally rewrites probabilities while the support
// stays put.
func TestMap_ReweightsPositionally(t *testing.T) {
	v, err := randvar.New([]float64{1, 2}, []float64{0.25, 0.75})
	require.NoError(t, err)

	// Swap the two masses: f(0.25)=0.75, f(0.75)=0.25.
	swapped, err := v.Map(func(p float64) float64 { return 1 - p })
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, swapped.Values(), "support is unchanged")
	assert.InDelta(t, 0.75, swapped.PMF(1), 1e-12)
	assert.InDelta(t, 0.25, swapped.PMF(2), 1e-12)
}

// TestMap_CallerRenormalizes: a mass-destroying f fails validation unless
// the caller asks for renormalization.
func TestMap_CallerRenormalizes(t *testing.T) {
	v := mustNew(t)

	half := func(p float64) float64 { return p / 2 }

	_, err := v.Map(half)
	assert.ErrorIs(t, err, randvar.ErrInvalidPmf, "halved mass no longer sums to 1")

	renorm, err := v.Map(half, randvar.WithNormalize())
	require.NoError(t, err)
	assert.InDelta(t, 0.5, renorm.PMF(1), 1e-12, "renormalization restores the pmf")
}
