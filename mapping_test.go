package coordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApply1(t *testing.T) {
	m, err := NewLutMap([]float64{0, 1, 4, 9}, 0, 1, "")
	require.NoError(t, err)

	xs := []float64{-1, 0, 0.5, 1.5, 3, 4}
	got := Apply1(m, xs)
	require.Len(t, got, len(xs))
	for i, x := range xs {
		assert.Equal(t, m.Eval(x), got[i], "element %d", i)
	}

	// The input slice is left alone.
	assert.Equal(t, []float64{-1, 0, 0.5, 1.5, 3, 4}, xs)

	assert.Empty(t, Apply1(m, nil))
}

func TestApplyInverse1(t *testing.T) {
	m, err := NewLutMap([]float64{0, 1, 4, 9}, 0, 1, "")
	require.NoError(t, err)

	ys := []float64{0, 2.5, 9}
	got, err := ApplyInverse1(m, ys)
	require.NoError(t, err)
	for i, y := range ys {
		assert.InDelta(t, y, m.Eval(got[i]), 1e-12, "element %d", i)
	}

	bad, err := NewLutMap([]float64{1, 3, 2}, 0, 1, "")
	require.NoError(t, err)
	_, err = ApplyInverse1(bad, ys)
	assert.ErrorIs(t, err, ErrNoInverse)
}

func TestApply1RejectsMultiAxisMappings(t *testing.T) {
	m, err := NewUnitNormMap([]float64{0, 0}, "")
	require.NoError(t, err)

	assert.Panics(t, func() { Apply1(m, []float64{1}) })
	assert.Panics(t, func() { _, _ = ApplyInverse1(m, []float64{1}) })
}

func TestForwardArityPanics(t *testing.T) {
	lut, err := NewLutMap([]float64{1, 2}, 0, 1, "")
	require.NoError(t, err)
	assert.Panics(t, func() { lut.Forward() })
	assert.Panics(t, func() { lut.Forward(1, 2) })
	assert.Panics(t, func() { _, _ = lut.Inverse(1, 2) })

	win, err := NewWinMap([]float64{0, 0}, []float64{1, 1}, []float64{0, 0}, []float64{2, 2}, "")
	require.NoError(t, err)
	assert.Panics(t, func() { win.Forward(1) })
	assert.Panics(t, func() { _, _ = win.Inverse(1, 2, 3) })
}

// mappingFixtures builds one instance of every concrete mapping type for
// interface-level checks.
func mappingFixtures(t *testing.T) map[string]Mapping {
	t.Helper()

	lut, err := NewLutMap([]float64{0, 1, 4, 9}, 0, 1, "")
	require.NoError(t, err)
	win, err := NewWinMap([]float64{0}, []float64{1}, []float64{32}, []float64{212}, "")
	require.NoError(t, err)
	unit, err := NewUnitNormMap([]float64{1, 2}, "")
	require.NoError(t, err)
	rate, err := NewRateMap(win, 0, 0, "")
	require.NoError(t, err)

	return map[string]Mapping{
		"LutMap":      lut,
		"WinMap":      win,
		"UnitNormMap": unit,
		"RateMap":     rate,
	}
}

func TestMappingContract(t *testing.T) {
	for name, m := range mappingFixtures(t) {
		t.Run(name, func(t *testing.T) {
			in := make([]float64, m.NIn())
			for i := range in {
				in[i] = 0.5 + float64(i)
			}
			out := m.Forward(in...)
			assert.Len(t, out, m.NOut())

			if m.Invertible() {
				back, err := m.Inverse(out...)
				require.NoError(t, err)
				assert.Len(t, back, m.NIn())
				for i := range back {
					assert.InDelta(t, in[i], back[i], 1e-9, "axis %d", i)
				}
			} else {
				_, err := m.Inverse(make([]float64, m.NOut())...)
				assert.ErrorIs(t, err, ErrNoInverse)
			}

			c := m.Copy()
			assert.Equal(t, m.NIn(), c.NIn())
			assert.Equal(t, m.NOut(), c.NOut())
			assert.Equal(t, m.Invertible(), c.Invertible())
			assert.Equal(t, m.Forward(in...), c.Forward(in...))
		})
	}
}
