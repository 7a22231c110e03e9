package coordmap

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// InterpMethod selects how a LutMap computes output values between table
// entries. Configured with the LutInterp attribute.
type InterpMethod int

const (
	// InterpLinear interpolates linearly between the two bracketing table
	// entries. This is the default.
	InterpLinear InterpMethod = iota

	// InterpNearest returns the nearest table entry without
	// interpolation, turning the mapping into a step function.
	InterpNearest
)

func (im InterpMethod) String() string {
	switch im {
	case InterpLinear:
		return "linear"
	case InterpNearest:
		return "nearest"
	default:
		return fmt.Sprintf("InterpMethod(%d)", int(im))
	}
}

// Direction classifies the ordering of a lookup table.
type Direction int

const (
	// NotMonotonic marks tables whose entries change direction, or whose
	// entries are all equal. Such tables cannot be inverted.
	NotMonotonic Direction = iota

	// Increasing marks non-decreasing tables with at least one rising step.
	Increasing

	// Decreasing marks non-increasing tables with at least one falling step.
	Decreasing
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	case NotMonotonic:
		return "not monotonic"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// DefaultLutEpsilon is the default relative error assumed for table
// values: the float64 machine epsilon. Override with the LutEpsilon
// attribute when the table holds measured or rounded data.
const DefaultLutEpsilon = 0x1p-52

// LutMap is a 1-dimensional mapping defined by a table of output samples
// at uniformly spaced input coordinates. A forward transform scales the
// input to a fractional table index ((x - start) / increment) and
// interpolates between the bracketing entries; indices outside the table
// are extrapolated linearly from the boundary segment.
//
// If the table entries increase or decrease monotonically the inverse
// transform is available as well, computed by locating the bracketing
// segment and inverting its interpolation formula. Runs of equal adjacent
// entries are permitted in a monotonic table; inverting a value on such a
// run yields the smallest matching input coordinate.
//
// A LutMap is immutable: the constructor copies the table, and no method
// mutates the mapping.
type LutMap struct {
	table   []float64
	start   float64
	inc     float64
	epsilon float64
	interp  InterpMethod
	dir     Direction
}

var _ Mapping = (*LutMap)(nil)

// NewLutMap builds a lookup-table mapping.
//
// table holds the output samples and must have at least two entries.
// start is the input coordinate of table[0]. increment is the input
// spacing between adjacent entries; it may be negative but not zero.
//
// The options string may assign the attributes LutEpsilon (positive
// relative error of the table values, default DefaultLutEpsilon) and
// LutInterp (interpolation method: "linear" or 0, "near"/"nearest" or 1).
func NewLutMap(table []float64, start, increment float64, options string) (*LutMap, error) {
	if len(table) < 2 {
		return nil, fmt.Errorf("%w: lookup table needs at least 2 entries, got %d", ErrInvalidArgument, len(table))
	}
	if increment == 0 {
		return nil, fmt.Errorf("%w: lookup table increment must be nonzero", ErrInvalidArgument)
	}

	m := &LutMap{
		table:   append([]float64(nil), table...),
		start:   start,
		inc:     increment,
		epsilon: DefaultLutEpsilon,
	}
	err := parseOptions(options, func(name, value string) error {
		switch strings.ToLower(name) {
		case "lutepsilon":
			eps, err := parseFloatAttr(name, value)
			if err != nil {
				return err
			}
			if !(eps > 0) || math.IsInf(eps, 0) {
				return fmt.Errorf("%w: attribute %s must be a positive finite number, got %q", ErrInvalidArgument, name, value)
			}
			m.epsilon = eps
		case "lutinterp":
			interp, err := parseInterpAttr(name, value)
			if err != nil {
				return err
			}
			m.interp = interp
		default:
			return errUnknownAttr(name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	m.dir = scanDirection(m.table, m.epsilon)
	Logger().Debug("lutmap constructed",
		"entries", len(m.table), "interp", m.interp.String(), "monotonic", m.dir.String())
	return m, nil
}

// parseInterpAttr parses a LutInterp attribute value: the numeric codes 0
// (linear) and 1 (nearest), or the names "linear", "near", "nearest".
func parseInterpAttr(name, value string) (InterpMethod, error) {
	switch strings.ToLower(value) {
	case "0", "linear":
		return InterpLinear, nil
	case "1", "near", "nearest":
		return InterpNearest, nil
	}
	return 0, fmt.Errorf("%w: attribute %s must select an interpolation method, got %q", ErrInvalidArgument, name, value)
}

// scanDirection classifies a table as increasing, decreasing or neither.
// Adjacent entries whose difference is within eps relative tolerance count
// as equal, so tables with flat runs remain monotonic. A table with no
// step larger than the tolerance carries no usable ordering and is
// classified NotMonotonic.
func scanDirection(table []float64, eps float64) Direction {
	var rising, falling bool
	for i := 1; i < len(table); i++ {
		a, b := table[i-1], table[i]
		if math.IsNaN(a) || math.IsNaN(b) {
			return NotMonotonic
		}
		d := b - a
		if math.Abs(d) <= eps*math.Max(math.Abs(a), math.Abs(b)) {
			continue
		}
		if d > 0 {
			rising = true
		} else {
			falling = true
		}
		if rising && falling {
			return NotMonotonic
		}
	}
	switch {
	case rising:
		return Increasing
	case falling:
		return Decreasing
	default:
		return NotMonotonic
	}
}

// NIn returns 1.
func (m *LutMap) NIn() int { return 1 }

// NOut returns 1.
func (m *LutMap) NOut() int { return 1 }

// Invertible reports whether the table is monotonic, which fixes the
// availability of the inverse transform at construction.
func (m *LutMap) Invertible() bool { return m.dir != NotMonotonic }

// Monotonic returns the ordering of the table determined at construction.
func (m *LutMap) Monotonic() Direction { return m.dir }

// Epsilon returns the relative error assumed for the table values.
func (m *LutMap) Epsilon() float64 { return m.epsilon }

// Interp returns the interpolation method.
func (m *LutMap) Interp() InterpMethod { return m.interp }

// Start returns the input coordinate of the first table entry.
func (m *LutMap) Start() float64 { return m.start }

// Increment returns the input spacing between adjacent table entries.
func (m *LutMap) Increment() float64 { return m.inc }

// Table returns a copy of the lookup table.
func (m *LutMap) Table() []float64 {
	return append([]float64(nil), m.table...)
}

// Eval transforms a single input coordinate. Coordinates at exactly
// start + k*increment return table[k]; coordinates between entries are
// interpolated; coordinates outside the table are extrapolated linearly
// from the boundary segment (for InterpNearest they saturate at the
// boundary entry instead).
func (m *LutMap) Eval(x float64) float64 {
	i := (x - m.start) / m.inc
	n := len(m.table)

	if m.interp == InterpNearest {
		// Half-way inputs round up to the higher index.
		r := math.Floor(i + 0.5)
		switch {
		case r <= 0:
			return m.table[0]
		case r >= float64(n-1):
			return m.table[n-1]
		}
		return m.table[int(r)]
	}

	// Clamp the segment index in float space so that extreme inputs do
	// not overflow the int conversion.
	var k int
	switch {
	case i <= 0:
		k = 0
	case i >= float64(n-1):
		k = n - 2
	default:
		k = int(i)
	}
	f := i - float64(k)
	switch f {
	case 0:
		return m.table[k]
	case 1:
		return m.table[k+1]
	}
	return m.table[k] + f*(m.table[k+1]-m.table[k])
}

// Forward transforms a single point. It implements the Mapping interface;
// Eval is the scalar equivalent.
func (m *LutMap) Forward(in ...float64) []float64 {
	checkArity("forward", len(in), 1)
	return []float64{m.Eval(in[0])}
}

// EvalInverse transforms a single output coordinate back to an input
// coordinate. The error wraps ErrNoInverse when the table is not
// monotonic. For values inside the table's range the result is the exact
// algebraic inverse of Eval on the bracketing segment; values beyond the
// range are inverted through the outermost sloped segment. If several
// inputs produce y (flat runs), the smallest is returned.
func (m *LutMap) EvalInverse(y float64) (float64, error) {
	if m.dir == NotMonotonic {
		return 0, fmt.Errorf("%w: lookup table is not monotonic", ErrNoInverse)
	}
	return m.start + m.invIndex(y)*m.inc, nil
}

// Inverse transforms a single output point back to an input point. It
// implements the Mapping interface; EvalInverse is the scalar equivalent.
func (m *LutMap) Inverse(out ...float64) ([]float64, error) {
	checkArity("inverse", len(out), 1)
	x, err := m.EvalInverse(out[0])
	if err != nil {
		return nil, err
	}
	return []float64{x}, nil
}

// invIndex returns the fractional table index whose forward value is y.
// The table is known to be monotonic here.
func (m *LutMap) invIndex(y float64) float64 {
	t := m.table
	n := len(t)
	up := m.dir == Increasing

	// Smallest index whose entry has reached y, walking in table order.
	k := sort.Search(n, func(j int) bool {
		if up {
			return t[j] >= y
		}
		return t[j] <= y
	})

	if m.interp == InterpNearest {
		return m.nearestIndex(y, k)
	}

	switch k {
	case 0:
		if y == t[0] {
			return m.resolveTie(0)
		}
		// Before the table's value range.
		s := m.firstSloped()
		return float64(s) + (y-t[s])/(t[s+1]-t[s])
	case n:
		// Beyond the table's value range.
		s := m.lastSloped()
		return float64(s) + (y-t[s])/(t[s+1]-t[s])
	}

	// t[k-1] has not reached y and t[k] has, so the segment cannot be
	// flat and the division is safe.
	i := float64(k-1) + (y-t[k-1])/(t[k]-t[k-1])
	if i == math.Floor(i) {
		// y hit a table entry exactly; a flat run starting there ties.
		return m.resolveTie(int(i))
	}
	return i
}

// resolveTie picks among the grid indices of a flat run. The search lands
// on the run's lowest index, which is the smallest input coordinate only
// for a positive increment; a negative increment reverses index order in
// coordinate space, so there the run's highest index is the smallest
// coordinate.
func (m *LutMap) resolveTie(j int) float64 {
	if m.inc < 0 {
		t := m.table
		for j < len(t)-1 && t[j+1] == t[j] {
			j++
		}
	}
	return float64(j)
}

// nearestIndex picks the table index whose entry is closest to y, given
// the search result k. Ties go to the smaller input coordinate.
func (m *LutMap) nearestIndex(y float64, k int) float64 {
	t := m.table
	lo := max(k-1, 0)
	hi := min(k, len(t)-1)
	dLo := math.Abs(y - t[lo])
	dHi := math.Abs(t[hi] - y)

	var j int
	switch {
	case dLo < dHi:
		j = lo
	case dHi < dLo:
		j = hi
	case m.inc < 0:
		j = hi
	default:
		j = lo
	}
	return m.resolveTie(j)
}

// firstSloped returns the first segment with distinct endpoint values.
// Boundary runs of equal entries carry no slope, so out-of-range
// inversion falls back to the nearest sloped segment; a monotonic table
// always has one.
func (m *LutMap) firstSloped() int {
	t := m.table
	for s := 0; s < len(t)-2; s++ {
		if t[s] != t[s+1] {
			return s
		}
	}
	return len(t) - 2
}

// lastSloped returns the last segment with distinct endpoint values.
func (m *LutMap) lastSloped() int {
	t := m.table
	for s := len(t) - 2; s > 0; s-- {
		if t[s] != t[s+1] {
			return s
		}
	}
	return 0
}

// Copy returns a deep copy of the mapping.
func (m *LutMap) Copy() Mapping {
	c := *m
	c.table = append([]float64(nil), m.table...)
	return &c
}
