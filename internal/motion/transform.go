package motion

// Transform maps v from the input ranges to the output ranges by clamped
// piecewise-linear interpolation. in must be ascending and the same length
// as out; otherwise out[0] (or 0 for an empty out) is returned.
func Transform(v float64, in, out []float64) float64 {
	if len(out) == 0 {
		return 0
	}
	if len(in) != len(out) || len(in) < 2 {
		return out[0]
	}
	if v <= in[0] {
		return out[0]
	}
	last := len(in) - 1
	if v >= in[last] {
		return out[last]
	}
	for i := 1; i <= last; i++ {
		if v > in[i] {
			continue
		}
		span := in[i] - in[i-1]
		if span <= 0 {
			return out[i]
		}
		t := (v - in[i-1]) / span
		return out[i-1] + t*(out[i]-out[i-1])
	}
	return out[last]
}

// ScrollProgress reports how far an element has travelled through the
// viewport: 0 when its top edge meets the viewport's bottom edge, 1 when its
// bottom edge meets the viewport's top edge. The result is clamped to [0, 1].
func ScrollProgress(viewTop, viewHeight, elemTop, elemHeight int) float64 {
	total := viewHeight + elemHeight
	if total <= 0 {
		return 0
	}
	travelled := float64(viewTop + viewHeight - elemTop)
	return clamp01(travelled / float64(total))
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Ranges used by scroll-linked sections.
var (
	// Oversized titles drift from right to left as they pass.
	DriftIn  = []float64{0, 1}
	DriftOut = []float64{10, -10}

	// Stacked inspiration cards grow and brighten as they enter.
	CardScaleIn    = []float64{0, 0.2, 0.8}
	CardScaleOut   = []float64{0.9, 1, 1}
	CardOpacityIn  = []float64{0, 0.2, 0.9}
	CardOpacityOut = []float64{0.5, 1, 1}
	CardLiftIn     = []float64{0, 1}
	CardLiftOut    = []float64{2, -2}
)
