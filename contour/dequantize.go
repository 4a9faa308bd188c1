package contour

// FromQuantized rebuilds a Contour from its byte-encoded wire form.
//
// Global statistics dequantize as b/256. Peak positions dequantize as x/256
// wrapped into [0,1). The first height is y₀/256 absolute; every subsequent
// byte encodes the RATIO of that peak's height to the previous one, so
// heights reconstruct as hᵢ = hᵢ₋₁ · yᵢ/256 — a monotonically non-increasing
// chain matching the tallest-first peak convention.
func FromQuantized(ecc, circ byte, xs, ys []byte) (Contour, error) {
	if len(xs) != len(ys) {
		return Contour{}, ErrPeakShape
	}

	c := Contour{
		Eccentricity: float64(ecc) / 256,
		Circularity:  float64(circ) / 256,
		Peaks:        make([]Peak, len(xs)),
	}
	prev := 0.0
	for i := range xs {
		h := float64(ys[i]) / 256
		if i > 0 {
			h *= prev
		}
		c.Peaks[i] = Peak{Position: wrap(float64(xs[i]) / 256), Height: h}
		prev = h
	}

	return c, nil
}
