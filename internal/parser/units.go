package parser

// Convert maps a rate magnitude plus an optional metric suffix to base
// units, truncating toward zero. An unrecognized suffix is treated as no
// suffix; the extraction pattern in classify.go restricts the character
// set before this is called.
func Convert(magnitude float64, suffix string) int64 {
	var multiplier float64
	switch suffix {
	case "K":
		multiplier = 1e3
	case "M":
		multiplier = 1e6
	case "G":
		multiplier = 1e9
	default:
		multiplier = 1
	}
	v := magnitude * multiplier
	// Decimal magnitudes are not exactly representable, so the product can
	// land a hair below the exact value (12.86 * 1e6 = 12859999.999...).
	// Nudge by the relative float64 error margin before truncating.
	return int64(v + v*1e-9)
}
