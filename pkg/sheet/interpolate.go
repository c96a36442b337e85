package sheet

// interpolate maps v from [inLo, inHi] onto [outLo, outHi]. Inputs below inLo
// clamp to outLo; inputs above inHi keep extrapolating linearly.
func interpolate(v, inLo, inHi, outLo, outHi float64) float64 {
	if v <= inLo {
		return outLo
	}
	if inHi <= inLo {
		return outLo + (v - inLo)
	}
	return outLo + (v-inLo)*(outHi-outLo)/(inHi-inLo)
}
