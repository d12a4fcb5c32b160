package dailyset

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// SeededRandom returns a linear-congruential stream of floats in [0, 1).
// The state is advanced with integer arithmetic only, so a given seed yields
// the same sequence on every platform.
func SeededRandom(seed int64) func() float64 {
	s := seed
	return func() float64 {
		s = (s*lcgMultiplier + lcgIncrement) % lcgModulus
		if s < 0 {
			s += lcgModulus
		}
		return float64(s) / lcgModulus
	}
}

// pick maps one draw from rng onto [0, n).
func pick(rng func() float64, n int) int {
	i := int(rng() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
