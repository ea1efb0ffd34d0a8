package gamemath

// Forecast converts the time elapsed since the last committed simulation
// tick into the extrapolation scalar for the current frame. The value is
// slightly shy of real time (x0.99) and never exceeds one tick duration:
// the constant-velocity assumption only holds inside a single tick.
// Negative elapsed time clamps to zero.
func Forecast(elapsed, tickDt float32) float32 {
	if elapsed <= 0 {
		return 0
	}
	f := elapsed * 0.99
	if f > tickDt {
		return tickDt
	}
	return f
}
