package vars

// FirstNonZero picks the first value that was set, in precedence order: flag, config, default.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
