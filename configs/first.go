package configs

import (
	"errors"
)

func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// FirstOr is First with a fallback for absent or zero values.
func FirstOr[T comparable](loader Loader, path string, def T) T {
	var zero T
	if v := First[T](loader, path); v != zero {
		return v
	}
	return def
}
