package utils

func Filter[T any](src []T, predicate func(T) bool) []T {
	dst := make([]T, 0, len(src))
	for _, item := range src {
		if predicate(item) {
			dst = append(dst, item)
		}
	}
	return dst
}

func Map[T any, U any](src []T, mapper func(T) U) []U {
	dst := make([]U, 0, len(src))
	for _, item := range src {
		dst = append(dst, mapper(item))
	}
	return dst
}

// Pad returns src extended with zero values up to n elements.
func Pad[T any](src []T, n int) []T {
	if len(src) >= n {
		return src
	}
	dst := make([]T, n)
	copy(dst, src)
	return dst
}
