package utils

// FilterSlice maps s through f, keeping the elements for which f reports true.
func FilterSlice[S any, T any](s []S, f func(S) (T, bool)) []T {
	out := make([]T, 0, len(s))
	for _, item := range s {
		if v, ok := f(item); ok {
			out = append(out, v)
		}
	}
	return out
}
