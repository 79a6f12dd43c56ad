package internal

// ContextValue returns the value stored under key, or the zero value of T
// when it is missing or of a different type.
func ContextValue[T any](c Context, key any) T {
	if v, ok := c.Get(key).(T); ok {
		return v
	}
	var zero T
	return zero
}
