package data

// jsonOrEmptyList substitutes an empty slice for nil so JSONB columns store
// `[]` rather than `null`.
func jsonOrEmptyList[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
