package domain

// Ptr returns a pointer to v. Convenient for building partial-update forms.
func Ptr[T any](v T) *T {
	return &v
}

// StrOr returns the first non-empty string from vals.
func StrOr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
