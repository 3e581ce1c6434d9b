package filters

// GetMultipleValueQueryParam returns the values an element contributes to the
// URL. Inactive elements contribute nothing (nil); active ones always return
// a non-nil slice.
func GetMultipleValueQueryParam[K ~string](el FilterElement[K]) []string {
	if !el.Active {
		return nil
	}
	out := make([]string, 0, len(el.Value))
	out = append(out, el.Value...)
	return out
}

// GetSingleValueQueryParam is the single-value counterpart of
// GetMultipleValueQueryParam.
func GetSingleValueQueryParam[K ~string](el FilterElement[K]) (string, bool) {
	if !el.Active || len(el.Value) == 0 {
		return "", false
	}
	return el.Value[0], true
}
