package filters

func CreateAutocompleteField[K ~string](
	name K,
	label string,
	value []string,
	displayValues []Choice,
	multiple bool,
	options []Choice,
	opts AutocompleteFilterOpts,
) FilterElement[K] {
	if value == nil {
		value = []string{}
	}
	return FilterElement[K]{
		Name:                   name,
		Label:                  label,
		Type:                   FieldTypeAutocomplete,
		Multiple:               multiple,
		Active:                 false,
		Value:                  value,
		DisplayValues:          displayValues,
		Options:                options,
		AutocompleteFilterOpts: opts,
	}
}
