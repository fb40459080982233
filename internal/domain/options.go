package domain

// Value returns the attribute of c a category filters on.
// ok is false when the character has no value for it (missing location).
func (c Character) Value(cat Category) (value string, ok bool) {
	switch cat {
	case CategoryType:
		return c.Type, true
	case CategoryGender:
		return c.Gender, true
	case CategoryStatus:
		return string(c.Status), true
	case CategoryLocation:
		if c.Location == nil {
			return "", false
		}
		return c.Location.Name, true
	}
	return "", false
}

// DeriveOptions builds the category option lists from a sample page of
// characters and a location listing. Type, gender and status values are
// deduplicated in first-seen order with empty strings dropped; location
// names are kept as listed.
func DeriveOptions(sample []Character, locations []Location) OptionLists {
	opts := OptionLists{
		Types:     uniqueNonEmpty(sample, CategoryType),
		Genders:   uniqueNonEmpty(sample, CategoryGender),
		Statuses:  uniqueNonEmpty(sample, CategoryStatus),
		Locations: make([]string, 0, len(locations)),
	}
	for _, loc := range locations {
		opts.Locations = append(opts.Locations, loc.Name)
	}
	return opts
}

func uniqueNonEmpty(chars []Character, cat Category) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, c := range chars {
		v, _ := c.Value(cat)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
