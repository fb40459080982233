package domain

// Status is the life status reported by the API
type Status string

const (
	StatusAlive   Status = "Alive"
	StatusDead    Status = "Dead"
	StatusUnknown Status = "unknown"
)

// NamedRef is a {name, url} reference embedded in a character
type NamedRef struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// Character represents one character as returned by the API
type Character struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Status   Status    `json:"status"`
	Species  string    `json:"species"`
	Type     string    `json:"type"` // often empty
	Gender   string    `json:"gender"`
	Image    string    `json:"image"`
	Location *NamedRef `json:"location,omitempty"` // nil when absent
}

// LocationName returns the location name or "Unknown" when absent
func (c Character) LocationName() string {
	if c.Location == nil {
		return "Unknown"
	}
	return c.Location.Name
}

// CharacterPage is one page of search results with pagination metadata
type CharacterPage struct {
	Characters []Character
	Pages      int
	Count      int
}

// Location is an entry of the location listing
type Location struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Category names one of the four filterable character attributes
type Category string

const (
	CategoryType     Category = "Type"
	CategoryGender   Category = "Gender"
	CategoryStatus   Category = "Status"
	CategoryLocation Category = "Location"
)

// Categories lists the filter categories in display order
var Categories = []Category{CategoryType, CategoryGender, CategoryStatus, CategoryLocation}

// OptionLists holds the selectable values per category.
// They are a snapshot of the first sample page, not the full dataset.
type OptionLists struct {
	Types     []string
	Genders   []string
	Statuses  []string
	Locations []string
}

// For returns the option list of a category
func (o OptionLists) For(c Category) []string {
	switch c {
	case CategoryType:
		return o.Types
	case CategoryGender:
		return o.Genders
	case CategoryStatus:
		return o.Statuses
	case CategoryLocation:
		return o.Locations
	}
	return nil
}
