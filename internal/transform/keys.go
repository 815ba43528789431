package transform

// PropertyKeys names the source properties each entry field is read
// from. The names are opaque; the source database's Slug column is
// historically called "Slag".
type PropertyKeys struct {
	Title     string `yaml:"title"`
	Date      string `yaml:"date"`
	Category  string `yaml:"category"`
	Tags      string `yaml:"tags"`
	Reference string `yaml:"reference"`
	Status    string `yaml:"status"`
	Slug      string `yaml:"slug"`
}

// DefaultPropertyKeys returns the property names of the TIL database.
func DefaultPropertyKeys() PropertyKeys {
	return PropertyKeys{
		Title:     "Title",
		Date:      "등록일",
		Category:  "Category",
		Tags:      "Tag",
		Reference: "Reference",
		Status:    "Status",
		Slug:      "Slag",
	}
}

// WithDefaults fills empty names from DefaultPropertyKeys.
func (k PropertyKeys) WithDefaults() PropertyKeys {
	d := DefaultPropertyKeys()
	if k.Title == "" {
		k.Title = d.Title
	}
	if k.Date == "" {
		k.Date = d.Date
	}
	if k.Category == "" {
		k.Category = d.Category
	}
	if k.Tags == "" {
		k.Tags = d.Tags
	}
	if k.Reference == "" {
		k.Reference = d.Reference
	}
	if k.Status == "" {
		k.Status = d.Status
	}
	if k.Slug == "" {
		k.Slug = d.Slug
	}
	return k
}
