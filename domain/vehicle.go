package domain

// Vehicle describes what the buyer drives. It is built from filter
// selections on the storefront and never persisted.
type Vehicle struct {
	Make   string `json:"make,omitempty"`
	Model  string `json:"model,omitempty"`
	Year   int    `json:"year,omitempty"`
	Trim   string `json:"trim,omitempty"`
	Engine string `json:"engine,omitempty"`
	Type   string `json:"type,omitempty"`
	Style  string `json:"style,omitempty"`
}

// IsZero reports whether the buyer supplied no vehicle detail at all.
func (v Vehicle) IsZero() bool {
	return v.Make == "" && v.Model == "" && v.Year == 0 &&
		v.Trim == "" && v.Engine == "" && v.Type == "" && v.Style == ""
}
