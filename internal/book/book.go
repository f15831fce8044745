package book

// Author is embedded in a Book and has no identity of its own.
type Author struct {
	Name    *string `json:"name,omitempty"`
	Country *string `json:"country,omitempty"`
}

// Book represents a catalog entry. Optional attributes are pointers so an
// absent value stays distinguishable from a zero value.
type Book struct {
	ID     int32   `json:"id"`
	Title  *string `json:"title,omitempty"`
	Author Author  `json:"author"`
	Pages  *int32  `json:"pages,omitempty"`
	Year   *int32  `json:"year,omitempty"`
	Genre  *string `json:"genre,omitempty"`
}

// String returns a pointer to s. It keeps literal fixtures readable.
func String(s string) *string {
	return &s
}

// Int returns a pointer to n.
func Int(n int32) *int32 {
	return &n
}
