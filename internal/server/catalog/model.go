package catalog

// Book is a catalog entry. Reviews are not part of it; they live in the
// review store, keyed by ISBN.
type Book struct {
	ISBN   string `json:"isbn" yaml:"isbn"`
	Title  string `json:"title" yaml:"title"`
	Author string `json:"author" yaml:"author"`
}
