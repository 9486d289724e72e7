package model

// Category is a competition category (e.g. "Scale").
// Its name is unique across all categories.
type Category struct {
	ID   int64
	Name string
}
