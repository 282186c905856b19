package entity

// Category groups catalog services for browsing and filtering.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
