package entity

// Service is a bookable home-service offering from the catalog.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Price       int    `json:"price"`
	Duration    string `json:"duration"`
	ImageURL    string `json:"image_url"`
	IsActive    bool   `json:"is_active"`
}

// ServicePatch carries a partial update. Nil fields are left untouched
// when merged into an existing record.
type ServicePatch struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Price       *int    `json:"price"`
	Duration    *string `json:"duration"`
	ImageURL    *string `json:"image_url"`
	IsActive    *bool   `json:"is_active"`
}

// Apply merges the patch into s, field by field.
func (p *ServicePatch) Apply(s *Service) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Category != nil {
		s.Category = *p.Category
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Duration != nil {
		s.Duration = *p.Duration
	}
	if p.ImageURL != nil {
		s.ImageURL = *p.ImageURL
	}
	if p.IsActive != nil {
		s.IsActive = *p.IsActive
	}
}
