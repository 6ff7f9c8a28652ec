package service

// CreateSiteRequest is the payload for creating a site. Config is the raw
// JSON configuration text; it is validated but stored as supplied.
type CreateSiteRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Slug        string `json:"slug" validate:"omitempty,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Currency    string `json:"currency" validate:"required,max=10"`
	Language    string `json:"language" validate:"required,max=10"`
	Config      string `json:"config" validate:"required"`
}

// UpdateSiteRequest is a partial update. Pointer fields distinguish an
// absent field from one set to an empty value.
type UpdateSiteRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Slug        *string `json:"slug" validate:"omitempty,max=255"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	Currency    *string `json:"currency" validate:"omitempty,max=10"`
	Language    *string `json:"language" validate:"omitempty,max=10"`
	Config      *string `json:"config"`
}

// SlugSuggestion reports the outcome of an alternative-slug lookup
type SlugSuggestion struct {
	OriginalSlug  string `json:"originalSlug"`
	SuggestedSlug string `json:"suggestedSlug"`
	Message       string `json:"message"`
}
