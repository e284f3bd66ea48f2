package transport

// Items

type CreateItemRequest struct {
	Name           string         `json:"name" validate:"required,min=1,max=100"`
	Img            string         `json:"img" validate:"required,max=2048"`
	YearsAvailable map[string]int `json:"yearsAvailable" validate:"required,min=1"`
}

type UpdateItemRequest struct {
	Name           *string        `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Img            *string        `json:"img,omitempty" validate:"omitempty,max=2048"`
	YearsAvailable map[string]int `json:"yearsAvailable,omitempty" validate:"omitempty,min=1"`
}

type ItemResponse struct {
	ID             int64          `json:"id"`
	Name           string         `json:"name"`
	Img            string         `json:"img"`
	YearsAvailable map[string]int `json:"yearsAvailable"`
	SortedYears    []string       `json:"sortedYears"`
	DateAdded      string         `json:"dateAdded"`
}

type ItemListResponse struct {
	Items []ItemResponse `json:"items"`
}

// Images

type ImageUploadResponse struct {
	URL string `json:"url"`
}
