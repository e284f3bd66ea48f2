package transport

// AddEntryRequest adds an item selection to the cart from the storefront form.
// StartYear and EndYear must be exact year keys of the item.
type AddEntryRequest struct {
	ItemID    int64  `json:"itemId" validate:"required,min=1"`
	CoverType string `json:"coverType" validate:"required,min=1,max=50"`
	StartYear string `json:"startYear" validate:"required,min=1,max=50"`
	EndYear   string `json:"endYear" validate:"required,min=1,max=50"`
}

// UpdateEntryRequest re-selects the cover and year range of a cart entry.
type UpdateEntryRequest struct {
	CoverType string `json:"coverType" validate:"required,min=1,max=50"`
	StartYear string `json:"startYear" validate:"required,min=1,max=50"`
	EndYear   string `json:"endYear" validate:"required,min=1,max=50"`
}

type EntryResponse struct {
	ID             int64          `json:"id"`
	OriginalItemID int64          `json:"originalItemId"`
	Name           string         `json:"name"`
	Img            string         `json:"img"`
	YearsAvailable map[string]int `json:"yearsAvailable"`
	SelectedYears  []string       `json:"selectedYears"`
	DesignType     string         `json:"designType"`
	Price          *float64       `json:"price"`
	DateAdded      string         `json:"dateAdded"`
}

type EntryListResponse struct {
	Items []EntryResponse `json:"items"`
}
