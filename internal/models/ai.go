package models

// ListingDetailsRequest asks for a generated title, description and feature list.
type ListingDetailsRequest struct {
	Make          string   `json:"make" binding:"required" example:"Honda"`
	Model         string   `json:"model" binding:"required" example:"City"`
	Year          int      `json:"year" binding:"required" example:"2020"`
	Mileage       *int     `json:"mileage" example:"42000"`
	Notes         string   `json:"notes" example:"Single owner, service records available"`
	PhotoDataURIs []string `json:"photoDataUris" example:"data:image/jpeg;base64,/9j/4AAQSkZJRg..."`
}

// ListingDetails is generated listing copy.
type ListingDetails struct {
	Title       string   `json:"title" example:"2020 Honda City VX - Single Owner"`
	Description string   `json:"description"`
	KeyFeatures []string `json:"keyFeatures"`
}

// ConditionRequest asks for a condition assessment from photos.
type ConditionRequest struct {
	PhotoDataURIs []string `json:"photoDataUris" binding:"required,min=1,dive,required"`
	Notes         string   `json:"notes"`
}

// ConditionReport is an assessment of a vehicle's visible condition.
type ConditionReport struct {
	OverallCondition string   `json:"overallCondition" bson:"overallCondition" example:"Good"`
	Summary          string   `json:"summary" bson:"summary"`
	Issues           []string `json:"issues" bson:"issues"`
}

// PriceSuggestionRequest asks for a market price estimate.
type PriceSuggestionRequest struct {
	Make      string `json:"make" binding:"required" example:"Honda"`
	Model     string `json:"model" binding:"required" example:"City"`
	Year      int    `json:"year" binding:"required" example:"2020"`
	Mileage   *int   `json:"mileage" example:"42000"`
	Condition string `json:"condition" example:"Good"`
	Pincode   string `json:"pincode" binding:"omitempty,pincode" example:"560001"`
}

// PriceSuggestion is a suggested asking price with a range.
type PriceSuggestion struct {
	SuggestedPrice float64 `json:"suggestedPrice" example:"820000"`
	MinPrice       float64 `json:"minPrice" example:"780000"`
	MaxPrice       float64 `json:"maxPrice" example:"860000"`
	Currency       string  `json:"currency" example:"INR"`
	Reasoning      string  `json:"reasoning"`
}

// SearchFiltersRequest carries a free-text marketplace search.
type SearchFiltersRequest struct {
	Query string `json:"query" binding:"required" example:"automatic petrol SUV under 10 lakh after 2018"`
}

// SearchFilters are structured filters extracted from a free-text query.
// The client applies them to the listing feed.
type SearchFilters struct {
	Make         string   `json:"make,omitempty" example:"Hyundai"`
	Model        string   `json:"model,omitempty" example:"Creta"`
	MinYear      *int     `json:"minYear,omitempty" example:"2018"`
	MaxYear      *int     `json:"maxYear,omitempty"`
	MaxPrice     *float64 `json:"maxPrice,omitempty" example:"1000000"`
	FuelType     string   `json:"fuelType,omitempty" example:"Petrol"`
	Transmission string   `json:"transmission,omitempty" example:"Automatic"`
	Keywords     []string `json:"keywords"`
}
