package dto

// SearchRequest carries the optional discovery filters.
type SearchRequest struct {
	Location    string
	Category    string
	MinPrice    float64
	MinPriceSet bool
	MaxPrice    float64
	MaxPriceSet bool
	Query       string
}

// BusinessSnapshot is the owning profile embedded in each result.
type BusinessSnapshot struct {
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Phone        string `json:"phone"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// SearchResult is one discovered product with its business.
type SearchResult struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url,omitempty"`
	IsPopular   bool             `json:"is_popular"`
	Business    BusinessSnapshot `json:"business"`
}

// SearchResponse is the capped discovery result set.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
	Count   int            `json:"count"`
}
