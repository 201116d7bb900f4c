package models

// Product represents a single catalog listing. The record set is loaded once
// at startup and never mutated afterwards.
//
// Stars is a pointer because the source data has listings without a rating;
// unrated products are excluded from rating aggregates and never match a
// min_rating filter.
type Product struct {
	ASIN              string   `json:"asin"`
	Title             string   `json:"title"`
	ImgURL            string   `json:"img_url,omitempty"`
	ProductURL        string   `json:"product_url,omitempty"`
	Stars             *float64 `json:"stars"`
	Reviews           int      `json:"reviews"`
	Price             float64  `json:"price"`
	IsBestSeller      bool     `json:"is_best_seller"`
	BoughtInLastMonth int      `json:"bought_in_last_month"`
	CategoryName      string   `json:"category_name"`
}
