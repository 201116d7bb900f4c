package handlers

import "github.com/SAndrade100/mvp-test/internal/models"

type ProductResponse struct {
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

type Meta struct {
	TotalCount int `json:"total_count"`
}

type ProductsSearchResult struct {
	Data []ProductResponse `json:"data"`
	Meta Meta              `json:"meta"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ASIN:              p.ASIN,
		Title:             p.Title,
		ImgURL:            p.ImgURL,
		ProductURL:        p.ProductURL,
		Stars:             p.Stars,
		Reviews:           p.Reviews,
		Price:             p.Price,
		IsBestSeller:      p.IsBestSeller,
		BoughtInLastMonth: p.BoughtInLastMonth,
		CategoryName:      p.CategoryName,
	}
}

func toProductsSearchResult(products []models.Product, totalCount int) ProductsSearchResult {
	data := make([]ProductResponse, len(products))
	for i, p := range products {
		data[i] = toProductResponse(p)
	}
	return ProductsSearchResult{Data: data, Meta: Meta{TotalCount: totalCount}}
}
