// Package loader reads the product CSV export into a validated record set.
// It mirrors the cleaning the original import applied: stray quotes trimmed,
// numeric columns coerced, duplicate ASINs dropped keeping the first row.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SAndrade100/mvp-test/internal/models"
)

// LoadCSV reads the product listing file at path. Rows without an ASIN are
// skipped; a duplicate ASIN keeps the first occurrence.
func LoadCSV(path string) ([]models.Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open products csv: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads product records from CSV data with a header row.
func Parse(r io.Reader) ([]models.Product, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := index["asin"]; !ok {
		return nil, fmt.Errorf("CSV is missing the asin column")
	}

	var products []models.Product
	seen := map[string]bool{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		p := models.Product{
			ASIN:              field(record, index, "asin"),
			Title:             field(record, index, "title"),
			ImgURL:            field(record, index, "imgurl"),
			ProductURL:        field(record, index, "producturl"),
			Stars:             parseStars(field(record, index, "stars")),
			Reviews:           parseInt(field(record, index, "reviews")),
			Price:             parsePrice(field(record, index, "price")),
			IsBestSeller:      parseBool(field(record, index, "isbestseller")),
			BoughtInLastMonth: parseInt(field(record, index, "boughtinlastmonth")),
			CategoryName:      field(record, index, "categoryname"),
		}

		if p.ASIN == "" || seen[p.ASIN] {
			continue
		}
		seen[p.ASIN] = true
		products = append(products, p)
	}

	return products, nil
}

func field(record []string, index map[string]int, name string) string {
	i, ok := index[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.Trim(strings.TrimSpace(record[i]), `"`)
}

// parseStars keeps the distinction between "no rating" and "rated zero":
// blank or unparseable values load as nil.
func parseStars(s string) *float64 {
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || v > 5 {
		return nil
	}
	return &v
}

func parsePrice(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}
