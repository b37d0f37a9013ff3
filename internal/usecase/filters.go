package usecase

import (
	"sort"
	"strings"

	"shopassist/internal/domain/entity"
)

// superCategories maps umbrella category names to the leaf categories they
// expand to. Lookup is case-insensitive; names not present here fall back to
// a substring match against the leaf category.
var superCategories = map[string][]string{
	"electronics": {"smartphones", "laptops", "tablets", "mobile-accessories"},
	"fashion": {"mens-shirts", "mens-shoes", "mens-watches", "womens-bags",
		"womens-dresses", "womens-jewellery", "womens-shoes", "womens-watches",
		"tops", "sunglasses"},
	"beauty": {"beauty", "fragrances", "skin-care"},
}

// FilterByName selects products whose title contains the query,
// case-insensitive, preserving catalog order.
func FilterByName(products []entity.Product, query string) []entity.Product {
	q := strings.ToLower(query)
	var matched []entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByCategory selects products by category. A super-category expands to
// its configured leaf set (exact, case-insensitive equality); any other value
// is a case-insensitive substring match on the leaf category.
func FilterByCategory(products []entity.Product, category string) []entity.Product {
	cat := strings.ToLower(category)
	var matched []entity.Product

	if leaves, ok := superCategories[cat]; ok {
		leafSet := make(map[string]struct{}, len(leaves))
		for _, leaf := range leaves {
			leafSet[strings.ToLower(leaf)] = struct{}{}
		}
		for _, p := range products {
			if _, ok := leafSet[strings.ToLower(p.Category)]; ok {
				matched = append(matched, p)
			}
		}
		return matched
	}

	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Category), cat) {
			matched = append(matched, p)
		}
	}
	return matched
}

// FilterByRating selects products by their rating relative to threshold:
// strictly greater for "above", strictly less for "below", exact for "equal".
// An unrecognized direction yields an empty result, not an error.
func FilterByRating(products []entity.Product, threshold float64, direction string) []entity.Product {
	var matched []entity.Product
	for _, p := range products {
		switch direction {
		case entity.DirectionAbove:
			if p.Rating > threshold {
				matched = append(matched, p)
			}
		case entity.DirectionBelow:
			if p.Rating < threshold {
				matched = append(matched, p)
			}
		case entity.DirectionEqual:
			if p.Rating == threshold {
				matched = append(matched, p)
			}
		default:
			return nil
		}
	}
	return matched
}

// UniqueCategories returns the sorted set of leaf category names present in
// the catalog.
func UniqueCategories(products []entity.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var categories []string
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)
	return categories
}
