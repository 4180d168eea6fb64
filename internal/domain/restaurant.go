package domain

import "strings"

type Restaurant struct {
	Name     string     `json:"name"`
	Products []*Product `json:"products"`
}

// ProductByName returns the product with that exact name, or nil.
// Duplicate names inside one menu are not expected; first wins.
func (r *Restaurant) ProductByName(name string) *Product {
	for _, p := range r.Products {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// ProductsByKind lists products of one kind. Alcoholic items are
// filtered out for customers under 18.
func (r *Restaurant) ProductsByKind(kind ProductKind, age int) []*Product {
	var out []*Product
	for _, p := range r.Products {
		if p.Kind != kind {
			continue
		}
		if age < 18 && p.Alcoholic {
			continue
		}
		out = append(out, p)
	}
	return out
}

// ProductsByPriceRange lists products with min < price < max, both
// bounds exclusive, filtering alcoholic items for minors.
func (r *Restaurant) ProductsByPriceRange(min, max float64, age int) []*Product {
	var out []*Product
	for _, p := range r.Products {
		if !(min < p.Price && p.Price < max) {
			continue
		}
		if age < 18 && p.Alcoholic {
			continue
		}
		out = append(out, p)
	}
	return out
}

// SearchProducts matches the name case-insensitively as a substring,
// filtering alcoholic items for minors.
func (r *Restaurant) SearchProducts(name string, age int) []*Product {
	needle := strings.ToLower(name)
	var out []*Product
	for _, p := range r.Products {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if age < 18 && p.Alcoholic {
			continue
		}
		out = append(out, p)
	}
	return out
}
