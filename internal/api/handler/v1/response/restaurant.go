package response

import (
	"matchday/internal/domain"
)

type Restaurant struct {
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

type Product struct {
	Name      string  `json:"name"`
	Unit      string  `json:"unit"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
	Kind      string  `json:"kind"`
	Alcoholic bool    `json:"alcoholic"`
}

func NewRestaurant(name string, products []*domain.Product) Restaurant {
	resp := Restaurant{
		Name:     name,
		Products: make([]Product, 0, len(products)),
	}
	for _, p := range products {
		resp.Products = append(resp.Products, Product{
			Name:      p.Name,
			Unit:      p.Unit,
			Price:     p.Price,
			Stock:     p.Stock,
			Kind:      string(p.Kind),
			Alcoholic: p.Alcoholic,
		})
	}

	return resp
}
