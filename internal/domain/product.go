package domain

type ProductKind string

const (
	KindAlcoholicDrink ProductKind = "alcoholic drink"
	KindSoftDrink      ProductKind = "non-alcoholic drink"
	KindFood           ProductKind = "food"
	KindPackage        ProductKind = "package"
)

// Product is a restaurant menu item. Identity within a restaurant is by
// name. Stock is the only mutable field; it never goes below zero.
type Product struct {
	Name      string      `json:"name"`
	Unit      string      `json:"unit"`
	Price     float64     `json:"price"`
	Stock     int         `json:"stock"`
	Attribute string      `json:"attribute"`
	Kind      ProductKind `json:"kind"`
	Alcoholic bool        `json:"alcoholic"`
}

// NewProduct classifies the product from its free-text attribute:
// "alcoholic"/"non-alcoholic" are drinks, "plate" is food, anything
// else is a package.
func NewProduct(name, unit string, price float64, stock int, attribute string) *Product {
	p := &Product{
		Name:      name,
		Unit:      unit,
		Price:     price,
		Stock:     stock,
		Attribute: attribute,
	}

	switch attribute {
	case "alcoholic":
		p.Kind = KindAlcoholicDrink
		p.Alcoholic = true
	case "non-alcoholic":
		p.Kind = KindSoftDrink
	case "plate":
		p.Kind = KindFood
	default:
		p.Kind = KindPackage
	}

	return p
}
