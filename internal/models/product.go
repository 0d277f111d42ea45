package models

// Category classifies a product within the catalog.
type Category string

const (
	CategoryTop    Category = "top"
	CategoryMid    Category = "mid"
	CategoryBottom Category = "bottom"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryMid, CategoryBottom:
		return true
	}
	return false
}

// Product represents a catalog product.
type Product struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Price          float64  `json:"price"`
	Image          string   `json:"image"`
	Category       Category `json:"category"`
	Description    string   `json:"description"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
	IsNew          bool     `json:"isNew"`
	IsBestseller   bool     `json:"isBestseller"`
	IsOnSale       bool     `json:"isOnSale"`
	SalePrice      *float64 `json:"salePrice,omitempty"`
	SalePercentage *float64 `json:"salePercentage,omitempty"`
}

// ProductInput is the validated payload for creating a product.
// SalePrice is intentionally not checked against Price; the catalog
// stores whatever the admin enters.
type ProductInput struct {
	Name           string   `json:"name" validate:"required,min=1,max=100"`
	Price          float64  `json:"price" validate:"gte=0"`
	Image          string   `json:"image" validate:"required"`
	Category       Category `json:"category" validate:"required,oneof=top mid bottom"`
	Description    string   `json:"description" validate:"max=1000"`
	Sizes          []string `json:"sizes"`
	Colors         []string `json:"colors"`
	IsNew          bool     `json:"isNew"`
	IsBestseller   bool     `json:"isBestseller"`
	IsOnSale       bool     `json:"isOnSale"`
	SalePrice      *float64 `json:"salePrice" validate:"omitempty,gte=0"`
	SalePercentage *float64 `json:"salePercentage" validate:"omitempty,gte=0,lte=100"`
}

// Product builds a Product from the input. The store assigns the id.
func (in ProductInput) Product() Product {
	return Product{
		Name:           in.Name,
		Price:          in.Price,
		Image:          in.Image,
		Category:       in.Category,
		Description:    in.Description,
		Sizes:          in.Sizes,
		Colors:         in.Colors,
		IsNew:          in.IsNew,
		IsBestseller:   in.IsBestseller,
		IsOnSale:       in.IsOnSale,
		SalePrice:      in.SalePrice,
		SalePercentage: in.SalePercentage,
	}
}

// ProductUpdate carries partial updates for a product. Nil fields are left
// untouched; the id itself can never be changed.
type ProductUpdate struct {
	Name           *string   `json:"name" validate:"omitempty,min=1,max=100"`
	Price          *float64  `json:"price" validate:"omitempty,gte=0"`
	Image          *string   `json:"image" validate:"omitempty,min=1"`
	Category       *Category `json:"category" validate:"omitempty,oneof=top mid bottom"`
	Description    *string   `json:"description" validate:"omitempty,max=1000"`
	Sizes          *[]string `json:"sizes"`
	Colors         *[]string `json:"colors"`
	IsNew          *bool     `json:"isNew"`
	IsBestseller   *bool     `json:"isBestseller"`
	IsOnSale       *bool     `json:"isOnSale"`
	SalePrice      *float64  `json:"salePrice" validate:"omitempty,gte=0"`
	SalePercentage *float64  `json:"salePercentage" validate:"omitempty,gte=0,lte=100"`
}

// Apply overwrites the product's fields with the provided updates.
func (u ProductUpdate) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Image != nil {
		p.Image = *u.Image
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Sizes != nil {
		p.Sizes = *u.Sizes
	}
	if u.Colors != nil {
		p.Colors = *u.Colors
	}
	if u.IsNew != nil {
		p.IsNew = *u.IsNew
	}
	if u.IsBestseller != nil {
		p.IsBestseller = *u.IsBestseller
	}
	if u.IsOnSale != nil {
		p.IsOnSale = *u.IsOnSale
	}
	if u.SalePrice != nil {
		p.SalePrice = u.SalePrice
	}
	if u.SalePercentage != nil {
		p.SalePercentage = u.SalePercentage
	}
}
