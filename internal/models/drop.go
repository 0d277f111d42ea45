package models

// Availability describes whether a drop can currently be purchased.
type Availability string

const (
	AvailabilityAvailable  Availability = "avail"
	AvailabilityComingSoon Availability = "soon"
)

// Valid reports whether the availability is one of the known values.
func (a Availability) Valid() bool {
	return a == AvailabilityAvailable || a == AvailabilityComingSoon
}

// Drop represents a limited-edition release. Drops are single-variant, so
// unlike products they carry no color options, and their id space is
// independent from the product id space.
type Drop struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Price        float64      `json:"price"`
	Image        string       `json:"image"`
	Description  string       `json:"description"`
	Sizes        []string     `json:"sizes"`
	Availability Availability `json:"availability"`
}

// DropInput is the validated payload for creating a drop.
type DropInput struct {
	Name         string       `json:"name" validate:"required,min=1,max=100"`
	Price        float64      `json:"price" validate:"gte=0"`
	Image        string       `json:"image" validate:"required"`
	Description  string       `json:"description" validate:"max=1000"`
	Sizes        []string     `json:"sizes"`
	Availability Availability `json:"availability" validate:"required,oneof=avail soon"`
}

// Drop builds a Drop from the input. The store assigns the id.
func (in DropInput) Drop() Drop {
	return Drop{
		Name:         in.Name,
		Price:        in.Price,
		Image:        in.Image,
		Description:  in.Description,
		Sizes:        in.Sizes,
		Availability: in.Availability,
	}
}

// DropUpdate carries partial updates for a drop. Nil fields are left
// untouched; the id itself can never be changed.
type DropUpdate struct {
	Name         *string       `json:"name" validate:"omitempty,min=1,max=100"`
	Price        *float64      `json:"price" validate:"omitempty,gte=0"`
	Image        *string       `json:"image" validate:"omitempty,min=1"`
	Description  *string       `json:"description" validate:"omitempty,max=1000"`
	Sizes        *[]string     `json:"sizes"`
	Availability *Availability `json:"availability" validate:"omitempty,oneof=avail soon"`
}

// Apply overwrites the drop's fields with the provided updates.
func (u DropUpdate) Apply(d *Drop) {
	if u.Name != nil {
		d.Name = *u.Name
	}
	if u.Price != nil {
		d.Price = *u.Price
	}
	if u.Image != nil {
		d.Image = *u.Image
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.Sizes != nil {
		d.Sizes = *u.Sizes
	}
	if u.Availability != nil {
		d.Availability = *u.Availability
	}
}
