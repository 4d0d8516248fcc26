package dto

import "time"

type CityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ProductResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AssociationResponse is the resolved view of a city-product link: the city
// and product ids expanded into full records. City is nil when the referenced
// city has since been deleted.
type AssociationResponse struct {
	ID        string            `json:"id"`
	City      *CityResponse     `json:"city"`
	Products  []ProductResponse `json:"products"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}
