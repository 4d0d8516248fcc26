package dto

type CityRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductRequest struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Price   float64 `json:"price"`
	Content string  `json:"content"`
}

type AssociationRequest struct {
	CityID     string   `json:"cityId"`
	ProductIDs []string `json:"productIds"`
}
