package service

import (
	"context"

	"github.com/citymarket/catalog-service/internal/dto"
)

type CityService interface {
	GetCities(ctx context.Context) (data []dto.CityResponse, err error)
	AddCity(ctx context.Context, data dto.CityRequest) (city dto.CityResponse, err error)
	UpdateCity(ctx context.Context, data dto.CityRequest) (city dto.CityResponse, err error)
	DeleteCity(ctx context.Context, id string) (err error)
}

type ProductService interface {
	GetProducts(ctx context.Context) (data []dto.ProductResponse, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, data dto.ProductRequest) (product dto.ProductResponse, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

// AssociationService owns the city-product relation: each city maps to zero
// or more distinct products, persisted only while the set is non-empty.
type AssociationService interface {
	GetAssociations(ctx context.Context) (data []dto.AssociationResponse, err error)
	GetAssociationByCity(ctx context.Context, cityID string) (association *dto.AssociationResponse, err error)
	AddProducts(ctx context.Context, req dto.AssociationRequest) (association *dto.AssociationResponse, created bool, err error)
	ReplaceProducts(ctx context.Context, req dto.AssociationRequest) (association *dto.AssociationResponse, created bool, err error)
	RemoveProducts(ctx context.Context, req dto.AssociationRequest) (err error)
}

// EventPublisher emits catalog change events to downstream consumers.
// Implementations must be safe for use from concurrent requests.
type EventPublisher interface {
	Publish(msg []byte) error
}
