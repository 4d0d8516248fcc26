package repository

import (
	"context"

	"github.com/citymarket/catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CityRepository interface {
	AddCity(ctx context.Context, data domain.City) (id primitive.ObjectID, err error)
	GetCities(ctx context.Context) (data []domain.City, err error)
	GetCityByID(ctx context.Context, id primitive.ObjectID) (city domain.City, err error)
	GetCityByName(ctx context.Context, name string) (city domain.City, err error)
	GetCitiesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.City, err error)
	UpdateCity(ctx context.Context, data domain.City) (err error)
	DeleteCity(ctx context.Context, id primitive.ObjectID) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error)
	GetProductByName(ctx context.Context, name string) (product domain.Product, err error)
	GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error)
}

// AssociationRepository mutates the city-product relation with single atomic
// update operations so that concurrent requests for the same city cannot lose
// writes to a read-modify-write race.
type AssociationRepository interface {
	GetAssociations(ctx context.Context) (data []domain.CityProduct, err error)
	GetAssociationByCity(ctx context.Context, cityID primitive.ObjectID) (association domain.CityProduct, err error)
	AddProductsToCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (created bool, err error)
	ReplaceCityProducts(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (created bool, err error)
	RemoveProductsFromCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (remaining []primitive.ObjectID, err error)
	DeleteAssociationByCity(ctx context.Context, cityID primitive.ObjectID) (err error)
}
