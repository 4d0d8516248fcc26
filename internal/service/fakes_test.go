package service

import (
	"context"
	"time"

	"github.com/citymarket/catalog-service/internal/domain"
	"github.com/citymarket/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes mirroring the MongoDB implementations' contract,
// including the atomic merge/replace/pull semantics of the association store.

type fakeCityRepo struct {
	cities []domain.City
}

func (r *fakeCityRepo) AddCity(ctx context.Context, data domain.City) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now
	r.cities = append(r.cities, data)
	return data.ID, nil
}

func (r *fakeCityRepo) GetCities(ctx context.Context) ([]domain.City, error) {
	out := make([]domain.City, 0, len(r.cities))
	for i := len(r.cities) - 1; i >= 0; i-- {
		out = append(out, r.cities[i])
	}
	return out, nil
}

func (r *fakeCityRepo) GetCityByID(ctx context.Context, id primitive.ObjectID) (domain.City, error) {
	for _, city := range r.cities {
		if city.ID == id {
			return city, nil
		}
	}
	return domain.City{}, errs.ErrNotFound
}

func (r *fakeCityRepo) GetCityByName(ctx context.Context, name string) (domain.City, error) {
	for _, city := range r.cities {
		if city.Name == name {
			return city, nil
		}
	}
	return domain.City{}, errs.ErrNotFound
}

func (r *fakeCityRepo) GetCitiesByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.City, error) {
	var out []domain.City
	for _, city := range r.cities {
		for _, id := range ids {
			if city.ID == id {
				out = append(out, city)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeCityRepo) UpdateCity(ctx context.Context, data domain.City) error {
	for i, city := range r.cities {
		if city.ID == data.ID {
			r.cities[i].Name = data.Name
			r.cities[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeCityRepo) DeleteCity(ctx context.Context, id primitive.ObjectID) error {
	for i, city := range r.cities {
		if city.ID == id {
			r.cities = append(r.cities[:i], r.cities[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeProductRepo struct {
	products []domain.Product
}

func (r *fakeProductRepo) AddProduct(ctx context.Context, data domain.Product) (primitive.ObjectID, error) {
	data.ID = primitive.NewObjectID()
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now
	r.products = append(r.products, data)
	return data.ID, nil
}

func (r *fakeProductRepo) GetProducts(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for i := len(r.products) - 1; i >= 0; i-- {
		out = append(out, r.products[i])
	}
	return out, nil
}

func (r *fakeProductRepo) GetProductByID(ctx context.Context, id primitive.ObjectID) (domain.Product, error) {
	for _, product := range r.products {
		if product.ID == id {
			return product, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (r *fakeProductRepo) GetProductByName(ctx context.Context, name string) (domain.Product, error) {
	for _, product := range r.products {
		if product.Name == name {
			return product, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (r *fakeProductRepo) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]domain.Product, error) {
	var out []domain.Product
	for _, product := range r.products {
		for _, id := range ids {
			if product.ID == id {
				out = append(out, product)
				break
			}
		}
	}
	return out, nil
}

func (r *fakeProductRepo) UpdateProduct(ctx context.Context, data domain.Product) error {
	for i, product := range r.products {
		if product.ID == data.ID {
			r.products[i].Name = data.Name
			r.products[i].Price = data.Price
			r.products[i].Content = data.Content
			r.products[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return errs.ErrNotFound
}

func (r *fakeProductRepo) DeleteProduct(ctx context.Context, id primitive.ObjectID) error {
	for i, product := range r.products {
		if product.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return errs.ErrNotFound
}

type fakeAssociationRepo struct {
	associations []domain.CityProduct
}

func (r *fakeAssociationRepo) GetAssociations(ctx context.Context) ([]domain.CityProduct, error) {
	out := make([]domain.CityProduct, 0, len(r.associations))
	for i := len(r.associations) - 1; i >= 0; i-- {
		out = append(out, r.associations[i])
	}
	return out, nil
}

func (r *fakeAssociationRepo) GetAssociationByCity(ctx context.Context, cityID primitive.ObjectID) (domain.CityProduct, error) {
	for _, association := range r.associations {
		if association.City == cityID {
			return association, nil
		}
	}
	return domain.CityProduct{}, errs.ErrNotFound
}

func (r *fakeAssociationRepo) AddProductsToCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (bool, error) {
	now := time.Now()
	for i, association := range r.associations {
		if association.City != cityID {
			continue
		}
		existing := make(map[primitive.ObjectID]struct{}, len(association.Products))
		for _, id := range association.Products {
			existing[id] = struct{}{}
		}
		for _, id := range productIDs {
			if _, ok := existing[id]; !ok {
				r.associations[i].Products = append(r.associations[i].Products, id)
				existing[id] = struct{}{}
			}
		}
		r.associations[i].UpdatedAt = now
		return false, nil
	}

	r.associations = append(r.associations, domain.CityProduct{
		ID:        primitive.NewObjectID(),
		City:      cityID,
		Products:  append([]primitive.ObjectID{}, productIDs...),
		CreatedAt: now,
		UpdatedAt: now,
	})
	return true, nil
}

func (r *fakeAssociationRepo) ReplaceCityProducts(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (bool, error) {
	now := time.Now()
	for i, association := range r.associations {
		if association.City == cityID {
			r.associations[i].Products = append([]primitive.ObjectID{}, productIDs...)
			r.associations[i].UpdatedAt = now
			return false, nil
		}
	}

	r.associations = append(r.associations, domain.CityProduct{
		ID:        primitive.NewObjectID(),
		City:      cityID,
		Products:  append([]primitive.ObjectID{}, productIDs...),
		CreatedAt: now,
		UpdatedAt: now,
	})
	return true, nil
}

func (r *fakeAssociationRepo) RemoveProductsFromCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) ([]primitive.ObjectID, error) {
	remove := make(map[primitive.ObjectID]struct{}, len(productIDs))
	for _, id := range productIDs {
		remove[id] = struct{}{}
	}

	for i, association := range r.associations {
		if association.City != cityID {
			continue
		}
		var remaining []primitive.ObjectID
		for _, id := range association.Products {
			if _, ok := remove[id]; !ok {
				remaining = append(remaining, id)
			}
		}
		if len(remaining) == 0 {
			r.associations = append(r.associations[:i], r.associations[i+1:]...)
		} else {
			r.associations[i].Products = remaining
			r.associations[i].UpdatedAt = time.Now()
		}
		return remaining, nil
	}

	return nil, errs.ErrNotFound
}

func (r *fakeAssociationRepo) DeleteAssociationByCity(ctx context.Context, cityID primitive.ObjectID) error {
	for i, association := range r.associations {
		if association.City == cityID {
			r.associations = append(r.associations[:i], r.associations[i+1:]...)
			return nil
		}
	}
	return nil
}

type recordingPublisher struct {
	messages [][]byte
}

func (p *recordingPublisher) Publish(msg []byte) error {
	p.messages = append(p.messages, msg)
	return nil
}
