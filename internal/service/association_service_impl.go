package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/citymarket/catalog-service/internal/domain"
	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/internal/repository"
	"github.com/citymarket/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AssociationServiceImpl struct {
	associationRepo repository.AssociationRepository
	cityRepo        repository.CityRepository
	productRepo     repository.ProductRepository
	publisher       EventPublisher
}

func CreateAssociationService(associationRepo repository.AssociationRepository, cityRepo repository.CityRepository, productRepo repository.ProductRepository, publisher EventPublisher) AssociationService {
	return &AssociationServiceImpl{
		associationRepo: associationRepo,
		cityRepo:        cityRepo,
		productRepo:     productRepo,
		publisher:       publisher,
	}
}

func parseObjectIDs(ids []string) (parsed []primitive.ObjectID, err error) {
	parsed = make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, errs.ErrInvalidID
		}
		parsed = append(parsed, objectID)
	}

	return parsed, nil
}

func dedupObjectIDs(ids []primitive.ObjectID) []primitive.ObjectID {
	seen := make(map[primitive.ObjectID]struct{}, len(ids))
	deduped := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, id)
	}

	return deduped
}

func (s *AssociationServiceImpl) parseRequest(req dto.AssociationRequest) (cityID primitive.ObjectID, productIDs []primitive.ObjectID, err error) {
	cityID, err = primitive.ObjectIDFromHex(req.CityID)
	if err != nil {
		return cityID, nil, errs.ErrInvalidID
	}

	productIDs, err = parseObjectIDs(req.ProductIDs)
	if err != nil {
		return cityID, nil, err
	}

	return cityID, dedupObjectIDs(productIDs), nil
}

// checkPreconditions verifies the city exists and every requested product id
// resolves, computing the set difference between requested and found ids so
// the error can name the missing ones. Nothing is mutated on failure.
func (s *AssociationServiceImpl) checkPreconditions(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (err error) {
	if _, err = s.cityRepo.GetCityByID(ctx, cityID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrCityNotFound
		}
		return
	}

	if len(productIDs) == 0 {
		return nil
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, productIDs)
	if err != nil {
		return
	}

	found := make(map[primitive.ObjectID]struct{}, len(products))
	for _, product := range products {
		found[product.ID] = struct{}{}
	}

	var missing []string
	for _, id := range productIDs {
		if _, ok := found[id]; !ok {
			missing = append(missing, id.Hex())
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", errs.ErrProductsNotFound, strings.Join(missing, ", "))
	}

	return nil
}

// resolve expands an association's identifier references into full records.
// A deleted city resolves to nil and deleted products are omitted, keeping
// dangling references readable rather than cascading.
func (s *AssociationServiceImpl) resolve(ctx context.Context, association domain.CityProduct) (resolved dto.AssociationResponse, err error) {
	resolved = dto.AssociationResponse{
		ID:        association.ID.Hex(),
		Products:  []dto.ProductResponse{},
		CreatedAt: association.CreatedAt,
		UpdatedAt: association.UpdatedAt,
	}

	city, err := s.cityRepo.GetCityByID(ctx, association.City)
	if err == nil {
		cityResponse := cityToResponse(city)
		resolved.City = &cityResponse
	} else if !errors.Is(err, errs.ErrNotFound) {
		return resolved, err
	}

	if len(association.Products) == 0 {
		return resolved, nil
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, association.Products)
	if err != nil {
		return resolved, err
	}

	productsByID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	for _, id := range association.Products {
		if product, ok := productsByID[id]; ok {
			resolved.Products = append(resolved.Products, productToResponse(product))
		}
	}

	return resolved, nil
}

func (s *AssociationServiceImpl) GetAssociations(ctx context.Context) (data []dto.AssociationResponse, err error) {
	associations, err := s.associationRepo.GetAssociations(ctx)
	if err != nil {
		return
	}

	cityIDs := make([]primitive.ObjectID, 0, len(associations))
	var productIDs []primitive.ObjectID
	for _, association := range associations {
		cityIDs = append(cityIDs, association.City)
		productIDs = append(productIDs, association.Products...)
	}

	cities, err := s.cityRepo.GetCitiesByIDs(ctx, dedupObjectIDs(cityIDs))
	if err != nil {
		return
	}
	citiesByID := make(map[primitive.ObjectID]domain.City, len(cities))
	for _, city := range cities {
		citiesByID[city.ID] = city
	}

	products, err := s.productRepo.GetProductsByIDs(ctx, dedupObjectIDs(productIDs))
	if err != nil {
		return
	}
	productsByID := make(map[primitive.ObjectID]domain.Product, len(products))
	for _, product := range products {
		productsByID[product.ID] = product
	}

	data = make([]dto.AssociationResponse, 0, len(associations))
	for _, association := range associations {
		resolved := dto.AssociationResponse{
			ID:        association.ID.Hex(),
			Products:  []dto.ProductResponse{},
			CreatedAt: association.CreatedAt,
			UpdatedAt: association.UpdatedAt,
		}

		if city, ok := citiesByID[association.City]; ok {
			cityResponse := cityToResponse(city)
			resolved.City = &cityResponse
		}

		for _, id := range association.Products {
			if product, ok := productsByID[id]; ok {
				resolved.Products = append(resolved.Products, productToResponse(product))
			}
		}

		data = append(data, resolved)
	}

	return data, nil
}

func (s *AssociationServiceImpl) GetAssociationByCity(ctx context.Context, cityID string) (association *dto.AssociationResponse, err error) {
	id, err := primitive.ObjectIDFromHex(cityID)
	if err != nil {
		return nil, errs.ErrInvalidID
	}

	record, err := s.associationRepo.GetAssociationByCity(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	resolved, err := s.resolve(ctx, record)
	if err != nil {
		return nil, err
	}

	return &resolved, nil
}

// AddProducts merges the given products into the city's association,
// creating it on first add. Adding an empty set is a no-op: it never creates
// an empty association.
func (s *AssociationServiceImpl) AddProducts(ctx context.Context, req dto.AssociationRequest) (association *dto.AssociationResponse, created bool, err error) {
	cityID, productIDs, err := s.parseRequest(req)
	if err != nil {
		return nil, false, err
	}

	if err = s.checkPreconditions(ctx, cityID, productIDs); err != nil {
		return nil, false, err
	}

	if len(productIDs) == 0 {
		record, err := s.associationRepo.GetAssociationByCity(ctx, cityID)
		if err != nil {
			if errors.Is(err, errs.ErrNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}

		resolved, err := s.resolve(ctx, record)
		if err != nil {
			return nil, false, err
		}

		return &resolved, false, nil
	}

	created, err = s.associationRepo.AddProductsToCity(ctx, cityID, productIDs)
	if err != nil {
		return nil, false, err
	}

	record, err := s.associationRepo.GetAssociationByCity(ctx, cityID)
	if err != nil {
		return nil, false, err
	}

	resolved, err := s.resolve(ctx, record)
	if err != nil {
		return nil, false, err
	}

	publishEvent(s.publisher, "city_products_added", resolved)

	return &resolved, created, nil
}

// ReplaceProducts overwrites the city's product set with exactly the given
// ids. An empty set is equivalent to deleting the association, so an empty
// record never persists.
func (s *AssociationServiceImpl) ReplaceProducts(ctx context.Context, req dto.AssociationRequest) (association *dto.AssociationResponse, created bool, err error) {
	cityID, productIDs, err := s.parseRequest(req)
	if err != nil {
		return nil, false, err
	}

	if err = s.checkPreconditions(ctx, cityID, productIDs); err != nil {
		return nil, false, err
	}

	if len(productIDs) == 0 {
		if err = s.associationRepo.DeleteAssociationByCity(ctx, cityID); err != nil {
			return nil, false, err
		}

		publishEvent(s.publisher, "city_products_replaced", dto.AssociationRequest{CityID: req.CityID, ProductIDs: []string{}})

		return nil, false, nil
	}

	created, err = s.associationRepo.ReplaceCityProducts(ctx, cityID, productIDs)
	if err != nil {
		return nil, false, err
	}

	record, err := s.associationRepo.GetAssociationByCity(ctx, cityID)
	if err != nil {
		return nil, false, err
	}

	resolved, err := s.resolve(ctx, record)
	if err != nil {
		return nil, false, err
	}

	publishEvent(s.publisher, "city_products_replaced", resolved)

	return &resolved, created, nil
}

// RemoveProducts takes the set difference of the association's products and
// the given ids, deleting the association when the result is empty. Product
// existence is not re-checked: pulling an absent member is safe.
func (s *AssociationServiceImpl) RemoveProducts(ctx context.Context, req dto.AssociationRequest) (err error) {
	cityID, productIDs, err := s.parseRequest(req)
	if err != nil {
		return err
	}

	_, err = s.associationRepo.RemoveProductsFromCity(ctx, cityID, productIDs)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrAssociationNotFound
		}
		return err
	}

	publishEvent(s.publisher, "city_products_removed", req)

	return nil
}
