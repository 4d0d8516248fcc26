package service

import (
	"context"
	"errors"
	"strings"

	"github.com/citymarket/catalog-service/internal/domain"
	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/internal/repository"
	"github.com/citymarket/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	publisher   EventPublisher
}

func CreateProductService(productRepo repository.ProductRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, publisher: publisher}
}

func productToResponse(product domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:        product.ID.Hex(),
		Name:      product.Name,
		Price:     product.Price,
		Content:   product.Content,
		CreatedAt: product.CreatedAt,
		UpdatedAt: product.UpdatedAt,
	}
}

func validateProductFields(req dto.ProductRequest) (name string, content string, err error) {
	name = strings.TrimSpace(req.Name)
	if name == "" {
		return "", "", errs.ErrNameRequired
	}

	if req.Price < 0 {
		return "", "", errs.ErrInvalidPrice
	}

	content = strings.TrimSpace(req.Content)
	if content == "" {
		return "", "", errs.ErrContentRequired
	}

	return name, content, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (data []dto.ProductResponse, err error) {
	products, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return
	}

	data = make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		data = append(data, productToResponse(product))
	}

	return data, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (product dto.ProductResponse, err error) {
	name, content, err := validateProductFields(req)
	if err != nil {
		return
	}

	_, err = s.productRepo.GetProductByName(ctx, name)
	if err == nil {
		return product, errs.ErrDuplicateName
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return product, err
	}

	id, err := s.productRepo.AddProduct(ctx, domain.Product{
		Name:    name,
		Price:   req.Price,
		Content: content,
	})
	if err != nil {
		return
	}

	created, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	product = productToResponse(created)
	publishEvent(s.publisher, "add_product", product)

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductRequest) (product dto.ProductResponse, err error) {
	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return product, errs.ErrInvalidID
	}

	name, content, err := validateProductFields(req)
	if err != nil {
		return
	}

	if _, err = s.productRepo.GetProductByID(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, errs.ErrProductNotFound
		}
		return
	}

	existing, err := s.productRepo.GetProductByName(ctx, name)
	if err == nil && existing.ID != id {
		return product, errs.ErrDuplicateName
	}
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return
	}

	if err = s.productRepo.UpdateProduct(ctx, domain.Product{
		ID:      id,
		Name:    name,
		Price:   req.Price,
		Content: content,
	}); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return product, errs.ErrProductNotFound
		}
		return
	}

	updated, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return
	}

	product = productToResponse(updated)
	publishEvent(s.publisher, "update_product", product)

	return product, nil
}

// DeleteProduct removes the product record only. Associations still listing
// the product keep its id; list resolution drops ids that no longer resolve.
func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrInvalidID
	}

	if err = s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrProductNotFound
		}
		return
	}

	publishEvent(s.publisher, "delete_product", dto.ProductResponse{ID: id})

	return nil
}
