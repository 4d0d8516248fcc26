package service

import (
	"context"
	"testing"

	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newProductService() (ProductService, *fakeProductRepo) {
	repo := &fakeProductRepo{}
	return CreateProductService(repo, &recordingPublisher{}), repo
}

func TestAddProduct_Valid(t *testing.T) {
	svc, _ := newProductService()

	product, err := svc.AddProduct(context.Background(), dto.ProductRequest{
		Name:    " Bread ",
		Price:   2.5,
		Content: "Fresh baguette",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bread", product.Name)
	assert.Equal(t, 2.5, product.Price)
}

func TestAddProduct_FieldValidation(t *testing.T) {
	svc, _ := newProductService()

	testCases := []struct {
		name    string
		request dto.ProductRequest
		wantErr error
	}{
		{
			name:    "blank name",
			request: dto.ProductRequest{Name: "  ", Price: 1, Content: "x"},
			wantErr: errs.ErrNameRequired,
		},
		{
			name:    "negative price",
			request: dto.ProductRequest{Name: "Bread", Price: -1, Content: "x"},
			wantErr: errs.ErrInvalidPrice,
		},
		{
			name:    "blank content",
			request: dto.ProductRequest{Name: "Bread", Price: 1, Content: "  "},
			wantErr: errs.ErrContentRequired,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.AddProduct(context.Background(), tc.request)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestAddProduct_ZeroPriceAllowed(t *testing.T) {
	svc, _ := newProductService()

	product, err := svc.AddProduct(context.Background(), dto.ProductRequest{Name: "Sample", Price: 0, Content: "Free sample"})
	require.NoError(t, err)
	assert.Equal(t, float64(0), product.Price)
}

func TestAddProduct_DuplicateNameRejected(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, dto.ProductRequest{Name: "Bread", Price: 1, Content: "x"})
	require.NoError(t, err)

	_, err = svc.AddProduct(ctx, dto.ProductRequest{Name: " Bread ", Price: 2, Content: "y"})
	assert.ErrorIs(t, err, errs.ErrDuplicateName)
}

func TestUpdateProduct(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	bread, err := svc.AddProduct(ctx, dto.ProductRequest{Name: "Bread", Price: 1, Content: "x"})
	require.NoError(t, err)
	_, err = svc.AddProduct(ctx, dto.ProductRequest{Name: "Wine", Price: 8, Content: "y"})
	require.NoError(t, err)

	_, err = svc.UpdateProduct(ctx, dto.ProductRequest{ID: bread.ID, Name: "Wine", Price: 1, Content: "x"})
	assert.ErrorIs(t, err, errs.ErrDuplicateName)

	updated, err := svc.UpdateProduct(ctx, dto.ProductRequest{ID: bread.ID, Name: "Baguette", Price: 1.5, Content: "fresh"})
	require.NoError(t, err)
	assert.Equal(t, "Baguette", updated.Name)
	assert.Equal(t, 1.5, updated.Price)

	_, err = svc.UpdateProduct(ctx, dto.ProductRequest{ID: primitive.NewObjectID().Hex(), Name: "Ghost", Price: 1, Content: "x"})
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	_, err = svc.UpdateProduct(ctx, dto.ProductRequest{ID: "bad", Name: "Bread", Price: 1, Content: "x"})
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}

func TestDeleteProduct(t *testing.T) {
	svc, _ := newProductService()
	ctx := context.Background()

	product, err := svc.AddProduct(ctx, dto.ProductRequest{Name: "Bread", Price: 1, Content: "x"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteProduct(ctx, product.ID))

	err = svc.DeleteProduct(ctx, product.ID)
	assert.ErrorIs(t, err, errs.ErrProductNotFound)

	err = svc.DeleteProduct(ctx, "bad")
	assert.ErrorIs(t, err, errs.ErrInvalidID)
}
