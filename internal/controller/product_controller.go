package controller

import (
	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/internal/service"
	pkgdto "github.com/citymarket/catalog-service/pkg/dto"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct)
	e.PUT("/products", c.UpdateProduct)
	e.DELETE("/products", c.DeleteProduct)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	data, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved products", data)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteCreatedResponse(e, "Product added successfully", product)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	product, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Product updated successfully", product)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteProduct").Msg("")
	}

	err = c.service.DeleteProduct(e.Request().Context(), payload.ID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Product deleted successfully", nil)
}
