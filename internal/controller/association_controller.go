package controller

import (
	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/internal/service"
	pkgdto "github.com/citymarket/catalog-service/pkg/dto"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AssociationController struct {
	service service.AssociationService
}

func CreateAssociationController(e *echo.Group, service service.AssociationService) {
	c := AssociationController{
		service: service,
	}
	e.GET("/associations", c.GetAssociations)
	e.POST("/associations", c.AddProducts)
	e.PUT("/associations", c.ReplaceProducts)
	e.DELETE("/associations", c.RemoveProducts)
}

func (c *AssociationController) GetAssociations(e echo.Context) error {
	data, err := c.service.GetAssociations(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved associations", data)
}

func (c *AssociationController) AddProducts(e echo.Context) error {
	payload := dto.AssociationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddProducts").Msg("")
	}

	association, created, err := c.service.AddProducts(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	if association == nil {
		return pkgdto.WriteSuccessResponse(e, "No products to add", nil)
	}

	if created {
		return pkgdto.WriteCreatedResponse(e, "Products added to city successfully", association)
	}

	return pkgdto.WriteSuccessResponse(e, "Products added to city successfully", association)
}

func (c *AssociationController) ReplaceProducts(e echo.Context) error {
	payload := dto.AssociationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "ReplaceProducts").Msg("")
	}

	association, created, err := c.service.ReplaceProducts(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	if association == nil {
		return pkgdto.WriteSuccessResponse(e, "Association deleted successfully", nil)
	}

	if created {
		return pkgdto.WriteCreatedResponse(e, "City products updated successfully", association)
	}

	return pkgdto.WriteSuccessResponse(e, "City products updated successfully", association)
}

func (c *AssociationController) RemoveProducts(e echo.Context) error {
	payload := dto.AssociationRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "RemoveProducts").Msg("")
	}

	err = c.service.RemoveProducts(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "Products removed from city successfully", nil)
}
