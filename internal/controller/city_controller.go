package controller

import (
	"github.com/citymarket/catalog-service/internal/dto"
	"github.com/citymarket/catalog-service/internal/service"
	pkgdto "github.com/citymarket/catalog-service/pkg/dto"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CityController struct {
	service service.CityService
}

func CreateCityController(e *echo.Group, service service.CityService) {
	c := CityController{
		service: service,
	}
	e.GET("/cities", c.GetCities)
	e.POST("/cities", c.AddCity)
	e.PUT("/cities", c.UpdateCity)
	e.DELETE("/cities", c.DeleteCity)
}

func (c *CityController) GetCities(e echo.Context) error {
	data, err := c.service.GetCities(e.Request().Context())
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "successfully retrieved cities", data)
}

func (c *CityController) AddCity(e echo.Context) error {
	payload := dto.CityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCity").Msg("")
	}

	city, err := c.service.AddCity(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteCreatedResponse(e, "City added successfully", city)
}

func (c *CityController) UpdateCity(e echo.Context) error {
	payload := dto.CityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCity").Msg("")
	}

	city, err := c.service.UpdateCity(e.Request().Context(), payload)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "City updated successfully", city)
}

func (c *CityController) DeleteCity(e echo.Context) error {
	payload := dto.CityRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteCity").Msg("")
	}

	err = c.service.DeleteCity(e.Request().Context(), payload.ID)
	if err != nil {
		return pkgdto.WriteErrorResponse(e, err, nil)
	}

	return pkgdto.WriteSuccessResponse(e, "City deleted successfully", nil)
}
