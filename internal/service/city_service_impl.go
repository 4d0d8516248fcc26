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

type CityServiceImpl struct {
	cityRepo  repository.CityRepository
	publisher EventPublisher
}

func CreateCityService(cityRepo repository.CityRepository, publisher EventPublisher) CityService {
	return &CityServiceImpl{cityRepo: cityRepo, publisher: publisher}
}

func cityToResponse(city domain.City) dto.CityResponse {
	return dto.CityResponse{
		ID:        city.ID.Hex(),
		Name:      city.Name,
		CreatedAt: city.CreatedAt,
		UpdatedAt: city.UpdatedAt,
	}
}

func (s *CityServiceImpl) GetCities(ctx context.Context) (data []dto.CityResponse, err error) {
	cities, err := s.cityRepo.GetCities(ctx)
	if err != nil {
		return
	}

	data = make([]dto.CityResponse, 0, len(cities))
	for _, city := range cities {
		data = append(data, cityToResponse(city))
	}

	return data, nil
}

func (s *CityServiceImpl) AddCity(ctx context.Context, req dto.CityRequest) (city dto.CityResponse, err error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return city, errs.ErrNameRequired
	}

	_, err = s.cityRepo.GetCityByName(ctx, name)
	if err == nil {
		return city, errs.ErrDuplicateName
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return city, err
	}

	id, err := s.cityRepo.AddCity(ctx, domain.City{Name: name})
	if err != nil {
		return
	}

	created, err := s.cityRepo.GetCityByID(ctx, id)
	if err != nil {
		return
	}

	city = cityToResponse(created)
	publishEvent(s.publisher, "add_city", city)

	return city, nil
}

func (s *CityServiceImpl) UpdateCity(ctx context.Context, req dto.CityRequest) (city dto.CityResponse, err error) {
	id, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		return city, errs.ErrInvalidID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return city, errs.ErrNameRequired
	}

	if _, err = s.cityRepo.GetCityByID(ctx, id); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return city, errs.ErrCityNotFound
		}
		return
	}

	existing, err := s.cityRepo.GetCityByName(ctx, name)
	if err == nil && existing.ID != id {
		return city, errs.ErrDuplicateName
	}
	if err != nil && !errors.Is(err, errs.ErrNotFound) {
		return
	}

	if err = s.cityRepo.UpdateCity(ctx, domain.City{ID: id, Name: name}); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return city, errs.ErrCityNotFound
		}
		return
	}

	updated, err := s.cityRepo.GetCityByID(ctx, id)
	if err != nil {
		return
	}

	city = cityToResponse(updated)
	publishEvent(s.publisher, "update_city", city)

	return city, nil
}

// DeleteCity removes the city record only. Associations referencing the city
// are left in place and resolve to a null city on the next read.
func (s *CityServiceImpl) DeleteCity(ctx context.Context, id string) (err error) {
	cityID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrInvalidID
	}

	if err = s.cityRepo.DeleteCity(ctx, cityID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrCityNotFound
		}
		return
	}

	publishEvent(s.publisher, "delete_city", dto.CityResponse{ID: id})

	return nil
}
