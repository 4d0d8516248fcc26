package repository

import (
	"context"
	"time"

	"github.com/citymarket/catalog-service/internal/domain"
	"github.com/citymarket/catalog-service/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBCityRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewCityRepository(db *mongo.Database) CityRepository {
	return &MongoDBCityRepositoryImpl{db: db}
}

func (r *MongoDBCityRepositoryImpl) AddCity(ctx context.Context, data domain.City) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("cities").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddCity").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBCityRepositoryImpl) GetCities(ctx context.Context) (data []domain.City, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("cities").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCities").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCities").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCityRepositoryImpl) GetCityByID(ctx context.Context, id primitive.ObjectID) (city domain.City, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("cities").FindOne(ctx, filter).Decode(&city)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return city, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCityByID").Msg("")
		return city, err
	}

	return city, nil
}

func (r *MongoDBCityRepositoryImpl) GetCityByName(ctx context.Context, name string) (city domain.City, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("cities").FindOne(ctx, filter).Decode(&city)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return city, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetCityByName").Msg("")
		return city, err
	}

	return city, nil
}

func (r *MongoDBCityRepositoryImpl) GetCitiesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.City, err error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.db.Collection("cities").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCitiesByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetCitiesByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBCityRepositoryImpl) UpdateCity(ctx context.Context, data domain.City) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("cities").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateCity").Msg("Failed to update city")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBCityRepositoryImpl) DeleteCity(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("cities").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteCity").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
