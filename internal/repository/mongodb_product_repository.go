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

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	now := time.Now()
	data.CreatedAt = now
	data.UpdatedAt = now

	result, err := r.db.Collection("products").InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return
	}

	return result.InsertedID.(primitive.ObjectID), err
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("products").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id primitive.ObjectID) (product domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByName(ctx context.Context, name string) (product domain.Product, err error) {
	filter := bson.D{{Key: "name", Value: name}}

	err = r.db.Collection("products").FindOne(ctx, filter).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return product, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByName").Msg("")
		return product, err
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductsByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Product, err error) {
	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}

	cursor, err := r.db.Collection("products").Find(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductsByIDs").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	filter := bson.D{{Key: "_id", Value: data.ID}}
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "name", Value: data.Name},
		{Key: "price", Value: data.Price},
		{Key: "content", Value: data.Content},
		{Key: "updatedAt", Value: time.Now()},
	}}}

	result, err := r.db.Collection("products").UpdateOne(ctx, filter, update)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("Failed to update product")
		return
	}

	if result.MatchedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "_id", Value: id}}

	result, err := r.db.Collection("products").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("")
		return
	}

	if result.DeletedCount == 0 {
		return errs.ErrNotFound
	}

	return nil
}
