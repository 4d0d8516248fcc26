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

type MongoDBAssociationRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewAssociationRepository(db *mongo.Database) AssociationRepository {
	return &MongoDBAssociationRepositoryImpl{db: db}
}

func (r *MongoDBAssociationRepositoryImpl) GetAssociations(ctx context.Context) (data []domain.CityProduct, err error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.db.Collection("cityproducts").Find(ctx, bson.D{}, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAssociations").Msg("")
		return
	}

	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetAssociations").Msg("")
		return
	}

	return data, nil
}

func (r *MongoDBAssociationRepositoryImpl) GetAssociationByCity(ctx context.Context, cityID primitive.ObjectID) (association domain.CityProduct, err error) {
	filter := bson.D{{Key: "city", Value: cityID}}

	err = r.db.Collection("cityproducts").FindOne(ctx, filter).Decode(&association)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return association, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetAssociationByCity").Msg("")
		return association, err
	}

	return association, nil
}

// AddProductsToCity merges the given product ids into the city's association
// with a single $addToSet upsert. Existing order is preserved and genuinely
// new ids are appended in the order given.
func (r *MongoDBAssociationRepositoryImpl) AddProductsToCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (created bool, err error) {
	now := time.Now()
	filter := bson.D{{Key: "city", Value: cityID}}
	update := bson.D{
		{Key: "$addToSet", Value: bson.D{{Key: "products", Value: bson.D{{Key: "$each", Value: productIDs}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: now}}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.db.Collection("cityproducts").UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProductsToCity").Msg("")
		return
	}

	return result.UpsertedCount > 0, nil
}

func (r *MongoDBAssociationRepositoryImpl) ReplaceCityProducts(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (created bool, err error) {
	now := time.Now()
	filter := bson.D{{Key: "city", Value: cityID}}
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "products", Value: productIDs},
			{Key: "updatedAt", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	opts := options.Update().SetUpsert(true)

	result, err := r.db.Collection("cityproducts").UpdateOne(ctx, filter, update, opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ReplaceCityProducts").Msg("")
		return
	}

	return result.UpsertedCount > 0, nil
}

// RemoveProductsFromCity pulls the given ids atomically and deletes the
// association when its product set ends up empty. The delete is guarded by a
// $size filter so it only removes a record that is still empty.
func (r *MongoDBAssociationRepositoryImpl) RemoveProductsFromCity(ctx context.Context, cityID primitive.ObjectID, productIDs []primitive.ObjectID) (remaining []primitive.ObjectID, err error) {
	filter := bson.D{{Key: "city", Value: cityID}}
	update := bson.D{
		{Key: "$pull", Value: bson.D{{Key: "products", Value: bson.D{{Key: "$in", Value: productIDs}}}}},
		{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: time.Now()}}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var association domain.CityProduct
	err = r.db.Collection("cityproducts").FindOneAndUpdate(ctx, filter, update, opts).Decode(&association)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.ErrNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "RemoveProductsFromCity").Msg("")
		return nil, err
	}

	if len(association.Products) == 0 {
		deleteFilter := bson.D{
			{Key: "_id", Value: association.ID},
			{Key: "products", Value: bson.D{{Key: "$size", Value: 0}}},
		}
		if _, err = r.db.Collection("cityproducts").DeleteOne(ctx, deleteFilter); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "RemoveProductsFromCity").Msg("")
			return nil, err
		}
	}

	return association.Products, nil
}

func (r *MongoDBAssociationRepositoryImpl) DeleteAssociationByCity(ctx context.Context, cityID primitive.ObjectID) (err error) {
	filter := bson.D{{Key: "city", Value: cityID}}

	_, err = r.db.Collection("cityproducts").DeleteOne(ctx, filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteAssociationByCity").Msg("")
		return
	}

	return nil
}
