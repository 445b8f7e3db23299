package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	apperrors "cooking/internal/errors"
	"cooking/internal/model"
)

// RecipeRepository defines persistence operations over the recipes collection.
type RecipeRepository interface {
	ListByUser(ctx context.Context, userID string) ([]model.Recipe, error)
	Insert(ctx context.Context, recipe *model.Recipe) error
	FindByID(ctx context.Context, id bson.ObjectID) (*model.Recipe, error)
	Replace(ctx context.Context, recipe *model.Recipe) error
	FindAndDelete(ctx context.Context, id bson.ObjectID) (*model.Recipe, error)
}

type recipeRepository struct {
	coll *mongo.Collection
}

// NewRecipeRepository builds a MongoDB-backed repository.
func NewRecipeRepository(database *mongo.Database) RecipeRepository {
	return &recipeRepository{coll: database.Collection("recipes")}
}

func (r *recipeRepository) ListByUser(ctx context.Context, userID string) ([]model.Recipe, error) {
	cursor, err := r.coll.Find(ctx, bson.D{{Key: "userId", Value: userID}})
	if err != nil {
		return nil, err
	}
	recipes := make([]model.Recipe, 0)
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) Insert(ctx context.Context, recipe *model.Recipe) error {
	res, err := r.coll.InsertOne(ctx, recipe)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return apperrors.ErrWriteNotAcknowledged
	}
	return nil
}

func (r *recipeRepository) FindByID(ctx context.Context, id bson.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// Replace rewrites the document keyed by both _id and userId, so a recipe can
// never be edited through another user's path.
func (r *recipeRepository) Replace(ctx context.Context, recipe *model.Recipe) error {
	filter := bson.D{
		{Key: "_id", Value: recipe.ID},
		{Key: "userId", Value: recipe.UserID},
	}
	res, err := r.coll.ReplaceOne(ctx, filter, recipe)
	if err != nil {
		return err
	}
	if !res.Acknowledged {
		return apperrors.ErrWriteNotAcknowledged
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

func (r *recipeRepository) FindAndDelete(ctx context.Context, id bson.ObjectID) (*model.Recipe, error) {
	var recipe model.Recipe
	err := r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&recipe)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}
