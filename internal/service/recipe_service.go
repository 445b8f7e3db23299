package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"cooking/internal/model"
	"cooking/internal/repository"
	"cooking/internal/timestamp"
)

// RecipeService exposes domain operations on a user's recipes. Every
// operation verifies the owning user first and short-circuits with
// errors.ErrUserNotFound before touching the recipes collection.
type RecipeService interface {
	ListRecipes(ctx context.Context, userID bson.ObjectID) ([]model.Recipe, error)
	CreateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error
	GetRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error)
	UpdateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error
	DeleteRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error)
}

type recipeService struct {
	recipes repository.RecipeRepository
	users   repository.UserRepository
}

// NewRecipeService builds a RecipeService. The user repository backs the
// parent-existence checks.
func NewRecipeService(recipes repository.RecipeRepository, users repository.UserRepository) RecipeService {
	return &recipeService{recipes: recipes, users: users}
}

func (s *recipeService) requireUser(ctx context.Context, userID bson.ObjectID) error {
	_, err := s.users.FindByID(ctx, userID)
	return err
}

func (s *recipeService) ListRecipes(ctx context.Context, userID bson.ObjectID) ([]model.Recipe, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.recipes.ListByUser(ctx, userID.Hex())
}

// CreateRecipe assigns the identifier, the owner and the publication stamps,
// then persists the document.
func (s *recipeService) CreateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	recipe.ID = bson.NewObjectID()
	recipe.UserID = userID.Hex()
	recipe.DateOfPubl = timestamp.Now()
	recipe.DateOfLastChange = recipe.DateOfPubl
	return s.recipes.Insert(ctx, recipe)
}

func (s *recipeService) GetRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.recipes.FindByID(ctx, recipeID)
}

// UpdateRecipe replaces the stored document in full, keyed by both the recipe
// and its owner. The publication stamp is carried over from the stored
// document so it is set exactly once.
func (s *recipeService) UpdateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error {
	if err := s.requireUser(ctx, userID); err != nil {
		return err
	}
	existing, err := s.recipes.FindByID(ctx, recipe.ID)
	if err != nil {
		return err
	}
	recipe.UserID = userID.Hex()
	recipe.DateOfPubl = existing.DateOfPubl
	recipe.DateOfLastChange = timestamp.Now()
	return s.recipes.Replace(ctx, recipe)
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error) {
	if err := s.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.recipes.FindAndDelete(ctx, recipeID)
}
