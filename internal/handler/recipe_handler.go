package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "cooking/internal/errors"
	"cooking/internal/model"
	"cooking/internal/service"
)

// RecipeHandler handles the /api/users/:userId/recipes endpoints.
type RecipeHandler struct {
	svc service.RecipeService
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(svc service.RecipeService) *RecipeHandler {
	return &RecipeHandler{svc: svc}
}

// RecipeRequest carries the payload for recipe creation and updates. The
// owner and identifier come from the path, never from the body.
type RecipeRequest struct {
	Name       string `json:"name" validate:"required,max=80"`
	ShortDescr string `json:"shortDescr" validate:"required,max=256"`
	Time       string `json:"time" validate:"omitempty,numeric"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,url"`
	LongDescr  string `json:"longDescr" validate:"omitempty,max=2048"`
}

func (r *RecipeRequest) toModel() *model.Recipe {
	return &model.Recipe{
		Name:       r.Name,
		ShortDescr: r.ShortDescr,
		Time:       r.Time,
		ImageURL:   r.ImageURL,
		LongDescr:  r.LongDescr,
	}
}

// userID validates the userId path parameter. Malformed ids respond 404 with
// the format hint; that policy is deliberate, see DESIGN.md.
func (h *RecipeHandler) userID(c echo.Context) (bson.ObjectID, error) {
	idStr := c.Param("userId")
	id, err := model.ParseID(idStr)
	if err != nil {
		return bson.ObjectID{}, apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. Id should have 24 hexadecimal characters.", idStr), err)
	}
	return id, nil
}

func (h *RecipeHandler) recipeID(c echo.Context) (bson.ObjectID, error) {
	idStr := c.Param("recipeId")
	id, err := model.ParseID(idStr)
	if err != nil {
		return bson.ObjectID{}, apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid recipe ID: %s. Id should have 24 hexadecimal characters.", idStr), err)
	}
	return id, nil
}

// ListRecipes godoc
// @Summary List a user's recipes
// @Tags recipes
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Success 200 {array} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId}/recipes [get]
func (h *RecipeHandler) ListRecipes(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	recipes, err := h.svc.ListRecipes(c.Request().Context(), userID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound,
			fmt.Sprintf("Invalid user ID: %s. There is no user with such ID in the database", userID.Hex()), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, recipes)
}

// CreateRecipe godoc
// @Summary Create a recipe for a user
// @Tags recipes
// @Accept json
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Param recipe body RecipeRequest true "Recipe payload"
// @Success 201 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId}/recipes [post]
func (h *RecipeHandler) CreateRecipe(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid recipe: %v", err), err)
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid recipe: %v", err), err)
	}

	recipe := req.toModel()
	err = h.svc.CreateRecipe(c.Request().Context(), userID, recipe)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid user ID: %s", userID.Hex()), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "Could not create recipe", err)
	}

	c.Response().Header().Set(echo.HeaderLocation,
		fmt.Sprintf("/api/users/%s/recipes/%s", userID.Hex(), recipe.ID.Hex()))
	return c.JSON(http.StatusCreated, recipe)
}

// GetRecipe godoc
// @Summary Get a user's recipe by id
// @Tags recipes
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Param recipeId path string true "Recipe ID (24 hex characters)"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId}/recipes/{recipeId} [get]
func (h *RecipeHandler) GetRecipe(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	recipeID, err := h.recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.svc.GetRecipe(c.Request().Context(), userID, recipeID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid user ID: %s", userID.Hex()), err)
	}
	if errors.Is(err, apperrors.ErrRecipeNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid recipe ID: %s", recipeID.Hex()), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe godoc
// @Summary Update a user's recipe
// @Tags recipes
// @Accept json
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Param recipeId path string true "Recipe ID (24 hex characters)"
// @Param recipe body RecipeRequest true "Recipe payload"
// @Success 200 {object} model.Recipe
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId}/recipes/{recipeId} [put]
func (h *RecipeHandler) UpdateRecipe(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	recipeID, err := h.recipeID(c)
	if err != nil {
		return err
	}

	var req RecipeRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid recipe: %v", err), err)
	}
	if err := c.Validate(&req); err != nil {
		return apperrors.New(http.StatusBadRequest, fmt.Sprintf("Invalid recipe: %v", err), err)
	}

	recipe := req.toModel()
	recipe.ID = recipeID
	err = h.svc.UpdateRecipe(c.Request().Context(), userID, recipe)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid user ID: %s", userID.Hex()), err)
	}
	if errors.Is(err, apperrors.ErrRecipeNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid recipe ID: %s", recipeID.Hex()), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "Could not update recipe", err)
	}
	return c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe godoc
// @Summary Delete a user's recipe
// @Tags recipes
// @Produce json
// @Param userId path string true "User ID (24 hex characters)"
// @Param recipeId path string true "Recipe ID (24 hex characters)"
// @Success 200 {object} model.Recipe
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{userId}/recipes/{recipeId} [delete]
func (h *RecipeHandler) DeleteRecipe(c echo.Context) error {
	userID, err := h.userID(c)
	if err != nil {
		return err
	}
	recipeID, err := h.recipeID(c)
	if err != nil {
		return err
	}

	recipe, err := h.svc.DeleteRecipe(c.Request().Context(), userID, recipeID)
	if errors.Is(err, apperrors.ErrUserNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid user ID: %s", userID.Hex()), err)
	}
	if errors.Is(err, apperrors.ErrRecipeNotFound) {
		return apperrors.New(http.StatusNotFound, fmt.Sprintf("Invalid recipe ID: %s", recipeID.Hex()), err)
	}
	if err != nil {
		return apperrors.New(http.StatusInternalServerError, "", err)
	}
	return c.JSON(http.StatusOK, recipe)
}
