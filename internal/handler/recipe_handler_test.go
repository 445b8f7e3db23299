package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	apperrors "cooking/internal/errors"
	"cooking/internal/handler"
	"cooking/internal/model"
	"cooking/internal/router"
)

// MockRecipeService is a mock implementation of service.RecipeService.
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) ListRecipes(ctx context.Context, userID bson.ObjectID) ([]model.Recipe, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Recipe), args.Error(1)
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error {
	args := m.Called(ctx, userID, recipe)
	return args.Error(0)
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, userID bson.ObjectID, recipe *model.Recipe) error {
	args := m.Called(ctx, userID, recipe)
	return args.Error(0)
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, userID, recipeID bson.ObjectID) (*model.Recipe, error) {
	args := m.Called(ctx, userID, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

func newRecipeEcho(svc *MockRecipeService) *echo.Echo {
	e := echo.New()
	e.Validator = router.NewValidator()
	e.HTTPErrorHandler = apperrors.NewHTTPErrorHandler(false)

	h := handler.NewRecipeHandler(svc)
	e.GET("/api/users/:userId/recipes", h.ListRecipes)
	e.POST("/api/users/:userId/recipes", h.CreateRecipe)
	e.GET("/api/users/:userId/recipes/:recipeId", h.GetRecipe)
	e.PUT("/api/users/:userId/recipes/:recipeId", h.UpdateRecipe)
	e.DELETE("/api/users/:userId/recipes/:recipeId", h.DeleteRecipe)
	return e
}

const testRecipeID = "74f1b2c3d4e5f60718293a4c"

func validRecipeBody() map[string]any {
	return map[string]any{
		"name":       "Banitsa",
		"shortDescr": "Layered filo pastry with cheese",
		"time":       "45",
	}
}

func TestRecipeHandler_ListRecipes(t *testing.T) {
	userID, _ := bson.ObjectIDFromHex(testUserID)

	t.Run("owner exists", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("ListRecipes", mock.Anything, userID).
			Return([]model.Recipe{{UserID: testUserID, Name: "Banitsa", ShortDescr: "pastry"}}, nil)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/"+testUserID+"/recipes", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body []map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 1)
		assert.NotContains(t, rec.Body.String(), "_id")
	})

	t.Run("owner missing", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("ListRecipes", mock.Anything, userID).Return(nil, apperrors.ErrUserNotFound)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/"+testUserID+"/recipes", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "There is no user with such ID in the database")
	})

	t.Run("malformed owner id", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/nope/recipes", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Id should have 24 hexadecimal characters.")
		mockSvc.AssertNotCalled(t, "ListRecipes", mock.Anything, mock.Anything)
	})
}

func TestRecipeHandler_CreateRecipe(t *testing.T) {
	userID, _ := bson.ObjectIDFromHex(testUserID)
	recipeID, _ := bson.ObjectIDFromHex(testRecipeID)

	t.Run("valid payload", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("CreateRecipe", mock.Anything, userID, mock.AnythingOfType("*model.Recipe")).
			Run(func(args mock.Arguments) {
				r := args.Get(2).(*model.Recipe)
				r.ID = recipeID
				r.UserID = testUserID
				r.DateOfPubl = "5/3/2024 9:7:2"
				r.DateOfLastChange = r.DateOfPubl
			}).Return(nil)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodPost, "/api/users/"+testUserID+"/recipes", validRecipeBody())

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/users/"+testUserID+"/recipes/"+testRecipeID, rec.Header().Get(echo.HeaderLocation))

		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testRecipeID, body["id"])
		assert.Equal(t, testUserID, body["userId"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("owner missing means no recipe", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("CreateRecipe", mock.Anything, userID, mock.AnythingOfType("*model.Recipe")).
			Return(apperrors.ErrUserNotFound)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodPost, "/api/users/"+testUserID+"/recipes", validRecipeBody())

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid user ID: "+testUserID)
	})

	invalid := []struct {
		name string
		mut  func(map[string]any)
	}{
		{"missing name", func(b map[string]any) { delete(b, "name") }},
		{"missing short description", func(b map[string]any) { delete(b, "shortDescr") }},
		{"non-numeric time", func(b map[string]any) { b["time"] = "an hour" }},
		{"bad image url", func(b map[string]any) { b["imageUrl"] = "not a url" }},
	}

	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockRecipeService)
			e := newRecipeEcho(mockSvc)

			body := validRecipeBody()
			tt.mut(body)
			rec := doJSON(e, http.MethodPost, "/api/users/"+testUserID+"/recipes", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]any
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp["message"], "Invalid recipe")
			mockSvc.AssertNotCalled(t, "CreateRecipe", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestRecipeHandler_GetRecipe(t *testing.T) {
	userID, _ := bson.ObjectIDFromHex(testUserID)
	recipeID, _ := bson.ObjectIDFromHex(testRecipeID)

	t.Run("found", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("GetRecipe", mock.Anything, userID, recipeID).
			Return(&model.Recipe{ID: recipeID, UserID: testUserID, Name: "Banitsa", ShortDescr: "pastry"}, nil)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/"+testUserID+"/recipes/"+testRecipeID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testRecipeID, body["id"])
	})

	t.Run("recipe missing", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("GetRecipe", mock.Anything, userID, recipeID).Return(nil, apperrors.ErrRecipeNotFound)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/"+testUserID+"/recipes/"+testRecipeID, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid recipe ID: "+testRecipeID)
	})

	t.Run("malformed recipe id", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodGet, "/api/users/"+testUserID+"/recipes/nope", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid recipe ID: nope")
		mockSvc.AssertNotCalled(t, "GetRecipe", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRecipeHandler_UpdateRecipe(t *testing.T) {
	userID, _ := bson.ObjectIDFromHex(testUserID)

	t.Run("valid update", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("UpdateRecipe", mock.Anything, userID, mock.AnythingOfType("*model.Recipe")).
			Run(func(args mock.Arguments) {
				r := args.Get(2).(*model.Recipe)
				r.UserID = testUserID
				r.DateOfPubl = "2/2/2021 2:2:2"
				r.DateOfLastChange = "5/3/2024 9:7:2"
			}).Return(nil)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodPut, "/api/users/"+testUserID+"/recipes/"+testRecipeID, validRecipeBody())

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testRecipeID, body["id"])
		assert.Equal(t, "2/2/2021 2:2:2", body["dateOfPubl"])
	})

	t.Run("invalid body", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		body := validRecipeBody()
		delete(body, "shortDescr")

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodPut, "/api/users/"+testUserID+"/recipes/"+testRecipeID, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockSvc.AssertNotCalled(t, "UpdateRecipe", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRecipeHandler_DeleteRecipe(t *testing.T) {
	userID, _ := bson.ObjectIDFromHex(testUserID)
	recipeID, _ := bson.ObjectIDFromHex(testRecipeID)

	t.Run("returns the removed document", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("DeleteRecipe", mock.Anything, userID, recipeID).
			Return(&model.Recipe{ID: recipeID, UserID: testUserID, Name: "Banitsa", ShortDescr: "pastry"}, nil)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodDelete, "/api/users/"+testUserID+"/recipes/"+testRecipeID, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testRecipeID, body["id"])
	})

	t.Run("second delete misses", func(t *testing.T) {
		mockSvc := new(MockRecipeService)
		mockSvc.On("DeleteRecipe", mock.Anything, userID, recipeID).Return(nil, apperrors.ErrRecipeNotFound)

		e := newRecipeEcho(mockSvc)
		rec := doJSON(e, http.MethodDelete, "/api/users/"+testUserID+"/recipes/"+testRecipeID, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid recipe ID: "+testRecipeID)
	})
}
