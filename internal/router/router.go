package router

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cooking/internal/config"
	apperrors "cooking/internal/errors"
	"cooking/internal/handler"
	"cooking/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	userHandler *handler.UserHandler,
	recipeHandler *handler.RecipeHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())

	e.Validator = NewValidator()
	e.HTTPErrorHandler = apperrors.NewHTTPErrorHandler(cfg.IsDevelopment())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	users := e.Group("/api/users")

	users.GET("", userHandler.ListUsers)
	users.POST("", userHandler.CreateUser)
	users.GET("/:userId", userHandler.GetUser)
	users.PUT("/:userId", userHandler.UpdateUser)
	users.DELETE("/:userId", userHandler.DeleteUser)

	users.GET("/:userId/recipes", recipeHandler.ListRecipes)
	users.POST("/:userId/recipes", recipeHandler.CreateRecipe)
	users.GET("/:userId/recipes/:recipeId", recipeHandler.GetRecipe)
	users.PUT("/:userId/recipes/:recipeId", recipeHandler.UpdateRecipe)
	users.DELETE("/:userId/recipes/:recipeId", recipeHandler.DeleteRecipe)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds the request validator with the custom rules used by the
// request DTOs: "objectid" for external identifiers and "password" for the
// password complexity rule.
func NewValidator() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
		return model.IsValidID(fl.Field().String())
	})
	_ = v.RegisterValidation("password", validPassword)
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	hasLetter = regexp.MustCompile(`[A-Za-z]`)
	hasDigit  = regexp.MustCompile(`[0-9]`)
	hasSymbol = regexp.MustCompile(`[@$!%*#?&]`)
)

// validPassword requires a letter, a digit and one of @$!%*#?&.
func validPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return hasLetter.MatchString(s) && hasDigit.MatchString(s) && hasSymbol.MatchString(s)
}
