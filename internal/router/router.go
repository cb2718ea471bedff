package router

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"civicportal/internal/config"
	"civicportal/internal/handler"
	"civicportal/internal/logger"
	"civicportal/internal/metrics"
	"civicportal/internal/middleware"
	"civicportal/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	newsHandler *handler.NewsHandler,
	projectHandler *handler.ProjectHandler,
	leaderHandler *handler.LeaderHandler,
	eventHandler *handler.EventHandler,
	feedbackHandler *handler.FeedbackHandler,
) {
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(logger.Middleware())
	e.Use(metrics.NewHTTPMetrics().Middleware())

	e.Validator = NewValidator()

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	api.GET("/news", newsHandler.List)
	api.GET("/news/:id", newsHandler.Get)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:id", projectHandler.Get)
	api.GET("/leaders", leaderHandler.List)
	api.GET("/leaders/:id", leaderHandler.Get)
	api.GET("/events", eventHandler.List)
	api.GET("/events/:id", eventHandler.Get)

	// Anyone may submit feedback.
	api.POST("/feedback", feedbackHandler.Create)

	// Secured routes (require a live session)
	secured := api.Group("",
		middleware.SessionToken(cfg.SessionSecret),
		middleware.RequireSession(authService),
	)

	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/auth/me", authHandler.Me)

	secured.POST("/news", newsHandler.Create)
	secured.PUT("/news/:id", newsHandler.Update)
	secured.DELETE("/news/:id", newsHandler.Delete)

	secured.POST("/projects", projectHandler.Create)
	secured.PUT("/projects/:id", projectHandler.Update)
	secured.DELETE("/projects/:id", projectHandler.Delete)

	secured.POST("/leaders", leaderHandler.Create)
	secured.PUT("/leaders/:id", leaderHandler.Update)
	secured.DELETE("/leaders/:id", leaderHandler.Delete)

	secured.POST("/events", eventHandler.Create)
	secured.PUT("/events/:id", eventHandler.Update)
	secured.DELETE("/events/:id", eventHandler.Delete)

	secured.GET("/feedback", feedbackHandler.List)
	secured.GET("/feedback/:id", feedbackHandler.Get)
	secured.PUT("/feedback/:id", feedbackHandler.Update)
	secured.PUT("/feedback/:id/resolve", feedbackHandler.Resolve)
	secured.DELETE("/feedback/:id", feedbackHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator builds a validator that reports JSON field names in errors.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CustomValidator{validator: v}
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
