package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"oficinas/internal/auth"
	"oficinas/internal/config"
	"oficinas/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	workshopHandler *handler.WorkshopHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	volunteerHandler *handler.VolunteerHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Session routes. The browser frontend keeps these public.
	e.POST("/cadastro", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.POST("/refresh", authHandler.Refresh)
	e.POST("/logout", authHandler.Logout)

	// Profile routes
	e.GET("/usuarios/:id", userHandler.GetProfile)
	e.PUT("/usuarios/:id", userHandler.UpdateProfile)
	e.DELETE("/usuarios/:id", userHandler.Delete)

	// Workshop routes
	e.GET("/oficinas", workshopHandler.List)
	e.GET("/oficinas/:id", workshopHandler.Get)
	e.POST("/oficinas", workshopHandler.Create)
	e.PUT("/oficinas/:id", workshopHandler.Update)
	e.DELETE("/oficinas/:id", workshopHandler.Delete)

	// Enrollment routes
	e.GET("/inscricoes", enrollmentHandler.ListAll)
	e.GET("/inscricoes/usuario/:usuarioId", enrollmentHandler.ListForUser)
	e.POST("/inscricoes", enrollmentHandler.Create)
	e.DELETE("/inscricoes/:id", enrollmentHandler.Cancel)

	// Volunteer routes
	e.GET("/voluntarios", volunteerHandler.ListAll)
	e.POST("/voluntarios", volunteerHandler.Create)
	e.DELETE("/voluntarios/:id", volunteerHandler.Remove)

	// Secured routes (require JWT authentication)
	secured := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			return jwtService.ValidateToken(token)
		},
	}))
	secured.GET("/sessao", authHandler.Session)

	// Static pages plus the original redirect shims.
	e.GET("/login", redirectTo("/login.html"))
	e.GET("/cadastro", redirectTo("/cadastro.html"))
	e.Static("/", cfg.StaticDir)
}

func redirectTo(target string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Redirect(http.StatusFound, target)
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
