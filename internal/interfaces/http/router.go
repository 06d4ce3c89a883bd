package http

import (
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-api/internal/application/usecase"
	"github.com/jhoicas/tienda-api/pkg/logger"
)

// ServerConfig parámetros del servidor Fiber.
type ServerConfig struct {
	AppName      string
	Production   bool
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	DocsEnabled  bool
	DocsFilePath string
	CORS         CORSConfig
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	Verifier  tokenVerifier
	Logger    *logger.Logger
}

// NewApp construye la app Fiber completa: middlewares, rutas y manejo de errores.
func NewApp(cfg ServerConfig, deps RouterDeps) *fiber.App {
	errs := NewErrorNormalizer(deps.Logger, cfg.Production)

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		ReadTimeout:           cfg.ReadTimeout,
		WriteTimeout:          cfg.WriteTimeout,
		IdleTimeout:           60 * time.Second,
		StrictRouting:         true, // /api/products/ no es /api/products
		CaseSensitive:         true,
		ErrorHandler:          errs.Handle,
		DisableStartupMessage: true,
	})

	app.Use(RequestLogger(deps.Logger))
	app.Use(recover.New())
	app.Use(CORS(cfg.CORS))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	if cfg.DocsEnabled {
		// Swagger UI: http://localhost:<port>/docs
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.DocsFilePath,
			Path:     "docs",
			Title:    "Tienda API",
		}))
	}

	Router(app, deps, errs)

	app.Use(NotFound)
	return app
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps, errs *ErrorNormalizer) {
	api := app.Group("/api")

	productHandler := NewProductHandler(deps.ProductUC, errs)
	// Add y no Get: Get registra también HEAD, que aquí debe responder 405.
	api.Add(fiber.MethodGet, "/products", productHandler.List)
	api.Post("/products", RequireRole(deps.Verifier, deps.Logger), productHandler.Create)
	api.All("/products", MethodNotAllowed)
}
