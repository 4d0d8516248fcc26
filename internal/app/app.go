package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/citymarket/catalog-service/config"
	"github.com/citymarket/catalog-service/internal/controller"
	"github.com/citymarket/catalog-service/internal/infrastructure/tracing"
	"github.com/citymarket/catalog-service/internal/repository"
	"github.com/citymarket/catalog-service/internal/service"
	pkgdto "github.com/citymarket/catalog-service/pkg/dto"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
)

type App struct {
	DB        *mongo.Database
	Config    *config.Config
	Publisher service.EventPublisher
	Server    *echo.Echo
}

// Start wires the HTTP server and blocks serving requests until StopServer
// is called or the listener fails.
func (app *App) Start() error {
	e := echo.New()
	app.Server = e

	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	defer func() {
		if traceProvider == nil {
			return
		}
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}()

	if traceProvider != nil {
		tracer := traceProvider.Tracer("catalog-service")

		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				ctx, span := tracer.Start(c.Request().Context(), fmt.Sprintf("[%s] %s", c.Request().Method, c.Path()))
				defer span.End()

				req := c.Request()
				c.SetRequest(req.WithContext(ctx))

				return next(c)
			}
		})
	}

	// Empty prefix so metrics aggregate across services without renaming
	e.Use(echoprometheus.NewMiddleware(""))

	go func() {
		metrics := echo.New()
		metrics.GET("/metrics", echoprometheus.NewHandler())
		if err := metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Failed to start metrics server")
		}
	}()

	g := e.Group("/api/v1")

	g.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogMethod:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Int64("latency", v.Latency.Microseconds()).
				Str("remote IP", v.RemoteIP).
				Msg("Request")

			return nil
		},
	}))

	cityRepo := repository.CreateNewCityRepository(app.DB)
	productRepo := repository.CreateNewProductRepository(app.DB)
	associationRepo := repository.CreateNewAssociationRepository(app.DB)

	citySvc := service.CreateCityService(cityRepo, app.Publisher)
	productSvc := service.CreateProductService(productRepo, app.Publisher)
	associationSvc := service.CreateAssociationService(associationRepo, cityRepo, productRepo, app.Publisher)

	controller.CreateCityController(g, citySvc)
	controller.CreateProductController(g, productSvc)
	controller.CreateAssociationController(g, associationSvc)

	g.GET("/ping", func(c echo.Context) error {
		return pkgdto.WriteSuccessResponse(c, "Hello, World!", nil)
	})

	e.Static("/", "web")

	if err := e.Start(fmt.Sprintf(":%s", app.Config.ServicePort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return app.Server.Shutdown(ctx)
}
