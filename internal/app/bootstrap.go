package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"staffing-engine/internal/config"
	"staffing-engine/internal/database/seeder"
	"staffing-engine/internal/delivery/http/middleware"
	"staffing-engine/internal/delivery/http/routes"
	"staffing-engine/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, seeds the database when configured, and
// wires the HTTP surface. The returned cleanup releases the container.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	c, err := NewContainer(cfg)
	if err != nil {
		return nil, nil, err
	}

	if cfg.App.BootstrapDB {
		if err := seedDatabase(c); err != nil {
			_ = c.Close()
			return nil, nil, err
		}
	}

	application := New(c)
	return application, c.Close, nil
}

func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	registerGlobalMiddleware(f, c)

	registry := routes.NewRegistry(c.Config, c.DB, c.Cache, c.Hub, c.Logger)
	registry.Register(f)

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	return &App{Fiber: f, Container: c}
}

func registerGlobalMiddleware(app *fiber.App, c *Container) {
	if app == nil {
		return
	}

	errMw := middleware.NewErrorMiddleware()
	app.Use(errMw.Middleware())

	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	app.Use(accessMw.Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}

func seedDatabase(c *Container) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return seeder.Default().Run(ctx, c.DB)
}
