package routes

import (
	"staffing-engine/internal/config"
	"staffing-engine/internal/database"
	v1 "staffing-engine/internal/delivery/http/routes/v1"
	"staffing-engine/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis)
}
