package shopLocatorHandler

import (
	shopLocatorService "AgriVision/internal/api/shop_locator/service"
	"AgriVision/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ShopLocatorHandler struct {
	log                *logrus.Logger
	middleware         middleware.Middleware
	shopLocatorService shopLocatorService.IShopLocatorService
}

func New(
	log *logrus.Logger,
	middleware middleware.Middleware,
	sls shopLocatorService.IShopLocatorService,
) *ShopLocatorHandler {
	return &ShopLocatorHandler{
		log:                log,
		middleware:         middleware,
		shopLocatorService: sls,
	}
}

func (h *ShopLocatorHandler) Start(srv fiber.Router) {
	shops := srv.Group("/shops")

	shops.Get("/nearby", h.Nearby)
}
