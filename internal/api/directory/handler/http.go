package directoryHandler

import (
	directoryService "AgriVision/internal/api/directory/service"
	"AgriVision/internal/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type DirectoryHandler struct {
	log              *logrus.Logger
	validator        *validator.Validate
	middleware       middleware.Middleware
	directoryService directoryService.IDirectoryService
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	ds directoryService.IDirectoryService,
) *DirectoryHandler {
	return &DirectoryHandler{
		log:              log,
		validator:        validate,
		middleware:       middleware,
		directoryService: ds,
	}
}

func (h *DirectoryHandler) Start(srv fiber.Router) {
	directory := srv.Group("/directory")

	directory.Get("/schemes", h.GetSchemes)
	directory.Get("/pesticides", h.SearchPesticides)
	directory.Get("/shops", h.SearchShops)

	directory.Post("/shops", h.middleware.NewTokenMiddleware, h.CreateShop)
}
