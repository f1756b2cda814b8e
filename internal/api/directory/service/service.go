package directoryService

import (
	"AgriVision/internal/api/directory"
	directoryRepository "AgriVision/internal/api/directory/repository"
	"AgriVision/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type IDirectoryService interface {
	TopActiveSchemes(ctx context.Context, limit int) ([]entity.Scheme, error)
	SearchPesticides(ctx context.Context, term string) ([]entity.Pesticide, error)
	ListVerifiedShops(ctx context.Context) ([]entity.Shop, error)
	SearchShops(ctx context.Context, term string) ([]entity.Shop, error)
	CreateShop(ctx context.Context, req directory.CreateShopRequest) (entity.Shop, error)
}

type directoryService struct {
	log           *logrus.Logger
	directoryRepo directoryRepository.Repository
}

func NewDirectoryService(
	log *logrus.Logger,
	directoryRepo directoryRepository.Repository,
) IDirectoryService {
	return &directoryService{
		log:           log,
		directoryRepo: directoryRepo,
	}
}
