package directoryService

import (
	"AgriVision/internal/api/directory"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/geo"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

func (s *directoryService) TopActiveSchemes(ctx context.Context, limit int) ([]entity.Scheme, error) {
	if limit < 1 || limit > directory.MaxSchemeLimit {
		return nil, directory.ErrInvalidLimit
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		return nil, s.unavailable(ctx, "TopActiveSchemes", err)
	}

	schemes, err := repo.Schemes.GetActiveSchemes(ctx, limit)
	if err != nil {
		return nil, s.unavailable(ctx, "TopActiveSchemes", err)
	}

	return schemes, nil
}

func (s *directoryService) SearchPesticides(ctx context.Context, term string) ([]entity.Pesticide, error) {
	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		return nil, s.unavailable(ctx, "SearchPesticides", err)
	}

	pesticides, err := repo.Pesticides.SearchPesticides(ctx, term)
	if err != nil {
		return nil, s.unavailable(ctx, "SearchPesticides", err)
	}

	return pesticides, nil
}

func (s *directoryService) ListVerifiedShops(ctx context.Context) ([]entity.Shop, error) {
	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		return nil, s.unavailable(ctx, "ListVerifiedShops", err)
	}

	shops, err := repo.Shops.GetVerifiedShops(ctx)
	if err != nil {
		return nil, s.unavailable(ctx, "ListVerifiedShops", err)
	}

	return shops, nil
}

func (s *directoryService) SearchShops(ctx context.Context, term string) ([]entity.Shop, error) {
	if strings.TrimSpace(term) == "" {
		return s.ListVerifiedShops(ctx)
	}

	repo, err := s.directoryRepo.NewClient(false)
	if err != nil {
		return nil, s.unavailable(ctx, "SearchShops", err)
	}

	shops, err := repo.Shops.SearchShops(ctx, term)
	if err != nil {
		return nil, s.unavailable(ctx, "SearchShops", err)
	}

	return shops, nil
}

func (s *directoryService) CreateShop(ctx context.Context, req directory.CreateShopRequest) (entity.Shop, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if req.Latitude == nil || req.Longitude == nil {
		return entity.Shop{}, directory.ErrInvalidShopLocation
	}

	location := geo.Coordinate{Latitude: *req.Latitude, Longitude: *req.Longitude}
	if err := location.Validate(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Rejected shop with invalid coordinates")
		return entity.Shop{}, directory.ErrInvalidShopLocation
	}

	repo, err := s.directoryRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Shop{}, directory.ErrCreateShop
	}
	defer repo.Rollback()

	shop, err := repo.Shops.CreateShop(ctx, entity.Shop{
		Name:          strings.TrimSpace(req.Name),
		OwnerName:     req.OwnerName,
		Address:       strings.TrimSpace(req.Address),
		City:          req.City,
		State:         req.State,
		Pincode:       req.Pincode,
		Latitude:      location.Latitude,
		Longitude:     location.Longitude,
		Phone:         req.Phone,
		Email:         req.Email,
		OpeningTime:   req.OpeningTime,
		ClosingTime:   req.ClosingTime,
		Products:      req.Products,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		return entity.Shop{}, directory.ErrCreateShop
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit shop creation")
		return entity.Shop{}, directory.ErrCreateShop
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"shop_id":    shop.ID,
		"city":       shop.City,
	}).Info("Shop added to directory")

	return shop, nil
}

func (s *directoryService) unavailable(ctx context.Context, operation string, err error) error {
	s.log.WithFields(logrus.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"operation":  operation,
		"error":      err.Error(),
	}).Warn("Directory query failed")
	return fmt.Errorf("%w: %v", directory.ErrDirectoryUnavailable, err)
}
