package shopLocatorService

import (
	"AgriVision/internal/api/shop_locator"
	"AgriVision/internal/entity"
	"AgriVision/pkg/places"
	"context"

	"github.com/sirupsen/logrus"
)

// ShopDirectory is the part of the directory service the locator reads.
type ShopDirectory interface {
	ListVerifiedShops(ctx context.Context) ([]entity.Shop, error)
}

type NearbyResult struct {
	Source       entity.ShopSource
	FallbackUsed bool
	Shops        []entity.RankedShop
}

type IShopLocatorService interface {
	Nearby(ctx context.Context, query shop_locator.NearbyQuery) (NearbyResult, error)
}

type shopLocatorService struct {
	log       *logrus.Logger
	directory ShopDirectory
	places    places.IPlaces
}

// NewShopLocatorService accepts a nil places client, in which case every
// search is served from the directory.
func NewShopLocatorService(
	log *logrus.Logger,
	directory ShopDirectory,
	placesClient places.IPlaces,
) IShopLocatorService {
	return &shopLocatorService{
		log:       log,
		directory: directory,
		places:    placesClient,
	}
}
