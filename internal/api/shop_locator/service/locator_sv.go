package shopLocatorService

import (
	"AgriVision/internal/api/shop_locator"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/geo"
	"AgriVision/pkg/metrics"
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
)

func (s *shopLocatorService) Nearby(ctx context.Context, query shop_locator.NearbyQuery) (NearbyResult, error) {
	requestID := contextPkg.GetRequestID(ctx)

	origin := geo.Coordinate{Latitude: query.Latitude, Longitude: query.Longitude}
	if err := origin.Validate(); err != nil {
		return NearbyResult{}, err
	}

	if math.IsNaN(query.RadiusKm) || query.RadiusKm > shop_locator.MaxRadiusKm {
		return NearbyResult{}, shop_locator.ErrInvalidRadius
	}

	if query.RadiusKm <= 0 {
		source := query.Source
		if source == "" {
			source = entity.ShopSourceDirectory
		}
		return NearbyResult{Source: source, Shops: []entity.RankedShop{}}, nil
	}

	candidates, source, fallback, err := s.candidates(ctx, origin, query)
	if err != nil {
		return NearbyResult{}, err
	}

	ranked, err := Rank(origin, candidates, query.RadiusKm)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"source":     source,
			"error":      err.Error(),
		}).Warn("Rejected nearby search with invalid coordinates")
		return NearbyResult{}, err
	}

	metrics.RankedShops.WithLabelValues(string(source)).Observe(float64(len(ranked)))

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"origin":     origin.String(),
		"radius_km":  query.RadiusKm,
		"source":     source,
		"candidates": len(candidates),
		"ranked":     len(ranked),
	}).Debug("Nearby shops ranked")

	return NearbyResult{
		Source:       source,
		FallbackUsed: fallback,
		Shops:        ranked,
	}, nil
}

// candidates fetches shops from the requested source. A places request falls
// back to the directory when the provider is missing or failing.
func (s *shopLocatorService) candidates(ctx context.Context, origin geo.Coordinate, query shop_locator.NearbyQuery) ([]entity.Shop, entity.ShopSource, bool, error) {
	requestID := contextPkg.GetRequestID(ctx)
	fallback := false

	if query.Source == entity.ShopSourcePlaces {
		if s.places != nil {
			shops, err := s.places.NearbyShops(ctx, origin, query.RadiusKm)
			if err == nil {
				return shops, entity.ShopSourcePlaces, false, nil
			}

			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Places search failed, using directory")
		}

		fallback = true
		metrics.ShopSourceFallbacks.Inc()
	}

	shops, err := s.directory.ListVerifiedShops(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to load directory shops")
		return nil, "", fallback, fmt.Errorf("%w: %v", shop_locator.ErrShopsUnavailable, err)
	}

	return shops, entity.ShopSourceDirectory, fallback, nil
}
