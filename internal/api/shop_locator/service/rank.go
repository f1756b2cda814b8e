package shopLocatorService

import (
	"AgriVision/internal/api/shop_locator"
	"AgriVision/internal/entity"
	"AgriVision/pkg/geo"
	"fmt"
	"sort"
)

// Rank returns the candidates within radiusKm of origin, nearest first,
// capped at shop_locator.MaxRankedShops. Equal distances keep input order.
// An invalid origin or candidate coordinate fails the whole call with
// geo.ErrInvalidCoordinate.
func Rank(origin geo.Coordinate, candidates []entity.Shop, radiusKm float64) ([]entity.RankedShop, error) {
	if err := origin.Validate(); err != nil {
		return nil, fmt.Errorf("origin: %w", err)
	}

	ranked := make([]entity.RankedShop, 0, min(len(candidates), shop_locator.MaxRankedShops))
	if len(candidates) == 0 || !(radiusKm > 0) {
		return ranked, nil
	}

	for i, shop := range candidates {
		location := geo.Coordinate{Latitude: shop.Latitude, Longitude: shop.Longitude}
		if err := location.Validate(); err != nil {
			return nil, fmt.Errorf("candidate %d (%q): %w", i, shop.Name, err)
		}

		distance := geo.HaversineKm(origin, location)
		if distance > radiusKm {
			continue
		}

		ranked = append(ranked, entity.RankedShop{Shop: shop, DistanceKm: distance})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if len(ranked) > shop_locator.MaxRankedShops {
		ranked = ranked[:shop_locator.MaxRankedShops]
	}

	return ranked, nil
}
