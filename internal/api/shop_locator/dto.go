package shop_locator

import "AgriVision/internal/entity"

const (
	// MaxRankedShops caps every ranked result list.
	MaxRankedShops = 50

	DefaultRadiusKm = 10.0
	MaxRadiusKm     = 100.0
)

type NearbyQuery struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
	Source    entity.ShopSource
}

type NearbyShopResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Address     string            `json:"address"`
	City        string            `json:"city,omitempty"`
	Latitude    float64           `json:"latitude"`
	Longitude   float64           `json:"longitude"`
	Phone       string            `json:"phone,omitempty"`
	Rating      *float64          `json:"rating,omitempty"`
	OpenNow     *bool             `json:"open_now,omitempty"`
	OpeningTime string            `json:"opening_time,omitempty"`
	ClosingTime string            `json:"closing_time,omitempty"`
	Products    []string          `json:"products,omitempty"`
	Source      entity.ShopSource `json:"source"`
	DistanceKm  float64           `json:"distance_km"`
}

type NearbyResponse struct {
	Latitude     float64              `json:"latitude"`
	Longitude    float64              `json:"longitude"`
	RadiusKm     float64              `json:"radius_km"`
	Source       entity.ShopSource    `json:"source"`
	FallbackUsed bool                 `json:"fallback_used"`
	Shops        []NearbyShopResponse `json:"shops"`
	Total        int                  `json:"total"`
}
