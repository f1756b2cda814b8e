package entity

import "time"

// ShopSource identifies where a shop record came from.
type ShopSource string

const (
	ShopSourceDirectory ShopSource = "directory"
	ShopSourcePlaces    ShopSource = "places"
)

type Shop struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	OwnerName     string     `json:"owner_name,omitempty"`
	Address       string     `json:"address"`
	City          string     `json:"city,omitempty"`
	State         string     `json:"state,omitempty"`
	Pincode       string     `json:"pincode,omitempty"`
	Latitude      float64    `json:"latitude"`
	Longitude     float64    `json:"longitude"`
	Phone         string     `json:"phone,omitempty"`
	Email         string     `json:"email,omitempty"`
	Rating        *float64   `json:"rating,omitempty"`
	OpenNow       *bool      `json:"open_now,omitempty"`
	OpeningTime   string     `json:"opening_time,omitempty"`
	ClosingTime   string     `json:"closing_time,omitempty"`
	Products      []string   `json:"products,omitempty"`
	LicenseNumber string     `json:"license_number,omitempty"`
	Verified      bool       `json:"verified"`
	Source        ShopSource `json:"source"`
	CreatedAt     time.Time  `json:"created_at,omitempty"`
}

// RankedShop is a shop annotated with its distance from the search origin.
// It only lives for the duration of one request.
type RankedShop struct {
	Shop
	DistanceKm float64 `json:"distance_km"`
}
