package shop_locator

import "AgriVision/pkg/response"

var (
	ErrInvalidRadius    = response.NewError(400, "radius_km must be a number no greater than 100")
	ErrInvalidSource    = response.NewError(400, "source must be either directory or places")
	ErrInvalidOrigin    = response.NewError(400, "lat and lng query parameters are required")
	ErrShopsUnavailable = response.NewError(503, "shop directory unavailable")
)
