package directory

import "AgriVision/pkg/response"

var (
	ErrDirectoryUnavailable = response.NewError(503, "directory unavailable")
	ErrInvalidLimit         = response.NewError(400, "limit must be between 1 and 50")
	ErrInvalidShopLocation  = response.NewError(400, "shop coordinates are out of range")
	ErrCreateShop           = response.NewError(500, "failed to create shop")
)
