package shopLocatorHandler

import (
	"AgriVision/internal/api/shop_locator"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/handlerUtil"
	"AgriVision/pkg/log"
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

func (h *ShopLocatorHandler) Nearby(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), 15*time.Second)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	query, err := parseNearbyQuery(ctx)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "nearby_shops")
	}

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"lat":        query.Latitude,
		"lng":        query.Longitude,
		"radius_km":  query.RadiusKm,
		"source":     query.Source,
	}).Debug("Processing nearby shops request")

	result, err := h.shopLocatorService.Nearby(c, query)
	if err != nil {
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "nearby_shops")
	}

	resp := shop_locator.NearbyResponse{
		Latitude:     query.Latitude,
		Longitude:    query.Longitude,
		RadiusKm:     query.RadiusKm,
		Source:       result.Source,
		FallbackUsed: result.FallbackUsed,
		Shops:        make([]shop_locator.NearbyShopResponse, 0, len(result.Shops)),
		Total:        len(result.Shops),
	}
	for _, s := range result.Shops {
		resp.Shops = append(resp.Shops, toNearbyShopResponse(s))
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, resp)
	}
}

func parseNearbyQuery(ctx *fiber.Ctx) (shop_locator.NearbyQuery, error) {
	rawLat, rawLng := ctx.Query("lat"), ctx.Query("lng")
	if rawLat == "" || rawLng == "" {
		return shop_locator.NearbyQuery{}, shop_locator.ErrInvalidOrigin
	}

	lat, err := strconv.ParseFloat(rawLat, 64)
	if err != nil {
		return shop_locator.NearbyQuery{}, shop_locator.ErrInvalidOrigin
	}
	lng, err := strconv.ParseFloat(rawLng, 64)
	if err != nil {
		return shop_locator.NearbyQuery{}, shop_locator.ErrInvalidOrigin
	}

	radius := shop_locator.DefaultRadiusKm
	if raw := ctx.Query("radius_km"); raw != "" {
		radius, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return shop_locator.NearbyQuery{}, shop_locator.ErrInvalidRadius
		}
	}

	var source entity.ShopSource
	switch strings.ToLower(strings.TrimSpace(ctx.Query("source"))) {
	case "", string(entity.ShopSourceDirectory):
		source = entity.ShopSourceDirectory
	case string(entity.ShopSourcePlaces):
		source = entity.ShopSourcePlaces
	default:
		return shop_locator.NearbyQuery{}, shop_locator.ErrInvalidSource
	}

	return shop_locator.NearbyQuery{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
		Source:    source,
	}, nil
}

func toNearbyShopResponse(s entity.RankedShop) shop_locator.NearbyShopResponse {
	return shop_locator.NearbyShopResponse{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Phone:       s.Phone,
		Rating:      s.Rating,
		OpenNow:     s.OpenNow,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		Products:    s.Products,
		Source:      s.Source,
		DistanceKm:  math.Round(s.DistanceKm*100) / 100,
	}
}
