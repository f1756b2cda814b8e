package shopLocatorHandler

import (
	"AgriVision/internal/api/shop_locator"
	shopLocatorService "AgriVision/internal/api/shop_locator/service"
	"AgriVision/internal/entity"
	"AgriVision/internal/middleware"
	"AgriVision/pkg/geo"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeLocator struct {
	query  shop_locator.NearbyQuery
	called bool
	result shopLocatorService.NearbyResult
	err    error
}

func (f *fakeLocator) Nearby(_ context.Context, query shop_locator.NearbyQuery) (shopLocatorService.NearbyResult, error) {
	f.called = true
	f.query = query
	return f.result, f.err
}

func newTestApp(svc shopLocatorService.IShopLocatorService) *fiber.App {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	mw := middleware.New(logger)
	app.Use(mw.NewRequestIDMiddleware())

	New(logger, mw, svc).Start(app.Group("/api/v1"))
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, map[string]interface{}) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, jsoniter.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestNearby_Success(t *testing.T) {
	svc := &fakeLocator{result: shopLocatorService.NearbyResult{
		Source:       entity.ShopSourceDirectory,
		FallbackUsed: true,
		Shops: []entity.RankedShop{{
			Shop:       entity.Shop{ID: "1", Name: "Green Farm Pesticides & Seeds", Latitude: 18.5018, Longitude: 73.8636, Source: entity.ShopSourceDirectory},
			DistanceKm: 2.05937,
		}},
	}}
	app := newTestApp(svc)

	status, body := get(t, app, "/api/v1/shops/nearby?lat=18.52&lng=73.86&radius_km=5&source=places")
	assert.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, shop_locator.NearbyQuery{Latitude: 18.52, Longitude: 73.86, RadiusKm: 5, Source: entity.ShopSourcePlaces}, svc.query)
	assert.Equal(t, "directory", body["source"])
	assert.Equal(t, true, body["fallback_used"])
	assert.Equal(t, float64(1), body["total"])

	shops := body["shops"].([]interface{})
	require.Len(t, shops, 1)
	assert.Equal(t, 2.06, shops[0].(map[string]interface{})["distance_km"])
}

func TestNearby_DefaultsAndEmptyList(t *testing.T) {
	svc := &fakeLocator{result: shopLocatorService.NearbyResult{Source: entity.ShopSourceDirectory, Shops: []entity.RankedShop{}}}
	app := newTestApp(svc)

	status, body := get(t, app, "/api/v1/shops/nearby?lat=18.52&lng=73.86")
	assert.Equal(t, fiber.StatusOK, status)

	assert.Equal(t, shop_locator.DefaultRadiusKm, svc.query.RadiusKm)
	assert.Equal(t, entity.ShopSourceDirectory, svc.query.Source)
	assert.Equal(t, []interface{}{}, body["shops"])
}

func TestNearby_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{name: "missing lng", query: "lat=18.52", want: "lat and lng query parameters are required"},
		{name: "unparsable lat", query: "lat=north&lng=73.86", want: "lat and lng query parameters are required"},
		{name: "unparsable radius", query: "lat=18.52&lng=73.86&radius_km=far", want: "radius_km must be a number no greater than 100"},
		{name: "unknown source", query: "lat=18.52&lng=73.86&source=yellow_pages", want: "source must be either directory or places"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeLocator{}
			app := newTestApp(svc)

			status, body := get(t, app, "/api/v1/shops/nearby?"+tt.query)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.want, body["error"])
			assert.False(t, svc.called)
		})
	}
}

func TestNearby_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid coordinate", err: fmt.Errorf("origin: %w", geo.ErrInvalidCoordinate), status: fiber.StatusBadRequest},
		{name: "directory down", err: fmt.Errorf("%w: dial tcp", shop_locator.ErrShopsUnavailable), status: fiber.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(&fakeLocator{err: tt.err})

			status, _ := get(t, app, "/api/v1/shops/nearby?lat=95&lng=73.86")
			assert.Equal(t, tt.status, status)
		})
	}
}
