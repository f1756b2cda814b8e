package places

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"AgriVision/internal/entity"
	"AgriVision/pkg/geo"

	jsoniter "github.com/json-iterator/go"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	SearchKeyword  = "pesticide shop agricultural store farm supply"

	// MaxRadiusMeters is the largest radius the nearby search accepts.
	MaxRadiusMeters = 50000
)

var (
	ErrNotConfigured = errors.New("places: API key not configured")
	ErrBadStatus     = errors.New("places: unexpected response status")
)

type IPlaces interface {
	NearbyShops(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]entity.Shop, error)
}

type nearbyResponse struct {
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
	Results      []place `json:"results"`
}

type place struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   *float64 `json:"rating"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours"`
}

type placesClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New returns nil when GOOGLE_PLACES_API_KEY is not set.
func New() IPlaces {
	apiKey := os.Getenv("GOOGLE_PLACES_API_KEY")
	if apiKey == "" {
		return nil
	}
	return NewWithBaseURL(apiKey, DefaultBaseURL)
}

func NewWithBaseURL(apiKey, baseURL string) IPlaces {
	return &placesClient{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *placesClient) NearbyShops(ctx context.Context, origin geo.Coordinate, radiusKm float64) ([]entity.Shop, error) {
	if p.apiKey == "" {
		return nil, ErrNotConfigured
	}

	radius := int(math.Round(radiusKm * 1000))
	if radius > MaxRadiusMeters {
		radius = MaxRadiusMeters
	}

	params := url.Values{}
	params.Set("location", origin.String())
	params.Set("radius", strconv.Itoa(radius))
	params.Set("keyword", SearchKeyword)
	params.Set("key", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places API error: %s", resp.Status)
	}

	var out nearbyResponse
	if err := jsoniter.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode places response: %w", err)
	}

	switch out.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []entity.Shop{}, nil
	default:
		return nil, fmt.Errorf("%w: %s %s", ErrBadStatus, out.Status, out.ErrorMessage)
	}

	shops := make([]entity.Shop, 0, len(out.Results))
	for _, r := range out.Results {
		shop := entity.Shop{
			ID:        r.PlaceID,
			Name:      r.Name,
			Address:   r.Vicinity,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
			Rating:    r.Rating,
			Products:  []string{},
			Source:    entity.ShopSourcePlaces,
		}
		if r.OpeningHours != nil {
			shop.OpenNow = r.OpeningHours.OpenNow
		}
		if shop.Address == "" {
			shop.Address = "N/A"
		}
		shops = append(shops, shop)
	}

	return shops, nil
}
