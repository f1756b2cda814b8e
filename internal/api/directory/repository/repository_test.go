package directoryRepository

import (
	"AgriVision/internal/entity"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shopColumns = []string{
	"id", "shop_name", "owner_name", "address", "city", "state", "pincode", "latitude", "longitude",
	"phone", "email", "rating", "is_open", "opening_time", "closing_time", "products_available",
	"license_number", "verified", "created_at",
}

func newTestClient(t *testing.T) (Client, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	repo := New(sqlx.NewDb(mockDB, "postgres"), logger)
	client, err := repo.NewClient(false)
	require.NoError(t, err)

	return client, mock
}

func TestGetActiveSchemes(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "eligibility", "benefits", "application_process", "deadline", "is_active", "created_at",
	}).
		AddRow(2, "PMFBY", "Crop insurance", "All farmers", "Coverage", "Insurer", "Before sowing", true, now).
		AddRow(1, "PM-KISAN", "Income support", nil, nil, nil, "Ongoing", true, now.Add(-time.Hour))

	mock.ExpectQuery(`FROM government_schemes\s+WHERE is_active = TRUE\s+ORDER BY created_at DESC\s+LIMIT \$1`).
		WithArgs(3).
		WillReturnRows(rows)

	schemes, err := client.Schemes.GetActiveSchemes(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, schemes, 2)

	assert.Equal(t, "PMFBY", schemes[0].Title)
	assert.Equal(t, "Crop insurance", schemes[0].Description)
	assert.Equal(t, "", schemes[1].Eligibility)
	assert.True(t, schemes[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetActiveSchemes_DatabaseError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM government_schemes`).WillReturnError(errors.New("connection refused"))

	schemes, err := client.Schemes.GetActiveSchemes(context.Background(), 3)
	assert.Error(t, err)
	assert.Nil(t, schemes)
}

func TestSearchPesticides_EmptyTermMatchesAll(t *testing.T) {
	client, mock := newTestClient(t)

	rows := sqlmock.NewRows([]string{
		"id", "name", "company", "usage_info", "crop_applicable", "safety_instructions", "dosage", "is_active",
	}).
		AddRow(1, "Chlorpyrifos 20% EC", "PI Industries", "Broad-spectrum insecticide", "Cotton", "Toxic", "2 ml/l", true).
		AddRow(2, "Imidacloprid 17.8% SL", "Bayer", "Systemic insecticide for sucking pests", "Rice", "Avoid skin", "0.3 ml/l", true)

	mock.ExpectQuery(`FROM pesticides\s+WHERE is_active = TRUE AND name ILIKE \$1`).
		WithArgs("%%").
		WillReturnRows(rows)

	pesticides, err := client.Pesticides.SearchPesticides(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, pesticides, 2)
	assert.Equal(t, "Imidacloprid 17.8% SL", pesticides[1].Name)
	assert.Equal(t, "Systemic insecticide for sucking pests", pesticides[1].UsageInfo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchPesticides_EscapesWildcards(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`FROM pesticides`).
		WithArgs(`%20\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	pesticides, err := client.Pesticides.SearchPesticides(context.Background(), "20%")
	require.NoError(t, err)
	assert.Empty(t, pesticides)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetVerifiedShops(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now()

	rows := sqlmock.NewRows(shopColumns).
		AddRow(1, "Green Farm Pesticides & Seeds", "Ramesh Patil", "Market Yard, Gultekdi", "Pune", "Maharashtra", "411037",
			18.5018, 73.8636, "+91 9876543210", "greenfarm@example.com", 4.5, true, "08:00:00", "20:00:00",
			"Insecticides, Fungicides,Seeds", "PUN/PEST/2020/001", true, now).
		AddRow(2, "Kisan Seva Kendra", "", "Main Road, Pimpri", "Pune", "", "", 18.6298, 73.7997, "", "", nil, nil, "", "", "", "", true, now)

	mock.ExpectQuery(`FROM pesticide_shops\s+WHERE verified = TRUE\s+ORDER BY shop_name ASC`).WillReturnRows(rows)

	shops, err := client.Shops.GetVerifiedShops(context.Background())
	require.NoError(t, err)
	require.Len(t, shops, 2)

	first := shops[0]
	assert.Equal(t, "1", first.ID)
	assert.Equal(t, []string{"Insecticides", "Fungicides", "Seeds"}, first.Products)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 4.5, *first.Rating)
	require.NotNil(t, first.OpenNow)
	assert.True(t, *first.OpenNow)
	assert.Equal(t, entity.ShopSourceDirectory, first.Source)

	second := shops[1]
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.OpenNow)
	assert.Empty(t, second.Products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchShops_RepeatsPatternForEachColumn(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectQuery(`shop_name ILIKE \$1 OR address ILIKE \$2 OR city ILIKE \$3`).
		WithArgs("%pimpri%", "%pimpri%", "%pimpri%").
		WillReturnRows(sqlmock.NewRows(shopColumns))

	shops, err := client.Shops.SearchShops(context.Background(), " pimpri ")
	require.NoError(t, err)
	assert.Empty(t, shops)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateShop(t *testing.T) {
	client, mock := newTestClient(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO pesticide_shops`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(42, now))

	shop, err := client.Shops.CreateShop(context.Background(), entity.Shop{
		Name:      "Bharat Agro Store",
		Address:   "Shop Complex, Hinjewadi",
		Latitude:  18.5912,
		Longitude: 73.7389,
		Products:  []string{"Pesticides", "Seeds"},
	})
	require.NoError(t, err)
	assert.Equal(t, "42", shop.ID)
	assert.True(t, shop.Verified)
	assert.Equal(t, now, shop.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
