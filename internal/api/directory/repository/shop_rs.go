package directoryRepository

import (
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/utils"
	"context"
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type ShopDB struct {
	ID                int64           `db:"id"`
	ShopName          sql.NullString  `db:"shop_name"`
	OwnerName         sql.NullString  `db:"owner_name"`
	Address           sql.NullString  `db:"address"`
	City              sql.NullString  `db:"city"`
	State             sql.NullString  `db:"state"`
	Pincode           sql.NullString  `db:"pincode"`
	Latitude          float64         `db:"latitude"`
	Longitude         float64         `db:"longitude"`
	Phone             sql.NullString  `db:"phone"`
	Email             sql.NullString  `db:"email"`
	Rating            sql.NullFloat64 `db:"rating"`
	IsOpen            sql.NullBool    `db:"is_open"`
	OpeningTime       sql.NullString  `db:"opening_time"`
	ClosingTime       sql.NullString  `db:"closing_time"`
	ProductsAvailable sql.NullString  `db:"products_available"`
	LicenseNumber     sql.NullString  `db:"license_number"`
	Verified          sql.NullBool    `db:"verified"`
	CreatedAt         time.Time       `db:"created_at"`
}

func (r *shopsRepository) GetVerifiedShops(ctx context.Context) ([]entity.Shop, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ShopDB

	if err := r.q.SelectContext(ctx, &rows, queryGetVerifiedShops); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetVerifiedShops execution err")
		return nil, err
	}

	return r.makeShops(rows), nil
}

func (r *shopsRepository) SearchShops(ctx context.Context, term string) ([]entity.Shop, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []ShopDB

	argsKV := map[string]interface{}{
		"pattern": likePattern(term),
	}

	query, args, err := sqlx.Named(querySearchShops, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchShops named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"term":       term,
			"error":      err.Error(),
		}).Error("SearchShops execution err")
		return nil, err
	}

	return r.makeShops(rows), nil
}

func (r *shopsRepository) CreateShop(ctx context.Context, shop entity.Shop) (entity.Shop, error) {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"shop_name":          shop.Name,
		"owner_name":         shop.OwnerName,
		"address":            shop.Address,
		"city":               shop.City,
		"state":              shop.State,
		"pincode":            shop.Pincode,
		"latitude":           shop.Latitude,
		"longitude":          shop.Longitude,
		"phone":              shop.Phone,
		"email":              shop.Email,
		"opening_time":       shop.OpeningTime,
		"closing_time":       shop.ClosingTime,
		"products_available": strings.Join(shop.Products, ","),
		"license_number":     shop.LicenseNumber,
	}

	query, args, err := sqlx.Named(queryCreateShop, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateShop")
		return entity.Shop{}, err
	}
	query = r.q.Rebind(query)

	var id int64
	var createdAt time.Time
	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&id, &createdAt); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating shop")
		return entity.Shop{}, err
	}

	shop.ID = strconv.FormatInt(id, 10)
	shop.CreatedAt = createdAt
	shop.Verified = true
	shop.Source = entity.ShopSourceDirectory

	return shop, nil
}

func (r *shopsRepository) makeShops(rows []ShopDB) []entity.Shop {
	shops := make([]entity.Shop, 0, len(rows))
	for _, row := range rows {
		shops = append(shops, r.makeShop(row))
	}
	return shops
}

func (r *shopsRepository) makeShop(s ShopDB) entity.Shop {
	shop := entity.Shop{
		ID:            strconv.FormatInt(s.ID, 10),
		Name:          s.ShopName.String,
		OwnerName:     s.OwnerName.String,
		Address:       s.Address.String,
		City:          s.City.String,
		State:         s.State.String,
		Pincode:       s.Pincode.String,
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		Phone:         s.Phone.String,
		Email:         s.Email.String,
		OpeningTime:   s.OpeningTime.String,
		ClosingTime:   s.ClosingTime.String,
		Products:      utils.SplitCSV(s.ProductsAvailable.String),
		LicenseNumber: s.LicenseNumber.String,
		Verified:      s.Verified.Bool,
		Source:        entity.ShopSourceDirectory,
		CreatedAt:     s.CreatedAt,
	}

	if s.Rating.Valid {
		rating := s.Rating.Float64
		shop.Rating = &rating
	}
	if s.IsOpen.Valid {
		open := s.IsOpen.Bool
		shop.OpenNow = &open
	}

	return shop
}
