package directoryRepository

import (
	"AgriVision/internal/entity"
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SQLExecutor interface {
	sqlx.ExtContext
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
	Rebind(query string) string
}

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var sqlExecutor SQLExecutor
	var commitFunc, rollbackFunc func() error

	sqlExecutor = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		sqlExecutor = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Schemes:    &schemesRepository{q: sqlExecutor, log: r.log},
		Pesticides: &pesticidesRepository{q: sqlExecutor, log: r.log},
		Shops:      &shopsRepository{q: sqlExecutor, log: r.log},
		Commit:     commitFunc,
		Rollback:   rollbackFunc,
	}, nil
}

type Client struct {
	Schemes interface {
		GetActiveSchemes(ctx context.Context, limit int) ([]entity.Scheme, error)
	}

	Pesticides interface {
		SearchPesticides(ctx context.Context, term string) ([]entity.Pesticide, error)
	}

	Shops interface {
		GetVerifiedShops(ctx context.Context) ([]entity.Shop, error)
		SearchShops(ctx context.Context, term string) ([]entity.Shop, error)
		CreateShop(ctx context.Context, shop entity.Shop) (entity.Shop, error)
	}

	Commit   func() error
	Rollback func() error
}

type schemesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type pesticidesRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}

type shopsRepository struct {
	q   SQLExecutor
	log *logrus.Logger
}
