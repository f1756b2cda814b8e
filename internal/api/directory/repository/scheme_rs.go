package directoryRepository

import (
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type SchemeDB struct {
	ID                 int64          `db:"id"`
	Title              sql.NullString `db:"title"`
	Description        sql.NullString `db:"description"`
	Eligibility        sql.NullString `db:"eligibility"`
	Benefits           sql.NullString `db:"benefits"`
	ApplicationProcess sql.NullString `db:"application_process"`
	Deadline           sql.NullString `db:"deadline"`
	IsActive           sql.NullBool   `db:"is_active"`
	CreatedAt          time.Time      `db:"created_at"`
}

func (r *schemesRepository) GetActiveSchemes(ctx context.Context, limit int) ([]entity.Scheme, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SchemeDB

	argsKV := map[string]interface{}{
		"limit": limit,
	}

	query, args, err := sqlx.Named(queryGetActiveSchemes, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActiveSchemes named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActiveSchemes execution err")
		return nil, err
	}

	schemes := make([]entity.Scheme, 0, len(rows))
	for _, row := range rows {
		schemes = append(schemes, r.makeScheme(row))
	}

	return schemes, nil
}

func (r *schemesRepository) makeScheme(s SchemeDB) entity.Scheme {
	return entity.Scheme{
		ID:                 s.ID,
		Title:              s.Title.String,
		Description:        s.Description.String,
		Eligibility:        s.Eligibility.String,
		Benefits:           s.Benefits.String,
		ApplicationProcess: s.ApplicationProcess.String,
		Deadline:           s.Deadline.String,
		IsActive:           s.IsActive.Bool,
		CreatedAt:          s.CreatedAt,
	}
}
