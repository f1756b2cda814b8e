package directoryRepository

import (
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type PesticideDB struct {
	ID                 int64          `db:"id"`
	Name               sql.NullString `db:"name"`
	Company            sql.NullString `db:"company"`
	UsageInfo          sql.NullString `db:"usage_info"`
	CropApplicable     sql.NullString `db:"crop_applicable"`
	SafetyInstructions sql.NullString `db:"safety_instructions"`
	Dosage             sql.NullString `db:"dosage"`
	IsActive           sql.NullBool   `db:"is_active"`
}

func (r *pesticidesRepository) SearchPesticides(ctx context.Context, term string) ([]entity.Pesticide, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []PesticideDB

	argsKV := map[string]interface{}{
		"pattern": likePattern(term),
	}

	query, args, err := sqlx.Named(querySearchPesticides, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("SearchPesticides named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"term":       term,
			"error":      err.Error(),
		}).Error("SearchPesticides execution err")
		return nil, err
	}

	pesticides := make([]entity.Pesticide, 0, len(rows))
	for _, row := range rows {
		pesticides = append(pesticides, entity.Pesticide{
			ID:                 row.ID,
			Name:               row.Name.String,
			Company:            row.Company.String,
			UsageInfo:          row.UsageInfo.String,
			CropApplicable:     row.CropApplicable.String,
			SafetyInstructions: row.SafetyInstructions.String,
			Dosage:             row.Dosage.String,
			IsActive:           row.IsActive.Bool,
		})
	}

	return pesticides, nil
}
