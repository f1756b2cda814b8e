package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	contextPkg "AgriVision/pkg/context"
	"AgriVision/pkg/nlp"
	"AgriVision/pkg/utils"
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Directory is the read-only slice of the directory service the assistant needs.
type Directory interface {
	TopActiveSchemes(ctx context.Context, limit int) ([]entity.Scheme, error)
	SearchPesticides(ctx context.Context, term string) ([]entity.Pesticide, error)
	ListVerifiedShops(ctx context.Context) ([]entity.Shop, error)
}

var (
	schemeKeywords    = []string{"scheme", "government", "yojana", "help", "support"}
	pesticideKeywords = []string{"pesticide", "medicine", "spray", "fungicide", "herbicide"}
	shopKeywords      = []string{"shop", "store", "market", "buy"}
)

type dbTrigger struct {
	name     string
	keywords []string
	answer   func(ctx context.Context) (string, error)
}

type databaseStrategy struct {
	log       *logrus.Logger
	directory Directory
	cfg       Config
}

func NewDatabaseStrategy(log *logrus.Logger, directory Directory, cfg Config) Strategy {
	if directory == nil {
		return nil
	}
	return &databaseStrategy{
		log:       log,
		directory: directory,
		cfg:       cfg.withDefaults(),
	}
}

func (d *databaseStrategy) Name() entity.StrategyName {
	return entity.StrategyDatabase
}

func (d *databaseStrategy) TryRespond(ctx context.Context, query string) (string, error) {
	normalized := nlp.Normalize(query)

	triggers := []dbTrigger{
		{name: "schemes", keywords: schemeKeywords, answer: d.schemes},
		{name: "pesticides", keywords: pesticideKeywords, answer: d.pesticides},
		{name: "shops", keywords: shopKeywords, answer: d.shops},
	}

	for _, t := range triggers {
		if _, ok := nlp.ContainsAny(normalized, t.keywords); !ok {
			continue
		}

		text, err := t.answer(ctx)
		if err != nil {
			d.log.WithFields(logrus.Fields{
				"request_id": contextPkg.GetRequestID(ctx),
				"trigger":    t.name,
				"error":      err.Error(),
			}).Warn("Directory lookup failed, treating as no match")
			continue
		}
		if text != "" {
			return text, nil
		}
	}

	return "", assistant.ErrNoAnswer
}

func (d *databaseStrategy) schemes(ctx context.Context) (string, error) {
	schemes, err := d.directory.TopActiveSchemes(ctx, d.cfg.SchemeLimit)
	if err != nil || len(schemes) == 0 {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏛️ **Top Government Schemes for You:**\n\n")
	for _, s := range schemes {
		fmt.Fprintf(&sb, "🔹 **%s**: %s...\n", s.Title, utils.TruncateText(s.Description, d.cfg.DescriptionLimit))
	}
	return sb.String(), nil
}

func (d *databaseStrategy) pesticides(ctx context.Context) (string, error) {
	pesticides, err := d.directory.SearchPesticides(ctx, "")
	if err != nil || len(pesticides) == 0 {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🧪 **Commonly Used Pesticides:**\n\n")
	for _, p := range pesticides[:min(len(pesticides), d.cfg.PreviewLimit)] {
		fmt.Fprintf(&sb, "🔹 **%s**: %s\n", p.Name, p.UsageInfo)
	}
	return sb.String(), nil
}

func (d *databaseStrategy) shops(ctx context.Context) (string, error) {
	shops, err := d.directory.ListVerifiedShops(ctx)
	if err != nil || len(shops) == 0 {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏠 **Nearby Pesticide Shops:**\n\n")
	for _, s := range shops[:min(len(shops), d.cfg.PreviewLimit)] {
		fmt.Fprintf(&sb, "🔹 **%s**: %s\n", s.Name, s.Address)
	}
	return sb.String(), nil
}
