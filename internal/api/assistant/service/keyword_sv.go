package assistantService

import (
	"AgriVision/internal/api/assistant"
	"AgriVision/internal/entity"
	"AgriVision/pkg/nlp"
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type keywordStrategy struct {
	crops   KeywordTable
	topics  KeywordTable
	farming KeywordTable
}

func NewKeywordStrategy(cfg Config) Strategy {
	topics := topicKeywords.Ordered(cfg.TopicOrder)

	farming := make(KeywordTable, 0, len(topics)+len(farmingKeywords))
	farming = append(farming, topics...)
	farming = append(farming, farmingKeywords...)

	return &keywordStrategy{
		crops:   cropKeywords.Ordered(cfg.CropOrder),
		topics:  topics,
		farming: farming,
	}
}

func (k *keywordStrategy) Name() entity.StrategyName {
	return entity.StrategyKeyword
}

func (k *keywordStrategy) TryRespond(_ context.Context, query string) (string, error) {
	normalized := nlp.Normalize(query)

	if crop, ok := k.crops.Match(normalized); ok {
		advice := cropAdvice[crop]
		for _, topic := range k.topics.MatchAll(normalized) {
			if text, ok := advice[topic]; ok {
				return fmt.Sprintf("🌾 **%s %s**: %s", titleCase(crop), titleCase(topic), text), nil
			}
		}

		general, ok := advice[TopicGeneral]
		if !ok {
			general = defaultCropGeneral
		}
		return fmt.Sprintf("🌾 **%s Information**: %s", titleCase(crop), general), nil
	}

	if topic, ok := k.farming.Match(normalized); ok {
		text, ok := farmingAdvice[topic]
		if !ok {
			text = farmingAdvice[TopicGeneral]
		}
		return fmt.Sprintf("🌱 **Farming Tip**: %s", text), nil
	}

	return "", assistant.ErrNoAnswer
}

// A Caser is stateful, build one per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
