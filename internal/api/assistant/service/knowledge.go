package assistantService

import (
	"AgriVision/pkg/nlp"
)

// KeywordSet names a crop or topic and the surface forms that select it,
// including transliterated Hindi terms.
type KeywordSet struct {
	Name     string
	Keywords []string
}

// KeywordTable is matched first-set-wins in slice order.
type KeywordTable []KeywordSet

// Match returns the first set with a keyword contained in normalized.
func (t KeywordTable) Match(normalized string) (string, bool) {
	for _, set := range t {
		if _, ok := nlp.ContainsAny(normalized, set.Keywords); ok {
			return set.Name, true
		}
	}
	return "", false
}

// MatchAll returns every matching set name in table order.
func (t KeywordTable) MatchAll(normalized string) []string {
	var names []string
	for _, set := range t {
		if _, ok := nlp.ContainsAny(normalized, set.Keywords); ok {
			names = append(names, set.Name)
		}
	}
	return names
}

// Ordered returns a copy with the sets named in order moved to the front.
// Unknown names are ignored and the rest keep their relative order.
func (t KeywordTable) Ordered(order []string) KeywordTable {
	out := make(KeywordTable, 0, len(t))
	used := make(map[string]bool, len(t))

	for _, name := range order {
		for _, set := range t {
			if set.Name == name && !used[name] {
				out = append(out, set)
				used[name] = true
			}
		}
	}
	for _, set := range t {
		if !used[set.Name] {
			out = append(out, set)
		}
	}
	return out
}

const (
	TopicGeneral    = "general"
	TopicIrrigation = "irrigation"
	TopicFertilizer = "fertilizer"
	TopicPest       = "pest"
	TopicHarvest    = "harvest"

	TopicSustainability = "sustainability"
	TopicTechnology     = "technology"
	TopicOrganic        = "organic"
	TopicSoil           = "soil"
)

const defaultCropGeneral = "I recommend certified seeds and proper soil testing."

var cropKeywords = KeywordTable{
	{Name: "wheat", Keywords: []string{"wheat", "gehu", "gandum"}},
	{Name: "rice", Keywords: []string{"rice", "chawal", "dhan"}},
	{Name: "cotton", Keywords: []string{"cotton", "kapas", "kapaas"}},
	{Name: "maize", Keywords: []string{"maize", "makka", "corn"}},
}

var topicKeywords = KeywordTable{
	{Name: TopicIrrigation, Keywords: []string{"irrigate", "water", "irrigation", "pani", "jal"}},
	{Name: TopicFertilizer, Keywords: []string{"fertilizer", "khad", "manure", "npk"}},
	{Name: TopicPest, Keywords: []string{"pest", "insect", "disease", "pesticide", "keet", "bimari"}},
	{Name: TopicHarvest, Keywords: []string{"harvest", "katni", "katai"}},
}

// farmingKeywords are consulted after the crop topics when no crop matched.
var farmingKeywords = KeywordTable{
	{Name: TopicSustainability, Keywords: []string{"sustainab", "crop rotation", "biodiversity"}},
	{Name: TopicTechnology, Keywords: []string{"technology", "drone", "sensor", "precision farming", "smart farming"}},
	{Name: TopicOrganic, Keywords: []string{"organic", "vermicompost", "compost"}},
	{Name: TopicSoil, Keywords: []string{"soil", "mitti"}},
}

var cropAdvice = map[string]map[string]string{
	"wheat": {
		TopicGeneral:    "For wheat cultivation, I recommend sowing in October-November. Use certified seeds, apply balanced NPK fertilizer, and irrigate at critical stages. Yield potential: 3-4 quintals per acre.",
		TopicIrrigation: "Wheat needs irrigation at crown root initiation (21-25 days), tillering (45-50 days), flowering (70-80 days), and grain filling (90-100 days). Stop irrigation 15 days before harvest.",
		TopicFertilizer: "Apply NPK 150:60:40 kg/ha. Apply all P&K + 50% N basal, remaining N in 2 splits at crown root and boot leaf stages. Add micronutrients as needed.",
		TopicPest:       "For wheat aphids, use Imidacloprid or acetamiprid. For rust, use Propiconazole or Tebuconazole. Follow IPM practices and ETL levels.",
		TopicHarvest:    "Harvest when grains turn golden yellow and moisture content is 12-14%. Use proper combine harvester and store at 12% moisture.",
	},
	"rice": {
		TopicGeneral:    "For rice cultivation, I recommend Kharif season sowing with first monsoon rains. Use high-yielding varieties and maintain proper water management.",
		TopicIrrigation: "Rice needs continuous flooding (2-5 cm) during vegetative stage. Use Alternate Wetting & Drying (AWD) to save 25-30% water.",
		TopicFertilizer: "Apply NPK 120:60:40 kg/ha. Apply 50% N + all P&K basal, remaining N in 2 equal splits at tillering and panicle initiation.",
		TopicPest:       "For rice stem borer, use Cartap Hydrochloride. For leaf folder, Chlorpyrifos. For blast disease, Tricyclazole. Follow IPM practices.",
		TopicHarvest:    "Drain field 15 days before harvest. Harvest when 80% grains turn golden. Use proper combine harvester and dry to 14% moisture.",
	},
	"cotton": {
		TopicGeneral:    "For cotton cultivation, I recommend Kharif season sowing with Bt cotton varieties. Maintain proper spacing and pest management.",
		TopicIrrigation: "Cotton needs irrigation at critical stages: square formation, flowering, and boll development. Use drip irrigation for efficiency.",
		TopicFertilizer: "Apply NPK 120:60:40 kg/ha. Apply 25% N + all P&K basal, remaining N in 3 splits at square formation, flowering, and boll development.",
		TopicPest:       "For cotton bollworms, use Spinosad or Chlorantraniliprole. For aphids, Imidacloprid. For whitefly, Thiamethoxam. Follow IPM.",
		TopicHarvest:    "Pick cotton in 2-3 rounds when 60% bolls open. Use proper picking methods to maintain fiber quality.",
	},
}

var farmingAdvice = map[string]string{
	TopicGeneral:        "For successful farming, I recommend an integrated approach combining traditional wisdom with modern technology for sustainable agriculture.",
	TopicSustainability: "Practice crop rotation, organic farming, water conservation, and biodiversity for long-term farm health.",
	TopicTechnology:     "Use precision agriculture, IoT sensors, drones, and AI for data-driven decision making.",
	TopicOrganic:        "Consider organic certification for premium prices and export markets. Use FYM and vermicompost.",
	TopicSoil:           "Maintain soil health through regular testing and organic matter addition. Use Soil Health Cards.",
}
