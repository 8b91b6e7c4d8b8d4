package vision

import (
	"encoding/json"
	"regexp"
	"strings"

	"fridged/pkg/types"
)

// rawClassification tolerates the loose typing of model output: numbers
// may arrive as strings ("-18°C", "7 days") and field values may be
// missing entirely.
type rawClassification struct {
	Name          string          `json:"name"`
	FoodName      string          `json:"food_name"`
	Category      string          `json:"category"`
	OptimalTemp   json.RawMessage `json:"optimal_temperature"`
	OptTemp       json.RawMessage `json:"optimal_temp"`
	ShelfLifeDays json.RawMessage `json:"shelf_life_days"`
	Level         *int            `json:"level"`
	Section       *int            `json:"section"`
	Rationale     string          `json:"rationale"`
	Reasoning     string          `json:"reasoning"`
}

var digitsRe = regexp.MustCompile(`\d+`)

// indefinite phrasings seen from vision models, including the Chinese
// wording some models answer with regardless of prompt language.
var indefiniteWords = []string{"indefinite", "long-term", "long term", "never", "n/a", "长期", "永久", "无限期"}

// DefaultClassification is the documented fallback profile used when a
// model reply cannot be parsed: a generic refrigerated item with a short
// shelf life.
func DefaultClassification() types.Classification {
	return types.Classification{
		Name:          "unknown item",
		Category:      "other",
		OptimalTemp:   4,
		ShelfLifeDays: 7,
		Level:         2,
		Section:       0,
	}
}

// ParseClassification extracts the classification JSON object from a model
// reply. Replies often wrap the object in prose or code fences, so parsing
// starts at the first '{' and ends at the last '}'. Anything unusable
// degrades to the default profile, never to an error.
func ParseClassification(reply string) types.Classification {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return DefaultClassification()
	}
	var raw rawClassification
	if err := json.Unmarshal([]byte(reply[start:end+1]), &raw); err != nil {
		return DefaultClassification()
	}

	cls := DefaultClassification()
	if name := firstNonEmpty(raw.Name, raw.FoodName); name != "" {
		cls.Name = name
	}
	if strings.TrimSpace(raw.Category) != "" {
		cls.Category = strings.ToLower(strings.TrimSpace(raw.Category))
	}
	if temp, ok := parseTemperature(firstRaw(raw.OptimalTemp, raw.OptTemp)); ok {
		cls.OptimalTemp = temp
	}
	if days, ok := parseShelfLife(raw.ShelfLifeDays); ok {
		cls.ShelfLifeDays = days
	}
	if raw.Level != nil {
		cls.Level = *raw.Level
	}
	if raw.Section != nil {
		cls.Section = *raw.Section
	}
	cls.Rationale = firstNonEmpty(raw.Rationale, raw.Reasoning)
	return cls
}

// parseTemperature accepts a JSON number or a string like "-18°C".
func parseTemperature(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return int(n), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	m := digitsRe.FindString(s)
	if m == "" {
		return 0, false
	}
	v := 0
	for _, ch := range m {
		v = v*10 + int(ch-'0')
	}
	if strings.Contains(s, "-") {
		v = -v
	}
	return v, true
}

// parseShelfLife accepts a JSON number, a numeric string like "7 days", or
// an indefinite phrase which maps to the sentinel.
func parseShelfLife(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if n < 0 {
			return types.IndefiniteShelfLife, true
		}
		if n == 0 {
			return 0, false
		}
		return int(n), true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, false
	}
	lower := strings.ToLower(strings.TrimSpace(s))
	for _, w := range indefiniteWords {
		if strings.Contains(lower, w) {
			return types.IndefiniteShelfLife, true
		}
	}
	if m := digitsRe.FindString(lower); m != "" {
		v := 0
		for _, ch := range m {
			v = v*10 + int(ch-'0')
		}
		if v > 0 {
			return v, true
		}
	}
	return 0, false
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

func firstRaw(vals ...json.RawMessage) json.RawMessage {
	for _, v := range vals {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}
