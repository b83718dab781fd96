package services

import (
	"encoding/json"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/Sowjanya474/resume-ranker/internal/models"
)

const (
	// namePlaceholder is the literal the model echoes back from the prompt's
	// example JSON when it fails to identify the candidate.
	namePlaceholder = "Candidate Name"

	parseErrorSummary = "Error parsing AI response."
)

type NormalizerService interface {
	Normalize(rawModelOutput, filename string) models.MatchResult
}

type normalizerService struct{}

func NewNormalizerService() NormalizerService {
	return &normalizerService{}
}

// Normalize repairs a raw model reply into a MatchResult. It never fails:
// unparseable output degrades to a zero-score placeholder record so the rest
// of the batch keeps going.
func (n *normalizerService) Normalize(rawModelOutput, filename string) models.MatchResult {
	candidate := extractJSON(rawModelOutput)

	var data map[string]any
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		log.Printf("❌ JSON error for %s: %v\n", filename, err)
		log.Printf("❌ Bad JSON content: %s\n", candidate)
		return models.MatchResult{
			Name:            filename,
			Filename:        filename,
			MatchPercentage: 0,
			GlobalMatch:     "N/A",
			MatchedKeywords: []string{},
			MissingKeywords: []string{},
			Summary:         parseErrorSummary,
		}
	}

	result := models.MatchResult{
		Filename:        filename,
		MatchPercentage: coercePercentage(data["MatchPercentage"]),
	}

	// Model-omitted name or the prompt's example literal falls back to the
	// uploaded filename.
	name := stringify(data["Name"])
	if name == "" || name == namePlaceholder {
		name = filename
	}
	result.Name = name

	// Remaining fields are defaulted only when absent: a value the model
	// explicitly set, even an empty one, is kept as-is.
	if v, ok := data["GlobalMatch"]; ok {
		result.GlobalMatch = stringify(v)
	} else {
		result.GlobalMatch = "N/A"
	}
	if v, ok := data["MarketTier"]; ok {
		result.MarketTier = stringify(v)
	}
	if v, ok := data["Summary"]; ok {
		result.Summary = stringify(v)
	}
	result.MatchedKeywords = stringifySlice(data["MatchedKeywords"])
	result.MissingKeywords = stringifySlice(data["MissingKeywords"])

	return result
}

// extractJSON isolates the JSON object from a reply that may carry markdown
// fences or commentary around it despite the prompt's instructions.
func extractJSON(raw string) string {
	if raw == "" {
		return "{}"
	}

	cleaned := strings.ReplaceAll(raw, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start != -1 && end != -1 && end > start {
		return cleaned[start : end+1]
	}

	return cleaned
}

// coercePercentage turns whatever the model put in MatchPercentage into an
// integer. A trailing percent sign is tolerated; anything non-numeric is 0.
// The value is deliberately not clamped to [0,100].
func coercePercentage(v any) int {
	switch val := v.(type) {
	case float64:
		return int(math.Round(val))
	case string:
		s := strings.TrimSpace(val)
		s = strings.TrimSuffix(s, "%")
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return int(math.Round(f))
	default:
		return 0
	}
}

func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		bytes, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(bytes)
	}
}

func stringifySlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}

	result := make([]string, 0, len(items))
	for _, item := range items {
		result = append(result, stringify(item))
	}
	return result
}
