package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/Sowjanya474/resume-ranker/internal/models"
)

// ErrNoResults is returned when every file in the batch was skipped or
// rejected, so an empty list would be indistinguishable from a scored batch.
var ErrNoResults = errors.New("no results: all files were skipped or failed")

type EvaluatorService interface {
	RankResumes(ctx context.Context, jobDescription string, files []models.ResumeFile) ([]models.MatchResult, []string, error)
}

type evaluatorService struct {
	extractor     ExtractorService
	geminiService GeminiService
	normalizer    NormalizerService
	ranker        RankerService
	promptBuilder *PromptBuilder
	maxFileSize   int64
}

func NewEvaluatorService(
	extractor ExtractorService,
	geminiService GeminiService,
	normalizer NormalizerService,
	ranker RankerService,
	maxFileSize int64,
) EvaluatorService {
	return &evaluatorService{
		extractor:     extractor,
		geminiService: geminiService,
		normalizer:    normalizer,
		ranker:        ranker,
		promptBuilder: NewPromptBuilder(),
		maxFileSize:   maxFileSize,
	}
}

// RankResumes scores each uploaded file against the job description, one file
// at a time, and returns the records ordered by match percentage. Per-file
// faults never abort the batch: a skipped file produces a warning, a failed
// model call or unparseable reply produces a placeholder record.
func (e *evaluatorService) RankResumes(ctx context.Context, jobDescription string, files []models.ResumeFile) ([]models.MatchResult, []string, error) {
	var results []models.MatchResult
	var warnings []string

	for _, file := range files {
		if file.Filename == "" {
			continue
		}

		log.Printf("🔄 Processing: %s...\n", file.Filename)

		if int64(len(file.Data)) > e.maxFileSize {
			warnings = append(warnings, fmt.Sprintf("%q skipped: exceeds %d bytes", file.Filename, e.maxFileSize))
			continue
		}

		text, err := e.extractor.ExtractText(file.Filename, file.Data)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%q skipped: %v", file.Filename, err))
			continue
		}

		if strings.TrimSpace(text) == "" {
			log.Printf("⚠️  Empty text for %s\n", file.Filename)
			warnings = append(warnings, fmt.Sprintf("no extractable text for %q, skipping", file.Filename))
			continue
		}

		prompt := e.promptBuilder.BuildScoringPrompt(text, jobDescription)

		raw, err := e.geminiService.GenerateText(ctx, prompt)
		if err != nil {
			// A failed model call degrades to an empty object, which the
			// normalizer backfills into a zero-score record.
			log.Printf("❌ Gemini call failed for %s: %v\n", file.Filename, err)
			raw = "{}"
		}

		results = append(results, e.normalizer.Normalize(raw, file.Filename))
	}

	if len(results) == 0 {
		return nil, warnings, ErrNoResults
	}

	return e.ranker.Rank(results), warnings, nil
}
