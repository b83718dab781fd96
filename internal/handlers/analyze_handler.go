package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Sowjanya474/resume-ranker/internal/models"
	"github.com/Sowjanya474/resume-ranker/internal/services"
)

type AnalyzeHandler struct {
	evaluator services.EvaluatorService
}

func NewAnalyzeHandler(evaluator services.EvaluatorService) *AnalyzeHandler {
	return &AnalyzeHandler{
		evaluator: evaluator,
	}
}

// HandleAnalyze handles POST /analyze: a multipart form with a "jd" field and
// one or more "resumes" files. It responds with the ranked results and any
// per-file warnings collected along the way.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse multipart form",
		})
	}

	jobDescription := c.FormValue("jd")
	fileHeaders := form.File["resumes"]

	if jobDescription == "" || len(fileHeaders) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Please provide both JD and Resumes",
		})
	}

	batchID := uuid.New().String()
	log.Printf("🔄 Analyze batch %s: %d file(s)\n", batchID, len(fileHeaders))

	files := make([]models.ResumeFile, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		data, err := readFile(header)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to read uploaded file: " + header.Filename,
			})
		}
		files = append(files, models.ResumeFile{
			Filename: header.Filename,
			Data:     data,
		})
	}

	results, warnings, err := h.evaluator.RankResumes(c.Context(), jobDescription, files)
	if err != nil {
		if errors.Is(err, services.ErrNoResults) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":    "no results: all files were skipped or failed",
				"warnings": warnings,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	log.Printf("✅ Analyze batch %s completed: %d result(s)\n", batchID, len(results))

	return c.JSON(models.AnalyzeResponse{
		BatchID:  batchID,
		Results:  results,
		Warnings: warnings,
	})
}

func readFile(header *multipart.FileHeader) ([]byte, error) {
	src, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	return io.ReadAll(src)
}
