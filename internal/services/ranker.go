package services

import (
	"sort"

	"github.com/Sowjanya474/resume-ranker/internal/models"
)

type RankerService interface {
	Rank(results []models.MatchResult) []models.MatchResult
}

type rankerService struct{}

func NewRankerService() RankerService {
	return &rankerService{}
}

// Rank orders results by match percentage, highest first. The sort is stable
// so ties keep their upload order, and the input slice is left untouched.
func (r *rankerService) Rank(results []models.MatchResult) []models.MatchResult {
	ranked := make([]models.MatchResult, len(results))
	copy(ranked, results)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchPercentage > ranked[j].MatchPercentage
	})

	return ranked
}
