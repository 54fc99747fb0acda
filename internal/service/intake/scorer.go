package intake

import (
	"strings"
	"unicode/utf8"

	"github.com/brightpath/care-api/internal/config"
	"github.com/brightpath/care-api/internal/model"
)

// Scorer derives a bounded risk indicator from free-text responses.
// The score is the character length of all answers joined with single
// spaces, divided by the scale factor and clamped to [0, max]. It is a
// placeholder analytic: deterministic, order-independent (only total
// length matters) and without clinical meaning.
type Scorer struct {
	scale float64
	max   float64
}

func NewScorer(cfg config.ScoringConfig) *Scorer {
	return &Scorer{
		scale: cfg.ScaleFactor,
		max:   cfg.MaxScore,
	}
}

func (s *Scorer) Score(responses model.ResponseMap) float64 {
	text := strings.Join(responses.Values(), " ")
	score := float64(utf8.RuneCountInString(text)) / s.scale
	if score > s.max {
		return s.max
	}
	if score < 0 {
		return 0
	}
	return score
}

// SpecializationFor maps a reported condition to the doctor
// specialization tag used for matching. Unknown conditions fall back
// to the general tag and are never rejected.
func SpecializationFor(condition string) string {
	switch condition {
	case model.ConditionAutism:
		return "autism"
	case model.ConditionADHD:
		return "adhd"
	case model.ConditionDyslexia:
		return "dyslexia"
	default:
		return "general"
	}
}
