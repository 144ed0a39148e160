package analytics

import (
	"sort"

	"github.com/fin-tools/finsight/pkg/models/domain"
)

const maxSuggestions = 3

// RuleInput carries the snapshot a suggestion rule evaluates.
type RuleInput struct {
	Summary domain.Summary
	Goals   []domain.Goal
	Context domain.AnalysisContext
}

// Rule inspects the snapshot and contributes zero or more candidate
// suggestions. Rules must not depend on each other's output.
type Rule func(RuleInput) []domain.Suggestion

// Engine evaluates an ordered rule set and keeps the highest-impact
// candidates. Adding a rule never touches the ranking or capping logic.
type Engine struct {
	rules []Rule
}

// NewEngine returns an engine with the default rule set.
func NewEngine() *Engine {
	return &Engine{
		rules: []Rule{
			overspendRule,
			emergencyFundRule,
			surplusAllocationRule,
			savingsRateRule,
		},
	}
}

// Suggest runs every rule over the snapshot, stable-sorts the candidates
// descending by impact and returns at most three. With no candidates a
// single "stable" suggestion is returned, so the result is never empty.
func (e *Engine) Suggest(
	summary domain.Summary,
	goals []domain.Goal,
	analysisCtx domain.AnalysisContext,
) []domain.Suggestion {
	input := RuleInput{Summary: summary, Goals: goals, Context: analysisCtx}

	var candidates []domain.Suggestion
	for _, rule := range e.rules {
		candidates = append(candidates, rule(input)...)
	}

	if len(candidates) == 0 {
		return []domain.Suggestion{{
			ID:              "stable",
			Message:         "Kondisi stabil, pertahankan dan review target",
			Reason:          "Tidak ada anomali berarti pada periode ini",
			SuggestedAction: "Lanjutkan rencana dan evaluasi bulanan",
			ImpactIDR:       0,
			Level:           domain.LevelLow,
		}}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].ImpactIDR > candidates[j].ImpactIDR
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	return candidates
}
