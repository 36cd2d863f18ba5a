package service

import (
	"context"
	"log"
	"strings"

	"intakeflow/internal/bank"
	"intakeflow/internal/cache"
	"intakeflow/internal/oracle"
)

// SchedulerService decides which category to explore, asking the
// prediction oracle and validating its free-text reply by substring match
// against the known category names. Every oracle failure — network error,
// timeout, unrecognized reply — collapses to "no prediction"; the caller
// falls back to the bank's deterministic order.
type SchedulerService struct {
	bank        *bank.Bank
	oracle      oracle.Provider
	predictions cache.PredictionCache
}

// NewSchedulerService creates a new scheduler service
func NewSchedulerService(b *bank.Bank, o oracle.Provider, predictions cache.PredictionCache) *SchedulerService {
	return &SchedulerService{
		bank:        b,
		oracle:      o,
		predictions: predictions,
	}
}

// PredictCategory maps a free-text chief complaint to the best-matching
// category name. Empty complaint and oracle failure both yield "".
func (s *SchedulerService) PredictCategory(ctx context.Context, complaint string) string {
	if strings.TrimSpace(complaint) == "" {
		return ""
	}
	candidates := s.bank.CategoryNames()
	if len(candidates) == 0 {
		return ""
	}

	if s.predictions != nil {
		if cat, ok := s.predictions.GetCategory(ctx, complaint); ok {
			return cat
		}
	}

	system := "You are a medical expert. Provide the best match from the list of categories."
	user := "Complaint: " + complaint + "\n" +
		"Categories: " + strings.Join(candidates, ", ") + "\n" +
		"Which category is most relevant?"

	reply, err := s.oracle.Classify(ctx, system, user)
	if err != nil {
		log.Printf("category prediction unavailable: %v", err)
		return ""
	}

	cat := matchCategory(reply, candidates)
	if cat != "" && s.predictions != nil {
		if err := s.predictions.SetCategory(ctx, complaint, cat); err != nil {
			log.Printf("failed to cache category prediction: %v", err)
		}
	}
	return cat
}

// PredictNextCategory picks the next category to explore from those not
// yet asked. An empty remainder returns "" without an oracle call — the
// signal to move to part two.
func (s *SchedulerService) PredictNextCategory(ctx context.Context, contextStr string, asked []string) string {
	remain := s.bank.Remaining(asked)
	if len(remain) == 0 {
		return ""
	}

	system := "You are a medical assistant. Provide the next best category to explore."
	user := "Context: " + contextStr + "\n" +
		"Remaining categories: " + strings.Join(remain, ", ") + "\n" +
		"Which category is most relevant next?"

	reply, err := s.oracle.Classify(ctx, system, user)
	if err != nil {
		log.Printf("next-category prediction unavailable: %v", err)
		return ""
	}
	return matchCategory(reply, remain)
}

// FirstRemaining is the deterministic fallback: the first not-yet-asked
// category in the bank's fixed order, or "" when none remain.
func (s *SchedulerService) FirstRemaining(asked []string) string {
	remain := s.bank.Remaining(asked)
	if len(remain) == 0 {
		return ""
	}
	return remain[0]
}

// matchCategory validates a free-text oracle reply by case-insensitive
// substring containment. The first candidate found in the reply wins; a
// reply naming no candidate yields "".
func matchCategory(reply string, candidates []string) string {
	replyLower := strings.ToLower(reply)
	for _, c := range candidates {
		if strings.Contains(replyLower, strings.ToLower(c)) {
			return c
		}
	}
	return ""
}
