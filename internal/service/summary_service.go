package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"intakeflow/internal/model"
	"intakeflow/internal/oracle"
	"intakeflow/internal/repository"
)

const summaryTemplate = `
HISTORY AND PHYSICAL FINDINGS
CHIEF COMPLAINTS-
{chief_complaints}
HISTORY OF PRESENTING ILLNESS-
{history_of_presenting_illness}
PAST HISTORY:
{past_history}
PERSONAL HISTORY:
{personal_history}
FAMILY HISTORY-
{family_history}
GENERALIZED PHYSICAL EXAMINATION:
{general_physical_exam}
SYSTEMIC EXAMINATION-
{systemic_examination}
`

// SummaryService generates the clinician-facing summary from the full
// transcript. Failures are soft: the oracle error is reported in the
// result payload, never propagated as a fault.
type SummaryService struct {
	oracle    oracle.Provider
	summaries repository.SummaryRepo
	dir       string
}

// NewSummaryService creates a new summary service. summaries may be nil
// when no archive store is attached.
func NewSummaryService(o oracle.Provider, summaries repository.SummaryRepo, dir string) *SummaryService {
	return &SummaryService{
		oracle:    o,
		summaries: summaries,
		dir:       dir,
	}
}

// Generate produces and persists a summary for the transcript string. An
// empty transcript short-circuits without an oracle call.
func (s *SummaryService) Generate(ctx context.Context, contextStr string) *model.SummaryResult {
	if strings.TrimSpace(contextStr) == "" {
		return &model.SummaryResult{Success: false, Error: "No context provided"}
	}

	system := "You are a medical expert. Generate a thorough summary from the context using this template. Include only relevant info."
	user := "Context:\n" + contextStr + "\n\nTemplate:\n" + summaryTemplate

	text, err := s.oracle.Generate(ctx, system, user)
	if err != nil {
		return &model.SummaryResult{Success: false, Error: err.Error()}
	}
	text = strings.TrimSpace(text)

	now := time.Now()
	fname := "summary_" + now.Format("20060102150405") + ".txt"
	path := filepath.Join(s.dir, fname)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return &model.SummaryResult{Success: false, Error: err.Error()}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return &model.SummaryResult{Success: false, Error: err.Error()}
	}

	if s.summaries != nil {
		record := &model.Summary{
			ID:        uuid.New().String(),
			Text:      text,
			FilePath:  path,
			CreatedAt: now,
		}
		if err := s.summaries.Create(ctx, record); err != nil {
			// The file on disk is the source of truth; archive lag is tolerable.
			log.Printf("failed to store summary record: %v", err)
		}
	}

	return &model.SummaryResult{Success: true, Summary: text, FilePath: path}
}

// List returns the most recent stored summaries.
func (s *SummaryService) List(ctx context.Context, limit int64) ([]*model.Summary, error) {
	if s.summaries == nil {
		return nil, nil
	}
	return s.summaries.List(ctx, limit)
}
