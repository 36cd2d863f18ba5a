package service

import (
	"context"

	"intakeflow/internal/model"
)

// IntakeService is the session driver: one state transition per request.
// All session state (transcript, current category, asked categories)
// round-trips through the client, so concurrent sessions share nothing
// but the read-only bank.
type IntakeService struct {
	flow      *FlowService
	scheduler *SchedulerService
}

// NewIntakeService creates a new intake service
func NewIntakeService(flow *FlowService, scheduler *SchedulerService) *IntakeService {
	return &IntakeService{
		flow:      flow,
		scheduler: scheduler,
	}
}

// NextQuestion answers the pure-read ask: the next pending question in
// the category (or part two) against the given transcript string.
func (s *IntakeService) NextQuestion(category, contextStr string) *model.Question {
	transcript := model.ParseTranscript(contextStr)
	if category == model.PartTwoCategory {
		return s.flow.NextPartTwoQuestion(transcript)
	}
	return s.flow.NextQuestion(category, transcript)
}

// Advance records the just-given answer and computes the next turn.
//
// The transition order is: stay in the current category while it has
// pending questions; on exhaustion consult the oracle once for the next
// category; if the oracle has no usable pick — or its pick is itself
// exhausted — walk the remaining categories in the bank's deterministic
// order, marking each exhausted one as asked. The remainder shrinks every
// iteration, so the loop terminates even when every category is
// simultaneously exhausted. When no primary category remains, part two
// runs in fixed order; when part two is exhausted too, the turn is
// terminal (null question, null category) and stays terminal on repeat
// calls with the same saturated context.
func (s *IntakeService) Advance(ctx context.Context, req *model.SubmitAnswerRequest) *model.Turn {
	transcript := model.ParseTranscript(req.Context)
	if req.CurrentQuestion != "" && req.Answer != "" {
		transcript = transcript.Append(req.CurrentQuestion, req.Answer)
	}
	asked := append([]string(nil), req.AskedCategories...)

	if req.Category == model.PartTwoCategory {
		return s.partTwoTurn(transcript, asked)
	}

	if q := s.flow.NextQuestion(req.Category, transcript); q != nil {
		return questionTurn(transcript, q, req.Category, asked)
	}
	asked = addCategory(asked, req.Category)

	oracleConsulted := false
	for {
		remain := s.scheduler.FirstRemaining(asked)
		if remain == "" {
			break
		}

		next := ""
		if !oracleConsulted {
			next = s.scheduler.PredictNextCategory(ctx, transcript.String(), asked)
			oracleConsulted = true
		}
		if next == "" {
			next = remain
		}
		asked = addCategory(asked, next)

		if q := s.flow.NextQuestion(next, transcript); q != nil {
			return questionTurn(transcript, q, next, asked)
		}
	}

	return s.partTwoTurn(transcript, asked)
}

func (s *IntakeService) partTwoTurn(transcript model.Transcript, asked []string) *model.Turn {
	if q := s.flow.NextPartTwoQuestion(transcript); q != nil {
		return questionTurn(transcript, q, model.PartTwoCategory, asked)
	}
	return terminalTurn(transcript, asked)
}

func questionTurn(transcript model.Transcript, q *model.Question, category string, asked []string) *model.Turn {
	return &model.Turn{
		Context:         transcript.String(),
		NextQuestion:    &q.Text,
		CurrentQuestion: q.Text,
		Category:        &category,
		Type:            q.Type,
		Options:         q.Options,
		Conditionals:    q.Conditionals,
		AskedCategories: asked,
	}
}

func terminalTurn(transcript model.Transcript, asked []string) *model.Turn {
	return &model.Turn{
		Context:         transcript.String(),
		NextQuestion:    nil,
		CurrentQuestion: "",
		Category:        nil,
		AskedCategories: asked,
	}
}

func addCategory(asked []string, category string) []string {
	for _, c := range asked {
		if c == category {
			return asked
		}
	}
	return append(asked, category)
}
