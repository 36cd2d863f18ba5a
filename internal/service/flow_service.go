package service

import (
	"strings"

	"intakeflow/internal/bank"
	"intakeflow/internal/model"
)

func lower(s string) string { return strings.ToLower(s) }

// FlowService selects the next question to ask within a category. It is a
// pure function over the bank and the transcript: no state, no I/O, and
// it never fails — an unknown category simply has no questions left.
type FlowService struct {
	bank *bank.Bank
}

// NewFlowService creates a new flow service
func NewFlowService(b *bank.Bank) *FlowService {
	return &FlowService{bank: b}
}

// NextQuestion returns the next unanswered question in the category, or
// nil when the category is exhausted. Selection runs two passes in bank
// order:
//
//  1. the first primary question whose text is not yet answered;
//  2. only once every primary question is answered, the first conditional
//     follow-up whose trigger matches the parent's recorded answer and
//     whose own text is not yet answered.
//
// Conditionals are never considered while a primary question is pending,
// no matter how early their trigger answer was given, and a fired
// follow-up is a plain text question with no further conditionals.
func (s *FlowService) NextQuestion(category string, transcript model.Transcript) *model.Question {
	questions := s.bank.QuestionsFor(category)
	answered := transcript.Answered()

	for i := range questions {
		if !answered[lower(questions[i].Text)] {
			q := questions[i]
			return &q
		}
	}

	for i := range questions {
		if len(questions[i].Conditionals) == 0 {
			continue
		}
		baseAnswer, ok := transcript.AnswerTo(questions[i].Text)
		if !ok {
			continue
		}
		for _, cond := range questions[i].Conditionals {
			if answered[lower(cond.Question)] {
				continue
			}
			if cond.Condition.Matches(baseAnswer) {
				return cond.FollowUp()
			}
		}
	}

	return nil
}

// NextPartTwoQuestion returns the next unanswered question from the fixed
// part-two list, or nil when it is exhausted. Part-two questions carry no
// conditionals, so only the primary pass applies.
func (s *FlowService) NextPartTwoQuestion(transcript model.Transcript) *model.Question {
	answered := transcript.Answered()
	partTwo := s.bank.PartTwo()
	for i := range partTwo {
		if !answered[lower(partTwo[i].Text)] {
			q := partTwo[i]
			return &q
		}
	}
	return nil
}
