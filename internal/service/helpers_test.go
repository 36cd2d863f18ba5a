package service

import (
	"context"

	"intakeflow/internal/bank"
	"intakeflow/internal/model"
)

// fakeOracle scripts oracle replies for tests. Classify replies are
// consumed in order; once exhausted the configured error (or the last
// reply) is returned again.
type fakeOracle struct {
	classifyReplies []string
	classifyErr     error
	classifyCalls   int

	suggestReply string
	suggestErr   error
	suggestCalls int

	generateReply string
	generateErr   error
	generateCalls int
}

func (f *fakeOracle) Classify(_ context.Context, _, _ string) (string, error) {
	f.classifyCalls++
	if f.classifyErr != nil {
		return "", f.classifyErr
	}
	if len(f.classifyReplies) == 0 {
		return "", nil
	}
	reply := f.classifyReplies[0]
	if len(f.classifyReplies) > 1 {
		f.classifyReplies = f.classifyReplies[1:]
	}
	return reply, nil
}

func (f *fakeOracle) Suggest(_ context.Context, _, _ string) (string, error) {
	f.suggestCalls++
	return f.suggestReply, f.suggestErr
}

func (f *fakeOracle) Generate(_ context.Context, _, _ string) (string, error) {
	f.generateCalls++
	return f.generateReply, f.generateErr
}

// testBank builds the fixed bank the service tests run against:
// three primary categories plus a two-question part two.
func testBank() *bank.Bank {
	return bank.New(map[string][]model.Question{
		"Chest Pain": {
			{
				Text: "Do you have chest pain?",
				Type: model.QuestionTypeChoice,
				Options: []string{
					"Yes", "No",
				},
				Conditionals: []model.Conditional{
					{Condition: model.Trigger{"Yes"}, Question: "Where does it spread?"},
				},
			},
			{Text: "How long has it lasted?", Type: model.QuestionTypeText},
		},
		"Fever": {
			{Text: "Have you had a fever?", Type: model.QuestionTypeChoice, Options: []string{"Yes", "No"}},
		},
		"Headache": {
			{Text: "Do you have a headache?", Type: model.QuestionTypeText},
		},
	}, []model.Question{
		{Text: "Do you smoke?", Type: model.QuestionTypeChoice, Options: []string{"Yes", "No"}},
		{Text: "Any allergies?", Type: model.QuestionTypeText},
	})
}
