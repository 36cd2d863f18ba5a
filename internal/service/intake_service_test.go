package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"intakeflow/internal/model"
)

func newIntake(o *fakeOracle) *IntakeService {
	b := testBank()
	return NewIntakeService(NewFlowService(b), NewSchedulerService(b, o, nil))
}

func TestAdvance_StaysInCategoryWhilePending(t *testing.T) {
	o := &fakeOracle{classifyErr: errors.New("should not be called")}
	svc := newIntake(o)

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "No",
		Category:        "Chest Pain",
		CurrentQuestion: "Do you have chest pain?",
	})

	if turn.NextQuestion == nil || *turn.NextQuestion != "How long has it lasted?" {
		t.Fatalf("expected to stay in category, got %+v", turn)
	}
	if turn.Category == nil || *turn.Category != "Chest Pain" {
		t.Errorf("category should be unchanged, got %v", turn.Category)
	}
	if !strings.Contains(turn.Context, "Do you have chest pain?: No. ") {
		t.Errorf("answer not recorded in context: %q", turn.Context)
	}
	if o.classifyCalls != 0 {
		t.Errorf("oracle must not be consulted while the category is pending, got %d calls", o.classifyCalls)
	}
}

func TestAdvance_ConditionalAfterPrimaries(t *testing.T) {
	svc := newIntake(&fakeOracle{})

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "Two days",
		Category:        "Chest Pain",
		Context:         "Do you have chest pain?: Yes. ",
		CurrentQuestion: "How long has it lasted?",
	})

	if turn.NextQuestion == nil || *turn.NextQuestion != "Where does it spread?" {
		t.Fatalf("expected conditional follow-up, got %+v", turn)
	}
	if turn.Type != model.QuestionTypeText {
		t.Errorf("follow-up should be free text, got %q", turn.Type)
	}
}

func TestAdvance_OraclePicksNextCategory(t *testing.T) {
	o := &fakeOracle{classifyReplies: []string{"Headache"}}
	svc := newIntake(o)

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "Left arm",
		Category:        "Chest Pain",
		Context:         "Do you have chest pain?: Yes. How long has it lasted?: Two days. ",
		CurrentQuestion: "Where does it spread?",
	})

	if turn.Category == nil || *turn.Category != "Headache" {
		t.Fatalf("expected oracle-selected category, got %+v", turn)
	}
	if turn.NextQuestion == nil || *turn.NextQuestion != "Do you have a headache?" {
		t.Errorf("unexpected question: %+v", turn.NextQuestion)
	}
	if o.classifyCalls != 1 {
		t.Errorf("expected exactly one oracle call, got %d", o.classifyCalls)
	}
	for _, want := range []string{"Chest Pain", "Headache"} {
		found := false
		for _, c := range turn.AskedCategories {
			if c == want {
				found = true
			}
		}
		if !found {
			t.Errorf("asked categories missing %q: %v", want, turn.AskedCategories)
		}
	}
}

func TestAdvance_FallbackWhenOracleFails(t *testing.T) {
	o := &fakeOracle{classifyErr: errors.New("timeout")}
	svc := newIntake(o)

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "Yes",
		Category:        "Headache",
		CurrentQuestion: "Do you have a headache?",
	})

	// Headache has a single question, now answered. Deterministic
	// fallback picks the first remaining category in bank order.
	if turn.Category == nil || *turn.Category != "Chest Pain" {
		t.Fatalf("expected deterministic fallback to Chest Pain, got %+v", turn)
	}
	if o.classifyCalls != 1 {
		t.Errorf("oracle should be consulted once then abandoned, got %d calls", o.classifyCalls)
	}
}

func TestAdvance_OracleConsultedOncePerSwitch(t *testing.T) {
	// The oracle names Fever, but Fever is already exhausted in this
	// transcript. The driver must not re-consult; it walks the remaining
	// categories deterministically.
	o := &fakeOracle{classifyReplies: []string{"Fever"}}
	svc := newIntake(o)

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "No",
		Category:        "Headache",
		Context:         "Have you had a fever?: Yes. ",
		CurrentQuestion: "Do you have a headache?",
	})

	if o.classifyCalls != 1 {
		t.Fatalf("oracle must be consulted at most once per switch, got %d calls", o.classifyCalls)
	}
	if turn.Category == nil || *turn.Category != "Chest Pain" {
		t.Errorf("expected walk to next unexhausted category, got %+v", turn)
	}
}

func TestAdvance_TransitionToPartTwo(t *testing.T) {
	svc := newIntake(&fakeOracle{classifyErr: errors.New("down")})

	ctx := "Do you have chest pain?: No. How long has it lasted?: n/a. " +
		"Have you had a fever?: No. Do you have a headache?: No. "
	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "No",
		Category:        "Headache",
		Context:         ctx,
		CurrentQuestion: "",
		AskedCategories: []string{"Chest Pain", "Fever"},
	})

	if turn.Category == nil || *turn.Category != model.PartTwoCategory {
		t.Fatalf("expected part-two transition, got %+v", turn)
	}
	if turn.NextQuestion == nil || *turn.NextQuestion != "Do you smoke?" {
		t.Errorf("expected first part-two question, got %v", turn.NextQuestion)
	}
}

func TestAdvance_PartTwoStaysInPartTwo(t *testing.T) {
	o := &fakeOracle{classifyErr: errors.New("should not be called")}
	svc := newIntake(o)

	turn := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Answer:          "No",
		Category:        model.PartTwoCategory,
		CurrentQuestion: "Do you smoke?",
	})

	if turn.NextQuestion == nil || *turn.NextQuestion != "Any allergies?" {
		t.Fatalf("expected next part-two question, got %+v", turn)
	}
	if o.classifyCalls != 0 {
		t.Errorf("part two never consults the oracle, got %d calls", o.classifyCalls)
	}
}

func TestAdvance_TerminalTurn(t *testing.T) {
	svc := newIntake(&fakeOracle{})

	req := &model.SubmitAnswerRequest{
		Answer:          "None",
		Category:        model.PartTwoCategory,
		Context:         "Do you smoke?: No. ",
		CurrentQuestion: "Any allergies?",
	}
	turn := svc.Advance(context.Background(), req)

	if turn.NextQuestion != nil || turn.Category != nil {
		t.Fatalf("expected terminal turn, got %+v", turn)
	}

	// Re-submitting the saturated context stays terminal.
	again := svc.Advance(context.Background(), &model.SubmitAnswerRequest{
		Category: model.PartTwoCategory,
		Context:  turn.Context,
	})
	if again.NextQuestion != nil || again.Category != nil {
		t.Errorf("terminal state should be stable, got %+v", again)
	}
}

func TestAdvance_FullSessionNeverRepeatsQuestions(t *testing.T) {
	svc := newIntake(&fakeOracle{classifyErr: errors.New("down")})

	req := &model.SubmitAnswerRequest{Category: "Chest Pain"}
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		turn := svc.Advance(context.Background(), req)
		if turn.NextQuestion == nil {
			return
		}
		q := *turn.NextQuestion
		if seen[q] {
			t.Fatalf("question repeated: %q", q)
		}
		seen[q] = true
		req = &model.SubmitAnswerRequest{
			Answer:          "Yes",
			Category:        *turn.Category,
			Context:         turn.Context,
			CurrentQuestion: turn.CurrentQuestion,
			AskedCategories: turn.AskedCategories,
		}
	}
	t.Fatal("session did not terminate within 20 turns")
}

func TestNextQuestion_PureRead(t *testing.T) {
	svc := newIntake(&fakeOracle{})

	q := svc.NextQuestion("Chest Pain", "")
	if q == nil || q.Text != "Do you have chest pain?" {
		t.Fatalf("unexpected question: %+v", q)
	}

	q = svc.NextQuestion(model.PartTwoCategory, "Do you smoke?: No. ")
	if q == nil || q.Text != "Any allergies?" {
		t.Fatalf("unexpected part-two question: %+v", q)
	}
}
