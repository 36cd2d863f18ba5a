package model

import (
	"encoding/json"
	"strings"
)

// QuestionType defines how a question is answered on the client
type QuestionType string

const (
	QuestionTypeText   QuestionType = "text"   // Free text
	QuestionTypeChoice QuestionType = "choice" // Pick from options
)

// Question is a single intake question within a category. Its identity is
// its text: the flow engine matches recorded answers back to questions by
// case-insensitive text comparison, so two differently phrased questions
// are always distinct even when semantically equal.
type Question struct {
	Text         string        `json:"question" bson:"question"`
	Type         QuestionType  `json:"type" bson:"type"`
	Options      []string      `json:"options,omitempty" bson:"options,omitempty"`
	Conditionals []Conditional `json:"conditionals,omitempty" bson:"conditionals,omitempty"`
}

// Conditional attaches a follow-up question to a parent question. It fires
// when the parent's recorded answer matches the trigger. Fired follow-ups
// are plain text questions and carry no conditionals of their own.
type Conditional struct {
	Condition Trigger `json:"condition" bson:"condition"`
	Question  string  `json:"question" bson:"question"`
}

// FollowUp returns the synthetic question emitted when the conditional fires.
func (c Conditional) FollowUp() *Question {
	return &Question{
		Text:         c.Question,
		Type:         QuestionTypeText,
		Options:      []string{},
		Conditionals: []Conditional{},
	}
}

// Trigger is either a single answer value or a set of values. The fixture
// JSON uses both forms: "condition": "Yes" and "condition": ["Yes", "Maybe"].
type Trigger []string

// UnmarshalJSON accepts a bare string or a list of strings.
func (t *Trigger) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*t = Trigger{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*t = Trigger(many)
	return nil
}

// MarshalJSON preserves the scalar form for single-value triggers so the
// wire shape round-trips with the fixture documents.
func (t Trigger) MarshalJSON() ([]byte, error) {
	if len(t) == 1 {
		return json.Marshal(t[0])
	}
	return json.Marshal([]string(t))
}

// Matches reports whether the recorded answer satisfies the trigger.
// Comparison is exact, matching how answers are recorded in the transcript.
func (t Trigger) Matches(answer string) bool {
	for _, v := range t {
		if v == answer {
			return true
		}
	}
	return false
}

// SameText reports whether the question's text equals other, ignoring case.
func (q *Question) SameText(other string) bool {
	return strings.EqualFold(q.Text, other)
}
