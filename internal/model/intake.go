package model

// PartTwoCategory is the reserved category name for the fixed second phase
// of the questionnaire. It is never re-ranked and always comes last.
const PartTwoCategory = "part2"

// AskQuestionRequest asks for the next pending question in a category
// without recording an answer. Pure read.
type AskQuestionRequest struct {
	Category string `json:"category"`
	Context  string `json:"context"`
}

// AskQuestionResponse carries the next question, or a null next_question
// when the category is exhausted.
type AskQuestionResponse struct {
	NextQuestion *string       `json:"next_question"`
	Type         QuestionType  `json:"type,omitempty"`
	Options      []string      `json:"options,omitempty"`
	Conditionals []Conditional `json:"conditionals,omitempty"`
}

// SubmitAnswerRequest is the full driver request: the just-given answer
// plus all session state the client is holding. The server keeps nothing
// between calls.
type SubmitAnswerRequest struct {
	Answer          string   `json:"answer"`
	Category        string   `json:"category"`
	Context         string   `json:"context"`
	CurrentQuestion string   `json:"current_question"`
	AskedCategories []string `json:"asked_categories"`
}

// Turn is one state transition of the session driver. NextQuestion and
// Category are null at the terminal state; the client echoes Context and
// AskedCategories back on its next request.
type Turn struct {
	Context         string        `json:"context"`
	NextQuestion    *string       `json:"next_question"`
	CurrentQuestion string        `json:"current_question"`
	Category        *string       `json:"category"`
	Type            QuestionType  `json:"type,omitempty"`
	Options         []string      `json:"options,omitempty"`
	Conditionals    []Conditional `json:"conditionals,omitempty"`
	AskedCategories []string      `json:"asked_categories"`
}

// PredictCategoryRequest maps a free-text chief complaint to a category.
type PredictCategoryRequest struct {
	Complaint string `json:"complaint"`
}

// PredictNextCategoryRequest asks which remaining category to explore next.
type PredictNextCategoryRequest struct {
	Context         string   `json:"context"`
	AskedCategories []string `json:"asked_categories"`
}

// PredictCategoryResponse carries the predicted category, null when the
// oracle produced no usable match.
type PredictCategoryResponse struct {
	Category *string `json:"category"`
}

// AutocompleteRequest asks for completions of a partial answer. Question is
// empty when completing a chief complaint rather than a specific answer.
type AutocompleteRequest struct {
	Query               string `json:"query"`
	Question            string `json:"question"`
	Context             string `json:"context"`
	ConditionalQuestion bool   `json:"conditional_question"`
}

// AutocompleteResponse carries at most five suggestions.
type AutocompleteResponse struct {
	Options []string `json:"options"`
}
