package model

import "strings"

// QA is a single question/answer pair recorded during an intake session.
type QA struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Transcript is the ordered record of everything asked and answered so far.
// The protocol round-trips it through the client as a flat string of
// "<question>: <answer>. " fragments; internally it is kept structured and
// only serialized back at the boundary.
type Transcript []QA

// ParseTranscript splits the flat transcript string into ordered pairs.
// Fragments are separated by ". "; within a fragment the question/answer
// split is on the LAST ": ", so a colon inside the question text does not
// break the split. Fragments without ": " are dropped silently. There is
// no escaping: a question or answer containing ". " (or ending in ": ")
// corrupts the record. That fragility is part of the wire contract.
func ParseTranscript(s string) Transcript {
	var out Transcript
	if strings.TrimSpace(s) == "" {
		return out
	}
	for _, frag := range strings.Split(s, ". ") {
		frag = strings.Trim(frag, ". ")
		if frag == "" {
			continue
		}
		idx := strings.LastIndex(frag, ": ")
		if idx == -1 {
			continue
		}
		out = append(out, QA{
			Question: strings.TrimSpace(frag[:idx]),
			Answer:   strings.TrimSpace(frag[idx+2:]),
		})
	}
	return out
}

// Append returns a new transcript with the pair added. The receiver is not
// modified; a session's transcript is a value threaded through requests.
func (t Transcript) Append(question, answer string) Transcript {
	out := make(Transcript, len(t), len(t)+1)
	copy(out, t)
	return append(out, QA{Question: question, Answer: answer})
}

// String serializes the transcript back to the flat wire form.
func (t Transcript) String() string {
	var b strings.Builder
	for _, qa := range t {
		b.WriteString(qa.Question)
		b.WriteString(": ")
		b.WriteString(qa.Answer)
		b.WriteString(". ")
	}
	return b.String()
}

// Answered returns the set of lower-cased question texts already answered.
// Membership here is what makes a question "asked" session-wide, across
// categories and part two alike.
func (t Transcript) Answered() map[string]bool {
	set := make(map[string]bool, len(t))
	for _, qa := range t {
		set[strings.ToLower(qa.Question)] = true
	}
	return set
}

// AnswerTo looks up the recorded answer for a question by case-insensitive
// text match. The first recorded occurrence wins.
func (t Transcript) AnswerTo(question string) (string, bool) {
	for _, qa := range t {
		if strings.EqualFold(qa.Question, question) {
			return qa.Answer, true
		}
	}
	return "", false
}
