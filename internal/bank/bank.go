// Package bank holds the static question bank: primary categories of
// intake questions plus the fixed part-two list. A Bank is built once at
// startup and never mutated, so it is safe to share across requests.
package bank

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"intakeflow/internal/model"
)

// Bank is the immutable loaded question bank.
type Bank struct {
	categories map[string][]model.Question
	names      []string // sorted; the deterministic fallback order
	partTwo    []model.Question
}

// New builds a Bank from already-decoded category and part-two lists.
func New(categories map[string][]model.Question, partTwo []model.Question) *Bank {
	names := make([]string, 0, len(categories))
	for name := range categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return &Bank{categories: categories, names: names, partTwo: partTwo}
}

// LoadFiles reads the two fixture documents. questionsPath holds the
// primary categories, partTwoPath the fixed closing list (its categories
// are concatenated in document-name order).
func LoadFiles(questionsPath, partTwoPath string) (*Bank, error) {
	categories, err := loadCategoryFile(questionsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", questionsPath, err)
	}

	partTwoCats, err := loadCategoryFile(partTwoPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", partTwoPath, err)
	}
	p2Names := make([]string, 0, len(partTwoCats))
	for name := range partTwoCats {
		p2Names = append(p2Names, name)
	}
	sort.Strings(p2Names)
	var partTwo []model.Question
	for _, name := range p2Names {
		partTwo = append(partTwo, partTwoCats[name]...)
	}

	return New(categories, partTwo), nil
}

// loadCategoryFile decodes a category document. A category value is either
// a question list or a map of subcategory name to question list; the
// latter is flattened by prefixing each question with "<subcategory>: ".
func loadCategoryFile(path string) (map[string][]model.Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	out := make(map[string][]model.Question, len(doc))
	for name, body := range doc {
		var list []model.Question
		if err := json.Unmarshal(body, &list); err == nil {
			out[name] = normalize(list)
			continue
		}

		var subcats map[string][]model.Question
		if err := json.Unmarshal(body, &subcats); err != nil {
			return nil, fmt.Errorf("category %q: %w", name, err)
		}
		subNames := make([]string, 0, len(subcats))
		for sub := range subcats {
			subNames = append(subNames, sub)
		}
		sort.Strings(subNames)
		var flat []model.Question
		for _, sub := range subNames {
			for _, q := range subcats[sub] {
				q.Text = sub + ": " + q.Text
				flat = append(flat, q)
			}
		}
		out[name] = normalize(flat)
	}
	return out, nil
}

func normalize(list []model.Question) []model.Question {
	for i := range list {
		if list[i].Type == "" {
			list[i].Type = model.QuestionTypeText
		}
	}
	return list
}

// QuestionsFor returns the category's questions in bank order. Unknown
// categories yield nil rather than an error; the flow engine treats them
// as already exhausted.
func (b *Bank) QuestionsFor(category string) []model.Question {
	return b.categories[category]
}

// CategoryNames returns the primary category names in the bank's fixed
// deterministic order.
func (b *Bank) CategoryNames() []string {
	return b.names
}

// Remaining returns, in deterministic order, the primary categories not
// yet present in asked.
func (b *Bank) Remaining(asked []string) []string {
	seen := make(map[string]bool, len(asked))
	for _, c := range asked {
		seen[c] = true
	}
	var out []string
	for _, name := range b.names {
		if !seen[name] {
			out = append(out, name)
		}
	}
	return out
}

// PartTwo returns the fixed part-two question list in bank order.
func (b *Bank) PartTwo() []model.Question {
	return b.partTwo
}

// Empty reports whether the bank holds no questions at all.
func (b *Bank) Empty() bool {
	return len(b.categories) == 0 && len(b.partTwo) == 0
}
