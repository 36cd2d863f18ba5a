package service

import (
	"context"
	"log"
	"strings"

	"intakeflow/internal/cache"
	"intakeflow/internal/model"
	"intakeflow/internal/oracle"
)

const maxSuggestions = 5

// commonComplaints is the static fallback table when the suggestion
// oracle is unavailable. Matched by keyword containment against the
// partial query.
var commonComplaints = []string{
	"Chest pain",
	"Shortness of breath",
	"Abdominal pain",
	"Headache",
	"Fever",
	"Cough",
	"Back pain",
	"Dizziness",
	"Nausea and vomiting",
	"Fatigue",
	"Joint pain",
	"Sore throat",
	"Palpitations",
	"Loss of appetite",
}

// AutocompleteService suggests completions for a partial answer or chief
// complaint. Oracle-backed with a static keyword table as fallback, so it
// degrades rather than fails.
type AutocompleteService struct {
	oracle      oracle.Provider
	suggestions cache.SuggestionCache
}

// NewAutocompleteService creates a new autocomplete service. suggestions
// may be nil when no cache is attached.
func NewAutocompleteService(o oracle.Provider, suggestions cache.SuggestionCache) *AutocompleteService {
	return &AutocompleteService{
		oracle:      o,
		suggestions: suggestions,
	}
}

// Suggest returns at most five completions for the query. An empty query
// yields no suggestions and no oracle call.
func (s *AutocompleteService) Suggest(ctx context.Context, req *model.AutocompleteRequest) []string {
	if strings.TrimSpace(req.Query) == "" {
		return nil
	}

	if s.suggestions != nil {
		if options, ok := s.suggestions.Get(ctx, req.Question, req.Query); ok {
			return options
		}
	}

	options := s.fromOracle(ctx, req)
	if options == nil {
		options = staticSuggestions(req.Query)
	}
	if len(options) > maxSuggestions {
		options = options[:maxSuggestions]
	}

	if len(options) > 0 && s.suggestions != nil {
		if err := s.suggestions.Set(ctx, req.Question, req.Query, options); err != nil {
			log.Printf("failed to cache suggestions: %v", err)
		}
	}
	return options
}

func (s *AutocompleteService) fromOracle(ctx context.Context, req *model.AutocompleteRequest) []string {
	var system, user string
	if req.Question != "" {
		system = "You are helping a patient complete an answer."
		user = "Question: " + req.Question + "\nContext: " + req.Context +
			"\nPartial answer: " + req.Query + "\nSuggest possible completions (one per line)."
		if req.ConditionalQuestion {
			user += "\nThis is a conditional question. Provide relevant detail."
		}
	} else {
		system = "You are providing suggestions for chief complaints."
		user = "Partial chief complaint: " + req.Query + "\nSuggest possible completions (one per line)."
	}

	reply, err := s.oracle.Suggest(ctx, system, user)
	if err != nil {
		log.Printf("autocomplete oracle unavailable: %v", err)
		return nil
	}

	var options []string
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			options = append(options, line)
		}
	}
	return options
}

// staticSuggestions filters the keyword table by case-insensitive
// containment.
func staticSuggestions(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []string
	for _, c := range commonComplaints {
		if strings.Contains(strings.ToLower(c), q) {
			out = append(out, c)
		}
	}
	return out
}
