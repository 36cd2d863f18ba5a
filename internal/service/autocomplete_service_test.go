package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"intakeflow/internal/model"
)

func TestSuggest_EmptyQuery(t *testing.T) {
	o := &fakeOracle{}
	svc := NewAutocompleteService(o, nil)

	if got := svc.Suggest(context.Background(), &model.AutocompleteRequest{Query: "  "}); got != nil {
		t.Errorf("empty query should yield no suggestions, got %v", got)
	}
	if o.suggestCalls != 0 {
		t.Errorf("empty query must not call the oracle, got %d calls", o.suggestCalls)
	}
}

func TestSuggest_ParsesOracleLines(t *testing.T) {
	o := &fakeOracle{suggestReply: "Chest pain\n\n  Chest tightness  \nChest pressure\n"}
	svc := NewAutocompleteService(o, nil)

	got := svc.Suggest(context.Background(), &model.AutocompleteRequest{Query: "ches"})
	want := []string{"Chest pain", "Chest tightness", "Chest pressure"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSuggest_CapsAtFive(t *testing.T) {
	o := &fakeOracle{suggestReply: "a\nb\nc\nd\ne\nf\ng"}
	svc := NewAutocompleteService(o, nil)

	got := svc.Suggest(context.Background(), &model.AutocompleteRequest{Query: "x"})
	if len(got) != 5 {
		t.Errorf("suggestions must cap at five, got %d: %v", len(got), got)
	}
}

func TestSuggest_StaticFallbackOnOracleFailure(t *testing.T) {
	o := &fakeOracle{suggestErr: errors.New("down")}
	svc := NewAutocompleteService(o, nil)

	got := svc.Suggest(context.Background(), &model.AutocompleteRequest{Query: "pain"})
	if len(got) == 0 {
		t.Fatal("expected static fallback suggestions")
	}
	if len(got) > maxSuggestions {
		t.Errorf("fallback must respect the cap, got %d", len(got))
	}
	for _, s := range got {
		if !strings.Contains(strings.ToLower(s), "pain") {
			t.Errorf("fallback suggestion %q does not match query", s)
		}
	}
}

func TestStaticSuggestions_CaseInsensitive(t *testing.T) {
	got := staticSuggestions("FEVER")
	if !reflect.DeepEqual(got, []string{"Fever"}) {
		t.Errorf("got %v, want [Fever]", got)
	}
}
