package gforms_test

import (
	"testing"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/formboxmust"
	"github.com/Jumpaku/go-formbox/gforms"
)

func TestRequests(t *testing.T) {
	form := formboxmust.Form("Pizza order", "weekly order",
		formbox.Field{Kind: formbox.KindText, Label: "Name", Required: true},
		formbox.Field{Kind: formbox.KindRadio, Label: "Color", Options: []string{"red", "blue"}},
		formbox.Field{Kind: formbox.KindCheckbox, Label: "Toppings", Options: []string{"cheese", "ham"}},
	)

	requests := gforms.Requests(form)
	if len(requests) != 3 {
		t.Fatalf("len(Requests()) = %d, want 3", len(requests))
	}

	for i, request := range requests {
		if request.CreateItem == nil || request.CreateItem.Location.Index != int64(i) {
			t.Fatalf("request %d location = %+v, want index %d", i, request.CreateItem, i)
		}
	}

	name := requests[0].CreateItem.Item
	if name.Title != "Name" {
		t.Fatalf("item 0 title = %q, want %q", name.Title, "Name")
	}
	if name.QuestionItem.Question.TextQuestion == nil {
		t.Fatalf("item 0 = %+v, want a text question", name.QuestionItem.Question)
	}
	if !name.QuestionItem.Question.Required {
		t.Fatalf("item 0 required = false, want true")
	}

	color := requests[1].CreateItem.Item.QuestionItem.Question
	if color.ChoiceQuestion == nil || color.ChoiceQuestion.Type != "RADIO" {
		t.Fatalf("item 1 = %+v, want a RADIO choice question", color)
	}
	if len(color.ChoiceQuestion.Options) != 2 || color.ChoiceQuestion.Options[0].Value != "red" {
		t.Fatalf("item 1 options = %+v, want [red blue]", color.ChoiceQuestion.Options)
	}

	toppings := requests[2].CreateItem.Item.QuestionItem.Question
	if toppings.ChoiceQuestion == nil || toppings.ChoiceQuestion.Type != "CHECKBOX" {
		t.Fatalf("item 2 = %+v, want a CHECKBOX choice question", toppings)
	}
}

func TestRequests_NoFieldsNoRequests(t *testing.T) {
	requests := gforms.Requests(formbox.Form{Title: "empty"})
	if len(requests) != 0 {
		t.Fatalf("len(Requests()) = %d, want 0", len(requests))
	}
}
