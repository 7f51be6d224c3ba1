package formbox_test

import (
	"reflect"
	"testing"
	"time"

	formbox "github.com/Jumpaku/go-formbox"
)

func TestBuildResult(t *testing.T) {
	form := nameColorForm(t)
	form.ID = "form-1"

	t1 := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	t2 := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	responses := []formbox.Response{
		{ID: "r2", FormID: form.ID, SubmittedAt: t2, Answers: map[string]any{
			"0": "Bob", "2": []any{"cheese", "ham"},
		}},
		{ID: "r1", FormID: form.ID, SubmittedAt: t1, Answers: map[string]any{
			"0": "Alice", "1": "blue",
		}},
	}

	result := formbox.BuildResult(form, responses)
	if !reflect.DeepEqual(result.Form, form) {
		t.Fatalf("Result.Form = %+v, want %+v", result.Form, form)
	}

	want := []formbox.ResultEntry{
		{ResponseID: "r2", SubmittedAt: t2, Rows: []formbox.ResultRow{
			{Position: 0, Label: "Name", Values: []string{"Bob"}},
			{Position: 2, Label: "Toppings", Values: []string{"cheese", "ham"}},
		}},
		{ResponseID: "r1", SubmittedAt: t1, Rows: []formbox.ResultRow{
			{Position: 0, Label: "Name", Values: []string{"Alice"}},
			{Position: 1, Label: "Color", Values: []string{"blue"}},
		}},
	}
	if !reflect.DeepEqual(result.Entries, want) {
		t.Fatalf("Result.Entries = %#v, want %#v", result.Entries, want)
	}
}

func TestBuildResult_NoResponses(t *testing.T) {
	result := formbox.BuildResult(nameColorForm(t), nil)
	if len(result.Entries) != 0 {
		t.Fatalf("Result.Entries = %#v, want empty", result.Entries)
	}
}

func TestBuildResult_SynthesizesLabelForDriftedPosition(t *testing.T) {
	form := nameColorForm(t)
	responses := []formbox.Response{
		{ID: "r1", Answers: map[string]any{"7": "stale"}},
	}

	result := formbox.BuildResult(form, responses)
	rows := result.Entries[0].Rows
	if len(rows) != 1 {
		t.Fatalf("Rows = %#v, want one row", rows)
	}
	if rows[0].Label != "Question 8" {
		t.Fatalf("Label = %q, want %q", rows[0].Label, "Question 8")
	}
	if !reflect.DeepEqual(rows[0].Values, []string{"stale"}) {
		t.Fatalf("Values = %#v, want [stale]", rows[0].Values)
	}
}

func TestBuildResult_DropsJunkKeysAndRendersForeignValues(t *testing.T) {
	form := nameColorForm(t)
	responses := []formbox.Response{
		{ID: "r1", Answers: map[string]any{"junk": "x", "0": 12.0}},
	}

	result := formbox.BuildResult(form, responses)
	rows := result.Entries[0].Rows
	if len(rows) != 1 {
		t.Fatalf("Rows = %#v, want junk key dropped", rows)
	}
	if !reflect.DeepEqual(rows[0].Values, []string{"12"}) {
		t.Fatalf("Values = %#v, want [12]", rows[0].Values)
	}
}

func TestDecodeAnswer(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  formbox.Answer
		ok    bool
	}{
		{"string", "blue", formbox.Text("blue"), true},
		{"any-slice", []any{"a", "b"}, formbox.Choices("a", "b"), true},
		{"string-slice", []string{"a"}, formbox.Choices("a"), true},
		{"empty-slice", []any{}, formbox.AnswerChoices{Values: []string{}}, true},
		{"number", 1.0, nil, false},
		{"mixed-slice", []any{"a", 1.0}, nil, false},
		{"nil", nil, nil, false},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			got, ok := formbox.DecodeAnswer(c.value)
			if ok != c.ok {
				t.Fatalf("DecodeAnswer(%v) ok = %v, want %v", c.value, ok, c.ok)
			}
			if c.ok && !reflect.DeepEqual(got, c.want) {
				t.Fatalf("DecodeAnswer(%v) = %#v, want %#v", c.value, got, c.want)
			}
		})
	}
}
