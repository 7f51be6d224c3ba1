// Package gforms publishes a formbox form as a Google Form, so a form
// designed here can also collect responses through Google's UI.
package gforms

import (
	"context"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/errors"
	"google.golang.org/api/forms/v1"
)

const (
	choiceTypeRadio    = "RADIO"
	choiceTypeCheckbox = "CHECKBOX"
)

type Exporter struct {
	service *forms.Service
}

func New(service *forms.Service) *Exporter {
	return &Exporter{service: service}
}

// Export creates a Google Form mirroring form and returns the created form's
// ID. The form is created with its title first, then the fields are added in
// order with a single batch update.
func (e *Exporter) Export(ctx context.Context, form formbox.Form) (formID string, err error) {
	created, err := e.service.Forms.Create(&forms.Form{
		Info: &forms.Info{
			Title: form.Title,
		},
	}).Context(ctx).Do()
	if err != nil {
		return "", errors.NewAPIError("failed to create form", err)
	}

	requests := Requests(form)
	if form.Description != "" {
		requests = append([]*forms.Request{{
			UpdateFormInfo: &forms.UpdateFormInfoRequest{
				Info:       &forms.Info{Description: form.Description},
				UpdateMask: "description",
			},
		}}, requests...)
	}
	if len(requests) > 0 {
		_, err = e.service.Forms.BatchUpdate(created.FormId, &forms.BatchUpdateFormRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return "", errors.NewAPIError("failed to add form items", err)
		}
	}
	return created.FormId, nil
}

// Requests converts form's fields into item-creation requests, one per field
// at the field's own position.
func Requests(form formbox.Form) []*forms.Request {
	requests := []*forms.Request{}
	for i, field := range form.Fields {
		requests = append(requests, &forms.Request{
			CreateItem: &forms.CreateItemRequest{
				Item: &forms.Item{
					Title: field.Label,
					QuestionItem: &forms.QuestionItem{
						Question: question(field),
					},
				},
				Location: &forms.Location{Index: int64(i), ForceSendFields: []string{"Index"}},
			},
		})
	}
	return requests
}

func question(field formbox.Field) *forms.Question {
	q := &forms.Question{Required: field.Required}
	switch field.Kind {
	case formbox.KindText:
		q.TextQuestion = &forms.TextQuestion{}
	case formbox.KindRadio:
		q.ChoiceQuestion = choiceQuestion(choiceTypeRadio, field.Options)
	case formbox.KindCheckbox:
		q.ChoiceQuestion = choiceQuestion(choiceTypeCheckbox, field.Options)
	}
	return q
}

func choiceQuestion(choiceType string, options []string) *forms.ChoiceQuestion {
	choices := []*forms.Option{}
	for _, option := range options {
		choices = append(choices, &forms.Option{Value: option})
	}
	return &forms.ChoiceQuestion{
		Type:    choiceType,
		Options: choices,
	}
}
