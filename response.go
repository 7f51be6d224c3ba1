package formbox

import (
	"time"
)

// ResponseID identifies a persisted response. Assigned by the store.
type ResponseID string

// Response is one respondent's submission against a form. Answers is keyed
// by the stringified field position within the form's Fields, and each value
// is either a string (text and radio fields) or a list of strings (checkbox
// fields), exactly as it arrives on the wire.
type Response struct {
	ID          ResponseID     `bson:"_id,omitempty" json:"id,omitempty"`
	FormID      FormID         `bson:"formId" json:"formId"`
	Answers     map[string]any `bson:"answers" json:"answers"`
	SubmittedAt time.Time      `bson:"submittedAt" json:"submittedAt"`
}

// NewResponse validates answers against form and returns a response ready
// for insertion. The returned response has no ID and no submission time; the
// store assigns both. Validation does not modify answers, so re-validating
// an accepted submission always accepts again.
func NewResponse(form Form, answers map[string]any) (response Response, err error) {
	if err := CheckAnswers(form, answers); err != nil {
		return Response{}, err
	}
	if answers == nil {
		answers = map[string]any{}
	}
	return Response{
		FormID:  form.ID,
		Answers: answers,
	}, nil
}
