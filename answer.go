package formbox

// Answer represents one submitted answer value: free text for a text or
// radio field, a list of selections for a checkbox field.
// This is a sealed interface - use the constructor functions Text or Choices.
type Answer interface {
	doNotImplement(Answer)

	// Strings renders the answer as display values.
	Strings() []string
}

// Text creates an Answer holding a single text value.
func Text(value string) Answer {
	return AnswerText{Value: value}
}

// Choices creates an Answer holding a list of selected options.
func Choices(values ...string) Answer {
	return AnswerChoices{Values: values}
}

// AnswerText is a single text value answering a text or radio field.
type AnswerText struct {
	Value string
}

func (AnswerText) doNotImplement(Answer) {}

func (a AnswerText) Strings() []string { return []string{a.Value} }

// AnswerChoices is a list of selected options answering a checkbox field.
type AnswerChoices struct {
	Values []string
}

func (AnswerChoices) doNotImplement(Answer) {}

func (a AnswerChoices) Strings() []string { return append([]string{}, a.Values...) }

// DecodeAnswer maps a JSON-decoded wire value onto an Answer variant. It
// reports false for values that are neither a string nor a list of strings.
func DecodeAnswer(value any) (answer Answer, ok bool) {
	if text, isText := value.(string); isText {
		return Text(text), true
	}
	values, isSlice := anySlice(value)
	if !isSlice {
		return nil, false
	}
	texts := make([]string, 0, len(values))
	for _, v := range values {
		text, isText := v.(string)
		if !isText {
			return nil, false
		}
		texts = append(texts, text)
	}
	return Choices(texts...), true
}
