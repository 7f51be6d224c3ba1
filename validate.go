package formbox

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/Jumpaku/go-formbox/errors"
)

// CheckAnswers validates a candidate answers map against form's fields. It
// is pure: neither form nor answers is modified.
//
// Scanning is deterministic and fails fast on the first violation: answer
// keys that do not parse as a field position are rejected first in lexical
// order, then answered positions are checked in ascending order. For each
// answered position the field's kind decides the required shape: text wants
// a string (possibly empty), radio wants a string equal to one of the
// field's options, checkbox wants a list of strings drawn from the options.
//
// Fields left unanswered are permitted; there is no required-field
// enforcement.
func CheckAnswers(form Form, answers map[string]any) error {
	type entry struct {
		position int
		key      string
	}

	var badKeys []string
	var entries []entry
	for key := range answers {
		i, err := strconv.Atoi(key)
		if err != nil {
			badKeys = append(badKeys, key)
			continue
		}
		entries = append(entries, entry{position: i, key: key})
	}

	sort.Strings(badKeys)
	if len(badKeys) > 0 {
		return errors.NewFieldError(errors.ErrUnknownField, -1,
			fmt.Sprintf("answer key %q is not a field position", badKeys[0]))
	}

	sort.Slice(entries, func(a, b int) bool {
		if entries[a].position != entries[b].position {
			return entries[a].position < entries[b].position
		}
		return entries[a].key < entries[b].key
	})
	for _, e := range entries {
		if e.position < 0 || e.position >= len(form.Fields) {
			return errors.NewFieldError(errors.ErrUnknownField, e.position,
				fmt.Sprintf("form has %d fields", len(form.Fields)))
		}
		field := form.Fields[e.position]
		spec, known := kindSpecs[field.Kind]
		if !known {
			// Unknown kinds never pass NewForm, so a persisted form cannot
			// carry one; reject rather than guess if it happens anyway.
			return errors.NewFieldError(errors.ErrInvalidField, e.position,
				fmt.Sprintf("unknown field kind %q", string(field.Kind)))
		}
		if err := spec.checkAnswer(field, e.position, answers[e.key]); err != nil {
			return err
		}
	}
	return nil
}
