package main

import (
	"context"
	"fmt"
	"log"

	formbox "github.com/Jumpaku/go-formbox"
	"github.com/Jumpaku/go-formbox/auth"
	"github.com/Jumpaku/go-formbox/formboxmust"
	"github.com/Jumpaku/go-formbox/store"
)

func main() {
	ctx := context.Background()
	st := store.NewMemory()

	// Log in with an explicit session value; no ambient global token.
	authenticator := auth.New(st, "admin@example.com", "admin123")
	session, err := authenticator.Login(ctx, "admin@example.com", "admin123")
	if err != nil {
		log.Fatal(err)
	}
	defer authenticator.Logout(session.Token)

	// Design a form and persist it.
	form := formboxmust.Form("Pizza order", "weekly team order",
		formbox.Field{Kind: formbox.KindText, Label: "Name"},
		formbox.Field{Kind: formbox.KindRadio, Label: "Size", Options: []string{"S", "M", "L"}},
		formbox.Field{Kind: formbox.KindCheckbox, Label: "Toppings", Options: []string{"cheese", "olives", "ham"}},
	)
	form.CreatedBy = session.UserID
	form, err = st.InsertForm(ctx, form)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Created form %s\n", form.ID)

	// Submit a couple of responses.
	for _, answers := range []map[string]any{
		{"0": "Alice", "1": "M", "2": []string{"cheese", "olives"}},
		{"0": "Bob", "1": "L"},
	} {
		if _, err := st.InsertResponse(ctx, formboxmust.Response(form, answers)); err != nil {
			log.Fatal(err)
		}
	}

	// An invalid submission is rejected with the offending field position.
	if _, err := formbox.NewResponse(form, map[string]any{"1": "XXL"}); err != nil {
		fmt.Printf("Rejected: %v\n", err)
	}

	// Aggregate for display.
	responses, err := st.ListResponses(ctx, form.ID)
	if err != nil {
		log.Fatal(err)
	}
	result := formbox.BuildResult(form, responses)
	for _, entry := range result.Entries {
		fmt.Printf("Response %s at %s\n", entry.ResponseID, entry.SubmittedAt.Format("15:04:05"))
		for _, row := range entry.Rows {
			fmt.Printf("  %s: %v\n", row.Label, row.Values)
		}
	}
}
