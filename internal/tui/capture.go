package tui

import (
	"charm.land/huh/v2"
)

// NewCardForm builds the quick-capture and edit form. The form
// writes through the pointers so the caller reads the values back
// after completion.
func NewCardForm(confirmLabel string, title, description *string, confirm *bool) *huh.Form {
	return huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter card title...").
			Value(title),
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Optional markdown description...").
			CharLimit(5000).
			Lines(4).
			Value(description),
		huh.NewConfirm().
			Key("confirm").
			Title(confirmLabel).
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	)).WithShowHelp(false)
}
