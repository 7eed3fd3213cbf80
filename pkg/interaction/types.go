// pkg/interaction/types.go

package interaction

import "context"

// Field is one input of a Form.
type Field struct {
	Name     string
	Label    string
	Default  string
	Options  []string
	Secret   bool
	Required bool
}

// Form describes a modal question. Description is markdown. When Confirm is
// set the user is asked it first and may decline the whole form.
type Form struct {
	Title       string
	Description string
	Confirm     string
	Fields      []Field
}

// Answers maps field names to the values entered.
type Answers map[string]string

// Prompter shows a form and collects answers. A declined form yields
// uir_err.ErrPromptDeclined; I/O failures are returned as other errors.
type Prompter interface {
	Prompt(ctx context.Context, form Form) (Answers, error)
}
