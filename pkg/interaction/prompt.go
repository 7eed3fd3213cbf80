// pkg/interaction/prompt.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	cerr "github.com/cockroachdb/errors"
	"github.com/ubports/installer-reporter/pkg/uir_err"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// TerminalPrompter asks forms on a line-oriented terminal.
type TerminalPrompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

// NewTerminalPrompter reads from in and writes prompts to out. Prompts go
// to stderr in the CLI so stdout stays usable for piping.
func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, reader: bufio.NewReader(in), out: out}
}

// Prompt implements Prompter.
func (p *TerminalPrompter) Prompt(ctx context.Context, form Form) (Answers, error) {
	logger := otelzap.Ctx(ctx)
	logger.Info("Showing prompt", zap.String("title", form.Title), zap.Int("fields", len(form.Fields)))

	if form.Title != "" {
		fmt.Fprintln(p.out, titleStyle.Render(form.Title))
	}
	if form.Description != "" {
		fmt.Fprint(p.out, RenderMarkdown(form.Description, p.outIsTerminal()))
	}

	if form.Confirm != "" {
		ok, err := p.confirm(ctx, form.Confirm)
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Info("Prompt declined", zap.String("title", form.Title))
			return nil, uir_err.ErrPromptDeclined
		}
	}

	answers := make(Answers, len(form.Fields))
	for _, f := range form.Fields {
		val, err := p.field(ctx, f)
		if err != nil {
			return nil, cerr.Wrapf(err, "read %s", f.Name)
		}
		if val != "" {
			answers[f.Name] = val
		}
	}
	return answers, nil
}

func (p *TerminalPrompter) confirm(ctx context.Context, question string) (bool, error) {
	for {
		input, err := ReadLine(ctx, p.reader, p.out, labelStyle.Render(question)+" [y/N]")
		if err != nil {
			return false, cerr.Wrap(err, "read confirmation")
		}
		if input == "" {
			return false, nil
		}
		if answer, ok := NormalizeYesNoInput(input); ok {
			return answer, nil
		}
		fmt.Fprintln(p.out, mutedStyle.Render("Please answer yes or no."))
	}
}

func (p *TerminalPrompter) field(ctx context.Context, f Field) (string, error) {
	label := f.Label
	if label == "" {
		label = f.Name
	}
	if len(f.Options) > 0 {
		return p.selectOption(ctx, label, f)
	}

	for {
		var (
			val string
			err error
		)
		if f.Secret {
			val, err = p.readSecret(ctx, label)
		} else {
			prompt := labelStyle.Render(label)
			if f.Default != "" {
				prompt += mutedStyle.Render(" [" + f.Default + "]")
			}
			val, err = ReadLine(ctx, p.reader, p.out, prompt)
		}
		if err != nil {
			return "", err
		}
		if val == "" {
			val = f.Default
		}
		if f.Required {
			if verr := ValidateNonEmpty(val); verr != nil {
				fmt.Fprintln(p.out, mutedStyle.Render(verr.Error()))
				continue
			}
		}
		return val, nil
	}
}

func (p *TerminalPrompter) selectOption(ctx context.Context, label string, f Field) (string, error) {
	fmt.Fprintln(p.out, labelStyle.Render(label))
	for i, o := range f.Options {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
	}
	for {
		choice, err := ReadLine(ctx, p.reader, p.out, "Enter choice")
		if err != nil {
			return "", err
		}
		if choice == "" && f.Default != "" {
			return f.Default, nil
		}
		if idx, err := strconv.Atoi(choice); err == nil && idx >= 1 && idx <= len(f.Options) {
			return f.Options[idx-1], nil
		}
		if opt, err := ValidateOption(choice, f.Options); err == nil {
			return opt, nil
		}
		otelzap.Ctx(ctx).Debug("Invalid selection", zap.String("input", choice))
		fmt.Fprintln(p.out, mutedStyle.Render("Invalid selection. Please try again."))
	}
}

// readSecret disables echo when stdin is a terminal and falls back to a
// plain line read otherwise.
func (p *TerminalPrompter) readSecret(ctx context.Context, label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ReadLine(ctx, p.reader, p.out, labelStyle.Render(label))
	}
	fmt.Fprint(p.out, labelStyle.Render(label)+": ")
	b, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", cerr.Wrap(err, "read secret")
	}
	return strings.TrimSpace(string(b)), nil
}

func (p *TerminalPrompter) outIsTerminal() bool {
	f, ok := p.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
