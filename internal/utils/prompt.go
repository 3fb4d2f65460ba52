// Package utils provides console helpers.
package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	survey "github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
)

// Prompter asks a question and returns the raw one-line reply.
type Prompter interface {
	Ask(question string) (string, error)
}

// NewPrompter returns an arrow-key capable survey prompt when both stdin
// and stdout are terminals and interactive is set, and a plain line
// reader on stdin otherwise.
func NewPrompter(interactive bool) Prompter {
	if interactive && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return &SurveyPrompter{}
	}
	return &LinePrompter{In: os.Stdin, Out: os.Stdout}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LinePrompter writes the question to Out and reads one line from In.
// The trailing line break is removed and nothing else; a closed input
// yields an empty reply.
type LinePrompter struct {
	In  io.Reader
	Out io.Writer
}

// Ask implements Prompter.
func (p *LinePrompter) Ask(question string) (string, error) {
	fmt.Fprintf(p.Out, "%s ", question)
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read reply: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// SurveyPrompter asks through a survey text input on the process's
// standard streams.
type SurveyPrompter struct{}

// Ask implements Prompter.
func (p *SurveyPrompter) Ask(question string) (string, error) {
	var reply string
	err := survey.AskOne(&survey.Input{Message: question}, &reply,
		survey.WithStdio(os.Stdin, os.Stdout, os.Stderr))
	if err != nil {
		return "", fmt.Errorf("prompt cancelled: %w", err)
	}
	return reply, nil
}
