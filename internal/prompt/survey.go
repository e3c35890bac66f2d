package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// Survey prompts with arrow-key selection lists on a terminal.
type Survey struct {
	in     terminal.FileReader
	out    terminal.FileWriter
	errOut io.Writer
}

// NewSurvey creates a survey provider on the given terminal streams.
func NewSurvey(in terminal.FileReader, out terminal.FileWriter, errOut io.Writer) *Survey {
	return &Survey{in: in, out: out, errOut: errOut}
}

func (s *Survey) Select(message string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options for %q", message)
	}

	q := &survey.Select{
		Message: message,
		Options: options,
	}
	if idx, ok := validDefault(defaultIndex, len(options)); ok {
		q.Default = options[idx]
	}

	var answer int
	if err := survey.AskOne(q, &answer, s.stdio()); err != nil {
		return 0, translate(err)
	}
	return answer, nil
}

func (s *Survey) Input(message, defaultValue string) (string, error) {
	q := &survey.Input{
		Message: message,
		Default: defaultValue,
	}

	var answer string
	if err := survey.AskOne(q, &answer, s.stdio()); err != nil {
		return "", translate(err)
	}
	return answer, nil
}

func (s *Survey) stdio() survey.AskOpt {
	return survey.WithStdio(s.in, s.out, s.errOut)
}

// translate maps survey's terminal errors onto the package errors.
func translate(err error) error {
	switch {
	case errors.Is(err, terminal.InterruptErr):
		return ErrInterrupted
	case errors.Is(err, io.EOF):
		return ErrInputClosed
	}
	return err
}
