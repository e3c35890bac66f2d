package mock

import (
	"fmt"
	"sync"
)

// PromptKind tells a select prompt from an input prompt.
type PromptKind string

const (
	PromptSelect PromptKind = "select"
	PromptInput  PromptKind = "input"
)

// Answer is one scripted reply. Err, when set, is returned instead of the
// value. UseDefault makes an input prompt return its default value.
type Answer struct {
	Kind       PromptKind
	Index      int
	Text       string
	UseDefault bool
	Err        error
}

// SelectAnswer scripts a select prompt choosing index.
func SelectAnswer(index int) Answer {
	return Answer{Kind: PromptSelect, Index: index}
}

// SelectError scripts a select prompt failing with err.
func SelectError(err error) Answer {
	return Answer{Kind: PromptSelect, Err: err}
}

// InputAnswer scripts an input prompt answered with text.
func InputAnswer(text string) Answer {
	return Answer{Kind: PromptInput, Text: text}
}

// InputDefault scripts an input prompt accepting its default value.
func InputDefault() Answer {
	return Answer{Kind: PromptInput, UseDefault: true}
}

// InputError scripts an input prompt failing with err.
func InputError(err error) Answer {
	return Answer{Kind: PromptInput, Err: err}
}

// Asked records a prompt the Prompter served.
type Asked struct {
	Kind         PromptKind
	Message      string
	Options      []string
	DefaultIndex int
	DefaultValue string
}

// Prompter replays scripted answers in order and records every prompt it
// was asked. Asking more prompts than scripted, or a prompt of the wrong
// kind, returns an error.
type Prompter struct {
	mu      sync.Mutex
	answers []Answer
	asked   []Asked
}

// NewPrompter creates a prompter replaying answers.
func NewPrompter(answers ...Answer) *Prompter {
	return &Prompter{answers: answers}
}

func (p *Prompter) Select(message string, options []string, defaultIndex int) (int, error) {
	a, err := p.next(Asked{
		Kind:         PromptSelect,
		Message:      message,
		Options:      append([]string(nil), options...),
		DefaultIndex: defaultIndex,
	})
	if err != nil {
		return 0, err
	}
	if a.Index < 0 || a.Index >= len(options) {
		return 0, fmt.Errorf("mock: scripted index %d out of range for %q", a.Index, message)
	}
	return a.Index, nil
}

func (p *Prompter) Input(message, defaultValue string) (string, error) {
	a, err := p.next(Asked{
		Kind:         PromptInput,
		Message:      message,
		DefaultValue: defaultValue,
	})
	if err != nil {
		return "", err
	}
	if a.UseDefault {
		return defaultValue, nil
	}
	return a.Text, nil
}

func (p *Prompter) next(q Asked) (Answer, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.asked = append(p.asked, q)
	if len(p.answers) == 0 {
		return Answer{}, fmt.Errorf("mock: unexpected %s prompt %q", q.Kind, q.Message)
	}

	a := p.answers[0]
	p.answers = p.answers[1:]
	if a.Kind != q.Kind {
		return Answer{}, fmt.Errorf("mock: expected %s prompt, got %s prompt %q", a.Kind, q.Kind, q.Message)
	}
	if a.Err != nil {
		return Answer{}, a.Err
	}
	return a, nil
}

// Asked returns the prompts served so far.
func (p *Prompter) Asked() []Asked {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Asked(nil), p.asked...)
}

// Remaining reports how many scripted answers were not consumed.
func (p *Prompter) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.answers)
}
