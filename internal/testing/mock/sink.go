package mock

import (
	"sync"
)

// Level identifies which sink method produced an entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarn    Level = "warn"
	LevelError   Level = "error"
	LevelBlank   Level = "blank"
)

// Entry is one line written to a Sink.
type Entry struct {
	Level   Level
	Message string
}

// Sink records every line written to it. It satisfies cli.Sink and
// demo.Reporter.
type Sink struct {
	mu      sync.Mutex
	entries []Entry
}

// NewSink creates an empty recording sink.
func NewSink() *Sink {
	return &Sink{}
}

func (s *Sink) Info(msg string)    { s.record(LevelInfo, msg) }
func (s *Sink) Success(msg string) { s.record(LevelSuccess, msg) }
func (s *Sink) Warn(msg string)    { s.record(LevelWarn, msg) }
func (s *Sink) Error(msg string)   { s.record(LevelError, msg) }
func (s *Sink) Blank()             { s.record(LevelBlank, "") }

func (s *Sink) record(level Level, msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, Entry{Level: level, Message: msg})
}

// Entries returns a copy of everything recorded so far.
func (s *Sink) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Entry(nil), s.entries...)
}

// Messages returns the messages recorded at level, in order.
func (s *Sink) Messages(level Level) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []string
	for _, e := range s.entries {
		if e.Level == level {
			out = append(out, e.Message)
		}
	}
	return out
}

// Reset forgets all recorded entries.
func (s *Sink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
}
