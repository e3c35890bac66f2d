// Package mock provides test doubles for the collaborators of the command
// dispatcher.
//
// Sink records every line a command writes, tagged with the level it was
// written at, so tests can assert on exact output without a terminal.
//
// Prompter replays a script of answers:
//
//	p := mock.NewPrompter(
//		mock.SelectAnswer(0),      // "Say hello"
//		mock.InputAnswer("Alice"), // "What is your name?"
//	)
//
// Every prompt it serves is recorded and can be inspected with Asked. A
// prompt beyond the script, or of a different kind than scripted, fails with
// an error so unexpected questions surface as test failures.
package mock
