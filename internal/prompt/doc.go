// Package prompt asks the user questions on behalf of the interactive menu.
//
// Two providers implement the Provider interface. Survey draws arrow-key
// selection lists and is used when stdin and stdout are terminals. Line
// lists numbered options and reads one answer per line through readline; it
// is used for pipes, dumb terminals and when plain prompts are requested.
//
// Both map a Ctrl-C to ErrInterrupted and the end of input to ErrInputClosed.
package prompt
