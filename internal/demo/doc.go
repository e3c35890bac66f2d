// Package demo renders the table and progress bar examples shipped with the
// template.
//
// Examples are selected with closed token sets. ParseTableStyle and
// ParseProgressKind turn a user supplied token into a TableStyle or
// ProgressKind, returning *UnknownTokenError for anything else. The "all"
// token renders every concrete example in declaration order, separated by a
// blank line.
//
// Each concrete example is announced with a status line on the Reporter.
// Progress examples also report a success line once the bars finished.
// Tables are drawn with go-pretty's table writer; progress bars with its
// progress writer, which renders on its own goroutine until every tracker is
// done. The Showcase waits for that goroutine before it returns.
package demo
