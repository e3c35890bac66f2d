package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jedib0t/go-pretty/v6/progress"
	"github.com/jedib0t/go-pretty/v6/text"

	"clitemplate/pkg/logging"
	clistrings "clitemplate/pkg/strings"
)

const (
	// updateFrequency is how often the progress writer redraws.
	updateFrequency = 50 * time.Millisecond

	// fileLabelWidth is the column width of file names in the multi-bar example.
	fileLabelWidth = 15

	// multiScale turns fractional per-tick speeds into whole tracker units.
	multiScale = 10
)

// customTasks rotate through the custom bar's message as it advances.
var customTasks = []string{
	"Fetching data...",
	"Processing files...",
	"Analyzing code...",
	"Building project...",
	"Running tests...",
}

type simulatedFile struct {
	name  string
	size  int64
	speed float64
}

// simulatedFiles are processed concurrently by the multi-bar example.
var simulatedFiles = []simulatedFile{
	{name: "index.ts", size: 100, speed: 1.2},
	{name: "utils.ts", size: 80, speed: 0.8},
	{name: "commands.ts", size: 120, speed: 1.5},
}

// newProgressWriter creates an auto-stopping progress writer drawing on w.
func newProgressWriter(w io.Writer, trackers int) progress.Writer {
	pw := progress.NewWriter()
	pw.SetOutputWriter(w)
	pw.SetAutoStop(true)
	pw.SetNumTrackersExpected(trackers)
	pw.SetSortBy(progress.SortByNone)
	pw.SetTrackerLength(40)
	pw.SetMessageLength(24)
	pw.SetUpdateFrequency(updateFrequency)
	return pw
}

// track renders trackers while feed advances them and returns once the
// writer has drawn the final state. If feed fails, unfinished trackers are
// marked as errored so the writer stops.
func track(pw progress.Writer, trackers []*progress.Tracker, feed func() error) error {
	pw.AppendTrackers(trackers)

	rendered := make(chan struct{})
	go func() {
		defer close(rendered)
		pw.Render()
	}()

	err := feed()
	for _, t := range trackers {
		if err != nil && !t.IsDone() {
			t.MarkAsErrored()
			continue
		}
		t.MarkAsDone()
	}

	<-rendered
	return err
}

// pause blocks for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *Showcase) renderSimpleProgress(ctx context.Context, w io.Writer) error {
	pw := newProgressWriter(w, 1)
	pw.SetStyle(progress.StyleDefault)
	pw.Style().Visibility.Value = true

	tracker := &progress.Tracker{Message: "Working", Total: 100, Units: progress.UnitsDefault}

	return track(pw, []*progress.Tracker{tracker}, func() error {
		for i := int64(0); i <= tracker.Total; i++ {
			if err := pause(ctx, s.pacing.Simple); err != nil {
				return err
			}
			tracker.SetValue(i)
		}
		return nil
	})
}

func (s *Showcase) renderCustomProgress(ctx context.Context, w io.Writer) error {
	pw := newProgressWriter(w, 1)

	style := progress.StyleBlocks
	style.Name = "CustomBlocks"
	style.Chars.BoxLeft = ""
	style.Chars.BoxRight = ""
	style.Colors = progress.StyleColors{
		Message: text.Colors{text.FgBlue},
		Tracker: text.Colors{text.FgCyan},
		Percent: text.Colors{text.FgYellow},
		Value:   text.Colors{text.FgGreen},
		Stats:   text.Colors{text.FgHiBlack},
		Error:   text.Colors{text.FgRed},
	}
	style.Options.Separator = " | "
	style.Options.PercentFormat = "%3.0f%%"
	style.Visibility.ETA = true
	style.Visibility.Value = true
	pw.SetStyle(style)

	tracker := &progress.Tracker{Message: customTasks[0], Total: 100, Units: progress.UnitsDefault}

	return track(pw, []*progress.Tracker{tracker}, func() error {
		for i := int64(0); i <= tracker.Total; i++ {
			if err := pause(ctx, s.pacing.Custom); err != nil {
				return err
			}
			tracker.UpdateMessage(customTaskAt(i, tracker.Total))
			tracker.SetValue(i)
		}
		return nil
	})
}

// customTaskAt returns the task message shown at value out of total.
func customTaskAt(value, total int64) string {
	idx := int(value * int64(len(customTasks)) / total)
	if idx >= len(customTasks) {
		idx = len(customTasks) - 1
	}
	return customTasks[idx]
}

func (s *Showcase) renderMultiProgress(ctx context.Context, w io.Writer) error {
	pw := newProgressWriter(w, len(simulatedFiles))
	pw.SetStyle(progress.StyleBlocks)
	pw.Style().Visibility.Value = false
	pw.Style().Visibility.TrackerOverall = true

	units := progress.Units{
		Formatter: func(value int64) string {
			return fmt.Sprintf("%d", value/multiScale)
		},
	}

	trackers := make([]*progress.Tracker, len(simulatedFiles))
	steps := make([]int64, len(simulatedFiles))
	for i, f := range simulatedFiles {
		trackers[i] = &progress.Tracker{
			Message: clistrings.Label(f.name, fileLabelWidth),
			Total:   f.size * multiScale,
			Units:   units,
		}
		steps[i] = int64(f.speed * multiScale)
	}

	return track(pw, trackers, func() error {
		for ticks := 0; !allDone(trackers); ticks++ {
			if err := pause(ctx, s.pacing.Multi); err != nil {
				return err
			}
			for i, t := range trackers {
				if remaining := t.Total - t.Value(); remaining > 0 {
					t.Increment(min(steps[i], remaining))
				}
			}
			logging.Debug("Showcase", "multi progress tick %d", ticks)
		}
		return nil
	})
}

func allDone(trackers []*progress.Tracker) bool {
	for _, t := range trackers {
		if t.Value() < t.Total {
			return false
		}
	}
	return true
}
