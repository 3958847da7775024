package suite

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	evmodels "github.com/selebrow/journey/pkg/event/models"
	"github.com/selebrow/journey/pkg/models"
)

// Reporter prints scenario progress and the final summary for humans
type Reporter struct {
	out  io.Writer
	done chan struct{}

	pass *color.Color
	fail *color.Color
	info *color.Color
	bold *color.Color
}

func NewReporter(out io.Writer, noColor bool) *Reporter {
	r := &Reporter{
		out:  out,
		done: make(chan struct{}),
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		info: color.New(color.FgCyan),
		bold: color.New(color.Bold),
	}
	if noColor {
		for _, c := range []*color.Color{r.pass, r.fail, r.info, r.bold} {
			c.DisableColor()
		}
	}
	return r
}

// Start consumes events until ch is closed
func (r *Reporter) Start(ch <-chan evmodels.IEvent) {
	go func() {
		defer close(r.done)
		for ev := range ch {
			r.handle(ev)
		}
	}()
}

// Wait blocks until the event channel is drained
func (r *Reporter) Wait() {
	<-r.done
}

func (r *Reporter) handle(ev evmodels.IEvent) {
	switch ev.EventType() {
	case evmodels.ScenarioStartedEventType:
		if a, ok := evmodels.AttributesOf[evmodels.ScenarioStarted](ev); ok {
			_, _ = r.info.Fprintf(r.out, "▶ %s\n", a.Title)
		}
	case evmodels.SessionOpenedEventType:
		if a, ok := evmodels.AttributesOf[evmodels.SessionOpened](ev); ok {
			_, _ = fmt.Fprintf(r.out, "  session %s opened in %s\n",
				a.SessionID, a.StartDuration.Round(time.Millisecond))
		}
	case evmodels.ScenarioFinishedEventType:
		if a, ok := evmodels.AttributesOf[evmodels.ScenarioFinished](ev); ok {
			r.printResult(a.Result)
		}
	}
}

func (r *Reporter) printResult(res models.ScenarioResult) {
	if res.Passed() {
		_, _ = r.pass.Fprint(r.out, "✓ PASS")
	} else {
		_, _ = r.fail.Fprint(r.out, "✗ FAIL")
	}
	_, _ = fmt.Fprintf(r.out, " %s (%s)\n", res.Title(), res.Duration().Round(time.Millisecond))
	if !res.Passed() {
		_, _ = fmt.Fprintf(r.out, "    %s\n", res.Reason())
	}
}

func (r *Reporter) Summary(results []models.ScenarioResult) {
	passed := 0
	for _, res := range results {
		if res.Passed() {
			passed++
		}
	}
	_, _ = r.bold.Fprintln(r.out, "\nSummary")
	_, _ = fmt.Fprintf(r.out, "%s Passed: %d\n", r.pass.Sprint("✓"), passed)
	_, _ = fmt.Fprintf(r.out, "%s Failed: %d\n", r.fail.Sprint("✗"), len(results)-passed)
}
