package player

import (
	"fmt"
	"io"
	"os"

	"github.com/Cadiac/leipae"
)

// logOutput is where diagnostics go. Tests swap it.
var logOutput io.Writer = os.Stderr

// logf prints a prefixed diagnostic line.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(logOutput, "[leipae] "+format+"\n", args...)
}

// LogSink writes every scene event as a diagnostic line.
type LogSink struct{}

// EmitEvent logs e.
func (LogSink) EmitEvent(e leipae.SceneEvent) {
	logf("scene %s -> %s (#%d, %s) at %.2fs", e.From, e.To, e.Index, e.Cause, e.DayTime)
}

// multiSink fans events out to several sinks in order.
type multiSink []leipae.EventSink

func (m multiSink) EmitEvent(e leipae.SceneEvent) {
	for _, s := range m {
		s.EmitEvent(e)
	}
}
