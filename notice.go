package sqltemplater

import (
	"fmt"
	"io"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
)

// NoticeLevel distinguishes replacement notices from "assumed text" warnings.
type NoticeLevel int

const (
	ReplacementNotice NoticeLevel = iota
	AssumedTextNotice
)

// Notice is a human-readable record of one templating decision. Notices are
// only emitted when log_param_replacements is set and never affect results.
type Notice struct {
	Level       NoticeLevel
	Filename    string
	Raw         string // matched token, e.g. "@id::integer"
	Param       Identifier
	Replacement string
	Msg         string
}

// NoticeSink receives notices. Implementations must be safe for concurrent
// use when one Templater serves several goroutines.
type NoticeSink interface {
	Notice(n Notice)
}

// NoticeFunc adapts a function to NoticeSink.
type NoticeFunc func(n Notice)

func (f NoticeFunc) Notice(n Notice) {
	f(n)
}

type discardSink struct{}

func (discardSink) Notice(Notice) {}

// WriterSink writes one line per notice to an io.Writer, optionally colored.
type WriterSink struct {
	w     io.Writer
	color bool
	mu    sync.Mutex
}

var _ NoticeSink = (*WriterSink)(nil)

func NewWriterSink(w io.Writer, color bool) *WriterSink {
	return &WriterSink{w: w, color: color}
}

func (s *WriterSink) Notice(n Notice) {
	var line string

	switch n.Level {
	case AssumedTextNotice:
		line = s.paint(text.Colors{text.FgRed}, n.Msg)
	default:
		line = fmt.Sprintf("%s %s",
			s.paint(text.Colors{text.FgGreen}, fmt.Sprintf("Replacing %s with:", n.Raw)),
			s.paint(text.Colors{text.FgYellow}, n.Replacement),
		)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = fmt.Fprintln(s.w, line)
}

func (s *WriterSink) paint(c text.Colors, msg string) string {
	if !s.color {
		return msg
	}
	return c.Sprint(msg)
}
