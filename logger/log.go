// Package logger is the central log for the application. It is bounded: once
// the maximum number of entries is reached the oldest entry is dropped.
// Consecutive identical entries are folded into one entry with a repeat
// count.
//
// Entries can be echoed to an io.Writer as they arrive, with SetEcho. The
// accumulated log can be copied with Write or Tail.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// the maximum number of entries kept in a logger before the oldest entry is
// dropped
const maxEntries = 256

// an entry is a single line in the log
type entry struct {
	tag    string
	detail string

	// the number of times this entry has been repeated consecutively
	repeated int
}

func (e entry) String() string {
	if e.repeated > 0 {
		return fmt.Sprintf("%s: %s (repeated %d times)", e.tag, e.detail, e.repeated+1)
	}
	return fmt.Sprintf("%s: %s", e.tag, e.detail)
}

type logger struct {
	crit sync.Mutex

	entries []entry

	// the writer to echo new entries to as they arrive. may be nil
	echo io.Writer
}

func newLogger() *logger {
	return &logger{
		entries: make([]entry, 0, maxEntries),
	}
}

func (l *logger) log(tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	detail = strings.TrimSpace(detail)

	// fold a straight repeat of the most recent entry into its repeat count
	if len(l.entries) > 0 {
		last := &l.entries[len(l.entries)-1]
		if last.tag == tag && last.detail == detail {
			last.repeated++
			return
		}
	}

	if len(l.entries) >= maxEntries {
		l.entries = l.entries[1:]
	}

	e := entry{tag: tag, detail: detail}
	l.entries = append(l.entries, e)

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
		io.WriteString(l.echo, "\n")
	}
}

func (l *logger) clear() {
	l.crit.Lock()
	defer l.crit.Unlock()

	l.entries = l.entries[:0]
}

func (l *logger) write(w io.Writer) {
	l.tail(w, maxEntries)
}

func (l *logger) tail(w io.Writer, n int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-n:] {
		io.WriteString(w, e.String())
		io.WriteString(w, "\n")
	}
}

func (l *logger) setEcho(w io.Writer, replay bool) {
	l.crit.Lock()

	l.echo = w

	if l.echo != nil && replay {
		l.crit.Unlock()
		l.write(w)
		return
	}

	l.crit.Unlock()
}
