package logger

import (
	"fmt"
	"io"
)

// the central logger instance used by the package level functions
var central *logger

func init() {
	central = newLogger()
}

// Log adds an entry to the central logger. The tag groups entries by
// subsystem and the detail value is formatted with the %v verb.
func Log(perm Permission, tag string, detail any) {
	if !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf("%v", detail))
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, format string, args ...any) {
	if !perm.AllowLogging() {
		return
	}
	central.log(tag, fmt.Sprintf(format, args...))
}

// Clear empties the central logger.
func Clear() {
	central.clear()
}

// Write copies the entire contents of the central logger to the io.Writer.
func Write(w io.Writer) {
	central.write(w)
}

// Tail copies the last n entries of the central logger to the io.Writer.
func Tail(w io.Writer, n int) {
	central.tail(w, n)
}

// SetEcho sets the io.Writer that new entries are echoed to as they arrive.
// A nil writer stops the echo. If replay is true any existing entries are
// written first.
func SetEcho(w io.Writer, replay bool) {
	central.setEcho(w, replay)
}
