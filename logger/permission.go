package logger

// Permission decides whether a log request is carried out. Subsystems that
// can be silenced by the user implement this interface; all other callers
// pass Allow.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission to use when logging should happen unconditionally.
var Allow = allow{}
