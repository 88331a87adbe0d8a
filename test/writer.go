package test

// CompareWriter is an implementation of io.Writer that buffers what is
// written to it, for later comparison with an expected string.
type CompareWriter struct {
	buffer []byte
}

func (w *CompareWriter) Write(p []byte) (n int, err error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare the buffered output with the expected string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}
