package request

import "net/http"

// ClientWriter wraps a http.ResponseWriter, capturing the status code that
// was written so middleware can report it after the handler has run.
type ClientWriter struct {
	http.ResponseWriter

	// statusCode is the status code that was written. Zero until a write
	// happens.
	statusCode int
}

// NewClientWriter creates a new ClientWriter.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
	}
}

func (w *ClientWriter) WriteHeader(statusCode int) {
	if w.statusCode == 0 {
		w.statusCode = statusCode
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *ClientWriter) Write(b []byte) (int, error) {
	if w.statusCode == 0 {
		// Mirrors net/http, which treats a write with no explicit header as a 200.
		w.statusCode = http.StatusOK
	}
	return w.ResponseWriter.Write(b)
}

// StatusCode returns the status code that was written, defaulting to 200 if
// the handler never wrote one.
func (w *ClientWriter) StatusCode() int {
	if w.statusCode == 0 {
		return http.StatusOK
	}
	return w.statusCode
}
