package logging

import (
	"bytes"
	"log/slog"
)

// slogWriter forwards standard log output to a slog logger, honoring an
// "ERROR " / "WARN " / "INFO " prefix.
type slogWriter struct {
	logger *slog.Logger
}

func (w *slogWriter) Write(p []byte) (n int, err error) {
	msg := bytes.TrimRight(p, "\n")

	switch {
	case bytes.HasPrefix(msg, []byte("ERROR ")):
		w.logger.Error(string(msg[6:]))
	case bytes.HasPrefix(msg, []byte("WARN ")):
		w.logger.Warn(string(msg[5:]))
	case bytes.HasPrefix(msg, []byte("INFO ")):
		w.logger.Info(string(msg[5:]))
	default:
		w.logger.Debug(string(msg))
	}

	return len(p), nil
}
