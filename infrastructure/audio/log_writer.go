package audio

import (
	"log/slog"
	"strings"
)

// ffmpegLogWriter redirects the transcoder's stderr to the application logger.
type ffmpegLogWriter struct {
	logger *slog.Logger
	owner  string
}

func (w *ffmpegLogWriter) Write(p []byte) (int, error) {
	if msg := strings.TrimSpace(string(p)); msg != "" {
		w.logger.Debug(msg, "component", "ffmpeg", "owner", w.owner)
	}
	return len(p), nil
}
