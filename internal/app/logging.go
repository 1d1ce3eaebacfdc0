package app

import (
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/text"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// SetupLogging installs the global log handler. With a path, entries go to that
// file in text form; otherwise fallback is used. The returned closer releases
// the file.
func SetupLogging(path string, level log.Level, fallback log.Handler) (io.Closer, error) {
	log.SetLevel(level)
	if path == "" {
		log.SetHandler(fallback)
		return nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetHandler(text.New(f))
	return f, nil
}
