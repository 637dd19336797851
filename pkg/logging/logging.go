// Package logging builds the slog.Logger shared by the CLI and the index.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/golang-cz/devslog"

	"retaildb/pkg/config"
)

// Discard drops every record. It is what the index uses when no logger is given.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// New returns a logger writing to w in the configured format.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("logging: bad level %q: %w", cfg.Level, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "dev":
		return slog.New(devslog.NewHandler(w, &devslog.Options{HandlerOptions: opts})), nil
	case "off":
		return Discard(), nil
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}
}
