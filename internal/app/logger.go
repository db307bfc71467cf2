package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
)

var logLevels = map[string]pterm.LogLevel{
	"trace": pterm.LogLevelTrace,
	"debug": pterm.LogLevelDebug,
	"info":  pterm.LogLevelInfo,
	"warn":  pterm.LogLevelWarn,
	"error": pterm.LogLevelError,
}

// NewLogger returns a pterm logger writing to w at the named level.
// "off" discards everything.
func NewLogger(level string, w io.Writer) (*pterm.Logger, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "off" {
		return pterm.DefaultLogger.WithWriter(io.Discard), nil
	}

	lvl, ok := logLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown log level %q (want trace, debug, info, warn, error or off)", level)
	}

	return pterm.DefaultLogger.WithLevel(lvl).WithWriter(w), nil
}
