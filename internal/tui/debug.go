package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Diagnostics go to a file, never the terminal; the alt screen owns stdout.
// Enabled only when OPSLOG_DEBUG_LOG names a path.

func (m *appModel) debugLogf(format string, args ...any) {
	if strings.TrimSpace(m.debugLogPath) == "" {
		return
	}
	f, err := os.OpenFile(m.debugLogPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n",
		append([]any{time.Now().Format("15:04:05.000")}, args...)...)
}
