//go:build !windows
// +build !windows

package tray

import (
	"fmt"
	"os"
	"strings"

	"fyne.io/systray"
	"go.uber.org/zap"
)

// showDialog has no native message box here: the first line goes to the
// tooltip and the full text to stdout and the log
func (t *TrayApp) showDialog(title, message string) {
	headline, _, _ := strings.Cut(message, "\n")
	systray.SetTooltip(headline)

	fmt.Fprintf(os.Stdout, "== %s ==\n%s\n", title, message)
	t.logger.Info("Dialog", zap.String("title", title), zap.String("message", message))
}
