package logger

import (
	"io"

	"github.com/fatih/color"
)

// out receives Info, Warn and Debug; errOut receives Error. Both default to
// the color package's writers so that Windows consoles get ANSI translation.
var (
	out    io.Writer = color.Output
	errOut io.Writer = color.Error
)

var debugEnabled bool

var (
	infoColor  = color.New(color.FgGreen)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
	debugColor = color.New(color.FgCyan)
)

// Init turns debug output on or off.
func Init(enableDebug bool) {
	debugEnabled = enableDebug
}

// SetOutput redirects Info, Warn and Debug to w and returns the previous writer.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	out = w
	return prev
}

// SetErrorOutput redirects Error to w and returns the previous writer.
func SetErrorOutput(w io.Writer) io.Writer {
	prev := errOut
	errOut = w
	return prev
}

// Info prints a status message in green.
func Info(format string, a ...any) {
	infoColor.Fprintf(out, format+"\n", a...)
}

// Warn prints an advisory message in yellow.
func Warn(format string, a ...any) {
	warnColor.Fprintf(out, format+"\n", a...)
}

// Error prints a failure message in red.
func Error(format string, a ...any) {
	errorColor.Fprintf(errOut, format+"\n", a...)
}

// Debug prints in cyan when debug output is enabled and is a no-op otherwise.
func Debug(format string, a ...any) {
	if !debugEnabled {
		return
	}
	debugColor.Fprintf(out, "[debug] "+format+"\n", a...)
}
