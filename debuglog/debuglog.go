// SPDX-License-Identifier: Unlicense OR MIT

/*
Package debuglog writes leveled, tagged log messages to the platform
logger, but only in debug builds.

Messages are written only when the program is built with the debug tag:

	go build -tags debug

Otherwise every function returns -1 without logging. In debug builds the
functions return the result code of the platform logger. On Android that
is the logcat return value; elsewhere it is the number of bytes written.
*/
package debuglog

import (
	"runtime/debug"
)

// Priority is the severity of a message.
type Priority uint8

const (
	Verbose Priority = iota + 2
	Debug
	Info
	Warn
	Error
	// Assert is the priority of failures that should never happen.
	Assert
)

// Disabled is returned by every function in non-debug builds.
const Disabled = -1

// V logs a verbose message.
func V(tag, msg string) int {
	return write(Verbose, tag, msg)
}

// D logs a debug message.
func D(tag, msg string) int {
	return write(Debug, tag, msg)
}

// I logs an informational message.
func I(tag, msg string) int {
	return write(Info, tag, msg)
}

// W logs a warning.
func W(tag, msg string) int {
	return write(Warn, tag, msg)
}

// E logs an error.
func E(tag, msg string) int {
	return write(Error, tag, msg)
}

// WTF reports a condition that should never happen. The message
// is logged at the Assert priority together with the calling
// goroutine's stack.
func WTF(tag, msg string) int {
	if !Enabled {
		return Disabled
	}
	return write(Assert, tag, msg+"\n"+string(debug.Stack()))
}

func write(p Priority, tag, msg string) int {
	if !Enabled {
		return Disabled
	}
	return platformWrite(p, tag, msg)
}

func (p Priority) String() string {
	switch p {
	case Verbose:
		return "V"
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warn:
		return "W"
	case Error:
		return "E"
	case Assert:
		return "A"
	default:
		panic("unknown priority")
	}
}
