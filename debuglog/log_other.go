// SPDX-License-Identifier: Unlicense OR MIT

//go:build !android && !windows

package debuglog

import (
	"fmt"
	"log"
)

var output = log.Default()

func platformWrite(p Priority, tag, msg string) int {
	line := fmt.Sprintf("%s/%s: %s", p, tag, msg)
	// Skip platformWrite, write and the leveled function.
	if err := output.Output(4, line); err != nil {
		return Disabled
	}
	return len(line)
}
