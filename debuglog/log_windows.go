// SPDX-License-Identifier: Unlicense OR MIT

package debuglog

import (
	"fmt"
	"unsafe"

	syscall "golang.org/x/sys/windows"
)

var (
	kernel32           = syscall.NewLazySystemDLL("kernel32")
	outputDebugStringW = kernel32.NewProc("OutputDebugStringW")
)

// platformWrite writes to the debugger, visible in DebugView.
func platformWrite(p Priority, tag, msg string) int {
	line := fmt.Sprintf("%s/%s: %s\n", p, tag, msg)
	s, err := syscall.UTF16PtrFromString(line)
	if err != nil {
		return Disabled
	}
	outputDebugStringW.Call(uintptr(unsafe.Pointer(s)))
	return len(line)
}
