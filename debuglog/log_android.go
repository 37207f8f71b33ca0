// SPDX-License-Identifier: Unlicense OR MIT

package debuglog

/*
#cgo LDFLAGS: -llog

#include <stdlib.h>
#include <android/log.h>
*/
import "C"

import (
	"unsafe"
)

// The Priority values match android_LogPriority.
func platformWrite(p Priority, tag, msg string) int {
	ctag := C.CString(tag)
	defer C.free(unsafe.Pointer(ctag))
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	return int(C.__android_log_write(C.int(p), ctag, cmsg))
}
