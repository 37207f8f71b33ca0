// SPDX-License-Identifier: Unlicense OR MIT

//go:build !debug

package debuglog

// Enabled reports whether messages are written.
const Enabled = false
