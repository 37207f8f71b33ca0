// SPDX-License-Identifier: Unlicense OR MIT

/*

Package unit implements device independent units and the conversions
between them and display pixels.

Device independent pixel, or dp, is the unit for sizes independent of
the underlying display device. One dp covers Metric.PxPerDp physical
pixels; on a baseline 160 dpi display they are the same.

Pixels, or px, is the unit for display dependent pixels. Their
size vary between devices.

Conversions round half up and truncate to whole pixels or dps, so
converting back and forth is lossy.

*/
package unit

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

// Dp represents device independent pixels.
type Dp float32

// Metric converts between pixels and dps.
type Metric struct {
	// PxPerDp is the device pixels per dp, the display density
	// scale factor. It must be positive.
	PxPerDp float32
}

// PxToDp converts px device pixels to whole dps.
func (m Metric) PxToDp(px float32) int {
	return round(px / m.PxPerDp)
}

// DpToPx converts dp device independent pixels to whole
// device pixels.
func (m Metric) DpToPx(dp float32) int {
	return round(dp * m.PxPerDp)
}

// Dp converts v to whole device pixels.
func (m Metric) Dp(v Dp) int {
	return m.DpToPx(float32(v))
}

// Fixed converts v to device pixels in 26.6 fixed point, the
// precision text shaping works in.
func (m Metric) Fixed(v Dp) fixed.Int26_6 {
	return fixed.Int26_6(math.Floor(float64(v)*float64(m.PxPerDp)*64 + .5))
}

func (m Metric) String() string {
	return fmt.Sprintf("%gpx/dp", m.PxPerDp)
}

func (v Dp) String() string {
	return fmt.Sprintf("%gdp", float32(v))
}

// round is floor(v + .5), the rounding used by every conversion.
func round(v float32) int {
	return int(math.Floor(float64(v) + .5))
}
