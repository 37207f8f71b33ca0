// SPDX-License-Identifier: Unlicense OR MIT

package screen

import (
	"errors"
	"fmt"
)

// Metrics is a snapshot of the raw display metrics reported by the
// platform.
type Metrics struct {
	// WidthPx and HeightPx are the display size in physical pixels.
	WidthPx, HeightPx int
	// Density is the display density scale factor, in physical
	// pixels per dp.
	Density float32
	// DensityDPI is the platform density bucket, in dots per inch.
	DensityDPI int
}

// Orientation of the display.
type Orientation uint8

const (
	// Unknown is the orientation before the first Init.
	Unknown Orientation = iota
	Portrait
	Landscape
)

// Density is a density qualifier for selecting resources.
type Density uint8

const (
	// DensityUnset means no density DPI known to DetectDensity
	// has been seen.
	DensityUnset Density = iota
	LDPI
	MDPI
	TVDPI
	HDPI
	XHDPI
	XXHDPI
)

// Density DPI buckets.
const (
	DPILow      = 120
	DPIMedium   = 160
	DPITV       = 213
	DPIHigh     = 240
	DPIXHigh    = 320
	DPIXXHigh   = 480
	BaselineDPI = DPIMedium
)

var (
	ErrZeroHeight = errors.New("screen: zero height")
	ErrBadDensity = errors.New("screen: density scale must be positive")
)

// MetricsForDPI returns the Metrics of a display that reports only its size
// and density DPI. The density scale is dpi relative to BaselineDPI.
func MetricsForDPI(widthPx, heightPx, dpi int) Metrics {
	return Metrics{
		WidthPx:    widthPx,
		HeightPx:   heightPx,
		Density:    float32(dpi) / BaselineDPI,
		DensityDPI: dpi,
	}
}

// Validate reports whether m can be classified. Classifier.Init does not
// validate its input; the results for invalid Metrics are undefined.
func (m Metrics) Validate() error {
	switch {
	case m.WidthPx < 0 || m.HeightPx < 0:
		return fmt.Errorf("screen: negative size %dx%d", m.WidthPx, m.HeightPx)
	case m.HeightPx == 0:
		return ErrZeroHeight
	case !(m.Density > 0):
		return fmt.Errorf("%w: %v", ErrBadDensity, m.Density)
	}
	return nil
}

// DetectOrientation returns Landscape if m is wider than it is tall, and
// Portrait otherwise. Square displays are Portrait.
func DetectOrientation(m Metrics) Orientation {
	aspect := float32(m.WidthPx) / float32(m.HeightPx)
	if aspect > 1 {
		return Landscape
	}
	return Portrait
}

// DetectDensity maps a density DPI to its qualifier. Only the exact
// bucket values are recognized; ok is false for any other dpi.
func DetectDensity(dpi int) (d Density, ok bool) {
	switch dpi {
	case DPILow:
		return LDPI, true
	case DPIMedium:
		return MDPI, true
	case DPITV:
		return TVDPI, true
	case DPIHigh:
		return HDPI, true
	case DPIXHigh:
		return XHDPI, true
	case DPIXXHigh:
		return XXHDPI, true
	}
	return DensityUnset, false
}

func (o Orientation) String() string {
	switch o {
	case Unknown:
		return "UNKNOWN"
	case Portrait:
		return "PORTRAIT"
	case Landscape:
		return "LANDSCAPE"
	default:
		panic("unknown orientation")
	}
}

func (d Density) String() string {
	switch d {
	case DensityUnset:
		return "UNSET"
	case LDPI:
		return "LDPI"
	case MDPI:
		return "MDPI"
	case TVDPI:
		return "TVDPI"
	case HDPI:
		return "HDPI"
	case XHDPI:
		return "XHDPI"
	case XXHDPI:
		return "XXHDPI"
	default:
		panic("unknown density")
	}
}
