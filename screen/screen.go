// SPDX-License-Identifier: Unlicense OR MIT

/*
Package screen classifies the display a program runs on.

A Classifier derives the orientation, the density qualifier and the
device class of a display from its raw Metrics, and converts between
pixels and device independent pixels at the display density.

The host program creates one Classifier at startup and hands it to the
code that needs it. Init may be called whenever the display could have
changed, for example every time the program resumes:

	c := screen.New()
	...
	c.Init(screen.MetricsForDPI(width, height, dpi))
	if c.Is7InchTablet() {
		...
	}

Init recomputes the derived state only when the orientation changes, so
repeated calls are cheap.
*/
package screen

import (
	"fmt"
	"sync"

	"perzo.com/toolbox/debuglog"
	"perzo.com/toolbox/unit"
)

// DeviceClass is the size class of a device derived from the shorter
// side of its display.
type DeviceClass uint8

const (
	// UnknownDevice is reported before the first Init.
	UnknownDevice DeviceClass = iota
	Phone
	SevenInchTablet
	TenInchTablet
)

// Device class thresholds, in dp of the shorter display side.
const (
	SevenInchTabletMinDp = 550
	TenInchTabletMinDp   = 700
)

// DefaultTag is the log tag used unless the Tag option is given.
const DefaultTag = "ScreenMetrics"

// LogFunc writes a tagged log message and returns a result code, like
// debuglog.I.
type LogFunc func(tag, msg string) int

// Option configures a Classifier.
type Option func(cnf *config)

type config struct {
	tag string
	log LogFunc
}

// Tag sets the tag of the log messages.
func Tag(t string) Option {
	return func(cnf *config) {
		cnf.tag = t
	}
}

// Log sets the function receiving the summary logged
// every time Init recomputes the state.
func Log(f LogFunc) Option {
	if f == nil {
		panic("nil LogFunc")
	}
	return func(cnf *config) {
		cnf.log = f
	}
}

// State is a consistent snapshot of the state derived by Init.
type State struct {
	Orientation Orientation
	// Density is the density scale factor.
	Density           float32
	WidthPx, HeightPx int
	WidthDp, HeightDp int
	// AspectRatio is WidthPx / HeightPx.
	AspectRatio float32
	Qualifier   Density
}

// Classifier derives and caches display classifications. The zero
// Classifier is not usable; create one with New. A Classifier is safe
// for concurrent use.
type Classifier struct {
	config

	mu    sync.RWMutex
	state State
	class deviceClass
}

// deviceClass is the lazily computed device class: stale until fresh
// is set, and stale again after every recomputation of the state.
type deviceClass struct {
	fresh bool
	value DeviceClass
}

// New returns a Classifier with no metrics. Its accessors report zero
// values until Init is called.
func New(opts ...Option) *Classifier {
	c := &Classifier{
		config: config{
			tag: DefaultTag,
			log: debuglog.I,
		},
	}
	for _, o := range opts {
		o(&c.config)
	}
	return c
}

// Init updates the classifier from the current display metrics. The
// state is recomputed only if the orientation of m differs from the
// last recomputation; otherwise Init does nothing.
//
// m must have a non-zero height and a positive density; see
// Metrics.Validate.
func (c *Classifier) Init(m Metrics) {
	o := DetectOrientation(m)
	c.mu.Lock()
	if o == c.state.Orientation {
		c.mu.Unlock()
		return
	}
	c.setup(m, o)
	summary := c.describe()
	c.mu.Unlock()
	c.log(c.tag, "Init: "+summary)
}

// setup replaces the state. Called with mu held.
func (c *Classifier) setup(m Metrics, o Orientation) {
	metric := unit.Metric{PxPerDp: m.Density}
	q := c.state.Qualifier
	if d, ok := DetectDensity(m.DensityDPI); ok {
		q = d
	}
	c.state = State{
		Orientation: o,
		Density:     m.Density,
		WidthPx:     m.WidthPx,
		HeightPx:    m.HeightPx,
		WidthDp:     metric.PxToDp(float32(m.WidthPx)),
		HeightDp:    metric.PxToDp(float32(m.HeightPx)),
		AspectRatio: float32(m.WidthPx) / float32(m.HeightPx),
		Qualifier:   q,
	}
	c.class = deviceClass{}
}

// State returns a snapshot of the derived state.
func (c *Classifier) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Metric returns the pixel converter for the current density.
func (c *Classifier) Metric() unit.Metric {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return unit.Metric{PxPerDp: c.state.Density}
}

// PxToDp converts pixels to whole dps at the current density. The
// result is undefined before the first Init.
func (c *Classifier) PxToDp(px float32) int {
	return c.Metric().PxToDp(px)
}

// DpToPx converts dps to whole pixels at the current density.
func (c *Classifier) DpToPx(dp float32) int {
	return c.Metric().DpToPx(dp)
}

func (c *Classifier) Orientation() Orientation { return c.State().Orientation }
func (c *Classifier) DensityScale() float32    { return c.State().Density }
func (c *Classifier) WidthPx() int             { return c.State().WidthPx }
func (c *Classifier) HeightPx() int            { return c.State().HeightPx }
func (c *Classifier) WidthDp() int             { return c.State().WidthDp }
func (c *Classifier) HeightDp() int            { return c.State().HeightDp }
func (c *Classifier) AspectRatio() float32     { return c.State().AspectRatio }

// Density returns the density qualifier. An unrecognized density DPI
// leaves the qualifier of the previous Init in place.
func (c *Classifier) Density() Density { return c.State().Qualifier }

// DeviceClass returns the device class, computing it from the shorter
// display side on first use after each recomputation.
func (c *Classifier) DeviceClass() DeviceClass {
	c.mu.RLock()
	dc, o := c.class, c.state.Orientation
	c.mu.RUnlock()
	if dc.fresh {
		return dc.value
	}
	if o == Unknown {
		return UnknownDevice
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.class.fresh && c.state.Orientation != Unknown {
		c.class = deviceClass{
			fresh: true,
			value: ClassForDp(min(c.state.WidthDp, c.state.HeightDp)),
		}
	}
	return c.class.value
}

func (c *Classifier) IsPhone() bool        { return c.DeviceClass() == Phone }
func (c *Classifier) Is7InchTablet() bool  { return c.DeviceClass() == SevenInchTablet }
func (c *Classifier) Is10InchTablet() bool { return c.DeviceClass() == TenInchTablet }

// ClassForDp classifies a device by the length of its shorter display
// side. Exactly SevenInchTabletMinDp is classified TenInchTablet.
func ClassForDp(minSideDp int) DeviceClass {
	switch {
	case minSideDp < SevenInchTabletMinDp:
		return Phone
	case SevenInchTabletMinDp < minSideDp && minSideDp < TenInchTabletMinDp:
		return SevenInchTablet
	default:
		return TenInchTablet
	}
}

func (c *Classifier) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.describe()
}

// describe formats the state. Called with mu held.
func (c *Classifier) describe() string {
	s := c.state
	dc := UnknownDevice
	if c.class.fresh {
		dc = c.class.value
	}
	return fmt.Sprintf("ScreenMetrics{orientation=%v, density=%g, widthPx=%d, heightPx=%d, widthDp=%d, heightDp=%d, aspectRatio=%g, qualifier=%v, deviceClass=%v}",
		s.Orientation, s.Density, s.WidthPx, s.HeightPx, s.WidthDp, s.HeightDp, s.AspectRatio, s.Qualifier, dc)
}

func (d DeviceClass) String() string {
	switch d {
	case UnknownDevice:
		return "UNKNOWN"
	case Phone:
		return "PHONE"
	case SevenInchTablet:
		return "SEVEN_INCH_TABLET"
	case TenInchTablet:
		return "TEN_INCH_TABLET"
	default:
		panic("unknown device class")
	}
}
