// SPDX-License-Identifier: Unlicense OR MIT

package screen

import (
	"math"
	"strings"
	"sync"
	"testing"
)

type recorder struct {
	mu    sync.Mutex
	lines []string
}

func (r *recorder) log(tag, msg string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, tag+": "+msg)
	return len(msg)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lines)
}

func newTestClassifier() (*Classifier, *recorder) {
	r := new(recorder)
	return New(Log(r.log)), r
}

var nexus5 = Metrics{WidthPx: 1080, HeightPx: 1920, Density: 3, DensityDPI: 480}

func TestDetectOrientation(t *testing.T) {
	tests := []struct {
		w, h int
		want Orientation
	}{
		{1920, 1080, Landscape},
		{1080, 1920, Portrait},
		{1000, 1000, Portrait},
		{1001, 1000, Landscape},
		{0, 10, Portrait},
	}
	for _, test := range tests {
		got := DetectOrientation(Metrics{WidthPx: test.w, HeightPx: test.h, Density: 1})
		if got != test.want {
			t.Errorf("DetectOrientation(%dx%d) = %v, want %v", test.w, test.h, got, test.want)
		}
	}
}

func TestDetectDensity(t *testing.T) {
	tests := []struct {
		dpi  int
		want Density
	}{
		{120, LDPI},
		{160, MDPI},
		{213, TVDPI},
		{240, HDPI},
		{320, XHDPI},
		{480, XXHDPI},
	}
	for _, test := range tests {
		got, ok := DetectDensity(test.dpi)
		if !ok || got != test.want {
			t.Errorf("DetectDensity(%d) = %v, %v, want %v", test.dpi, got, ok, test.want)
		}
	}
	if got, ok := DetectDensity(999); ok || got != DensityUnset {
		t.Errorf("DetectDensity(999) = %v, %v", got, ok)
	}
}

func TestClassForDp(t *testing.T) {
	tests := []struct {
		dp   int
		want DeviceClass
	}{
		{0, Phone},
		{360, Phone},
		{549, Phone},
		// 550 matches neither the phone nor the 7" range.
		{550, TenInchTablet},
		{551, SevenInchTablet},
		{600, SevenInchTablet},
		{699, SevenInchTablet},
		{700, TenInchTablet},
		{800, TenInchTablet},
	}
	for _, test := range tests {
		if got := ClassForDp(test.dp); got != test.want {
			t.Errorf("ClassForDp(%d) = %v, want %v", test.dp, got, test.want)
		}
	}
}

func TestInit(t *testing.T) {
	c, r := newTestClassifier()
	c.Init(nexus5)
	if got := c.Orientation(); got != Portrait {
		t.Errorf("orientation = %v", got)
	}
	if c.WidthPx() != 1080 || c.HeightPx() != 1920 {
		t.Errorf("size = %dx%d px", c.WidthPx(), c.HeightPx())
	}
	if c.WidthDp() != 360 || c.HeightDp() != 640 {
		t.Errorf("size = %dx%d dp", c.WidthDp(), c.HeightDp())
	}
	if got := c.AspectRatio(); math.Abs(float64(got)-0.5625) > 1e-6 {
		t.Errorf("aspect ratio = %v", got)
	}
	if got := c.DensityScale(); got != 3 {
		t.Errorf("density scale = %v", got)
	}
	if got := c.Density(); got != XXHDPI {
		t.Errorf("density = %v", got)
	}
	if got := c.DeviceClass(); got != Phone {
		t.Errorf("device class = %v", got)
	}
	if !c.IsPhone() || c.Is7InchTablet() || c.Is10InchTablet() {
		t.Error("expected a phone")
	}
	if r.count() != 1 {
		t.Fatalf("logged %d lines, want 1", r.count())
	}
	if line := r.lines[0]; !strings.HasPrefix(line, DefaultTag+": Init: ScreenMetrics{orientation=PORTRAIT") {
		t.Errorf("unexpected log line %q", line)
	}
}

func TestInitSameOrientation(t *testing.T) {
	c, r := newTestClassifier()
	c.Init(nexus5)
	c.DeviceClass()
	before := c.State()
	// Same orientation, different size: nothing is recomputed.
	c.Init(Metrics{WidthPx: 1200, HeightPx: 1920, Density: 2, DensityDPI: 320})
	if got := c.State(); got != before {
		t.Errorf("state changed to %+v, want %+v", got, before)
	}
	if !c.class.fresh || c.class.value != Phone {
		t.Errorf("device class cache = %+v", c.class)
	}
	if r.count() != 1 {
		t.Errorf("logged %d lines, want 1", r.count())
	}
}

func TestInitOrientationChange(t *testing.T) {
	c, r := newTestClassifier()
	c.Init(nexus5)
	if got := c.DeviceClass(); got != Phone {
		t.Fatalf("device class = %v", got)
	}
	tablet := Metrics{WidthPx: 2560, HeightPx: 1600, Density: 2, DensityDPI: 320}
	c.Init(tablet)
	if c.class.fresh {
		t.Error("device class not reset")
	}
	want := State{
		Orientation: Landscape,
		Density:     2,
		WidthPx:     2560,
		HeightPx:    1600,
		WidthDp:     1280,
		HeightDp:    800,
		AspectRatio: 1.6,
		Qualifier:   XHDPI,
	}
	if got := c.State(); got != want {
		t.Errorf("state = %+v, want %+v", got, want)
	}
	if got := c.DeviceClass(); got != TenInchTablet {
		t.Errorf("device class = %v", got)
	}
	if r.count() != 2 {
		t.Errorf("logged %d lines, want 2", r.count())
	}
}

func TestUnknownDPIKeepsQualifier(t *testing.T) {
	c, _ := newTestClassifier()
	c.Init(Metrics{WidthPx: 800, HeightPx: 1280, Density: 1.5, DensityDPI: 999})
	if got := c.Density(); got != DensityUnset {
		t.Errorf("density = %v, want %v", got, DensityUnset)
	}
	c.Init(Metrics{WidthPx: 1280, HeightPx: 800, Density: 1.5, DensityDPI: 240})
	if got := c.Density(); got != HDPI {
		t.Errorf("density = %v, want %v", got, HDPI)
	}
	c.Init(Metrics{WidthPx: 800, HeightPx: 1280, Density: 1.5, DensityDPI: 999})
	if got := c.Density(); got != HDPI {
		t.Errorf("density = %v, want stale %v", got, HDPI)
	}
}

func TestSizeClassBoundaries(t *testing.T) {
	tests := []struct {
		minDp int
		want  DeviceClass
	}{
		{549, Phone},
		{550, TenInchTablet},
		{600, SevenInchTablet},
		{700, TenInchTablet},
	}
	for _, test := range tests {
		c, _ := newTestClassifier()
		c.Init(Metrics{WidthPx: test.minDp, HeightPx: 1200, Density: 1, DensityDPI: 160})
		if got := c.DeviceClass(); got != test.want {
			t.Errorf("min side %d dp: device class = %v, want %v", test.minDp, got, test.want)
		}
	}
}

func TestZeroClassifier(t *testing.T) {
	c, r := newTestClassifier()
	if got := c.State(); got != (State{}) {
		t.Errorf("state = %+v", got)
	}
	if got := c.DeviceClass(); got != UnknownDevice {
		t.Errorf("device class = %v", got)
	}
	if c.IsPhone() || c.Is7InchTablet() || c.Is10InchTablet() {
		t.Error("classified before Init")
	}
	if r.count() != 0 {
		t.Errorf("logged %d lines", r.count())
	}
	if s := c.String(); !strings.Contains(s, "orientation=UNKNOWN") {
		t.Errorf("String() = %q", s)
	}
}

func TestConversions(t *testing.T) {
	c, _ := newTestClassifier()
	c.Init(Metrics{WidthPx: 720, HeightPx: 1280, Density: 2, DensityDPI: 320})
	if got := c.PxToDp(721); got != 361 {
		t.Errorf("PxToDp(721) = %d", got)
	}
	if got := c.DpToPx(48); got != 96 {
		t.Errorf("DpToPx(48) = %d", got)
	}
	if got := c.Metric().PxPerDp; got != 2 {
		t.Errorf("Metric().PxPerDp = %v", got)
	}
}

func TestConcurrentInit(t *testing.T) {
	c, r := newTestClassifier()
	portrait := nexus5
	landscape := Metrics{WidthPx: 1920, HeightPx: 1080, Density: 3, DensityDPI: 480}
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if (i+j)%2 == 0 {
					c.Init(portrait)
				} else {
					c.Init(landscape)
				}
				s := c.State()
				if s.WidthDp != 360 && s.WidthDp != 640 {
					t.Errorf("torn state %+v", s)
				}
				if got := c.DeviceClass(); got != Phone {
					t.Errorf("device class = %v", got)
				}
			}
		}(i)
	}
	wg.Wait()
	if r.count() == 0 {
		t.Error("no state recomputed")
	}
}

func TestMetricsForDPI(t *testing.T) {
	m := MetricsForDPI(1080, 1920, 480)
	if m != nexus5 {
		t.Errorf("MetricsForDPI = %+v, want %+v", m, nexus5)
	}
}

func TestValidate(t *testing.T) {
	if err := nexus5.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	bad := []Metrics{
		{WidthPx: 10, HeightPx: 0, Density: 1},
		{WidthPx: 10, HeightPx: 10, Density: 0},
		{WidthPx: 10, HeightPx: 10, Density: float32(math.NaN())},
		{WidthPx: -1, HeightPx: 10, Density: 1},
	}
	for _, m := range bad {
		if err := m.Validate(); err == nil {
			t.Errorf("Validate(%+v) succeeded", m)
		}
	}
}
