package thumbstick

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

// testLayout gives a 4x2 frustum (fov 90 at distance 1, aspect 2) and a unit
// base radius, with a 1x1 region centered on the widget origin.
func testLayout(snap Snap) Layout {
	return Layout{
		Snap:             snap,
		PixelToUnits:     100,
		BaseSpriteHeight: 200,
		Distance:         1,
		FieldOfView:      90,
		Aspect:           2,
		Region:           Bounds{Extents: Vec2{0.5, 0.5}},
	}
}

func TestLayoutConfig_Frustum(t *testing.T) {
	cfg, err := testLayout(SnapLeftBottom).Config(200, 100)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if !approx(cfg.FrustumHeight, 2) || !approx(cfg.FrustumWidth, 4) {
		t.Errorf("frustum = %vx%v, want 4x2", cfg.FrustumWidth, cfg.FrustumHeight)
	}
	if !approx(cfg.BaseRadius, 1) {
		t.Errorf("radius = %v, want 1", cfg.BaseRadius)
	}
	if cfg.Distance != 1 || cfg.ViewportWidth != 200 || cfg.ViewportHeight != 100 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLayoutConfig_SnapCorners(t *testing.T) {
	// Each snap pushes the region into its corner, so that screen corner maps
	// onto the matching corner of the region.
	tests := []struct {
		snap   Snap
		screen Vec2
		local  Vec2
		pos    Vec2
	}{
		{SnapLeftBottom, Vec2{0, 0}, Vec2{-0.5, -0.5}, Vec2{-1.5, -0.5}},
		{SnapLeftTop, Vec2{0, 100}, Vec2{-0.5, 0.5}, Vec2{-1.5, 0.5}},
		{SnapRightBottom, Vec2{200, 0}, Vec2{0.5, -0.5}, Vec2{1.5, -0.5}},
		{SnapRightTop, Vec2{200, 100}, Vec2{0.5, 0.5}, Vec2{1.5, 0.5}},
	}
	for _, tt := range tests {
		t.Run(tt.snap.String(), func(t *testing.T) {
			cfg, err := testLayout(tt.snap).Config(200, 100)
			if err != nil {
				t.Fatalf("Config: %v", err)
			}
			if !approxVec(cfg.Position, tt.pos) {
				t.Errorf("position = %v, want %v", cfg.Position, tt.pos)
			}
			if got := NewMapper(cfg).ToLocal(tt.screen); !approxVec(got, tt.local) {
				t.Errorf("ToLocal(%v) = %v, want %v", tt.screen, got, tt.local)
			}
		})
	}
}

func TestLayoutConfig_OffCenterRegion(t *testing.T) {
	l := testLayout(SnapLeftBottom)
	l.Region.Center = Vec2{0.25, 0.25}
	cfg, err := l.Config(200, 100)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	// Region min is (-0.25, -0.25); the bottom-left screen corner lands there.
	if got := NewMapper(cfg).ToLocal(Vec2{}); !approxVec(got, Vec2{-0.25, -0.25}) {
		t.Errorf("ToLocal(0,0) = %v", got)
	}
}

func TestLayoutConfig_Defaults(t *testing.T) {
	cfg, err := Layout{BaseSpriteHeight: 256}.Config(640, 480)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	wantH := 2 * defaultDistance * math.Tan(defaultFieldOfView*0.5*math.Pi/180)
	if !approx(cfg.FrustumHeight, wantH) {
		t.Errorf("frustum height = %v, want %v", cfg.FrustumHeight, wantH)
	}
	if !approx(cfg.FrustumWidth, wantH*640/480) {
		t.Errorf("frustum width = %v, want viewport aspect", cfg.FrustumWidth)
	}
	if !approx(cfg.BaseRadius, 0.128) {
		t.Errorf("radius = %v, want 0.128", cfg.BaseRadius)
	}
	if cfg.Distance != defaultDistance {
		t.Errorf("distance = %v", cfg.Distance)
	}
}

func TestLayoutConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		w, h   float64
	}{
		{"zero viewport", testLayout(SnapLeftBottom), 0, 100},
		{"NaN viewport", testLayout(SnapLeftBottom), math.NaN(), 100},
		{"no sprite height", Layout{}, 640, 480},
		{"negative distance", Layout{BaseSpriteHeight: 10, Distance: -1}, 640, 480},
		{"fov 180", Layout{BaseSpriteHeight: 10, FieldOfView: 180}, 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.layout.Config(tt.w, tt.h)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLayoutRegionShape(t *testing.T) {
	l := testLayout(SnapLeftBottom)
	cfg, _ := l.Config(200, 100)
	if got := l.RegionShape(cfg); got != (HitRect{X: -0.5, Y: -0.5, Width: 1, Height: 1}) {
		t.Errorf("RegionShape = %+v", got)
	}

	l.Region = Bounds{}
	got, ok := l.RegionShape(cfg).(HitRect)
	if !ok || !approx(got.X, -1) || !approx(got.Width, 2) || !approx(got.Height, 2) {
		t.Errorf("default RegionShape = %+v, want square around radius 1", got)
	}
}

func TestLayoutPolygonRegion(t *testing.T) {
	l := testLayout(SnapLeftBottom)
	l.Region = Bounds{}
	// Triangle with bounding box (-0.5,-0.5)..(0.5,0.5), same as the rect region.
	l.Polygon = []Vec2{{-0.5, -0.5}, {0.5, -0.5}, {0, 0.5}}

	cfg, err := l.Config(200, 100)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	if !approxVec(cfg.Position, Vec2{-1.5, -0.5}) {
		t.Errorf("position = %v, want polygon bounds snapped to (-1.5,-0.5)", cfg.Position)
	}

	shape, ok := l.RegionShape(cfg).(HitPolygon)
	if !ok || len(shape.Points) != 3 {
		t.Fatalf("RegionShape = %+v, want the triangle", l.RegionShape(cfg))
	}

	s, err := New(cfg, NewRegionHitTester(cfg, shape))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	// Screen (25, 25) is local (0, 0), inside the triangle.
	// Screen (5, 45) is local (-0.4, 0.4), inside the box but outside the triangle.
	if evs := s.Update([]Pointer{{ID: 1, Phase: PhaseBegan, Screen: Vec2{5, 45}}}); len(evs) != 0 {
		t.Errorf("corner outside triangle engaged: %v", evs)
	}
	if evs := s.Update([]Pointer{{ID: 2, Phase: PhaseBegan, Screen: Vec2{25, 25}}}); len(evs) != 1 {
		t.Errorf("center of triangle did not engage: %v", evs)
	}
}

func TestLoadLayout(t *testing.T) {
	data := []byte(`
snap: rightTop
pixelToUnits: 500
baseSpriteHeight: 128
distance: 0.75
fieldOfView: 45
region:
  center: [0.1, 0]
  extents: [0.2, 0.3]
`)
	l, err := LoadLayout(data)
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	want := Layout{
		Snap:             SnapRightTop,
		PixelToUnits:     500,
		BaseSpriteHeight: 128,
		Distance:         0.75,
		FieldOfView:      45,
		Region:           Bounds{Center: Vec2{0.1, 0}, Extents: Vec2{0.2, 0.3}},
	}
	if !reflect.DeepEqual(l, want) {
		t.Errorf("layout = %+v, want %+v", l, want)
	}
}

func TestLoadLayout_Polygon(t *testing.T) {
	l, err := LoadLayout([]byte("baseSpriteHeight: 100\npolygon: [[-1, -1], [1, -1], [0, 1]]\n"))
	if err != nil {
		t.Fatalf("LoadLayout: %v", err)
	}
	want := []Vec2{{-1, -1}, {1, -1}, {0, 1}}
	if !reflect.DeepEqual(l.Polygon, want) {
		t.Errorf("polygon = %v, want %v", l.Polygon, want)
	}
}

func TestLoadLayout_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "snap: [unclosed"},
		{"unknown snap", "snap: center\nbaseSpriteHeight: 10"},
		{"missing sprite height", "snap: leftTop"},
		{"short polygon", "baseSpriteHeight: 10\npolygon: [[0, 0], [1, 1]]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadLayout([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLayoutToStick(t *testing.T) {
	l := testLayout(SnapLeftBottom)
	cfg, err := l.Config(200, 100)
	if err != nil {
		t.Fatalf("Config: %v", err)
	}
	s, err := New(cfg, NewRegionHitTester(cfg, l.RegionShape(cfg)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// Screen (25, 25) is local (0, 0): the region center.
	s.Update([]Pointer{{ID: 1, Phase: PhaseBegan, Screen: Vec2{25, 25}}})
	if s.State() != StateActive {
		t.Fatal("expected engage at region center")
	}
	// 50 px right is one local unit: the rim.
	evs := s.Update([]Pointer{{ID: 1, Phase: PhaseMoved, Screen: Vec2{75, 25}}})
	if len(evs) != 1 || !approxVec(evs[0].Direction, Vec2{1, 0}) {
		t.Errorf("events = %+v", evs)
	}
}
