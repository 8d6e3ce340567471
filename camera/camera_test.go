package camera

import (
	"math"
	"testing"

	"github.com/pthm-cable/imagewatch/mat4"
)

type fakeSurface struct {
	w, h   int
	mx, my float64
}

func (s *fakeSurface) Width() int { return s.w }
func (s *fakeSurface) Height() int { return s.h }
func (s *fakeSurface) MouseX() float64 { return s.mx }
func (s *fakeSurface) MouseY() float64 { return s.my }

type recordingSink struct {
	poses []mat4.Mat4
}

func (r *recordingSink) SetPose(m mat4.Mat4) { r.poses = append(r.poses, m) }

func (r *recordingSink) last() mat4.Mat4 { return r.poses[len(r.poses)-1] }

type staticContent struct {
	w, h float64
	pose mat4.Mat4
}

func (c staticContent) Dimensions() (float64, float64) { return c.w, c.h }
func (c staticContent) Pose() mat4.Mat4 { return c.pose }

func newTestCamera(canvasW, canvasH int, contentW, contentH float64) (*Camera, *fakeSurface, *recordingSink) {
	surf := &fakeSurface{w: canvasW, h: canvasH, mx: float64(canvasW) / 2, my: float64(canvasH) / 2}
	sink := &recordingSink{}
	content := staticContent{w: contentW, h: contentH, pose: mat4.Identity()}
	cam := New(surf, sink, content)
	cam.PostInitialize()
	return cam, surf, sink
}

func approx(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestComputeZoomAtZeroPower(t *testing.T) {
	cam := New(nil, nil, nil)
	if z := cam.ComputeZoom(); z != 1.0 {
		t.Errorf("expected zoom 1.0 at power 0, got %f", z)
	}
}

func TestZoomPowerIsAdditive(t *testing.T) {
	a, _, _ := newTestCamera(800, 600, 400, 300)
	b, _, _ := newTestCamera(800, 600, 400, 300)
	c, _, _ := newTestCamera(800, 600, 400, 300)

	a.Zoom(1.5)
	a.Zoom(-0.25)

	b.Zoom(-0.25)
	b.Zoom(1.5)

	c.Zoom(1.25)

	if a.ZoomPower() != c.ZoomPower() || b.ZoomPower() != c.ZoomPower() {
		t.Errorf("expected equal zoom powers, got %f, %f, %f",
			a.ZoomPower(), b.ZoomPower(), c.ZoomPower())
	}
}

func TestZoomKeepsPointerFixed(t *testing.T) {
	testCases := []struct {
		name   string
		mx, my float64
		delta  float64
	}{
		{"center in", 400, 300, 1},
		{"corner in", 10, 590, 2.5},
		{"off center out", 620, 120, -3},
		{"fractional", 333.3, 71.7, 0.37},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam, surf, _ := newTestCamera(800, 600, 400, 300)
			cam.Pan(30, -20)
			surf.mx, surf.my = tc.mx, tc.my

			wx, wy := cam.ScreenToWorld(tc.mx, tc.my)
			cam.Zoom(tc.delta)
			sx, sy := cam.WorldToScreen(wx, wy)

			if !approx(sx, tc.mx, 1e-6) || !approx(sy, tc.my, 1e-6) {
				t.Errorf("world point (%f, %f) moved from (%f, %f) to (%f, %f)",
					wx, wy, tc.mx, tc.my, sx, sy)
			}
		})
	}
}

func TestZoomSequenceWithMovingPointer(t *testing.T) {
	cam, surf, _ := newTestCamera(1024, 768, 640, 480)

	steps := []struct{ mx, my, delta float64 }{
		{100, 100, 2},
		{900, 700, 1},
		{512, 200, -1.5},
		{50, 700, 3},
	}

	for i, s := range steps {
		surf.mx, surf.my = s.mx, s.my
		wx, wy := cam.ScreenToWorld(s.mx, s.my)
		cam.Zoom(s.delta)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !approx(sx, s.mx, 1e-6) || !approx(sy, s.my, 1e-6) {
			t.Errorf("step %d: pointer drifted from (%f, %f) to (%f, %f)", i, s.mx, s.my, sx, sy)
		}
	}

	if cam.ZoomPower() != 8.5 {
		t.Errorf("expected zoom power 8.5, got %f", cam.ZoomPower())
	}
}

func TestZoomInShrinksScale(t *testing.T) {
	surf := &fakeSurface{w: 800, h: 600, mx: 400, my: 300}
	cam := New(surf, nil, nil)
	cam.Resize(800, 600)

	cam.Zoom(1)

	sx, sy := cam.ScaleTransform().ScaleXY()
	if !approx(sx, 1/1.1, 1e-12) || !approx(sy, 1/1.1, 1e-12) {
		t.Errorf("expected scale 1/1.1, got (%f, %f)", sx, sy)
	}
	if tx, ty := cam.ScaleTransform().TranslationXY(); !approx(tx, 0, 1e-12) || !approx(ty, 0, 1e-12) {
		t.Errorf("zoom at canvas center should not translate, got (%f, %f)", tx, ty)
	}
}

func TestResizeProjection(t *testing.T) {
	cam := New(nil, nil, nil)
	cam.Resize(800, 600)

	inv := cam.Projection().Inverse()

	center := inv.MulVec(mat4.Point(0, 0, 0))
	if !approx(center.X(), 0, 1e-12) || !approx(center.Y(), 0, 1e-12) {
		t.Errorf("expected NDC origin at world origin, got (%f, %f)", center.X(), center.Y())
	}

	testCases := []struct{ nx, ny, wx, wy float64 }{
		{1, 1, 400, 300},
		{-1, -1, -400, -300},
		{1, -1, 400, -300},
	}
	for _, tc := range testCases {
		p := inv.MulVec(mat4.Point(tc.nx, tc.ny, 0))
		if !approx(p.X(), tc.wx, 1e-9) || !approx(p.Y(), tc.wy, 1e-9) {
			t.Errorf("NDC (%f, %f): expected (%f, %f), got (%f, %f)",
				tc.nx, tc.ny, tc.wx, tc.wy, p.X(), p.Y())
		}
	}

	if w, h := cam.CanvasSize(); w != 800 || h != 600 {
		t.Errorf("expected canvas 800x600, got %dx%d", w, h)
	}
}

func TestScreenToWorldRoundtrip(t *testing.T) {
	cam, _, _ := newTestCamera(1280, 720, 300, 200)
	cam.Pan(15, 40)

	testCases := []struct{ sx, sy float64 }{
		{640, 360},
		{100, 100},
		{1200, 600},
	}
	for _, tc := range testCases {
		wx, wy := cam.ScreenToWorld(tc.sx, tc.sy)
		sx, sy := cam.WorldToScreen(wx, wy)
		if !approx(sx, tc.sx, 1e-6) || !approx(sy, tc.sy, 1e-6) {
			t.Errorf("roundtrip failed: (%f,%f) -> (%f,%f) -> (%f,%f)",
				tc.sx, tc.sy, wx, wy, sx, sy)
		}
	}
}

func TestInitialFitGrow(t *testing.T) {
	cam, _, _ := newTestCamera(800, 600, 400, 300)

	if cam.ZoomPower() != 7 {
		t.Errorf("expected zoom power 7, got %f", cam.ZoomPower())
	}

	want := 1 / math.Pow(1.1, 7)
	if sx, sy := cam.ScaleTransform().ScaleXY(); !approx(sx, want, 1e-12) || !approx(sy, want, 1e-12) {
		t.Errorf("expected scale %f, got (%f, %f)", want, sx, sy)
	}
}

func TestInitialFitShrink(t *testing.T) {
	cam, _, _ := newTestCamera(200, 150, 400, 300)

	if cam.ZoomPower() != -8 {
		t.Errorf("expected zoom power -8, got %f", cam.ZoomPower())
	}
	if z := cam.ComputeZoom(); z > 0.5 {
		t.Errorf("expected linear zoom <= 0.5, got %f", z)
	}
}

func TestInitialFitBoundaries(t *testing.T) {
	testCases := []struct {
		name               string
		canvasW, canvasH   int
		contentW, contentH float64
		want               float64
	}{
		{"exact fit", 400, 300, 400, 300, 0},
		{"one axis equal", 800, 300, 400, 300, 0},
		{"wide overflow", 300, 600, 400, 300, -4},
		{"tall image", 1000, 500, 100, 400, 2},
		{"empty content", 800, 600, 0, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cam, _, _ := newTestCamera(tc.canvasW, tc.canvasH, tc.contentW, tc.contentH)
			if cam.ZoomPower() != tc.want {
				t.Errorf("expected zoom power %f, got %f", tc.want, cam.ZoomPower())
			}
		})
	}
}

func TestInitialFitUsesContentPose(t *testing.T) {
	surf := &fakeSurface{w: 800, h: 600}
	content := staticContent{w: 200, h: 150, pose: mat4.Scale(2, 2, 1)}
	cam := New(surf, nil, content)
	cam.PostInitialize()

	if cam.ZoomPower() != 7 {
		t.Errorf("expected zoom power 7 for scaled content, got %f", cam.ZoomPower())
	}
}

func TestRecenter(t *testing.T) {
	cam, surf, _ := newTestCamera(800, 600, 400, 300)
	surf.mx, surf.my = 120, 80
	cam.Zoom(2)
	cam.Pan(50, -12)

	cam.Recenter()

	if x, y := cam.PanOffset(); x != 0 || y != 0 {
		t.Errorf("expected pan (0, 0), got (%f, %f)", x, y)
	}
	if cam.ZoomPower() != 7 {
		t.Errorf("expected zoom power 7, got %f", cam.ZoomPower())
	}

	power, scale := cam.ZoomPower(), cam.ScaleTransform()
	cam.InitialFit()
	if cam.ZoomPower() != power || cam.ScaleTransform() != scale {
		t.Errorf("fit is not a fixed point: power %f -> %f", power, cam.ZoomPower())
	}
}

func TestPanAccumulates(t *testing.T) {
	cam := New(nil, nil, nil)
	cam.Pan(3, 4)
	cam.Pan(-1, 2)

	if x, y := cam.PanOffset(); x != 2 || y != 6 {
		t.Errorf("expected pan (2, 6), got (%f, %f)", x, y)
	}
	if tx, ty := cam.Pose().TranslationXY(); tx != -2 || ty != -6 {
		t.Errorf("expected pose translation (-2, -6), got (%f, %f)", tx, ty)
	}
}

func TestPanIgnoresZoom(t *testing.T) {
	cam, _, _ := newTestCamera(800, 600, 400, 300)
	cam.Pan(10, 0)

	if x, _ := cam.PanOffset(); x != 10 {
		t.Errorf("expected raw pan 10 at zoom %f, got %f", cam.ComputeZoom(), x)
	}
}

func TestEveryMutationPublishes(t *testing.T) {
	cam, _, sink := newTestCamera(800, 600, 400, 300)
	n := len(sink.poses)

	cam.Resize(1024, 768)
	cam.Zoom(1)
	cam.Pan(5, 5)
	cam.Recenter()
	cam.InitialFit()

	if got := len(sink.poses) - n; got != 5 {
		t.Errorf("expected 5 published poses, got %d", got)
	}
	if sink.last() != cam.Pose() {
		t.Error("last published pose differs from camera pose")
	}
}

func TestPoseComposition(t *testing.T) {
	cam, surf, _ := newTestCamera(800, 600, 400, 300)
	surf.mx, surf.my = 200, 450
	cam.Zoom(1.5)
	cam.Pan(7, -3)

	x, y := cam.PanOffset()
	want := cam.ScaleTransform().Mul(mat4.Translate(-x, -y, 0))
	if !cam.Pose().EqualApprox(want, 1e-12) {
		t.Errorf("pose %v, want scale*translate(-pan) %v", cam.Pose(), want)
	}
}

func TestUpdateIsNoop(t *testing.T) {
	cam, _, sink := newTestCamera(800, 600, 400, 300)
	n := len(sink.poses)
	pose := cam.Pose()

	cam.Update()

	if len(sink.poses) != n || cam.Pose() != pose {
		t.Error("Update changed camera state")
	}
}

func TestNilSink(t *testing.T) {
	surf := &fakeSurface{w: 800, h: 600, mx: 100, my: 100}
	cam := New(surf, nil, staticContent{w: 400, h: 300, pose: mat4.Identity()})
	cam.PostInitialize()
	cam.Zoom(1)
	cam.Pan(1, 1)

	if cam.ZoomPower() != 8 {
		t.Errorf("expected zoom power 8, got %f", cam.ZoomPower())
	}
}

func TestCopyFrom(t *testing.T) {
	src, surf, _ := newTestCamera(800, 600, 400, 300)
	surf.mx, surf.my = 10, 20
	src.Zoom(2)
	src.Pan(4, 4)

	sink := &recordingSink{}
	dst := New(surf, sink, nil)
	dst.Resize(800, 600)
	dst.CopyFrom(src)

	if dst.Pose() != src.Pose() {
		t.Errorf("expected copied pose %v, got %v", src.Pose(), dst.Pose())
	}
	if dst.ZoomPower() != src.ZoomPower() {
		t.Errorf("expected zoom power %f, got %f", src.ZoomPower(), dst.ZoomPower())
	}
	if len(sink.poses) == 0 || sink.last() != dst.Pose() {
		t.Error("CopyFrom did not publish")
	}
}

func TestCamerasAreIndependent(t *testing.T) {
	a, _, sinkA := newTestCamera(800, 600, 400, 300)
	b, _, sinkB := newTestCamera(800, 600, 400, 300)
	nb := len(sinkB.poses)

	a.Zoom(3)
	a.Pan(100, 100)

	if b.ZoomPower() != 7 {
		t.Errorf("camera b zoom changed to %f", b.ZoomPower())
	}
	if len(sinkB.poses) != nb {
		t.Error("camera b sink received poses from camera a")
	}
	if sinkA.last() == b.Pose() {
		t.Error("cameras share pose")
	}
}

func TestWithZoomFactor(t *testing.T) {
	surf := &fakeSurface{w: 800, h: 600}
	cam := New(surf, nil, staticContent{w: 400, h: 300, pose: mat4.Identity()}, WithZoomFactor(2))
	cam.PostInitialize()

	// 800 > 2^0*400 but not > 2^1*400
	if cam.ZoomPower() != 0 {
		t.Errorf("expected zoom power 0 with base 2, got %f", cam.ZoomPower())
	}

	ignored := New(nil, nil, nil, WithZoomFactor(0.5))
	if ignored.ZoomFactor() != DefaultZoomFactor {
		t.Errorf("expected default zoom factor, got %f", ignored.ZoomFactor())
	}
}

func TestFanout(t *testing.T) {
	a, b := &recordingSink{}, &recordingSink{}
	cam := New(nil, Fanout{a, nil, b}, nil)
	cam.Pan(1, 2)

	if len(a.poses) != 1 || len(b.poses) != 1 {
		t.Fatalf("expected one pose per sink, got %d and %d", len(a.poses), len(b.poses))
	}
	if a.last() != b.last() {
		t.Error("sinks received different poses")
	}
}
