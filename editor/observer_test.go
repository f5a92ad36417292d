package editor

import (
	"canvas-editor/core"
	"canvas-editor/surface/memory"
	"testing"
)

type recorder struct {
	records []core.GeometryRecord
}

func (r *recorder) Record(rec core.GeometryRecord) {
	r.records = append(r.records, rec)
}

func (r *recorder) last(t *testing.T) core.GeometryRecord {
	t.Helper()
	if len(r.records) == 0 {
		t.Fatal("no geometry record was produced")
	}
	return r.records[len(r.records)-1]
}

func setupObserved(t *testing.T) (*memory.Surface, core.ShapeObject, *recorder) {
	t.Helper()
	rec := &recorder{}
	backend := memory.NewBackend("canvas")
	ed, err := New(backend, "canvas", WithSink(rec))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	obj, err := ed.AddRectangle()
	if err != nil {
		t.Fatalf("AddRectangle() failed: %v", err)
	}
	surface, _ := backend.Surface("canvas")
	return surface, obj, rec
}

type geometry struct {
	left, top, width, height, scaleX, scaleY float64
}

func geometryOf(obj core.ShapeObject) geometry {
	return geometry{obj.Left(), obj.Top(), obj.Width(), obj.Height(), obj.ScaleX(), obj.ScaleY()}
}

func TestObserver_NoRecordsWithoutNotifications(t *testing.T) {
	_, _, rec := setupObserved(t)

	if len(rec.records) != 0 {
		t.Errorf("expected no records after AddRectangle, got %d", len(rec.records))
	}
}

func TestObserver_Moving(t *testing.T) {
	surface, obj, rec := setupObserved(t)

	testCases := []struct {
		name string
		x, y float64
	}{
		{"FirstMove", 10, 20},
		{"Origin", 0, 0},
		{"Negative", -15, -30},
		{"Fractional", 40.5, 60.25},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := surface.Drag(obj, tc.x, tc.y); err != nil {
				t.Fatalf("Drag() failed: %v", err)
			}

			got := rec.last(t)
			if got.Kind != core.ObjectMoving {
				t.Errorf("kind mismatch: got %s, want %s", got.Kind, core.ObjectMoving)
			}
			if got.ObjectID != obj.ID() {
				t.Errorf("object id mismatch: got %s, want %s", got.ObjectID, obj.ID())
			}
			if got.X != tc.x || got.Y != tc.y {
				t.Errorf("position mismatch: got (%v, %v), want (%v, %v)", got.X, got.Y, tc.x, tc.y)
			}
			if !got.HasPosition() || got.HasSize() {
				t.Errorf("moving record should carry only position, fields=%b", got.Fields)
			}
		})
	}
}

func TestObserver_ScalingUsesScaledSize(t *testing.T) {
	surface, obj, rec := setupObserved(t)

	if err := surface.ScaleTo(obj, 2, 1.5); err != nil {
		t.Fatalf("ScaleTo() failed: %v", err)
	}

	got := rec.last(t)
	if got.Kind != core.ObjectScaling {
		t.Errorf("kind mismatch: got %s, want %s", got.Kind, core.ObjectScaling)
	}
	if got.Width != 200 || got.Height != 150 {
		t.Errorf("scaled size mismatch: got %vx%v, want 200x150", got.Width, got.Height)
	}
	if got.HasPosition() || !got.HasSize() {
		t.Errorf("scaling record should carry only size, fields=%b", got.Fields)
	}
	if obj.Width() != 100 || obj.Height() != 100 {
		t.Errorf("unscaled size changed: got %vx%v", obj.Width(), obj.Height())
	}
}

func TestObserver_ModifiedHasAllFields(t *testing.T) {
	surface, obj, rec := setupObserved(t)

	if err := surface.Drag(obj, 120, 80); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := surface.ScaleTo(obj, 0.5, 3); err != nil {
		t.Fatalf("ScaleTo() failed: %v", err)
	}
	if err := surface.Release(obj); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	got := rec.last(t)
	want := core.GeometryRecord{
		Kind:     core.ObjectModified,
		ObjectID: obj.ID(),
		X:        120,
		Y:        80,
		Width:    50,
		Height:   300,
		Fields:   core.FieldPosition | core.FieldSize,
	}
	if got != want {
		t.Errorf("modified record mismatch: got %+v, want %+v", got, want)
	}
	if len(rec.records) != 3 {
		t.Errorf("expected 3 records (moving, scaling, modified), got %d", len(rec.records))
	}
}

func TestObserver_ReadOnly(t *testing.T) {
	surface, obj, _ := setupObserved(t)

	if err := surface.Drag(obj, 33, 44); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := surface.ScaleTo(obj, 1.25, 0.75); err != nil {
		t.Fatalf("ScaleTo() failed: %v", err)
	}
	before := geometryOf(obj)

	for _, kind := range []core.NotificationKind{core.ObjectMoving, core.ObjectScaling, core.ObjectModified} {
		if err := surface.Dispatch(kind, obj); err != nil {
			t.Fatalf("Dispatch(%s) failed: %v", kind, err)
		}
		if after := geometryOf(obj); after != before {
			t.Errorf("%s changed the object: before %+v, after %+v", kind, before, after)
		}
	}
}

func TestObserver_IndependentObjects(t *testing.T) {
	rec := &recorder{}
	backend := memory.NewBackend("canvas")
	ed, err := New(backend, "canvas", WithSink(rec))
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	first, _ := ed.AddRectangle()
	second, _ := ed.AddRectangle()
	surface, _ := backend.Surface("canvas")

	if err := surface.Drag(second, 300, 310); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	if err := surface.Release(first); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	if rec.records[0].ObjectID != second.ID() || rec.records[0].X != 300 {
		t.Errorf("moving record mismatch: %+v", rec.records[0])
	}
	if rec.records[1].ObjectID != first.ID() || rec.records[1].X != 0 || rec.records[1].Y != 0 {
		t.Errorf("modified record for untouched object mismatch: %+v", rec.records[1])
	}
}

func TestScenario_MoveThenModify(t *testing.T) {
	surface, obj, rec := setupObserved(t)

	if err := surface.Drag(obj, 40, 60); err != nil {
		t.Fatalf("Drag() failed: %v", err)
	}
	moving := rec.last(t)
	if moving.X != 40 || moving.Y != 60 || moving.Fields != core.FieldPosition {
		t.Errorf("moving record mismatch: %+v", moving)
	}

	if err := surface.ScaleTo(obj, 1, 1); err != nil {
		t.Fatalf("ScaleTo() failed: %v", err)
	}
	if err := surface.Release(obj); err != nil {
		t.Fatalf("Release() failed: %v", err)
	}

	modified := rec.last(t)
	if modified.X != 40 || modified.Y != 60 || modified.Width != 100 || modified.Height != 100 {
		t.Errorf("modified record mismatch: %+v", modified)
	}
}

func BenchmarkObserver_Moving(b *testing.B) {
	backend := memory.NewBackend("canvas")
	ed, err := New(backend, "canvas", WithSink(Discard))
	if err != nil {
		b.Fatalf("New() failed: %v", err)
	}
	obj, _ := ed.AddRectangle()
	surface, _ := backend.Surface("canvas")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = surface.Drag(obj, float64(i%500), float64(i%300))
	}
}
