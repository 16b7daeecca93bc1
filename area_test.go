package ggplot

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/ggplot/raster"
	"github.com/gogpu/ggplot/scene"
	"github.com/gogpu/ggplot/text"
)

func TestFillRootWhite(t *testing.T) {
	s := scene.NewScene()
	err := PaintScene(3, 2, s, func(a *DrawingArea[*SceneBackend]) error {
		return a.Fill(White)
	})
	if err != nil {
		t.Fatalf("PaintScene: %v", err)
	}

	cmd := onlyCommand[*scene.FillCommand](t, s)
	if want := scene.NewRect(0, 0, 3, 2); cmd.Shape != want {
		t.Errorf("shape = %+v, want %+v", cmd.Shape, want)
	}

	r, err := raster.Render(s, 3, 2, raster.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := r.Image()
	white := color.RGBA{255, 255, 255, 255}
	for y := range 2 {
		for x := range 3 {
			if got := img.RGBAAt(x, y); got != white {
				t.Errorf("pixel (%d,%d) = %v, want white", x, y, got)
			}
		}
	}
}

func TestFillEmptyArea(t *testing.T) {
	s := scene.NewScene()
	a := NewDrawingArea(NewSceneBackend(0, 5, s))
	if err := a.Fill(Black); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if !s.IsEmpty() {
		t.Error("zero-width area recorded a fill")
	}
}

func TestPaintReleasesBackend(t *testing.T) {
	s := scene.NewScene()
	var kept *DrawingArea[*TextBackend]

	err := Paint(40, 30, s, text.NewContext(), func(a *DrawingArea[*TextBackend]) error {
		kept = a
		if w, h := a.Size(); w != 40 || h != 30 {
			t.Errorf("Size() = %d, %d, want 40, 30", w, h)
		}
		if err := a.Fill(White); err != nil {
			return err
		}
		return a.DrawText("ok", NewTextStyle(FamilySansSerif, 12), Coord(2, 2))
	})
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("scene has %d commands, want 2", s.Len())
	}

	if err := kept.Fill(Black); !errors.Is(err, ErrReleased) {
		t.Errorf("Fill after paint: %v, want ErrReleased", err)
	}
	if err := kept.DrawText("late", NewTextStyle(FamilySansSerif, 12), Coord(0, 0)); !errors.Is(err, ErrReleased) {
		t.Errorf("DrawText after paint: %v, want ErrReleased", err)
	}
	if err := kept.Present(); !errors.Is(err, ErrReleased) {
		t.Errorf("Present after paint: %v, want ErrReleased", err)
	}
	if s.Len() != 2 {
		t.Errorf("released backend mutated the scene: %d commands", s.Len())
	}
}

func TestPaintPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	s := scene.NewScene()
	err := PaintScene(10, 10, s, func(a *DrawingArea[*SceneBackend]) error {
		_ = a.Fill(White)
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("PaintScene error = %v, want %v", err, boom)
	}
	if s.Len() != 1 {
		t.Errorf("scene has %d commands, want 1", s.Len())
	}
}

func TestPaintedChartRenders(t *testing.T) {
	s := scene.NewScene()
	err := Paint(20, 20, s, text.NewContext(), func(a *DrawingArea[*TextBackend]) error {
		b := a.Backend()
		if err := a.Fill(White); err != nil {
			return err
		}
		if err := b.DrawLine(Coord(0, 10), Coord(19, 10), Black); err != nil {
			return err
		}
		return b.DrawPixel(Coord(3, 3), Red)
	})
	if err != nil {
		t.Fatalf("Paint: %v", err)
	}

	r, err := raster.Render(s, 20, 20, raster.Options{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	img := r.Image()
	tests := []struct {
		x, y int
		want color.RGBA
	}{
		{5, 10, color.RGBA{0, 0, 0, 255}},
		{5, 9, color.RGBA{255, 255, 255, 255}},
		{3, 3, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := img.RGBAAt(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
