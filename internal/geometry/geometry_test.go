package geometry

import "testing"

func TestUsable(t *testing.T) {
	conv := Converter{FrameOffset: 2, YOffset: 24}
	usable := conv.Usable(Screen{Width: 1920, Height: 1080})

	if usable.Width != 1916 {
		t.Errorf("usable.Width = %d, want 1916", usable.Width)
	}
	if usable.Height != 1052 {
		t.Errorf("usable.Height = %d, want 1052", usable.Height)
	}
}

func TestToPixels_FullScreen(t *testing.T) {
	conv := Converter{FrameOffset: 2, YOffset: 24}
	usable := Screen{Width: 1916, Height: 1052}

	r := conv.ToPixels(UnitRect{X: 0, Y: 0, Width: 1, Height: 1}, usable)

	want := Rect{X: 2, Y: 26, Width: 1916, Height: 1052}
	if r != want {
		t.Errorf("ToPixels = %+v, want %+v", r, want)
	}
}

func TestToPixels_Truncates(t *testing.T) {
	conv := Converter{}
	usable := Screen{Width: 1001, Height: 999}

	// 1001 * 0.5 = 500.5 and 999 * 0.5 = 499.5; both must truncate.
	r := conv.ToPixels(UnitRect{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5}, usable)

	if r.X != 500 || r.Width != 500 {
		t.Errorf("X/Width = %d/%d, want 500/500", r.X, r.Width)
	}
	if r.Y != 499 || r.Height != 499 {
		t.Errorf("Y/Height = %d/%d, want 499/499", r.Y, r.Height)
	}
}

func TestToPixels_Deterministic(t *testing.T) {
	conv := Converter{FrameOffset: 1, YOffset: 20}
	usable := Screen{Width: 1278, Height: 778}
	u := UnitRect{X: 0.33, Y: 0.25, Width: 0.67, Height: 0.75}

	first := conv.ToPixels(u, usable)
	for i := 0; i < 10; i++ {
		if got := conv.ToPixels(u, usable); got != first {
			t.Fatalf("conversion not deterministic: %+v vs %+v", got, first)
		}
	}
}

func TestToPixels_StaysWithinUsable(t *testing.T) {
	conv := Converter{FrameOffset: 2, YOffset: 24}
	usable := conv.Usable(Screen{Width: 1920, Height: 1080})

	cases := []UnitRect{
		{0, 0, 1, 1},
		{0.5, 0.5, 0.5, 0.5},
		{0.25, 0.3, 0.75, 0.7},
		{0.99, 0.99, 0.01, 0.01},
	}

	for _, u := range cases {
		r := conv.ToPixels(u, usable)
		if r.X < conv.FrameOffset || r.X+r.Width > conv.FrameOffset+usable.Width {
			t.Errorf("%+v: horizontal bounds [%d, %d] outside usable", u, r.X, r.X+r.Width)
		}
		top := conv.YOffset + conv.FrameOffset
		if r.Y < top || r.Y+r.Height > top+usable.Height {
			t.Errorf("%+v: vertical bounds [%d, %d] outside usable", u, r.Y, r.Y+r.Height)
		}
	}
}
