package colour

import "testing"

func TestDefaultFilter(t *testing.T) {
	tests := []struct {
		name string
		c    ARGB
		want bool
	}{
		{"pure black", Black, false},
		{"near black", NewRGB(8, 8, 8), false},
		{"pure white", White, false},
		{"near white", NewRGB(250, 250, 250), false},
		{"washed out red i line", HSLToColor(20, 0.7, 0.5), false},
		{"saturated red i line", HSLToColor(20, 0.9, 0.5), true},
		{"orange beyond i line", HSLToColor(40, 0.7, 0.5), true},
		{"plain blue", NewRGB(0, 0, 255), true},
		{"mid grey", NewRGB(128, 128, 128), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := ColorToHSL(tt.c)
			if got := DefaultFilter.IsAllowed(tt.c, h, s, l); got != tt.want {
				t.Errorf("IsAllowed(%s, h=%.1f s=%.2f l=%.2f) = %v, want %v",
					tt.c.Hex(), h, s, l, got, tt.want)
			}
		})
	}
}

func TestFilterFunc(t *testing.T) {
	onlyBlue := FilterFunc(func(c ARGB, h, s, l float64) bool {
		return c.Blue() > c.Red() && c.Blue() > c.Green()
	})

	if !onlyBlue.IsAllowed(NewRGB(0, 0, 255), 240, 1, 0.5) {
		t.Error("blue should pass the blue-only filter")
	}
	if onlyBlue.IsAllowed(NewRGB(255, 0, 0), 0, 1, 0.5) {
		t.Error("red should fail the blue-only filter")
	}
}
