package colour

import "testing"

func TestDefaultTargetsOrder(t *testing.T) {
	want := []*Target{LightVibrant, Vibrant, DarkVibrant, LightMuted, Muted, DarkMuted}

	got := DefaultTargets()
	if len(got) != len(want) {
		t.Fatalf("DefaultTargets() returned %d targets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DefaultTargets()[%d] = %s, want %s", i, got[i].Name, want[i].Name)
		}
	}
}

func TestBuiltinTargetWindows(t *testing.T) {
	tests := []struct {
		target                          *Target
		minSat, targetSat, maxSat       float64
		minLight, targetLight, maxLight float64
	}{
		{LightVibrant, 0.35, 1, 1, 0.55, 0.74, 1},
		{Vibrant, 0.35, 1, 1, 0.3, 0.5, 0.7},
		{DarkVibrant, 0.35, 1, 1, 0, 0.26, 0.45},
		{LightMuted, 0, 0.3, 0.4, 0.55, 0.74, 1},
		{Muted, 0, 0.3, 0.4, 0.3, 0.5, 0.7},
		{DarkMuted, 0, 0.3, 0.4, 0, 0.26, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.target.Name, func(t *testing.T) {
			got := tt.target
			check := func(field string, have, want float64) {
				if have != want {
					t.Errorf("%s = %v, want %v", field, have, want)
				}
			}
			check("MinSaturation", got.MinSaturation, tt.minSat)
			check("TargetSaturation", got.TargetSaturation, tt.targetSat)
			check("MaxSaturation", got.MaxSaturation, tt.maxSat)
			check("MinLightness", got.MinLightness, tt.minLight)
			check("TargetLightness", got.TargetLightness, tt.targetLight)
			check("MaxLightness", got.MaxLightness, tt.maxLight)
			if !got.Exclusive {
				t.Error("built-in targets must be exclusive")
			}
		})
	}
}

func TestNewTargetDefaults(t *testing.T) {
	target := NewTarget("custom")

	if target.Name != "custom" {
		t.Errorf("Name = %q, want %q", target.Name, "custom")
	}
	if target.MinSaturation != 0 || target.TargetSaturation != 0.5 || target.MaxSaturation != 1 {
		t.Errorf("saturation window = %v/%v/%v, want 0/0.5/1",
			target.MinSaturation, target.TargetSaturation, target.MaxSaturation)
	}
	if target.MinLightness != 0 || target.TargetLightness != 0.5 || target.MaxLightness != 1 {
		t.Errorf("lightness window = %v/%v/%v, want 0/0.5/1",
			target.MinLightness, target.TargetLightness, target.MaxLightness)
	}
	if !target.Exclusive {
		t.Error("Exclusive should default to true")
	}
}

func TestNormalizedWeights(t *testing.T) {
	tests := []struct {
		name               string
		satW, lightW, popW float64
		wantSat, wantLight float64
		wantPop            float64
	}{
		{"defaults", 0.24, 0.52, 0.24, 0.24, 0.52, 0.24},
		{"unnormalised", 1, 1, 2, 0.25, 0.25, 0.5},
		{"all zero", 0, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := NewTarget("w")
			target.SaturationWeight = tt.satW
			target.LightnessWeight = tt.lightW
			target.PopulationWeight = tt.popW

			sat, light, pop := target.normalizedWeights()
			assertWithin(t, "saturation weight", tt.wantSat, sat, 1e-9)
			assertWithin(t, "lightness weight", tt.wantLight, light, 1e-9)
			assertWithin(t, "population weight", tt.wantPop, pop, 1e-9)
		})
	}
}
