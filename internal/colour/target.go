package colour

// Luma and saturation constants shaping the built-in targets.
const (
	targetDarkLuma  = 0.26
	maxDarkLuma     = 0.45
	minLightLuma    = 0.55
	targetLightLuma = 0.74

	minNormalLuma    = 0.3
	targetNormalLuma = 0.5
	maxNormalLuma    = 0.7

	targetMutedSaturation = 0.3
	maxMutedSaturation    = 0.4

	targetVibrantSaturation = 1.0
	minVibrantSaturation    = 0.35

	weightSaturation = 0.24
	weightLightness  = 0.52
	weightPopulation = 0.24
)

// Target describes a desired swatch profile: an HSL acceptance window,
// the ideal saturation and lightness inside it, and the weights used
// to score candidate swatches. Targets must not be modified after
// construction; palette generation never mutates them.
type Target struct {
	Name string

	MinSaturation    float64
	TargetSaturation float64
	MaxSaturation    float64

	MinLightness    float64
	TargetLightness float64
	MaxLightness    float64

	SaturationWeight float64
	LightnessWeight  float64
	PopulationWeight float64

	// Exclusive marks the target as claiming its selected swatch's
	// colour, hiding that colour from targets scored afterwards.
	Exclusive bool
}

// The six built-in target profiles.
var (
	LightVibrant = newBuiltinTarget("Light Vibrant", minLightLuma, targetLightLuma, 1, minVibrantSaturation, targetVibrantSaturation, 1)
	Vibrant      = newBuiltinTarget("Vibrant", minNormalLuma, targetNormalLuma, maxNormalLuma, minVibrantSaturation, targetVibrantSaturation, 1)
	DarkVibrant  = newBuiltinTarget("Dark Vibrant", 0, targetDarkLuma, maxDarkLuma, minVibrantSaturation, targetVibrantSaturation, 1)
	LightMuted   = newBuiltinTarget("Light Muted", minLightLuma, targetLightLuma, 1, 0, targetMutedSaturation, maxMutedSaturation)
	Muted        = newBuiltinTarget("Muted", minNormalLuma, targetNormalLuma, maxNormalLuma, 0, targetMutedSaturation, maxMutedSaturation)
	DarkMuted    = newBuiltinTarget("Dark Muted", 0, targetDarkLuma, maxDarkLuma, 0, targetMutedSaturation, maxMutedSaturation)
)

// DefaultTargets returns the six built-in targets in their scoring
// order: the vibrant family first, then the muted family.
func DefaultTargets() []*Target {
	return []*Target{LightVibrant, Vibrant, DarkVibrant, LightMuted, Muted, DarkMuted}
}

// NewTarget returns a target with the default acceptance window (the
// whole HSL space centred on mid saturation and lightness), default
// weights and exclusivity enabled. Callers adjust fields before use.
func NewTarget(name string) *Target {
	return &Target{
		Name:             name,
		MinSaturation:    0,
		TargetSaturation: 0.5,
		MaxSaturation:    1,
		MinLightness:     0,
		TargetLightness:  0.5,
		MaxLightness:     1,
		SaturationWeight: weightSaturation,
		LightnessWeight:  weightLightness,
		PopulationWeight: weightPopulation,
		Exclusive:        true,
	}
}

func newBuiltinTarget(name string, minLight, targetLight, maxLight, minSat, targetSat, maxSat float64) *Target {
	t := NewTarget(name)
	t.MinLightness = minLight
	t.TargetLightness = targetLight
	t.MaxLightness = maxLight
	t.MinSaturation = minSat
	t.TargetSaturation = targetSat
	t.MaxSaturation = maxSat
	return t
}

// normalizedWeights returns the scoring weights scaled to sum to 1, so
// partially-weighted targets behave predictably. The target itself is
// left untouched.
func (t *Target) normalizedWeights() (sat, light, pop float64) {
	sum := t.SaturationWeight + t.LightnessWeight + t.PopulationWeight
	if sum == 0 {
		return 0, 0, 0
	}
	return t.SaturationWeight / sum, t.LightnessWeight / sum, t.PopulationWeight / sum
}
