package strip

// TickScheme selects the coloring policy for hour/minute markings on the
// strip surface.
type TickScheme string

const (
	// TickStandard marks hours on the full width and minutes on the
	// middle-third band.
	TickStandard TickScheme = "standard"
	// TickMinimal marks hours only.
	TickMinimal TickScheme = "minimal"
	// TickAlternating colors whole hour sectors with alternating parity.
	TickAlternating TickScheme = "alternating"
	// TickAlternatingTicks additionally alternates minute sectors on the
	// middle-third band, phase-inverted against the hour sectors.
	TickAlternatingTicks TickScheme = "alternating_ticks"
)

// DefaultTickScheme is used when configuration carries an unrecognized
// scheme name.
const DefaultTickScheme = TickStandard

// ParseTickScheme maps a config string to a TickScheme. ok is false for
// unrecognized values, in which case the default is returned.
func ParseTickScheme(s string) (TickScheme, bool) {
	switch TickScheme(s) {
	case TickStandard, TickMinimal, TickAlternating, TickAlternatingTicks:
		return TickScheme(s), true
	}
	return DefaultTickScheme, false
}

// Material is a material slot index on the strip mesh.
type Material int

const (
	// MaterialLight is the unmarked strip surface.
	MaterialLight Material = iota
	// MaterialDarkPrimary marks hour ticks and hour sectors.
	MaterialDarkPrimary
	// MaterialDarkSecondary marks minute ticks and minute sectors.
	MaterialDarkSecondary

	// MaterialCount is the number of material slots.
	MaterialCount
)

// Classify returns the material slots of segment i's outer-thirds group
// and middle-third group under the given scheme. Pure function: for a
// fixed scheme and segment the result never changes.
//
// With the reference N=360 an hour mark covers 30 segments and a minute
// mark 6; both scale with N.
func Classify(scheme TickScheme, i, n int) (outer, middle Material) {
	segPerHour := n / 12
	if segPerHour < 1 {
		segPerHour = 1
	}
	segPerMinute := n / 60
	if segPerMinute < 1 {
		segPerMinute = 1
	}

	isHourTick := i%segPerHour == 0
	isMinuteTick := i%segPerMinute == 0
	hourIndex := i / segPerHour
	minuteIndex := i / segPerMinute

	switch scheme {
	case TickMinimal:
		if isHourTick {
			return MaterialDarkPrimary, MaterialDarkPrimary
		}
		return MaterialLight, MaterialLight

	case TickAlternating:
		m := hourSectorMaterial(hourIndex)
		return m, m

	case TickAlternatingTicks:
		outer = hourSectorMaterial(hourIndex)
		// Inverted phase against the hour sectors, so the minute band
		// remains visible inside dark hour sectors.
		if minuteIndex%2 == 1 {
			middle = MaterialDarkSecondary
		} else {
			middle = MaterialLight
		}
		return outer, middle

	default: // TickStandard
		if isHourTick {
			outer = MaterialDarkPrimary
		} else {
			outer = MaterialLight
		}
		switch {
		case isHourTick:
			middle = MaterialDarkPrimary
		case isMinuteTick:
			middle = MaterialDarkSecondary
		default:
			middle = MaterialLight
		}
		return outer, middle
	}
}

func hourSectorMaterial(hourIndex int) Material {
	if hourIndex%2 == 0 {
		return MaterialDarkPrimary
	}
	return MaterialLight
}
