package clock

import "fmt"

// TimeStyle selects how hour labels are written.
type TimeStyle string

const (
	TimeStyleAMPM TimeStyle = "ampm"
	TimeStyle24   TimeStyle = "24"
)

// ParseTimeStyle resolves a time style name, reporting whether it was
// recognized.
func ParseTimeStyle(s string) (TimeStyle, bool) {
	switch TimeStyle(s) {
	case TimeStyleAMPM, TimeStyle24:
		return TimeStyle(s), true
	}
	return TimeStyleAMPM, false
}

// LabelAnchor is a text label with its anchor point on the edge path.
type LabelAnchor struct {
	Text   string
	Anchor HourPoint
}

// HourLabelAnchors returns the 24 hour labels with their edge-path
// positions. Because the day covers the single boundary edge twice, each
// ring angle carries two labels twelve hours apart, one on each side of
// the strip.
func (m *Mapper) HourLabelAnchors(style TimeStyle) []LabelAnchor {
	labels := make([]LabelAnchor, 0, 24)
	for h := 0; h < 24; h++ {
		labels = append(labels, LabelAnchor{
			Text:   formatHour(h, style),
			Anchor: m.HourPosition(float64(h)),
		})
	}
	return labels
}

func formatHour(h int, style TimeStyle) string {
	if style == TimeStyle24 {
		return fmt.Sprintf("%02d", h)
	}
	suffix := "am"
	if h >= 12 {
		suffix = "pm"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%d%s", h12, suffix)
}
