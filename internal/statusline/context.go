package statusline

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/himattm/ctxmon/internal/colors"
)

const (
	barSegments  = 8
	barFilled    = "█"
	barEmpty     = "▁"
	unknownUsage = "🔵 ???"
)

// ResolveContextUsage derives usage from the raw context_window value.
// The bool is false when usage cannot be determined.
func ResolveContextUsage(raw json.RawMessage) (ContextUsage, bool) {
	if isNull(raw) {
		return ContextUsage{}, false
	}

	var window contextWindow
	if err := json.Unmarshal(raw, &window); err != nil {
		return ContextUsage{}, false
	}
	if window.Size == nil || *window.Size <= 0 {
		return ContextUsage{}, false
	}
	size := *window.Size
	warning := parseWarning(window.Warning)

	// No calls yet: usage is null while the window size is already known.
	if isNull(window.CurrentUsage) {
		return ContextUsage{Warning: warning}, true
	}

	var counters tokenCounters
	if err := json.Unmarshal(window.CurrentUsage, &counters); err != nil {
		return ContextUsage{}, false
	}

	tokens := counters.total()
	return ContextUsage{
		Percent: clampPercent(tokens / size * 100),
		Tokens:  int64(tokens),
		Warning: warning,
	}, true
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func parseWarning(raw json.RawMessage) Warning {
	var s string
	if isNull(raw) || json.Unmarshal(raw, &s) != nil {
		return WarningNone
	}
	return Warning(s)
}

func clampPercent(pct float64) float64 {
	if math.IsNaN(pct) {
		return 0
	}
	return math.Max(0, math.Min(100, pct))
}

// Tier is a context usage severity level
type Tier int

const (
	TierNormal Tier = iota
	TierModerate
	TierElevated
	TierHigh
	TierCritical
)

func (t Tier) String() string {
	switch t {
	case TierNormal:
		return "normal"
	case TierModerate:
		return "moderate"
	case TierElevated:
		return "elevated"
	case TierHigh:
		return "high"
	case TierCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Indicator is the icon, color and alert shown for a usage level
type Indicator struct {
	Tier  Tier
	Icon  string
	Color string
	Alert string
}

// thresholds are ordered from highest to lowest; the first match wins.
var thresholds = []struct {
	min float64
	ind Indicator
}{
	{95, Indicator{Tier: TierCritical, Icon: "🚨", Color: colors.BoldRed, Alert: "CRIT"}},
	{90, Indicator{Tier: TierHigh, Icon: "🔴", Color: colors.Red, Alert: "HIGH"}},
	{75, Indicator{Tier: TierElevated, Icon: "🟠", Color: colors.LightRed}},
	{50, Indicator{Tier: TierModerate, Icon: "🟡", Color: colors.Yellow}},
}

var normalIndicator = Indicator{Tier: TierNormal, Icon: "🟢", Color: colors.Green}

// SelectIndicator picks the indicator for pct. A recognized warning
// replaces the alert label but keeps the icon and color.
func SelectIndicator(pct float64, warning Warning) Indicator {
	ind := normalIndicator
	for _, th := range thresholds {
		if pct >= th.min {
			ind = th.ind
			break
		}
	}

	switch warning {
	case WarningAutoCompact:
		ind.Alert = "AUTO-COMPACT!"
	case WarningLow:
		ind.Alert = "LOW!"
	}
	return ind
}

// RenderBar draws a fixed-width usage bar for pct.
func RenderBar(pct float64) string {
	filled := int(clampPercent(pct) / 100 * barSegments)
	if filled > barSegments {
		filled = barSegments
	}
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, barSegments-filled)
}

// RenderContext formats the context segment. ok=false renders the
// unknown placeholder.
func RenderContext(usage ContextUsage, ok bool) string {
	if !ok {
		return unknownUsage
	}

	pct := clampPercent(usage.Percent)
	ind := SelectIndicator(pct, usage.Warning)

	out := fmt.Sprintf("%s%s %.0f%%", ind.Icon, colors.Wrap(ind.Color, RenderBar(pct)), pct)
	if ind.Alert != "" {
		out += " " + ind.Alert
	}
	return out
}
