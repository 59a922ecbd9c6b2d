package statusline

import (
	"fmt"

	"github.com/himattm/ctxmon/internal/colors"
)

const (
	costHigh     = 0.10
	costModerate = 0.05
	oneCent      = 0.01
)

// ResolveCostLabel formats the session cost, or returns "" when there is
// nothing to show.
func ResolveCostLabel(cost *CostInfo) string {
	if cost == nil || cost.TotalCostUSD <= 0 {
		return ""
	}
	usd := cost.TotalCostUSD

	color := colors.Green
	switch {
	case usd >= costHigh:
		color = colors.Red
	case usd >= costModerate:
		color = colors.Yellow
	}

	return colors.Wrap(color, "💰 "+formatCost(usd))
}

func formatCost(usd float64) string {
	if usd < oneCent {
		return fmt.Sprintf("%.0f¢", usd*100)
	}
	return fmt.Sprintf("$%.3f", usd)
}
