package dashboard

// Tier grades a 111-pattern percentage for badge colouring.
type Tier int

const (
	TierLow Tier = iota
	TierFair
	TierGood
	TierHigh
)

// PatternTier maps a percentage to its tier: 75 and above is high, 50 good,
// 25 fair, anything lower (or NaN) low.
func PatternTier(percentage float64) Tier {
	switch {
	case percentage >= 75:
		return TierHigh
	case percentage >= 50:
		return TierGood
	case percentage >= 25:
		return TierFair
	default:
		return TierLow
	}
}

// Color names the badge colour of the tier.
func (t Tier) Color() string {
	switch t {
	case TierHigh:
		return "green"
	case TierGood:
		return "yellow"
	case TierFair:
		return "orange"
	default:
		return "red"
	}
}
