package journal

// GainLossState is the three-way classification of a signed delta. The same
// classifier drives the unrealized-closure side selection, the realized
// gain/loss posting, and the worthless-expiration closure.
type GainLossState int

const (
	Loss GainLossState = -1
	Flat GainLossState = 0
	Gain GainLossState = 1
)

func (s GainLossState) String() string {
	switch s {
	case Gain:
		return "gain"
	case Loss:
		return "loss"
	default:
		return "flat"
	}
}

// classify maps a signed delta to its gain/loss/flat state by strict
// comparison to zero.
func classify(delta Money) GainLossState {
	switch {
	case delta.IsPositive():
		return Gain
	case delta.IsNegative():
		return Loss
	default:
		return Flat
	}
}
