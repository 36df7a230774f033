package puzzle

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// Reward curve: MaxReward at issuance, falling linearly by DecayRate over DecayWindow,
// never below MinReward.
const (
	MaxReward   = 2.0
	MinReward   = 0.1
	DecayRate   = 1.9
	DecayWindow = 120 * time.Second
)

// Reward returns the payout for a puzzle issued at issuedAt and redeemed at now, rounded
// to 4 decimal places. A zero issuedAt means the issuance time is unknown and pays MinReward.
func Reward(issuedAt, now time.Time) decimal.Decimal {
	if issuedAt.IsZero() {
		return decimal.NewFromFloat(MinReward)
	}

	elapsed := now.Sub(issuedAt).Seconds()
	reward := math.Max(MinReward, MaxReward-DecayRate*(elapsed/DecayWindow.Seconds()))
	reward = math.Min(reward, MaxReward)

	return decimal.NewFromFloat(reward).Round(4)
}
