// Package premium is the boolean feature gate. Billing, receipts and
// entitlement refresh live outside this codebase; the core only ever asks
// "is premium on".
package premium

import "errors"

var ErrPremiumRequired = errors.New("premium required")

// Feature names the gated capabilities.
type Feature string

const (
	FeatureSecondarySlot   Feature = "secondary_slot"
	FeatureGradientDesigns Feature = "gradient_designs"
)

type Gate struct {
	Enabled bool
}

func NewGate(enabled bool) Gate {
	return Gate{Enabled: enabled}
}

// Allow reports whether the feature may be used. Check returns the gate
// error instead, for call sites that propagate.
func (g Gate) Allow(_ Feature) bool {
	return g.Enabled
}

func (g Gate) Check(f Feature) error {
	if !g.Allow(f) {
		return ErrPremiumRequired
	}
	return nil
}
