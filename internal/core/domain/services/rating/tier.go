package rating

import "printshop/internal/pkg/errs"

// ServiceTier identifies one of the shipping speed classes offered at
// checkout. The set is closed; anything else is rejected at the boundary.
type ServiceTier string

const (
	TierEconomy   ServiceTier = "economy"
	TierStandard  ServiceTier = "standard"
	TierExpedited ServiceTier = "expedited"
)

// ParseServiceTier converts external input into a ServiceTier.
// Unknown values return a ValueIsInvalidError.
func ParseServiceTier(s string) (ServiceTier, error) {
	switch ServiceTier(s) {
	case TierEconomy, TierStandard, TierExpedited:
		return ServiceTier(s), nil
	default:
		return "", errs.NewValueIsInvalidError("serviceTier")
	}
}

// Validate reports whether the tier is one of the known values.
func (t ServiceTier) Validate() error {
	switch t {
	case TierEconomy, TierStandard, TierExpedited:
		return nil
	default:
		return errs.NewValueIsInvalidError("serviceTier")
	}
}

// String returns the wire form of the tier.
func (t ServiceTier) String() string {
	return string(t)
}
