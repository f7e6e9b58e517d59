package tax

import "github.com/shopspring/decimal"

// Rate is the fixed 19% VAT (IVA) applied on top of every net amount.
var Rate = decimal.NewFromFloat(0.19)

// divisor converts a tax-inclusive amount back to its net component.
var divisor = decimal.NewFromInt(1).Add(Rate)

// scale is the number of decimal places kept on every derivation so the
// round trip net -> vat -> gross stays within one currency unit of the
// original input, no matter how often it is recomputed.
const scale = 4

// Breakdown holds the three monetary components of a sale. Only the net
// amount is ever persisted; VAT and gross are recomputed from it.
type Breakdown struct {
	Net   decimal.Decimal
	VAT   decimal.Decimal
	Gross decimal.Decimal
}

// FromGross derives the breakdown of a tax-inclusive amount.
// The caller guarantees gross >= 0, which implies net >= 0.
func FromGross(gross decimal.Decimal) Breakdown {
	net := gross.DivRound(divisor, scale)
	return FromNet(net)
}

// FromNet derives the breakdown of a stored tax-exclusive amount.
func FromNet(net decimal.Decimal) Breakdown {
	vat := net.Mul(Rate).Round(scale)
	return Breakdown{
		Net:   net,
		VAT:   vat,
		Gross: net.Add(vat),
	}
}
