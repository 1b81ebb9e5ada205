// Package pricing computes billable line amounts. All amounts are in
// cents and every quote is re-derived from current inputs on each call.
package pricing

// Input carries the resolved facts a single line is priced from.
// PayerRate is the payer's contracted fee-schedule rate when one exists
// for the product's HCPCS code; Override is a caller-supplied price that
// wins over everything else.
type Input struct {
	Quantity  int64
	UnitCost  int64
	MSRP      int64
	PayerRate *int64
	Override  *int64
}

// Quote is the priced result for one line.
type Quote struct {
	UnitPrice int64
	LineTotal int64
	Margin    int64
}

// Compute resolves the unit price as override, then payer rate, then
// MSRP, and derives the line total and margin. Margin may be negative;
// loss-making lines are reported, not rejected.
func Compute(in Input) Quote {
	unitPrice := in.MSRP
	switch {
	case in.Override != nil:
		unitPrice = *in.Override
	case in.PayerRate != nil:
		unitPrice = *in.PayerRate
	}

	return Quote{
		UnitPrice: unitPrice,
		LineTotal: unitPrice * in.Quantity,
		Margin:    (unitPrice - in.UnitCost) * in.Quantity,
	}
}
