package enum

// BillType classifies how a bill was settled. There is no payment_method
// column anywhere: the type is inferred from the presence or absence of a
// credit_bills row, and this tag is how that inference is carried around
// instead of being re-derived at every read site.
type BillType string

const (
	BillTypeCash   BillType = "CASH"
	BillTypeCredit BillType = "CREDIT"
)

// BillTypeFor returns the bill type implied by an optional credit-customer
// reference.
func BillTypeFor(customerID *uint) BillType {
	if customerID != nil {
		return BillTypeCredit
	}
	return BillTypeCash
}

func (t BillType) String() string {
	return string(t)
}
