package order

// PaymentMethod is how the buyer pays for an order
type PaymentMethod string

const (
	PaymentMethodPickupCash   PaymentMethod = "pickup-cash"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodPayMaya      PaymentMethod = "paymaya"
	PaymentMethodBankTransfer PaymentMethod = "bank_transfer"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPickupCash, PaymentMethodGCash, PaymentMethodPayMaya, PaymentMethodBankTransfer:
		return true
	}
	return false
}

func (m PaymentMethod) String() string {
	return string(m)
}

// RequiresVerification reports whether an admin must check a receipt before
// the seller sees the order as payable
func (m PaymentMethod) RequiresVerification() bool {
	return m != PaymentMethodPickupCash
}

// PaymentStatus tracks the money side of an order independently of fulfilment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusVerified PaymentStatus = "verified"
	PaymentStatusRejected PaymentStatus = "rejected"
	PaymentStatusPaid     PaymentStatus = "paid"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusVerified, PaymentStatusRejected, PaymentStatusPaid:
		return true
	}
	return false
}

func (s PaymentStatus) String() string {
	return string(s)
}
