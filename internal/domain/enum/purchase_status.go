package enum

// PurchaseStatus represents the state of a purchase transaction
type PurchaseStatus string

const (
	// PurchaseStatusCompleted is the default state of a registered purchase
	PurchaseStatusCompleted PurchaseStatus = "realizada"
	PurchaseStatusPending   PurchaseStatus = "pendiente"
	PurchaseStatusCanceled  PurchaseStatus = "anulada"
)

// IsValid checks if the purchase status is valid
func (s PurchaseStatus) IsValid() bool {
	switch s {
	case PurchaseStatusCompleted, PurchaseStatusPending, PurchaseStatusCanceled:
		return true
	}
	return false
}

func (s PurchaseStatus) String() string {
	return string(s)
}
