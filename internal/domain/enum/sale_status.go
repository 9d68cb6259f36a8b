package enum

// SaleStatus represents the state of a sale transaction
type SaleStatus string

const (
	// SaleStatusCompleted is the default state of a registered sale
	SaleStatusCompleted SaleStatus = "completada"
	SaleStatusPending   SaleStatus = "pendiente"
	SaleStatusCanceled  SaleStatus = "anulada"
)

// IsValid checks if the sale status is valid
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusCompleted, SaleStatusPending, SaleStatusCanceled:
		return true
	}
	return false
}

func (s SaleStatus) String() string {
	return string(s)
}
