package entity

// Payment/approval axis of an order.
type TransactionStatus string

const (
	StatusPending          TransactionStatus = "pending"
	StatusOnProcess        TransactionStatus = "on-process" // proof uploaded, awaiting review
	StatusPaid             TransactionStatus = "paid"
	StatusCancelled        TransactionStatus = "cancelled"
	StatusAccepted         TransactionStatus = "accepted"
	StatusRejected         TransactionStatus = "rejected"
	StatusCompleted        TransactionStatus = "completed"
	StatusRejectedByUser   TransactionStatus = "rejected-by-user"
	StatusCompletedByAdmin TransactionStatus = "completed-by-admin"
)

// Fulfillment axis, tracked independently of the payment axis.
type DeliveryStatus string

const (
	DeliveryNone      DeliveryStatus = ""
	DeliveryOnProcess DeliveryStatus = "on-process"
	DeliveryDelivered DeliveryStatus = "delivered"
)

// The gateway may still settle or void an order after the proof upload
// moved it to on-process; the sweep closes settled orders whose delivery
// never finished as well as accepted ones.
var transitions = map[TransactionStatus][]TransactionStatus{
	StatusPending:   {StatusOnProcess, StatusPaid, StatusCancelled},
	StatusOnProcess: {StatusPaid, StatusCancelled, StatusAccepted, StatusRejected},
	StatusPaid:      {StatusAccepted, StatusRejected, StatusCompletedByAdmin},
	StatusAccepted:  {StatusCompleted, StatusRejectedByUser, StatusCompletedByAdmin},
}

// CanTransition reports whether from -> to is a legal move. Terminal
// statuses have no outgoing edges.
func CanTransition(from, to TransactionStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func ValidStatus(s TransactionStatus) bool {
	switch s {
	case StatusPending, StatusOnProcess, StatusPaid, StatusCancelled,
		StatusAccepted, StatusRejected, StatusCompleted,
		StatusRejectedByUser, StatusCompletedByAdmin:
		return true
	}
	return false
}
