package entity

// Row state for soft delete. Delete endpoints set StateInactive instead of
// removing the row.
const (
	StateActive   = "active"
	StateInactive = "inactive"
)
