package booking

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Cancelled and Completed are terminal; only Confirmed bookings ever
// transition or participate in conflict checks.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}
