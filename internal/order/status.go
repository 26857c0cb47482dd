package order

// Status is the closed set of order states. The non-terminal states form a
// fixed forward progression; cancelled is a terminal side branch.
type Status string

const (
	StatusPending        Status = "pending"
	StatusAccepted       Status = "accepted"
	StatusPreparing      Status = "preparing"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// progression in order; delivered is the final forward state.
var progression = []Status{
	StatusPending,
	StatusAccepted,
	StatusPreparing,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
}

// Next returns the next status in the forward progression. The second
// return is false when s is terminal (delivered or cancelled) or unknown.
// The store accepts any known status unconditionally; this function is the
// single place the forward rule lives, for every caller that wants it.
func Next(s Status) (Status, bool) {
	for i, cur := range progression {
		if cur == s && i < len(progression)-1 {
			return progression[i+1], true
		}
	}
	return "", false
}

// Known reports whether s is one of the defined statuses.
func Known(s Status) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusInTransit,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no forward transition is offered from s.
func Terminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}
