package reservation

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// Channel is the originator of a booking request. Staff-entered reservations
// are confirmed immediately; self-service ones start pending.
type Channel string

const (
	ChannelClient Channel = "client"
	ChannelAdmin  Channel = "admin"
)

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelClient, ChannelAdmin:
		return true
	default:
		return false
	}
}
