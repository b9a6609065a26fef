package payment

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the provider webhook has already settled this
// payment. Terminal rows are never flipped back.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}
