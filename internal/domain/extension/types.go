package extension

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusDenied   Status = "denied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	default:
		return false
	}
}

// IsResolution reports whether s is a terminal decision.
func (s Status) IsResolution() bool {
	return s == StatusApproved || s == StatusDenied
}
