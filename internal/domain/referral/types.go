package referral

type Status string

const (
	StatusInvited  Status = "INVITED"
	StatusSignedUp Status = "SIGNED_UP"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusInvited, StatusSignedUp:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
