package notify

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ReferralSent is emitted after a referral code has been sent and recorded.
type ReferralSent struct {
	EventID     string    `json:"eventId"`
	ReferralID  string    `json:"referralId"`
	CustomerID  string    `json:"customerId"`
	Code        string    `json:"code"`
	FriendEmail string    `json:"friendEmail"`
	SentAt      time.Time `json:"sentAt"`
}

func NewReferralSent(referralID, customerID, code, friendEmail string, sentAt time.Time) ReferralSent {
	return ReferralSent{
		EventID:     uuid.NewString(),
		ReferralID:  referralID,
		CustomerID:  customerID,
		Code:        code,
		FriendEmail: friendEmail,
		SentAt:      sentAt.UTC(),
	}
}

func (e ReferralSent) Encode() ([]byte, error) {
	return json.Marshal(e)
}
