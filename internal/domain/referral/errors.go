package referral

import "referral-credits/internal/pkg/errs"

var (
	ErrInvalidStatus     = errs.New("referral status must be INVITED or SIGNED_UP")
	ErrEmptyReferralID   = errs.New("referral id cannot be empty")
	ErrEmptyCustomerID   = errs.New("customer id cannot be empty")
	ErrNegativeReward    = errs.New("reward cannot be negative")
	ErrNonPositiveAmount = errs.New("redemption amount must be positive")
)
