package commands

import (
	"context"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra/notify"
	"referral-credits/internal/usecase/queries"
)

type ReferralWriteStore interface {
	FindCustomerByCode(ctx context.Context, code string) (referral.Customer, error)
	AppendReferral(ctx context.Context, build func(id string) (referral.Referral, error)) (referral.Referral, error)
}

// SummaryReader recomputes the customer's summary after a write.
type SummaryReader interface {
	GetSummary(ctx context.Context, customerID string) (*queries.ReferralSummaryView, error)
}

type EventPublisher interface {
	PublishReferralSent(ctx context.Context, ev notify.ReferralSent) error
}

type SendMetrics interface {
	ReferralSent(customerID string)
}
