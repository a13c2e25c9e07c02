package memstore

import (
	_ "embed"
	"log/slog"
	"os"
	"time"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/infra"
	"referral-credits/internal/pkg/errs"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type seedFile struct {
	Customers   []seedCustomer   `yaml:"customers"`
	Referrals   []seedReferral   `yaml:"referrals"`
	Redemptions []seedRedemption `yaml:"redemptions"`
}

type seedCustomer struct {
	ID             string  `yaml:"id"`
	Code           string  `yaml:"code"`
	OffAmount      float64 `yaml:"offAmount"`
	FriendDiscount float64 `yaml:"friendDiscount"`
	MaxReferrals   int     `yaml:"maxReferrals"`
}

type seedReferral struct {
	ID     string `yaml:"id"`
	Friend struct {
		Name  string `yaml:"name"`
		Email string `yaml:"email"`
	} `yaml:"friend"`
	Status       string  `yaml:"status"`
	RewardEarned float64 `yaml:"rewardEarned"`
	CreatedAt    string  `yaml:"createdAt"`
	ReferredBy   string  `yaml:"referredBy"`
}

type seedRedemption struct {
	ID         string  `yaml:"id"`
	Amount     float64 `yaml:"amount"`
	CreatedAt  string  `yaml:"createdAt"`
	RedeemedBy string  `yaml:"redeemedBy"`
}

// LoadSeed reads the dataset at path, or the embedded demo dataset when path is empty.
func LoadSeed(logger *slog.Logger, path string) (Dataset, error) {
	if path == "" {
		return ParseSeed(logger, defaultSeed)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, infra.WrapRepoErr(logger, infra.KindInvalidSeed, "read seed file "+path, err)
	}
	return ParseSeed(logger, raw)
}

// DefaultDataset parses the embedded demo dataset.
func DefaultDataset(logger *slog.Logger) (Dataset, error) {
	return ParseSeed(logger, defaultSeed)
}

func ParseSeed(logger *slog.Logger, raw []byte) (Dataset, error) {
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Dataset{}, infra.WrapRepoErr(logger, infra.KindInvalidSeed, "decode seed yaml", err)
	}

	data := Dataset{
		Customers:   make([]referral.Customer, 0, len(f.Customers)),
		Referrals:   make([]referral.Referral, 0, len(f.Referrals)),
		Redemptions: make([]referral.Redemption, 0, len(f.Redemptions)),
	}

	known := make(map[string]bool, len(f.Customers))
	codes := make(map[string]string, len(f.Customers))
	for _, c := range f.Customers {
		if c.ID == "" {
			return Dataset{}, infra.WrapRepoErr(logger, infra.KindInvalidSeed, "customer without id", referral.ErrEmptyCustomerID)
		}
		if owner, dup := codes[c.Code]; dup {
			logger.Warn("Seed customers share a referral code", "code", c.Code, "first", owner, "second", c.ID)
		} else {
			codes[c.Code] = c.ID
		}
		known[c.ID] = true
		data.Customers = append(data.Customers, referral.Customer{
			ID:             c.ID,
			Code:           c.Code,
			OffAmount:      c.OffAmount,
			FriendDiscount: c.FriendDiscount,
			MaxReferrals:   c.MaxReferrals,
		})
	}

	for _, r := range f.Referrals {
		rec, err := toReferral(r)
		if err != nil {
			return Dataset{}, infra.WrapRepoErr(logger, infra.KindInvalidSeed, "referral "+r.ID, err)
		}
		if !known[rec.ReferredBy] {
			logger.Warn("Seed referral points at unknown customer", "referral_id", rec.ID, "referred_by", rec.ReferredBy)
		}
		data.Referrals = append(data.Referrals, rec)
	}

	for _, x := range f.Redemptions {
		rec, err := toRedemption(x)
		if err != nil {
			return Dataset{}, infra.WrapRepoErr(logger, infra.KindInvalidSeed, "redemption "+x.ID, err)
		}
		if !known[rec.RedeemedBy] {
			logger.Warn("Seed redemption points at unknown customer", "redemption_id", rec.ID, "redeemed_by", rec.RedeemedBy)
		}
		data.Redemptions = append(data.Redemptions, rec)
	}

	return data, nil
}

func toReferral(r seedReferral) (referral.Referral, error) {
	status, err := referral.ParseStatus(r.Status)
	if err != nil {
		return referral.Referral{}, errs.Wrapf(err, "status %q", r.Status)
	}
	createdAt, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return referral.Referral{}, errs.Wrap(err, "createdAt")
	}
	rec := referral.Referral{
		ID:           r.ID,
		Friend:       referral.Friend{Name: r.Friend.Name, Email: r.Friend.Email},
		Status:       status,
		RewardEarned: r.RewardEarned,
		CreatedAt:    createdAt.UTC(),
		ReferredBy:   r.ReferredBy,
	}
	if err := rec.Validate(); err != nil {
		return referral.Referral{}, err
	}
	return rec, nil
}

func toRedemption(x seedRedemption) (referral.Redemption, error) {
	createdAt, err := time.Parse(time.RFC3339, x.CreatedAt)
	if err != nil {
		return referral.Redemption{}, errs.Wrap(err, "createdAt")
	}
	rec := referral.Redemption{
		ID:         x.ID,
		Amount:     x.Amount,
		CreatedAt:  createdAt.UTC(),
		RedeemedBy: x.RedeemedBy,
	}
	if err := rec.Validate(); err != nil {
		return referral.Redemption{}, err
	}
	return rec, nil
}
