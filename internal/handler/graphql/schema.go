package graphql

import (
	"log/slog"
	"strings"

	"referral-credits/internal/domain/referral"
	"referral-credits/internal/pkg/errs"
	"referral-credits/internal/usecase/commands"
	"referral-credits/internal/usecase/queries"

	gql "github.com/graphql-go/graphql"
)

const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

var referralStatusEnum = gql.NewEnum(gql.EnumConfig{
	Name: "ReferralStatus",
	Values: gql.EnumValueConfigMap{
		referral.StatusInvited.String():  &gql.EnumValueConfig{Value: referral.StatusInvited.String()},
		referral.StatusSignedUp.String(): &gql.EnumValueConfig{Value: referral.StatusSignedUp.String()},
	},
})

var friendType = gql.NewObject(gql.ObjectConfig{
	Name: "Friend",
	Fields: gql.Fields{
		"name":  &gql.Field{Type: gql.NewNonNull(gql.String)},
		"email": &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var referralType = gql.NewObject(gql.ObjectConfig{
	Name: "Referral",
	Fields: gql.Fields{
		"id":           &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"friend":       &gql.Field{Type: gql.NewNonNull(friendType)},
		"status":       &gql.Field{Type: gql.NewNonNull(referralStatusEnum)},
		"rewardEarned": &gql.Field{Type: gql.NewNonNull(gql.Float)},
		"createdAt":    &gql.Field{Type: gql.NewNonNull(gql.String)},
	},
})

var programType = gql.NewObject(gql.ObjectConfig{
	Name: "Program",
	Fields: gql.Fields{
		"rewardAmount":   &gql.Field{Type: gql.NewNonNull(gql.Float)},
		"friendDiscount": &gql.Field{Type: gql.NewNonNull(gql.Float)},
		"maxReferrals":   &gql.Field{Type: gql.NewNonNull(gql.Int)},
	},
})

var creditStatsType = gql.NewObject(gql.ObjectConfig{
	Name: "CreditStats",
	Fields: gql.Fields{
		"referredCountYear": &gql.Field{Type: gql.NewNonNull(gql.Int)},
		"earnedTotal":       &gql.Field{Type: gql.NewNonNull(gql.Float)},
		"redeemedTotal":     &gql.Field{Type: gql.NewNonNull(gql.Float)},
		"availableCredit":   &gql.Field{Type: gql.NewNonNull(gql.Float)},
	},
})

var referralSummaryType = gql.NewObject(gql.ObjectConfig{
	Name: "ReferralSummary",
	Fields: gql.Fields{
		"customerId": &gql.Field{Type: gql.NewNonNull(gql.ID)},
		"code":       &gql.Field{Type: gql.NewNonNull(gql.String)},
		"program":    &gql.Field{Type: gql.NewNonNull(programType)},
		"stats":      &gql.Field{Type: gql.NewNonNull(creditStatsType)},
		"referrals":  &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(referralType)))},
	},
})

// "ok" duplicates "success" for clients written against the first version of the API.
var sendResultType = gql.NewObject(gql.ObjectConfig{
	Name: "SendResult",
	Fields: gql.Fields{
		"success":   &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"ok":        &gql.Field{Type: gql.NewNonNull(gql.Boolean)},
		"message":   &gql.Field{Type: gql.NewNonNull(gql.String)},
		"timestamp": &gql.Field{Type: gql.NewNonNull(gql.String)},
		"stats":     &gql.Field{Type: gql.NewNonNull(creditStatsType)},
	},
})

type resolvers struct {
	q      queries.ReferralQueries
	cmds   commands.ReferralCommands
	logger *slog.Logger
}

func NewSchema(q queries.ReferralQueries, cmds commands.ReferralCommands, logger *slog.Logger) (gql.Schema, error) {
	r := &resolvers{q: q, cmds: cmds, logger: logger}

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"referralSummary": &gql.Field{
				Type: gql.NewNonNull(referralSummaryType),
				Args: gql.FieldConfigArgument{
					"customerId": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.referralSummary,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"sendReferralCode": &gql.Field{
				Type: gql.NewNonNull(sendResultType),
				Args: gql.FieldConfigArgument{
					"code": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.sendReferralCode,
			},
		},
	})

	schema, err := gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
	if err != nil {
		return gql.Schema{}, errs.Wrap(err, "build graphql schema")
	}
	return schema, nil
}

func (r *resolvers) referralSummary(p gql.ResolveParams) (any, error) {
	raw, _ := p.Args["customerId"].(string)
	customerID := strings.TrimSpace(raw)
	if customerID == "" {
		return nil, badUserInput("customerId is required")
	}

	view, err := r.q.GetSummary(p.Context, customerID)
	if err != nil {
		return nil, toResolverError(p.Context, r.logger, err, "Failed to load referral summary")
	}
	return summaryToMap(view), nil
}

func (r *resolvers) sendReferralCode(p gql.ResolveParams) (any, error) {
	raw, _ := p.Args["code"].(string)
	code := strings.TrimSpace(raw)
	if code == "" {
		return nil, badUserInput("code is required")
	}

	res, err := r.cmds.SendReferralCode(p.Context, code)
	if err != nil {
		return nil, toResolverError(p.Context, r.logger, err, "Failed to send referral code")
	}
	return map[string]any{
		"success":   res.OK,
		"ok":        res.OK,
		"message":   res.Message,
		"timestamp": res.Timestamp,
		"stats":     statsToMap(res.Stats),
	}, nil
}

func summaryToMap(v *queries.ReferralSummaryView) map[string]any {
	refs := make([]any, len(v.Referrals))
	for i, ref := range v.Referrals {
		refs[i] = map[string]any{
			"id": ref.ID,
			"friend": map[string]any{
				"name":  ref.Friend.Name,
				"email": ref.Friend.Email,
			},
			"status":       ref.Status,
			"rewardEarned": ref.RewardEarned,
			"createdAt":    ref.CreatedAt.UTC().Format(createdAtLayout),
		}
	}
	return map[string]any{
		"customerId": v.CustomerID,
		"code":       v.Code,
		"program": map[string]any{
			"rewardAmount":   v.Program.RewardAmount,
			"friendDiscount": v.Program.FriendDiscount,
			"maxReferrals":   v.Program.MaxReferrals,
		},
		"stats":     statsToMap(v.Stats),
		"referrals": refs,
	}
}

func statsToMap(s queries.StatsView) map[string]any {
	return map[string]any{
		"referredCountYear": s.ReferredCountYear,
		"earnedTotal":       s.EarnedTotal,
		"redeemedTotal":     s.RedeemedTotal,
		"availableCredit":   s.AvailableCredit,
	}
}
