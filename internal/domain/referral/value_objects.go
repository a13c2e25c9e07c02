package referral

import (
	"math"
	"strconv"
	"strings"
)

const referralIDPrefix = "r"

// RoundCents rounds half away from zero at two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ReferralIDNumber keeps only the digits of id. Anything unparsable counts as 0.
func ReferralIDNumber(id string) int {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, id)
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}
	return n
}

// NextReferralID returns "r" followed by one more than the largest numeric suffix in use.
func NextReferralID(existing []Referral) string {
	maxID := 0
	for _, r := range existing {
		if n := ReferralIDNumber(r.ID); n > maxID {
			maxID = n
		}
	}
	return referralIDPrefix + strconv.Itoa(maxID+1)
}
