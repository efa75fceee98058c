package types

// Prediction categories. CategoryPending marks an unfilled slot and does
// not count toward the finalization quota.
const (
	CategoryPolitics  = "politics"
	CategoryEconomics = "economics"
	CategorySociety   = "society"
	CategoryWildcard  = "wildcard"
	CategoryPending   = "pending"
)

// Target periods. Q1 is disallowed as a prediction target; new slots
// default to the earliest allowed period.
const (
	PeriodQ2 = "Q2"
	PeriodQ3 = "Q3"
	PeriodQ4 = "Q4"

	ExcludedPeriod = "Q1"
	DefaultPeriod  = PeriodQ2
)

// Verification statuses.
const (
	StatusPending   = "pending"
	StatusCorrect   = "correct"
	StatusIncorrect = "incorrect"
)

// Membership roles.
const (
	RoleAdmin  = "admin"
	RoleMember = "member"
)

const (
	CardSize      = 25
	MinYear       = 2025
	MaxYear       = 2100
	CategoryQuota = 4
)

// QuotaCategories are the categories that must each reach CategoryQuota
// before a card can be finalized.
var QuotaCategories = []string{
	CategoryPolitics,
	CategoryEconomics,
	CategorySociety,
	CategoryWildcard,
}

func IsValidCategory(category string) bool {
	for _, c := range QuotaCategories {
		if category == c {
			return true
		}
	}
	return false
}

func IsValidPeriod(period string) bool {
	return period == PeriodQ2 || period == PeriodQ3 || period == PeriodQ4
}
