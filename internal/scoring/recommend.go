package scoring

import (
	"fmt"
	"strconv"
)

const maxRecommendations = 2

// BankRecommendation pairs a suggested banking product with its rationale.
type BankRecommendation struct {
	Bank string `json:"bank"`
	Why  string `json:"why"`
}

// GrantRecommendation pairs a grant program with its rationale.
type GrantRecommendation struct {
	Grant string `json:"grant"`
	Why   string `json:"why"`
}

// StateResource identifies the state resolved from a ZIP code together with
// its small-business resource links.
type StateResource struct {
	Name      string `json:"name"`
	Abbr      string `json:"abbr"`
	SBALink   string `json:"sbaLink"`
	SSBCILink string `json:"ssbciLink"`
}

// bankTier maps a revenue floor onto a fixed, ordered pair of products.
type bankTier struct {
	minRevenue float64
	picks      []BankRecommendation
}

// Closed-world product table. Tiers are checked top down; the first match
// wins and ordering within a tier is fixed.
var bankTiers = []bankTier{
	{
		minRevenue: 50000,
		picks: []BankRecommendation{
			{Bank: "Chase Business Complete", Why: "Best for high-volume businesses"},
			{Bank: "Bank of America Business Advantage", Why: "Integrated cash management"},
		},
	},
	{
		minRevenue: 10000,
		picks: []BankRecommendation{
			{Bank: "Bluevine Business Checking", Why: "No monthly fees, high APY"},
			{Bank: "Mercury Bank", Why: "Modern banking, no hidden fees"},
		},
	},
	{
		minRevenue: 0,
		picks: []BankRecommendation{
			{Bank: "Novo Business Checking", Why: "Fee-free for small businesses"},
			{Bank: "Relay Financial", Why: "Multiple free checking accounts"},
		},
	},
}

type zipRange struct {
	start int
	end   int
	name  string
	abbr  string
}

// Coarse inclusive ZIP-prefix ranges. Anything outside resolves to the
// nationwide fallback rather than an error.
var zipRanges = []zipRange{
	{start: 100, end: 149, name: "New York", abbr: "NY"},
	{start: 600, end: 629, name: "Illinois", abbr: "IL"},
	{start: 900, end: 961, name: "California", abbr: "CA"},
}

// BankRecommendations returns up to two product suggestions for the given
// monthly revenue. The result is deterministic.
func BankRecommendations(monthlyRevenue float64) []BankRecommendation {
	revenue := clampNonNegative(monthlyRevenue)

	for _, tier := range bankTiers {
		if revenue > tier.minRevenue || tier.minRevenue == 0 {
			picks := make([]BankRecommendation, 0, maxRecommendations)
			picks = append(picks, tier.picks...)
			if len(picks) > maxRecommendations {
				picks = picks[:maxRecommendations]
			}
			return picks
		}
	}

	return []BankRecommendation{}
}

// GrantRecommendations returns up to two grant suggestions. Candidates are
// appended in a fixed order (veteran, immigrant founder, state program) and
// then truncated, so a wantsGrants-only match can be displaced once two
// earlier flags are set.
func GrantRecommendations(p ProfileFacts) []GrantRecommendation {
	grants := []GrantRecommendation{}
	state := StateFromZip(p.ZipCode)

	if p.VeteranOwned {
		grants = append(grants, GrantRecommendation{
			Grant: "SBA Veterans Advantage Loan",
			Why:   "Reduced fees for veterans",
		})
	}
	if p.ImmigrantFounder {
		grants = append(grants, GrantRecommendation{
			Grant: "Hello Alice Immigrant Founder Grant",
			Why:   "Up to $10,000",
		})
	}
	if p.WantsGrants {
		grants = append(grants, GrantRecommendation{
			Grant: fmt.Sprintf("%s SSBCI Program", state.Name),
			Why:   "State small business credit initiative",
		})
	}

	if len(grants) > maxRecommendations {
		grants = grants[:maxRecommendations]
	}
	return grants
}

// StateFromZip resolves a ZIP code to a state via its three-digit prefix.
// Unmatched or unparseable input falls back to the nationwide record.
func StateFromZip(zip string) StateResource {
	prefixDigits := zip
	if len(prefixDigits) > 3 {
		prefixDigits = prefixDigits[:3]
	}

	prefix, err := strconv.Atoi(prefixDigits)
	if err == nil {
		for _, r := range zipRanges {
			if prefix >= r.start && prefix <= r.end {
				return StateResource{
					Name:      r.name,
					Abbr:      r.abbr,
					SBALink:   fmt.Sprintf("https://www.sba.gov/%s", r.abbr),
					SSBCILink: fmt.Sprintf("https://treasury.gov/ssbci/%s", r.abbr),
				}
			}
		}
	}

	return StateResource{
		Name:      "United States",
		Abbr:      "US",
		SBALink:   "https://www.sba.gov",
		SSBCILink: "https://treasury.gov/ssbci",
	}
}
