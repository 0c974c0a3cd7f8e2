package domain

import "strings"

// BillingCycle is the period at which a tenant expense falls due.
type BillingCycle string

const (
	CycleOneTime    BillingCycle = "onetime"
	CycleMonthly    BillingCycle = "monthly"
	CycleQuarterly  BillingCycle = "quarterly"
	CycleHalfYearly BillingCycle = "halfyearly"
	CycleAnnual     BillingCycle = "annual"
)

// cycleSynonyms maps every recognized spelling to its canonical cycle.
// Legacy records used free-text cycle names; these are the spellings
// that were in circulation.
var cycleSynonyms = map[string]BillingCycle{
	"onetime":     CycleOneTime,
	"one-time":    CycleOneTime,
	"one time":    CycleOneTime,
	"once":        CycleOneTime,
	"monthly":     CycleMonthly,
	"month":       CycleMonthly,
	"quarterly":   CycleQuarterly,
	"quarter":     CycleQuarterly,
	"halfyearly":  CycleHalfYearly,
	"half-yearly": CycleHalfYearly,
	"halfyear":    CycleHalfYearly,
	"half year":   CycleHalfYearly,
	"annual":      CycleAnnual,
	"annually":    CycleAnnual,
	"yearly":      CycleAnnual,
	"year":        CycleAnnual,
}

// ParseBillingCycle resolves a cycle name (case-insensitive, including
// legacy synonyms) to its canonical BillingCycle.
func ParseBillingCycle(s string) (BillingCycle, error) {
	if c, ok := cycleSynonyms[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return "", ErrInvalidCycle
}

// Valid reports whether c is one of the canonical cycles.
func (c BillingCycle) Valid() bool {
	switch c {
	case CycleOneTime, CycleMonthly, CycleQuarterly, CycleHalfYearly, CycleAnnual:
		return true
	}
	return false
}

// MonthStep returns the month increment between consecutive due dates.
// OneTime and unrecognized cycles have no increment and return 0.
func (c BillingCycle) MonthStep() int {
	switch c {
	case CycleMonthly:
		return 1
	case CycleQuarterly:
		return 3
	case CycleHalfYearly:
		return 6
	case CycleAnnual:
		return 12
	}
	return 0
}
