package services

import (
	"github.com/godz1llla/DAMDI-QR-ORG/entity"
)

const (
	LimitKindTables     = "tables"
	LimitKindCategories = "categories"
)

// 999 is the "effectively unlimited" sentinel for PREMIUM.
var tariffLimits = map[string]map[string]int{
	entity.PlanFree: {
		LimitKindTables:     5,
		LimitKindCategories: 5,
	},
	entity.PlanPremium: {
		LimitKindTables:     999,
		LimitKindCategories: 999,
	},
}

// TariffLimit returns the resource cap for a plan. Unknown plans fall back
// to FREE limits, never open.
func TariffLimit(kind, plan string) int {
	limits, ok := tariffLimits[plan]
	if !ok {
		limits = tariffLimits[entity.PlanFree]
	}
	return limits[kind]
}
