package services

import (
	"testing"

	"github.com/godz1llla/DAMDI-QR-ORG/entity"
	"github.com/stretchr/testify/assert"
)

func TestTariffLimit(t *testing.T) {
	tests := []struct {
		name string
		kind string
		plan string
		want int
	}{
		{"free tables", LimitKindTables, entity.PlanFree, 5},
		{"free categories", LimitKindCategories, entity.PlanFree, 5},
		{"premium tables", LimitKindTables, entity.PlanPremium, 999},
		{"premium categories", LimitKindCategories, entity.PlanPremium, 999},
		{"unknown plan fails closed to free", LimitKindTables, "ENTERPRISE", 5},
		{"empty plan fails closed to free", LimitKindCategories, "", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TariffLimit(tt.kind, tt.plan))
		})
	}
}
