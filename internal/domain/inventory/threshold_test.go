package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/stockwatch-api/internal/domain/entity"
	"github.com/jhoicas/stockwatch-api/internal/domain/inventory"
)

func TestThresholdPolicy_Classify(t *testing.T) {
	p := inventory.DefaultThresholdPolicy()

	cases := []struct {
		name      string
		qty       int64
		wantSev   string
		wantBelow bool
	}{
		{"justo en la marca no alerta", 200, "", false},
		{"por encima no alerta", 250, "", false},
		{"199 es stock bajo", 199, entity.SeverityLowStock, true},
		{"100 sigue siendo stock bajo", 100, entity.SeverityLowStock, true},
		{"99 es crítico", 99, entity.SeverityCriticallyLow, true},
		{"cero es crítico", 0, entity.SeverityCriticallyLow, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sev, below := p.Classify(decimal.NewFromInt(tc.qty))
			assert.Equal(t, tc.wantSev, sev)
			assert.Equal(t, tc.wantBelow, below)
		})
	}
}

func TestThresholdPolicy_DecimalQuantities(t *testing.T) {
	p := inventory.DefaultThresholdPolicy()
	_, below := p.Classify(decimal.RequireFromString("199.99"))
	assert.True(t, below)
	sev, _ := p.Classify(decimal.RequireFromString("99.5"))
	assert.Equal(t, entity.SeverityCriticallyLow, sev)
}

func TestNewThresholdPolicy_AcotaCritico(t *testing.T) {
	p := inventory.NewThresholdPolicy(decimal.NewFromInt(50), decimal.NewFromInt(80))
	assert.True(t, p.Critical.Equal(decimal.NewFromInt(50)))
}

func TestThresholdPolicy_Status(t *testing.T) {
	p := inventory.DefaultThresholdPolicy()
	assert.Equal(t, "OK", p.Status(decimal.NewFromInt(500)))
	assert.Equal(t, "Bajo", p.Status(decimal.NewFromInt(150)))
	assert.Equal(t, "Crítico", p.Status(decimal.NewFromInt(10)))
}
