package model_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"futsal/internal/domains/promotion/model"
)

func validPromotion() model.Promotion {
	return model.Promotion{
		ID:              "promo-1",
		Code:            "WEEKEND10",
		DiscountPercent: 10,
		MaxDiscount:     25000,
		ValidFrom:       time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC),
		ValidUntil:      time.Date(2026, time.September, 30, 0, 0, 0, 0, time.UTC),
		UsageLimit:      100,
		UsedCount:       10,
		Active:          true,
	}
}

func TestPromotion_UsableOn(t *testing.T) {
	inWindow := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		mutate func(p *model.Promotion)
		date   time.Time
		want   bool
	}{
		{
			name:   "valid promotion inside the window",
			mutate: func(p *model.Promotion) {},
			date:   inWindow,
			want:   true,
		},
		{
			name:   "inactive promotion",
			mutate: func(p *model.Promotion) { p.Active = false },
			date:   inWindow,
			want:   false,
		},
		{
			name:   "before the validity window",
			mutate: func(p *model.Promotion) {},
			date:   time.Date(2026, time.July, 15, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "after the validity window",
			mutate: func(p *model.Promotion) {},
			date:   time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC),
			want:   false,
		},
		{
			name:   "usage limit exhausted",
			mutate: func(p *model.Promotion) { p.UsedCount = 100 },
			date:   inWindow,
			want:   false,
		},
		{
			name:   "zero usage limit means unlimited",
			mutate: func(p *model.Promotion) { p.UsageLimit = 0; p.UsedCount = 100000 },
			date:   inWindow,
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			promo := validPromotion()
			tt.mutate(&promo)

			assert.Equal(t, tt.want, promo.UsableOn(tt.date))
		})
	}
}

func TestPromotion_DiscountFor(t *testing.T) {
	promo := validPromotion()

	// 10% of 150000 stays under the cap
	assert.Equal(t, 15000.0, promo.DiscountFor(150000))

	// 10% of 500000 exceeds the cap and is clamped
	assert.Equal(t, 25000.0, promo.DiscountFor(500000))

	// no cap configured
	promo.MaxDiscount = 0
	assert.Equal(t, 50000.0, promo.DiscountFor(500000))
}
