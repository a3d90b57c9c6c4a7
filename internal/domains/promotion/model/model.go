package model

import (
	"time"

	"futsal/shared/model"
)

const (
	TableName  = "promotions"
	EntityName = "promotion"

	FieldID              = "id"
	FieldCode            = "code"
	FieldDiscountPercent = "discount_percent"
	FieldMaxDiscount     = "max_discount"
	FieldValidFrom       = "valid_from"
	FieldValidUntil      = "valid_until"
	FieldUsageLimit      = "usage_limit"
	FieldUsedCount       = "used_count"
	FieldActive          = "active"
)

type Promotion struct {
	ID              string    `db:"id"`
	Code            string    `db:"code"`
	DiscountPercent float64   `db:"discount_percent"`
	MaxDiscount     float64   `db:"max_discount"`
	ValidFrom       time.Time `db:"valid_from"`
	ValidUntil      time.Time `db:"valid_until"`
	UsageLimit      int       `db:"usage_limit"`
	UsedCount       int       `db:"used_count"`
	Active          bool      `db:"active"`
	model.Metadata
}

// UsableOn reports whether the promotion can still be applied to a booking
// played on the given date.
func (p *Promotion) UsableOn(date time.Time) bool {
	if !p.Active {
		return false
	}

	if date.Before(p.ValidFrom) || date.After(p.ValidUntil) {
		return false
	}

	return p.UsageLimit <= 0 || p.UsedCount < p.UsageLimit
}

// DiscountFor returns the discount amount for the given base amount, capped
// by MaxDiscount when one is configured.
func (p *Promotion) DiscountFor(baseAmount float64) float64 {
	discount := baseAmount * p.DiscountPercent / 100

	if p.MaxDiscount > 0 && discount > p.MaxDiscount {
		discount = p.MaxDiscount
	}

	return discount
}
