package model

import "futsal/shared/model"

const (
	TableName  = "fields"
	EntityName = "field"

	FieldID          = "id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldType        = "field_type"
	FieldHourlyRate  = "hourly_rate"
	FieldPhotoURL    = "photo_url"
	FieldActive      = "active"
)

const (
	TypeSynthetic = "synthetic"
	TypeVinyl     = "vinyl"
	TypeParquette = "parquette"
)

type Field struct {
	ID          string  `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	FieldType   string  `db:"field_type"`
	HourlyRate  float64 `db:"hourly_rate"`
	PhotoURL    *string `db:"photo_url"`
	Active      bool    `db:"active"`
	model.Metadata
}
