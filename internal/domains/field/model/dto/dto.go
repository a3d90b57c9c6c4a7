package dto

import (
	"mime/multipart"

	"futsal/internal/domains/field/model"
	"futsal/shared"
	gDto "futsal/shared/dto"
	gModel "futsal/shared/model"
	"futsal/shared/timezone"

	"github.com/google/uuid"
)

type CreateFieldRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=500"`
	FieldType   string                `json:"field_type"  validate:"required,oneof=synthetic vinyl parquette"`
	HourlyRate  float64               `json:"hourly_rate" validate:"required,gt=0"`
	Photo       *multipart.FileHeader `json:"photo"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateFieldRequest) ToModel(user string, photoURL string) model.Field {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	var photo *string
	if photoURL != "" {
		photo = &photoURL
	}

	return model.Field{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Description: c.Description,
		FieldType:   c.FieldType,
		HourlyRate:  c.HourlyRate,
		PhotoURL:    photo,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFieldRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=500"`
	FieldType   string                `db:"field_type"  json:"field_type"  validate:"omitempty,oneof=synthetic vinyl parquette"`
	HourlyRate  *float64              `db:"hourly_rate" json:"hourly_rate" validate:"omitempty,gt=0"`
	Photo       *multipart.FileHeader `json:"photo"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	PhotoFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type FieldResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	FieldType   string  `json:"field_type"`
	HourlyRate  float64 `json:"hourly_rate"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *FieldResponse) FromModel(model model.Field) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.FieldType = model.FieldType
	r.HourlyRate = model.HourlyRate
	r.PhotoURL = model.PhotoURL
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetFieldsResponse struct {
	Fields    []FieldResponse `json:"fields"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetFieldsResponse) FromModels(models []model.Field, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Fields = make([]FieldResponse, len(models))
	for i, mod := range models {
		r.Fields[i].FromModel(mod)
	}
}
