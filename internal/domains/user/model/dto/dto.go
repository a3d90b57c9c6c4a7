package dto

import (
	"futsal/internal/domains/user/model"
	gDto "futsal/shared/dto"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	FullName  *string `json:"full_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	LastLogin *string `json:"last_login,omitempty"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (u *UserResponse) FromModel(model model.User) {
	u.ID = model.ID
	u.Email = model.Email
	u.Role = model.Role
	u.FullName = model.FullName
	u.Phone = model.Phone
	u.LastLogin = model.LastLogin
	u.Active = model.Active
	u.Metadata.FromModel(model.Metadata)
}
