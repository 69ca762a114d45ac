package dto

import (
	"strings"

	"campusbook/internal/domains/user/model"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateUserRequest struct {
	Name     string  `json:"name"            validate:"required,max=100"`
	Email    string  `json:"email"           validate:"required,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Role     string  `json:"role"            validate:"omitempty,oneof=STUDENT STAFF"`
	Password string  `json:"password"        validate:"required,min=8"`
}

// NormalizeEmail lowercases and trims the email so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *CreateUserRequest) ToModel(username string, hashedPassword string) model.User {
	role := r.Role
	if role == "" {
		role = constant.RoleStudent
	}

	return model.User{
		ID:       uuid.NewString(),
		Name:     r.Name,
		Email:    NormalizeEmail(r.Email),
		Phone:    r.Phone,
		Role:     role,
		Status:   constant.UserStatusActive,
		Password: hashedPassword,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateUserRequest struct {
	Name   string  `db:"name"   json:"name,omitempty"   validate:"omitempty,max=100"`
	Phone  *string `db:"phone"  json:"phone,omitempty"  validate:"omitempty,max=20"`
	Status *string `db:"status" json:"status,omitempty" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UserResponse struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Phone  *string `json:"phone,omitempty"`
	Role   string  `json:"role"`
	Status string  `json:"status"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Role = model.Role
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetUsersResponse struct {
	Users     []UserResponse `json:"users"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetUsersResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Users = make([]UserResponse, len(models))
	for i, mod := range models {
		r.Users[i].FromModel(mod)
	}
}
