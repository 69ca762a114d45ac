package model

import "campusbook/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldRole     = "role"
	FieldStatus   = "status"
	FieldPassword = "password"
)

type User struct {
	ID       string  `db:"id"`
	Name     string  `db:"name"`
	Email    string  `db:"email"`
	Phone    *string `db:"phone"`
	Role     string  `db:"role"`
	Status   string  `db:"status"`
	Password string  `db:"password"`
	model.Metadata
}
