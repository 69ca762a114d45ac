package model

import (
	"time"

	"campusbook/shared/model"
)

const (
	TableName  = "user_activities"
	EntityName = "user_activity"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldLoginTime  = "login_time"
	FieldLogoutTime = "logout_time"
)

// UserActivity is one login session. LogoutTime stays null until the
// session is closed, which may never happen.
type UserActivity struct {
	ID         string     `db:"id"`
	UserID     string     `db:"user_id"`
	LoginTime  time.Time  `db:"login_time"`
	LogoutTime *time.Time `db:"logout_time"`
	model.Metadata
}
