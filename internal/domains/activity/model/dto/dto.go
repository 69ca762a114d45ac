package dto

import (
	"time"

	"campusbook/internal/domains/activity/model"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

// NewLoginActivity builds the row recorded at login time.
func NewLoginActivity(userID, username string) model.UserActivity {
	return model.UserActivity{
		ID:        uuid.NewString(),
		UserID:    userID,
		LoginTime: timezone.Now(),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type CloseActivityRequest struct {
	LogoutTime time.Time `db:"logout_time" json:"logout_time"`
}

type ActivityResponse struct {
	ID         string  `json:"id"`
	UserID     string  `json:"user_id"`
	LoginTime  string  `json:"login_time"`
	LogoutTime *string `json:"logout_time"`
	gDto.Metadata
}

func (r *ActivityResponse) FromModel(model model.UserActivity) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.LoginTime = timezone.Format(model.LoginTime, constant.DateFormat)

	if model.LogoutTime != nil {
		logoutTime := timezone.Format(*model.LogoutTime, constant.DateFormat)
		r.LogoutTime = &logoutTime
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetActivitiesResponse) FromModels(models []model.UserActivity, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Activities = make([]ActivityResponse, len(models))
	for i, mod := range models {
		r.Activities[i].FromModel(mod)
	}
}
