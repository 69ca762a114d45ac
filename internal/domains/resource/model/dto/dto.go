package dto

import (
	"campusbook/internal/domains/resource/model"
	"campusbook/shared"
	"campusbook/shared/constant"
	gDto "campusbook/shared/dto"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Type     string `json:"type"     validate:"required,max=50"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Status   string `json:"status"   validate:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
}

func (c *CreateResourceRequest) ToModel(user string) model.Resource {
	status := c.Status
	if status == "" {
		status = constant.ResourceStatusAvailable
	}

	return model.Resource{
		ID:       uuid.NewString(),
		Name:     c.Name,
		Type:     c.Type,
		Capacity: c.Capacity,
		Status:   status,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateResourceRequest struct {
	Name     string `db:"name"     json:"name,omitempty"     validate:"omitempty,max=100"`
	Type     string `db:"type"     json:"type,omitempty"     validate:"omitempty,max=50"`
	Capacity *int   `db:"capacity" json:"capacity,omitempty" validate:"omitempty,gt=0"`
	Status   string `db:"status"   json:"status,omitempty"   validate:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
}

type ResourceResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Status   string `json:"status"`
	gDto.Metadata
}

func (r *ResourceResponse) FromModel(model model.Resource) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Capacity = model.Capacity
	r.Status = model.Status
	r.Metadata.FromModel(model.Metadata)
}

type GetResourcesResponse struct {
	Resources []ResourceResponse `json:"resources"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetResourcesResponse) FromModels(models []model.Resource, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Resources = make([]ResourceResponse, len(models))
	for i, mod := range models {
		r.Resources[i].FromModel(mod)
	}
}
