package model

import "campusbook/shared/model"

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID       = "id"
	FieldName     = "name"
	FieldType     = "type"
	FieldCapacity = "capacity"
	FieldStatus   = "status"
)

type Resource struct {
	ID       string `db:"id"`
	Name     string `db:"name"`
	Type     string `db:"type"`
	Capacity int    `db:"capacity"`
	Status   string `db:"status"`
	model.Metadata
}
