package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/resource/model"
	gDto "campusbook/shared/dto"
	gRepo "campusbook/shared/repository"
)

type Resource interface {
	Insert(ctx context.Context, model model.Resource) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Resource, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Resource, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	InsertBulk(ctx context.Context, models []model.Resource) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Resource]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Resource {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Resource](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
