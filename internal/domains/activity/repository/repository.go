package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/activity/model"
	gDto "campusbook/shared/dto"
	gRepo "campusbook/shared/repository"
)

type Activity interface {
	Insert(ctx context.Context, model model.UserActivity) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserActivity, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.UserActivity, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	LatestOpen(ctx context.Context, userID string) (model.UserActivity, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.UserActivity]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Activity {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.UserActivity](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// LatestOpen returns the newest session of the user that has no logout
// recorded yet. A zero-ID result means no open session exists.
func (repo *repositoryImpl) LatestOpen(ctx context.Context, userID string) (model.UserActivity, error) {
	params := gDto.QueryParams{
		Limit:   1,
		SortBy:  model.FieldLoginTime,
		SortDir: gDto.SortDirDesc,
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    userID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldLogoutTime,
				Operator: gDto.FilterIsNull,
				Table:    model.TableName,
			},
		},
	}

	rows, err := repo.GetAll(ctx, params, filter)
	if err != nil {
		return model.UserActivity{}, err //nolint:wrapcheck
	}

	if len(rows) == 0 {
		return model.UserActivity{}, nil
	}

	return rows[0], nil
}
