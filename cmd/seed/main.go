package main

import (
	"context"

	"campusbook/config"
	"campusbook/infras/otel"
	"campusbook/infras/postgres"
	"campusbook/internal/domains/resource/model"
	"campusbook/internal/domains/resource/repository"
	"campusbook/shared/constant"
	"campusbook/shared/logger"
	gModel "campusbook/shared/model"
	"campusbook/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const seededBy = "seeder"

type seedResource struct {
	name         string
	resourceType string
	capacity     int
}

// Baseline catalog so a fresh environment has something to book.
var catalog = []seedResource{
	{"Study Room A", "STUDY_ROOM", 6},
	{"Study Room B", "STUDY_ROOM", 6},
	{"Study Room C", "STUDY_ROOM", 10},
	{"Computer Lab 1", "LAB", 30},
	{"Computer Lab 2", "LAB", 24},
	{"Chemistry Lab", "LAB", 20},
	{"Auditorium", "HALL", 200},
	{"Seminar Hall", "HALL", 80},
	{"Projector P-01", "EQUIPMENT", 1},
	{"Projector P-02", "EQUIPMENT", 1},
	{"Badminton Court", "SPORTS", 4},
	{"Basketball Court", "SPORTS", 10},
}

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	db := postgres.New(cfg)
	repo := repository.New(db, otel.New(cfg))

	ctx := context.Background()

	resources := make([]model.Resource, len(catalog))
	for i, seed := range catalog {
		resources[i] = model.Resource{
			ID:       uuid.NewString(),
			Name:     seed.name,
			Type:     seed.resourceType,
			Capacity: seed.capacity,
			Status:   constant.ResourceStatusAvailable,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  seededBy,
				ModifiedBy: seededBy,
			},
		}
	}

	if err := repo.InsertBulk(ctx, resources); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed resources")
	}

	log.Info().Int("count", len(resources)).Msg("Resource catalog seeded successfully")
}
