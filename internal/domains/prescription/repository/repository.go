package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"eyeslot/infras/otel"
	"eyeslot/infras/postgres"
	"eyeslot/internal/domains/prescription/model"
	gDto "eyeslot/shared/dto"
	gRepo "eyeslot/shared/repository"
)

type Prescription interface {
	Insert(ctx context.Context, model model.Prescription) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Prescription, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Prescription, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Prescription]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Prescription {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Prescription](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
