package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"eyeslot/infras/otel"
	"eyeslot/infras/postgres"
	"eyeslot/internal/domains/user/model"
	"eyeslot/shared/constant"
	gDto "eyeslot/shared/dto"
	"eyeslot/shared/logger"
	gRepo "eyeslot/shared/repository"
	"fmt"
)

// upsertQuery keeps the stored id and created_at of an existing email and refreshes the name.
const upsertQuery = `INSERT INTO users (id, email, name, created_at, updated_at)
VALUES (:id, :email, :name, :created_at, :updated_at)
ON CONFLICT (email) DO UPDATE SET name = EXCLUDED.name, updated_at = EXCLUDED.updated_at
RETURNING id, email, name, created_at, updated_at`

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Upsert(ctx context.Context, user model.User) (model.User, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) Upsert(ctx context.Context, user model.User) (stored model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.Upsert")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(constant.OtelQueryAttributeKey, upsertQuery)

	stmt, err := r.db.Write.PrepareNamedContext(ctx, upsertQuery)
	if err != nil {
		logger.ErrorWithStack(err)

		return stored, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	if err = stmt.GetContext(ctx, &stored, user); err != nil {
		logger.ErrorWithStack(err)

		return stored, fmt.Errorf("failed to upsert data (%s): %w", model.EntityName, err)
	}

	return stored, nil
}
