package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/internal/domains/promotion/model"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/logger"
	gRepo "futsal/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Promotion interface {
	Insert(ctx context.Context, model model.Promotion) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Promotion, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Promotion, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	IncrementUsageTx(ctx context.Context, tx *sqlx.Tx, id string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Promotion]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Promotion {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Promotion](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// IncrementUsageTx bumps used_count inside the caller's transaction so the
// increment commits or rolls back together with the booking insert.
func (r *repositoryImpl) IncrementUsageTx(ctx context.Context, tx *sqlx.Tx, id string) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".promotion.IncrementUsageTx")
	defer scope.End()

	query := fmt.Sprintf("UPDATE %s SET used_count = used_count + 1 WHERE id = :id", model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := tx.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to increment promotion usage: %w", err)
	}

	return nil
}
