package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/internal/domains/history/model"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/logger"
	gRepo "futsal/shared/repository"
)

type BookingHistory interface {
	Insert(ctx context.Context, model model.BookingHistory) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingHistory, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingHistory, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingHistory]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) BookingHistory {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingHistory](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// PurgeOlderThan removes audit rows created before the cutoff. The table is
// append-only; this is the only delete path.
func (r *repositoryImpl) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking_history.PurgeOlderThan")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s < :cutoff", model.TableName, model.FieldCreatedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.NamedExecContext(ctx, query, map[string]any{"cutoff": cutoff})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to purge booking histories: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read purge result: %w", err)
	}

	return rows, nil
}
