package repository

//go:generate go run go.uber.org/mock/mockgen -source=./payment_log.go -destination=../mocks/payment_log_mock.go -package=mocks

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

type PaymentLog interface {
	Insert(ctx context.Context, model model.PaymentLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PaymentLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type paymentLogRepositoryImpl struct {
	gRepo.Repository[model.PaymentLog]
	db   *postgres.Connection
	otel otel.Otel
}

func NewPaymentLog(db *postgres.Connection, otel otel.Otel) PaymentLog {
	return &paymentLogRepositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentLog](model.PaymentLogEntityName, model.PaymentLogTableName, model.PaymentLogFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *paymentLogRepositoryImpl) PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment_log.PurgeOlderThan")
	defer scope.End()

	query := fmt.Sprintf("DELETE FROM %s WHERE %s < :cutoff", model.PaymentLogTableName, model.PaymentLogFieldCreatedAt)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	result, err := r.db.Write.NamedExecContext(ctx, query, map[string]any{"cutoff": cutoff})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to purge payment logs: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read purge result: %w", err)
	}

	return rows, nil
}
