package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/internal/domains/payment/model"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/logger"
	gRepo "futsal/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Payment interface {
	Insert(ctx context.Context, model model.Payment) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Payment) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Payment, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Payment, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string, gatewayResponse *string, modifiedBy string, now time.Time) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Payment]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Payment {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Payment](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateStatusTx writes the payment status inside the caller's transaction.
// paid_at is stamped only on the first transition to paid and never moves
// on replays, so gateway retries stay idempotent.
func (r *repositoryImpl) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, id, status string, gatewayResponse *string, modifiedBy string, now time.Time) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".payment.UpdateStatusTx")
	defer scope.End()

	query := fmt.Sprintf(`UPDATE %s SET
		status = :status,
		gateway_response = COALESCE(:gateway_response, gateway_response),
		paid_at = CASE WHEN :status = 'paid' AND paid_at IS NULL THEN CAST(:now AS timestamptz) ELSE paid_at END,
		modified_at = :now,
		modified_by = :modified_by
	WHERE id = :id`, model.TableName)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":               id,
		"status":           status,
		"gateway_response": gatewayResponse,
		"modified_by":      modifiedBy,
		"now":              now,
	}

	_, err := tx.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to update payment status: %w", err)
	}

	return nil
}
