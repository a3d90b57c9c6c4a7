package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"futsal/infras/otel"
	"futsal/infras/postgres"
	"futsal/internal/domains/booking/model"
	"futsal/shared/constant"
	gDto "futsal/shared/dto"
	"futsal/shared/logger"
	gRepo "futsal/shared/repository"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	FindConflicts(ctx context.Context, fieldID string, date, start, end time.Time, excludeID string) ([]model.Booking, error)
	FindConflictsTx(ctx context.Context, tx *sqlx.Tx, fieldID string, date, start, end time.Time, excludeID string) ([]model.Booking, error)
	FindEligibleForCompletion(ctx context.Context, maxDate time.Time) ([]model.Booking, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// conflictQuery matches bookings that still occupy the slot: same field and
// date, active status, and half-open interval overlap. Touching slots
// (one ends exactly when the other starts) do not collide.
func conflictQuery(excludeID string) string {
	statuses := fmt.Sprintf("'%s'", strings.Join(model.ActiveStatuses, "', '"))

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE field_id = :field_id AND booking_date = :booking_date AND status IN (%s) AND start_time < :end_time AND end_time > :start_time",
		model.TableName, statuses,
	)

	if excludeID != "" {
		query += " AND id != :exclude_id"
	}

	return query
}

func (r *repositoryImpl) findConflicts(ctx context.Context, queryer func(string) (*sqlx.NamedStmt, error), fieldID string, date, start, end time.Time, excludeID string) ([]model.Booking, error) {
	query := conflictQuery(excludeID)

	args := map[string]any{
		"field_id":     fieldID,
		"booking_date": date,
		"start_time":   start,
		"end_time":     end,
	}
	if excludeID != "" {
		args["exclude_id"] = excludeID
	}

	prepare, err := queryer(query)
	if err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to prepare conflict query: %w", err)
	}
	defer prepare.Close()

	var conflicts []model.Booking
	if err := prepare.SelectContext(ctx, &conflicts, args); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to find conflicting bookings: %w", err)
	}

	return conflicts, nil
}

func (r *repositoryImpl) FindConflicts(ctx context.Context, fieldID string, date, start, end time.Time, excludeID string) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindConflicts")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery(excludeID))

	return r.findConflicts(ctx, func(query string) (*sqlx.NamedStmt, error) {
		return r.db.Read.PrepareNamedContext(ctx, query)
	}, fieldID, date, start, end, excludeID)
}

// FindConflictsTx runs the conflict check on the same transaction that will
// insert the booking, so the database stays the authority on overlaps.
func (r *repositoryImpl) FindConflictsTx(ctx context.Context, tx *sqlx.Tx, fieldID string, date, start, end time.Time, excludeID string) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindConflictsTx")
	defer scope.End()
	scope.SetAttribute(constant.OtelQueryAttributeKey, conflictQuery(excludeID))

	return r.findConflicts(ctx, func(query string) (*sqlx.NamedStmt, error) {
		return tx.PrepareNamedContext(ctx, query)
	}, fieldID, date, start, end, excludeID)
}

// FindEligibleForCompletion returns confirmed bookings that have never been
// completed and whose date is not in the future. The per-row grace check
// happens at the caller, which owns the clock.
func (r *repositoryImpl) FindEligibleForCompletion(ctx context.Context, maxDate time.Time) ([]model.Booking, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.FindEligibleForCompletion")
	defer scope.End()

	query := fmt.Sprintf(
		"SELECT * FROM %s WHERE status = :status AND completed_at IS NULL AND booking_date <= :max_date",
		model.TableName,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"status":   model.StatusConfirmed,
		"max_date": maxDate,
	}

	prepare, err := r.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to prepare eligibility query: %w", err)
	}
	defer prepare.Close()

	var bookings []model.Booking
	if err := prepare.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find bookings eligible for completion: %w", err)
	}

	return bookings, nil
}
