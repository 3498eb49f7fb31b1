package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/infras/postgres"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	gDto "github.com/Lucasteinmann/Aarebooking/shared/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
	"github.com/Lucasteinmann/Aarebooking/shared/logger"
	gRepo "github.com/Lucasteinmann/Aarebooking/shared/repository"
)

type Booking interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.BookingLine, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.BookingLine, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	SumBookedQuantities(ctx context.Context, date string) (map[string]int, error)
	ReserveLines(ctx context.Context, date string, lines []model.BookingLine) error
}

type repositoryImpl struct {
	gRepo.Repository[model.BookingLine]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.BookingLine](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// SumBookedQuantities returns the total reserved quantity per item for one
// calendar date. Items without any booking on that date are absent from the
// map.
func (repo *repositoryImpl) SumBookedQuantities(ctx context.Context, date string) (map[string]int, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.SumBookedQuantities")
	defer scope.End()

	query := fmt.Sprintf("SELECT %s, SUM(%s) AS quantity FROM %s WHERE %s = $1 GROUP BY %s",
		model.FieldItemID, model.FieldQuantity, model.TableName, model.FieldBookingDate, model.FieldItemID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows := []struct {
		ItemID   string `db:"item_id"`
		Quantity int    `db:"quantity"`
	}{}

	if err := repo.db.Read.SelectContext(ctx, &rows, query, date); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to sum booked quantities (%s): %w", model.EntityName, err)
	}

	booked := make(map[string]int, len(rows))
	for _, row := range rows {
		booked[row.ItemID] = row.Quantity
	}

	return booked, nil
}

// ReserveLines writes every line of a booking inside one transaction. The
// involved boat rows are locked first and the date's booked quantities are
// re-read under the lock, so two concurrent submissions for the last unit
// cannot both succeed. Either all lines land or none do.
func (repo *repositoryImpl) ReserveLines(ctx context.Context, date string, lines []model.BookingLine) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.ReserveLines")
	defer scope.End()
	defer scope.TraceIfError(err)

	if len(lines) == 0 {
		return failure.BadRequestFromString("no lines to reserve") // nolint:wrapcheck
	}

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logger.ErrorWithStack(rbErr)
			}
		}
	}()

	lockQuery := "SELECT total_inventory FROM boats WHERE boat_id = $1 AND active FOR UPDATE"
	bookedQuery := fmt.Sprintf("SELECT COALESCE(SUM(%s), 0) FROM %s WHERE %s = $1 AND %s = $2",
		model.FieldQuantity, model.TableName, model.FieldBookingDate, model.FieldItemID)

	for _, line := range lines {
		var totalInventory int

		err = tx.GetContext(ctx, &totalInventory, lockQuery, line.ItemID)
		if errors.Is(err, sql.ErrNoRows) {
			return failure.NotFound("boat not found") // nolint:wrapcheck
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to lock boat inventory (%s): %w", line.ItemID, err)
		}

		var booked int
		if err = tx.GetContext(ctx, &booked, bookedQuery, date, line.ItemID); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to read booked quantity (%s): %w", line.ItemID, err)
		}

		if booked+line.Quantity > totalInventory {
			return failure.Conflict(fmt.Sprintf("insufficient availability for %s on %s", line.ItemID, date)) // nolint:wrapcheck
		}
	}

	if err = repo.InsertBulkTx(ctx, tx, lines); err != nil {
		return fmt.Errorf("failed to insert booking lines: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return failure.PartialCommit(fmt.Sprintf("commit failed for booking on %s: %v", date, err)) // nolint:wrapcheck
	}

	return nil
}
