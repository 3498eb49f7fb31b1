package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/kafka"
	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	boatModel "github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/repository"
	"github.com/Lucasteinmann/Aarebooking/shared"
	"github.com/Lucasteinmann/Aarebooking/shared/cache"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
	gModel "github.com/Lucasteinmann/Aarebooking/shared/model"
	"github.com/Lucasteinmann/Aarebooking/shared/timezone"
)

type Booking interface {
	AvailabilityForDate(ctx context.Context, date string) (dto.GetAvailabilityResponse, error)
	Submit(ctx context.Context, req dto.SubmitBookingRequest) (dto.SubmitBookingResponse, error)
	TimeSlots() []string
}

// CatalogProvider is the slice of the boat service this package needs.
type CatalogProvider interface {
	ListCatalog(ctx context.Context) ([]boatModel.Boat, error)
}

type serviceImpl struct {
	repo        repository.Booking
	boatService CatalogProvider
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	kafka       kafka.Client
}

func New(repo repository.Booking, boatSvc CatalogProvider, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, kafkaClient kafka.Client) Booking {
	return &serviceImpl{
		repo:        repo,
		boatService: boatSvc,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		kafka:       kafkaClient,
	}
}

// TimeSlots lists the bookable "HH:MM" slots between the configured first and
// last slot, inclusive on both ends.
func (s *serviceImpl) TimeSlots() []string {
	first, err := time.Parse(constant.ClockFormat, s.cfg.Booking.FirstSlot)
	if err != nil {
		log.Error().Err(err).Str("slot", s.cfg.Booking.FirstSlot).Msg("invalid first slot configured")

		return nil
	}

	last, err := time.Parse(constant.ClockFormat, s.cfg.Booking.LastSlot)
	if err != nil {
		log.Error().Err(err).Str("slot", s.cfg.Booking.LastSlot).Msg("invalid last slot configured")

		return nil
	}

	interval := time.Duration(s.cfg.Booking.SlotIntervalMinutes) * time.Minute
	if interval <= 0 {
		log.Error().Int("intervalMinutes", s.cfg.Booking.SlotIntervalMinutes).Msg("invalid slot interval configured")

		return nil
	}

	slots := []string{}
	for t := first; !t.After(last); t = t.Add(interval) {
		slots = append(slots, t.Format(constant.ClockFormat))
	}

	return slots
}

type bookingConfirmedEvent struct {
	Date      string                    `json:"date"`
	Time      string                    `json:"time"`
	Email     string                    `json:"email"`
	Lines     []dto.BookingLineResponse `json:"lines"`
	TotalCost float64                   `json:"total_cost"`
}

// Submit validates and persists a booking as one atomic unit. Either every
// line is written or none is; success is only reported after the transaction
// committed.
func (s *serviceImpl) Submit(ctx context.Context, req dto.SubmitBookingRequest) (res dto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DayFormat, req.Date); err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	if !slices.Contains(s.TimeSlots(), req.Time) {
		return res, failure.Validation("time slot is not available") // nolint:wrapcheck
	}

	normalizedPhone, err := ValidateContact(req.Contact)
	if err != nil {
		return res, err
	}

	catalog, err := s.boatService.ListCatalog(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to load boat catalog for booking")

		return res, failure.DataFetch(err) // nolint:wrapcheck
	}

	lines, err := s.buildLines(req, catalog, normalizedPhone)
	if err != nil {
		return res, err
	}

	if err = s.repo.ReserveLines(ctx, req.Date, lines); err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("failed to reserve booking lines")

		var fail *failure.Failure
		if errors.As(err, &fail) {
			return res, err
		}

		return res, failure.DataWrite(err) // nolint:wrapcheck
	}

	res.FromModels(lines)

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheAvailability)

		s.publishConfirmation(c, res, req.Contact.Email)
	}()

	return res, nil
}

// buildLines turns the requested quantities into ledger rows priced from the
// catalog. Quantities for the same item are merged so the conditional reserve
// sees each item once, and lines are ordered by item id so concurrent
// submissions lock boat rows in the same order.
func (s *serviceImpl) buildLines(req dto.SubmitBookingRequest, catalog []boatModel.Boat, normalizedPhone string) ([]model.BookingLine, error) {
	catalogByID := make(map[string]boatModel.Boat, len(catalog))
	for _, boat := range catalog {
		catalogByID[boat.ID] = boat
	}

	quantities := map[string]int{}
	order := []string{}

	for _, line := range req.Lines {
		if _, ok := catalogByID[line.ItemID]; !ok {
			return nil, failure.Validation("unknown item: " + line.ItemID) // nolint:wrapcheck
		}

		if line.Quantity <= 0 {
			return nil, failure.Validation("quantity must be positive: " + line.ItemID) // nolint:wrapcheck
		}

		if _, seen := quantities[line.ItemID]; !seen {
			order = append(order, line.ItemID)
		}

		quantities[line.ItemID] += line.Quantity
	}

	slices.Sort(order)

	now := timezone.Now()

	lines := make([]model.BookingLine, len(order))
	for i, itemID := range order {
		boat := catalogByID[itemID]
		quantity := quantities[itemID]

		lines[i] = model.BookingLine{
			ID:              uuid.NewString(),
			BookingDate:     req.Date,
			BookingTime:     req.Time,
			ItemID:          itemID,
			Quantity:        quantity,
			UnitPrice:       boat.UnitPrice,
			LineTotal:       boat.UnitPrice * float64(quantity),
			CustomerName:    req.Contact.Name,
			CustomerPhone:   normalizedPhone,
			CustomerEmail:   req.Contact.Email,
			CustomerAddress: req.Contact.Address,
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  req.Contact.Email,
				ModifiedBy: req.Contact.Email,
			},
		}
	}

	return lines, nil
}

func (s *serviceImpl) publishConfirmation(ctx context.Context, res dto.SubmitBookingResponse, email string) {
	event := bookingConfirmedEvent{
		Date:      res.Date,
		Time:      res.Time,
		Email:     email,
		Lines:     res.Lines,
		TotalCost: res.TotalCost,
	}

	message := kafka.Message{
		Key:   res.Date,
		Value: event,
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.BookingConfirmed, message); err != nil {
		log.Error().Err(err).Msg("failed to publish booking confirmed event")
	}
}
