package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	bookingDto "github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/session/model/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

// BookingGateway is the slice of the booking service a session needs:
// availability per date, the slot list, and the atomic submission.
type BookingGateway interface {
	AvailabilityForDate(ctx context.Context, date string) (bookingDto.GetAvailabilityResponse, error)
	Submit(ctx context.Context, req bookingDto.SubmitBookingRequest) (bookingDto.SubmitBookingResponse, error)
	TimeSlots() []string
}

type Session interface {
	Create(ctx context.Context) (dto.SessionResponse, error)
	Get(ctx context.Context, id string) (dto.SessionResponse, error)
	ChooseDate(ctx context.Context, id, date string) (dto.SessionResponse, error)
	ChooseTime(ctx context.Context, id, slot string) (dto.SessionResponse, error)
	AdjustQuantity(ctx context.Context, id, itemID string, change int) (dto.SessionResponse, error)
	Proceed(ctx context.Context, id string) (dto.SessionResponse, error)
	Back(ctx context.Context, id string) (dto.SessionResponse, error)
	Confirm(ctx context.Context, id string, contact bookingDto.ContactDetails) (bookingDto.SubmitBookingResponse, error)
	Close(ctx context.Context, id string) error
	Shutdown()
}

type serviceImpl struct {
	gateway BookingGateway
	cfg     *config.Config
	otel    otel.Otel
	store   *store
}

func New(gateway BookingGateway, cfg *config.Config, otl otel.Otel) Session {
	ttl := time.Duration(cfg.Booking.Session.TTLMinutes) * time.Minute
	sweep := time.Duration(cfg.Booking.Session.SweepIntervalSeconds) * time.Second

	return &serviceImpl{
		gateway: gateway,
		cfg:     cfg,
		otel:    otl,
		store:   newStore(ttl, sweep),
	}
}

func (s *serviceImpl) Shutdown() {
	s.store.shutdown()
}

func (s *serviceImpl) Create(ctx context.Context) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Create")
	defer scope.End()

	st := newState(uuid.NewString())
	s.store.put(st)

	st.mu.Lock()
	defer st.mu.Unlock()

	log.Info().Str("sessionID", st.id).Msg("created booking session")

	return st.view(s.gateway.TimeSlots()), nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Get")
	defer scope.End()

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	st.touch()

	return st.view(s.gateway.TimeSlots()), nil
}

// ChooseDate sets the rental date and reloads availability for it. The load
// runs in the background; a newer date choice supersedes an older fetch, whose
// result is discarded even if it finishes afterwards.
func (s *serviceImpl) ChooseDate(ctx context.Context, id, date string) (res dto.SessionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.ChooseDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DayFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepSelection {
		return res, failure.Conflict("date can only be chosen during selection") // nolint:wrapcheck
	}

	st.touch()
	st.date = date
	st.lines = nil
	st.loadError = ""
	st.loading = true

	if st.cancelFetch != nil {
		st.cancelFetch()
	}

	st.generation++
	generation := st.generation

	fetchCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	st.cancelFetch = cancel

	go s.loadAvailability(fetchCtx, st, date, generation)

	return st.view(s.gateway.TimeSlots()), nil
}

func (s *serviceImpl) loadAvailability(ctx context.Context, st *state, date string, generation uint64) {
	availability, err := s.gateway.AvailabilityForDate(ctx, date)

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.generation != generation {
		log.Debug().Str("sessionID", st.id).Str("date", date).Msg("discarding superseded availability fetch")

		return
	}

	st.loading = false
	st.cancelFetch = nil

	if err != nil {
		log.Error().Err(err).Str("sessionID", st.id).Str("date", date).Msg("availability load failed")

		st.loadError = err.Error()

		return
	}

	lines := make([]model.Line, len(availability.Items))
	for i, item := range availability.Items {
		lines[i] = model.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Available: item.Remaining,
		}
	}

	// Re-picking the date a snapshot was frozen for restores its counts,
	// capped at what is still available.
	if st.snapshotDate == date {
		counts := make(map[string]int, len(st.snapshot))
		for _, snap := range st.snapshot {
			counts[snap.ItemID] = snap.Quantity
		}

		for i := range lines {
			lines[i].Count = min(counts[lines[i].ItemID], lines[i].Available)
		}
	}

	st.lines = lines
}

func (s *serviceImpl) ChooseTime(ctx context.Context, id, slot string) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.ChooseTime")
	defer scope.End()
	defer scope.TraceIfError(err)

	slots := s.gateway.TimeSlots()
	if !slices.Contains(slots, slot) {
		return res, failure.Validation("time slot is not available") // nolint:wrapcheck
	}

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepSelection {
		return res, failure.Conflict("time can only be chosen during selection") // nolint:wrapcheck
	}

	st.touch()
	st.timeSlot = slot

	return st.view(slots), nil
}

// AdjustQuantity changes one line's count by the given delta. The result is
// clamped to the closed range [0, available], so oversteps in either
// direction saturate instead of failing.
func (s *serviceImpl) AdjustQuantity(ctx context.Context, id, itemID string, change int) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.AdjustQuantity")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepSelection {
		return res, failure.Conflict("quantities can only be adjusted during selection") // nolint:wrapcheck
	}

	if st.loading {
		return res, failure.Conflict("availability is still loading") // nolint:wrapcheck
	}

	if st.lines == nil {
		return res, failure.Validation("choose a date first") // nolint:wrapcheck
	}

	st.touch()

	for i := range st.lines {
		if st.lines[i].ItemID != itemID {
			continue
		}

		st.lines[i].Count = min(st.lines[i].Available, max(0, st.lines[i].Count+change))

		return st.view(s.gateway.TimeSlots()), nil
	}

	return res, failure.NotFound("item not found") // nolint:wrapcheck
}

// Proceed freezes the current selection into a snapshot and moves the session
// to details entry. Only lines with a positive count are captured.
func (s *serviceImpl) Proceed(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Proceed")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepSelection {
		return res, failure.Conflict("session is past selection") // nolint:wrapcheck
	}

	if st.date == "" {
		return res, failure.Validation("choose a date first") // nolint:wrapcheck
	}

	if st.timeSlot == "" {
		return res, failure.Validation("choose a time slot first") // nolint:wrapcheck
	}

	if st.loading {
		return res, failure.Conflict("availability is still loading") // nolint:wrapcheck
	}

	if st.loadError != "" {
		return res, failure.Validation("availability could not be loaded, choose the date again") // nolint:wrapcheck
	}

	snapshot := []model.SnapshotLine{}

	for _, line := range st.lines {
		if line.Count <= 0 {
			continue
		}

		snapshot = append(snapshot, model.SnapshotLine{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice,
			Quantity:  line.Count,
			LineTotal: line.UnitPrice * float64(line.Count),
		})
	}

	if len(snapshot) == 0 {
		return res, failure.Validation("select at least one item") // nolint:wrapcheck
	}

	st.touch()
	st.snapshot = snapshot
	st.snapshotDate = st.date
	st.snapshotTime = st.timeSlot
	st.step = model.StepDetailsEntry

	return st.view(s.gateway.TimeSlots()), nil
}

func (s *serviceImpl) Back(ctx context.Context, id string) (res dto.SessionResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Back")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if st.step != model.StepDetailsEntry {
		return res, failure.Conflict("session is not in details entry") // nolint:wrapcheck
	}

	st.touch()
	st.step = model.StepSelection

	return st.view(s.gateway.TimeSlots()), nil
}

// Confirm submits the frozen snapshot with the customer's contact details.
// Only one confirmation may run at a time; a failed submission leaves the
// session in details entry so it can be retried or revised. Success discards
// the session the same way Close does.
func (s *serviceImpl) Confirm(ctx context.Context, id string, contact bookingDto.ContactDetails) (res bookingDto.SubmitBookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Confirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	st, ok := s.store.get(id)
	if !ok {
		return res, failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.mu.Lock()

	if st.step != model.StepDetailsEntry {
		st.mu.Unlock()

		return res, failure.Conflict("session is not ready for confirmation") // nolint:wrapcheck
	}

	if st.confirming {
		st.mu.Unlock()

		return res, failure.Conflict("confirmation already in progress") // nolint:wrapcheck
	}

	st.touch()
	st.confirming = true

	req := bookingDto.SubmitBookingRequest{
		Date:    st.snapshotDate,
		Time:    st.snapshotTime,
		Lines:   make([]bookingDto.SubmitBookingLine, len(st.snapshot)),
		Contact: contact,
	}

	for i, snap := range st.snapshot {
		req.Lines[i] = bookingDto.SubmitBookingLine{
			ItemID:   snap.ItemID,
			Quantity: snap.Quantity,
		}
	}

	st.mu.Unlock()

	res, err = s.gateway.Submit(ctx, req)

	st.mu.Lock()

	st.confirming = false

	if err != nil {
		st.mu.Unlock()

		log.Error().Err(err).Str("sessionID", st.id).Msg("booking submission failed")

		return bookingDto.SubmitBookingResponse{}, err
	}

	st.step = model.StepCommitted

	st.mu.Unlock()

	// The committed session is discarded like a closed one: out of the
	// store, with any in-flight fetch dropped.
	s.store.remove(st.id)
	st.discard()

	log.Info().Str("sessionID", st.id).Str("date", req.Date).Msg("booking session committed")

	return res, nil
}

// Close discards the session. Any in-flight availability fetch is cancelled
// and its result dropped.
func (s *serviceImpl) Close(ctx context.Context, id string) (err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".session.Close")
	defer scope.End()

	st, ok := s.store.remove(id)
	if !ok {
		return failure.NotFound("session not found") // nolint:wrapcheck
	}

	st.discard()

	log.Info().Str("sessionID", id).Msg("closed booking session")

	return nil
}
