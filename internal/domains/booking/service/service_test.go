package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Lucasteinmann/Aarebooking/config"
	kafkaMocks "github.com/Lucasteinmann/Aarebooking/infras/kafka/mocks"
	"github.com/Lucasteinmann/Aarebooking/infras/otel/mocks"
	boatModel "github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	bookingMocks "github.com/Lucasteinmann/Aarebooking/internal/domains/booking/mocks"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/service"
	cacheMocks "github.com/Lucasteinmann/Aarebooking/shared/cache/mocks"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Booking.FirstSlot = "10:00"
	cfg.Booking.LastSlot = "14:30"
	cfg.Booking.SlotIntervalMinutes = 30
	cfg.Kafka.Topics.BookingConfirmed = "booking.confirmed"

	return cfg
}

func aareCatalog() []boatModel.Boat {
	return []boatModel.Boat{
		{ID: "small-raft", Name: "Small Raft", UnitPrice: 140, TotalInventory: 6, Active: true},
		{ID: "medium-raft", Name: "Medium Raft", UnitPrice: 200, TotalInventory: 5, Active: true},
		{ID: "large-raft", Name: "Large Raft", UnitPrice: 250, TotalInventory: 4, Active: true},
		{ID: "sup", Name: "Stand-Up Paddle", UnitPrice: 50, TotalInventory: 8, Active: true},
		{ID: "kanu", Name: "Canoe", UnitPrice: 90, TotalInventory: 6, Active: true},
	}
}

func validContact() dto.ContactDetails {
	return dto.ContactDetails{
		Email:             "anna.muster@example.ch",
		EmailConfirmation: "anna.muster@example.ch",
		Phone:             "+41791234567",
		Name:              "Anna Muster",
		Address:           "Aarstrasse 12, 3011 Bern",
	}
}

func TestBookingService_AvailabilityForDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := bookingMocks.NewMockCatalogProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockCache, mockOtel, mockKafka)

	tests := []struct {
		name      string
		date      string
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
		check     func(t *testing.T, res dto.GetAvailabilityResponse)
	}{
		{
			name: "empty ledger leaves full inventory",
			date: "2026-07-15",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					SumBookedQuantities(gomock.Any(), "2026-07-15").
					Return(map[string]int{}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, res dto.GetAvailabilityResponse) {
				t.Helper()
				assert.Len(t, res.Items, 5)
				for i, boat := range aareCatalog() {
					assert.Equal(t, boat.ID, res.Items[i].ID)
					assert.Equal(t, boat.TotalInventory, res.Items[i].Remaining)
					assert.Zero(t, res.Items[i].Booked)
				}
			},
		},
		{
			name: "booked quantities reduce remaining and floor at zero",
			date: "2026-07-16",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					SumBookedQuantities(gomock.Any(), "2026-07-16").
					Return(map[string]int{"sup": 3, "kanu": 9, "rowboat": 2}, nil)
				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, res dto.GetAvailabilityResponse) {
				t.Helper()
				// Catalog order survives; the unknown ledger item is ignored.
				assert.Len(t, res.Items, 5)
				assert.Equal(t, 5, res.Items[3].Remaining)
				assert.Equal(t, 3, res.Items[3].Booked)
				assert.Equal(t, 0, res.Items[4].Remaining)
				assert.Equal(t, 9, res.Items[4].Booked)
			},
		},
		{
			name: "catalog read failure",
			date: "2026-07-15",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(nil, errors.New("db unreachable"))
			},
			wantErr:  true,
			wantKind: failure.KindDataFetch,
		},
		{
			name: "ledger read failure yields no partial listing",
			date: "2026-07-15",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					SumBookedQuantities(gomock.Any(), "2026-07-15").
					Return(nil, errors.New("db unreachable"))
			},
			wantErr:  true,
			wantKind: failure.KindDataFetch,
		},
		{
			name:      "malformed date",
			date:      "15.07.2026",
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.AvailabilityForDate(context.Background(), tt.date)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))
				assert.Empty(t, res.Items)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.date, res.Date)
				tt.check(t, res)
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_TimeSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := bookingMocks.NewMockCatalogProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockCache, mockOtel, mockKafka)

	slots := svc.TimeSlots()

	assert.Len(t, slots, 10)
	assert.Equal(t, "10:00", slots[0])
	assert.Equal(t, "10:30", slots[1])
	assert.Equal(t, "14:30", slots[9])
}

func TestBookingService_Submit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := bookingMocks.NewMockCatalogProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockCache, mockOtel, mockKafka)

	baseReq := func() dto.SubmitBookingRequest {
		return dto.SubmitBookingRequest{
			Date: "2026-07-15",
			Time: "10:30",
			Lines: []dto.SubmitBookingLine{
				{ItemID: "sup", Quantity: 2},
				{ItemID: "kanu", Quantity: 1},
			},
			Contact: validContact(),
		}
	}

	tests := []struct {
		name      string
		mutate    func(req *dto.SubmitBookingRequest)
		setupMock func()
		wantErr   bool
		wantKind  failure.Kind
		wantMsg   string
		check     func(t *testing.T, res dto.SubmitBookingResponse)
	}{
		{
			name:   "successful submission writes all lines once in item order",
			mutate: func(req *dto.SubmitBookingRequest) {},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					ReserveLines(gomock.Any(), "2026-07-15", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, lines []model.BookingLine) error {
						assert.Len(t, lines, 2)
						// Lines arrive sorted by item id regardless of
						// request order, so concurrent submissions lock
						// boat rows in the same order.
						assert.Equal(t, "kanu", lines[0].ItemID)
						assert.Equal(t, 1, lines[0].Quantity)
						assert.Equal(t, 90.0, lines[0].LineTotal)
						assert.Equal(t, "sup", lines[1].ItemID)
						assert.Equal(t, 2, lines[1].Quantity)
						assert.Equal(t, 100.0, lines[1].LineTotal)
						assert.Equal(t, "+41791234567", lines[0].CustomerPhone)
						return nil
					})
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "booking.confirmed", gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			check: func(t *testing.T, res dto.SubmitBookingResponse) {
				t.Helper()
				assert.Equal(t, 190.0, res.TotalCost)
				assert.Len(t, res.Lines, 2)
				assert.NotEmpty(t, res.Lines[0].ID)
			},
		},
		{
			name: "duplicate lines are merged before reserving",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Lines = []dto.SubmitBookingLine{
					{ItemID: "sup", Quantity: 1},
					{ItemID: "sup", Quantity: 2},
				}
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					ReserveLines(gomock.Any(), "2026-07-15", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, lines []model.BookingLine) error {
						assert.Len(t, lines, 1)
						assert.Equal(t, 3, lines[0].Quantity)
						return nil
					})
				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
				mockKafka.EXPECT().
					SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
		},
		{
			name: "invalid email reported before phone",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Contact.Email = "not-an-email"
				req.Contact.EmailConfirmation = "not-an-email"
				req.Contact.Phone = "12"
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
			wantMsg:   "email address is not valid",
		},
		{
			name: "email confirmation mismatch is case-sensitive",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Contact.EmailConfirmation = "Anna.Muster@example.ch"
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
			wantMsg:   "email addresses do not match",
		},
		{
			name: "invalid phone",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Contact.Phone = "12345"
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
			wantMsg:   "phone number is not valid",
		},
		{
			name: "unknown time slot",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Time = "09:45"
			},
			setupMock: func() {},
			wantErr:   true,
			wantKind:  failure.KindValidation,
		},
		{
			name: "unknown item",
			mutate: func(req *dto.SubmitBookingRequest) {
				req.Lines = []dto.SubmitBookingLine{{ItemID: "rowboat", Quantity: 1}}
			},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
			},
			wantErr:  true,
			wantKind: failure.KindValidation,
		},
		{
			name:   "insufficient availability surfaces as conflict",
			mutate: func(req *dto.SubmitBookingRequest) {},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					ReserveLines(gomock.Any(), "2026-07-15", gomock.Any()).
					Return(failure.Conflict("insufficient availability for sup on 2026-07-15"))
			},
			wantErr:  true,
			wantKind: failure.KindConflict,
		},
		{
			name:   "commit failure is never reported as success",
			mutate: func(req *dto.SubmitBookingRequest) {},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					ReserveLines(gomock.Any(), "2026-07-15", gomock.Any()).
					Return(failure.PartialCommit("commit failed for booking on 2026-07-15"))
			},
			wantErr:  true,
			wantKind: failure.KindPartialCommit,
		},
		{
			name:   "plain write error maps to data write failure",
			mutate: func(req *dto.SubmitBookingRequest) {},
			setupMock: func() {
				mockCatalog.EXPECT().
					ListCatalog(gomock.Any()).
					Return(aareCatalog(), nil)
				mockRepo.EXPECT().
					ReserveLines(gomock.Any(), "2026-07-15", gomock.Any()).
					Return(errors.New("connection reset"))
			},
			wantErr:  true,
			wantKind: failure.KindDataWrite,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := baseReq()
			tt.mutate(&req)
			tt.setupMock()

			res, err := svc.Submit(context.Background(), req)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, failure.IsKind(err, tt.wantKind))

				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, err.Error())
				}

				assert.Empty(t, res.Lines)
			} else {
				assert.NoError(t, err)

				if tt.check != nil {
					tt.check(t, res)
				}
			}

			time.Sleep(10 * time.Millisecond)
		})
	}
}

func TestBookingService_SubmitValidationCodes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCatalog := bookingMocks.NewMockCatalogProvider(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	svc := service.New(mockRepo, mockCatalog, testConfig(), mockCache, mockOtel, mockKafka)

	req := dto.SubmitBookingRequest{
		Date:    "not-a-date",
		Time:    "10:00",
		Lines:   []dto.SubmitBookingLine{{ItemID: "sup", Quantity: 1}},
		Contact: validContact(),
	}

	_, err := svc.Submit(context.Background(), req)

	assert.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
