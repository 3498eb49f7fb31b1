package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/internal/domains/booking/model/dto"
	"github.com/Lucasteinmann/Aarebooking/shared"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

const (
	cacheAvailability = "availability:get"
)

// AvailabilityForDate computes remaining inventory per catalog item for one
// calendar date. The computation is all-or-nothing: if either the catalog or
// the booking ledger cannot be read, no partial listing is returned.
func (s *serviceImpl) AvailabilityForDate(ctx context.Context, date string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AvailabilityForDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = time.Parse(constant.DayFormat, date); err != nil {
		return res, failure.BadRequestFromString("date must be formatted as YYYY-MM-DD") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheAvailability, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for availability")

		return res, nil
	}

	catalog, err := s.boatService.ListCatalog(ctx)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load boat catalog for availability")

		return res, failure.DataFetch(err) // nolint:wrapcheck
	}

	booked, err := s.repo.SumBookedQuantities(ctx, date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to load booking ledger for availability")

		return res, failure.DataFetch(err) // nolint:wrapcheck
	}

	res.Date = date
	res.Items = dto.NewAvailabilityItems(catalog, booked)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}
