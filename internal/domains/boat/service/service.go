package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/model/dto"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/boat/repository"
	"github.com/Lucasteinmann/Aarebooking/shared"
	"github.com/Lucasteinmann/Aarebooking/shared/cache"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	gDto "github.com/Lucasteinmann/Aarebooking/shared/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

const (
	cacheGetBoat    = "boat:get"
	cacheGetAllBoat = "boat:gets"
	cacheCountBoat  = "boat:count"
	cacheCatalog    = "boat:catalog"

	// Availability is derived from the catalog, so catalog mutations
	// invalidate it as well. Prefix must match the booking service.
	cacheAvailability = "availability:get"
)

type Boat interface {
	Create(ctx context.Context, req dto.CreateBoatRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBoatsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BoatResponse, error)
	Update(ctx context.Context, req dto.UpdateBoatRequest, id string) error
	Delete(ctx context.Context, id string) error
	ListCatalog(ctx context.Context) ([]model.Boat, error)
}

type serviceImpl struct {
	repo  repository.Boat
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Boat, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Boat {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBoatRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(req.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if boat exists")

		return fmt.Errorf("failed to check if boat exists: %w", err)
	}

	if exists {
		return failure.Conflict("boat already exists") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(constant.OperatorAdmin)); err != nil {
		log.Error().Err(err).Msg("failed to create boat")

		return fmt.Errorf("failed to create boat: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateDerivedCaches(c)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBoatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBoat, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boats")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get boats")

		return res, fmt.Errorf("failed to get boats: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boats to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBoat, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count boats")

		return res, fmt.Errorf("failed to count boats: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BoatResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBoat, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat")

		return res, nil
	}

	boat, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get boat")

		return res, fmt.Errorf("failed to get boat: %w", err)
	}

	if boat.ID == constant.Empty {
		return res, failure.NotFound("boat not found") // nolint:wrapcheck
	}

	res.FromModel(boat)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat to cache")
		}
	}()

	return res, nil
}

// ListCatalog returns every active boat in catalog order. This is the
// master list the availability computation is built from.
func (s *serviceImpl) ListCatalog(ctx context.Context) (res []model.Boat, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListCatalog")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheCatalog, "active")

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for boat catalog")

		return res, nil
	}

	res, err = s.repo.GetAll(ctx,
		gDto.QueryParams{SortBy: constant.FieldCreatedAt, SortDir: gDto.SortDirAsc},
		gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldActive,
					Operator: gDto.FilterOperatorEq,
					Value:    true,
					Table:    model.TableName,
				},
			},
		},
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to list boat catalog")

		return nil, fmt.Errorf("failed to list boat catalog: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save boat catalog to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBoatRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBoatRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if boat exists")

		return fmt.Errorf("failed to check if boat exists: %w", err)
	}

	if !exist {
		log.Error().Msg("boat not found")

		return failure.NotFound("boat not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, constant.OperatorAdmin)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update boat")

		return fmt.Errorf("failed to update boat: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBoat, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete boat from cache")
		}

		s.invalidateDerivedCaches(c)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if boat exists")

		return fmt.Errorf("failed to check if boat exists: %w", err)
	}

	if !exist {
		log.Error().Msg("boat not found")

		return failure.NotFound("boat not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete boat")

		return fmt.Errorf("failed to delete boat: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBoat, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete boat from cache")
		}

		s.invalidateDerivedCaches(c)
	}()

	return nil
}

func (s *serviceImpl) invalidateDerivedCaches(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheGetAllBoat)
	shared.InvalidateCaches(ctx, s.cache, cacheCountBoat)
	shared.InvalidateCaches(ctx, s.cache, cacheCatalog)
	shared.InvalidateCaches(ctx, s.cache, cacheAvailability)
}
