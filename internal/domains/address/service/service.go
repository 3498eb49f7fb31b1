package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/otel"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/address/model/dto"
	"github.com/Lucasteinmann/Aarebooking/shared/constant"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

const minQueryLength = 3

type Address interface {
	Suggest(ctx context.Context, query string) (dto.GetSuggestionsResponse, error)
}

type serviceImpl struct {
	cfg    *config.Config
	otel   otel.Otel
	client *http.Client
}

func New(cfg *config.Config, otl otel.Otel) Address {
	return &serviceImpl{
		cfg:  cfg,
		otel: otl,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.AddressLookup.TimeoutSeconds) * time.Second,
		},
	}
}

type lookupResult struct {
	Features []struct {
		Properties struct {
			Formatted string `json:"formatted"`
		} `json:"properties"`
	} `json:"features"`
}

// Suggest returns address completions for the contact form. With the lookup
// provider disabled the typed text comes back as the only suggestion, so
// manual entry keeps working without the external dependency.
func (s *serviceImpl) Suggest(ctx context.Context, query string) (res dto.GetSuggestionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".address.Suggest")
	defer scope.End()
	defer scope.TraceIfError(err)

	query = strings.TrimSpace(query)
	if len(query) < minQueryLength {
		return res, failure.Validation(fmt.Sprintf("query must be at least %d characters", minQueryLength)) // nolint:wrapcheck
	}

	res.Query = query

	if !s.cfg.External.AddressLookup.Enable {
		res.Suggestions = []string{query}

		return res, nil
	}

	endpoint, err := url.Parse(s.cfg.External.AddressLookup.Endpoint)
	if err != nil {
		log.Error().Err(err).Msg("invalid address lookup endpoint configured")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	params := endpoint.Query()
	params.Set("text", query)
	params.Set("apiKey", s.cfg.External.AddressLookup.APIKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("address lookup request failed")

		return res, failure.DataFetch(err) // nolint:wrapcheck
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error().Int("status", resp.StatusCode).Msg("address lookup returned non-OK status")

		return res, failure.DataFetch(fmt.Errorf("address lookup returned status %d", resp.StatusCode)) // nolint:wrapcheck
	}

	var result lookupResult
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Msg("failed to decode address lookup response")

		return res, failure.DataFetch(err) // nolint:wrapcheck
	}

	for _, feature := range result.Features {
		if feature.Properties.Formatted != "" {
			res.Suggestions = append(res.Suggestions, feature.Properties.Formatted)
		}
	}

	return res, nil
}
