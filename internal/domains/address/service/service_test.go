package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lucasteinmann/Aarebooking/config"
	"github.com/Lucasteinmann/Aarebooking/infras/otel/mocks"
	"github.com/Lucasteinmann/Aarebooking/internal/domains/address/service"
	"github.com/Lucasteinmann/Aarebooking/shared/failure"
)

func TestAddressService_Suggest(t *testing.T) {
	t.Run("query too short", func(t *testing.T) {
		cfg := &config.Config{}
		svc := service.New(cfg, mocks.NewOtel())

		_, err := svc.Suggest(context.Background(), "ab")

		assert.True(t, failure.IsKind(err, failure.KindValidation))
	})

	t.Run("disabled lookup echoes the typed address", func(t *testing.T) {
		cfg := &config.Config{}
		svc := service.New(cfg, mocks.NewOtel())

		res, err := svc.Suggest(context.Background(), "Aarstrasse 12")

		require.NoError(t, err)
		assert.Equal(t, []string{"Aarstrasse 12"}, res.Suggestions)
	})

	t.Run("enabled lookup returns provider suggestions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Aarstrasse", r.URL.Query().Get("text"))
			assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"features":[{"properties":{"formatted":"Aarstrasse 12, 3011 Bern"}},{"properties":{"formatted":"Aarstrasse 14, 3011 Bern"}}]}`))
		}))
		defer server.Close()

		cfg := &config.Config{}
		cfg.External.AddressLookup.Enable = true
		cfg.External.AddressLookup.Endpoint = server.URL
		cfg.External.AddressLookup.APIKey = "test-key"
		cfg.External.AddressLookup.TimeoutSeconds = 5

		svc := service.New(cfg, mocks.NewOtel())

		res, err := svc.Suggest(context.Background(), "Aarstrasse")

		require.NoError(t, err)
		assert.Len(t, res.Suggestions, 2)
		assert.Equal(t, "Aarstrasse 12, 3011 Bern", res.Suggestions[0])
	})

	t.Run("provider failure maps to data fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		cfg := &config.Config{}
		cfg.External.AddressLookup.Enable = true
		cfg.External.AddressLookup.Endpoint = server.URL
		cfg.External.AddressLookup.TimeoutSeconds = 5

		svc := service.New(cfg, mocks.NewOtel())

		_, err := svc.Suggest(context.Background(), "Aarstrasse")

		assert.True(t, failure.IsKind(err, failure.KindDataFetch))
	})
}
