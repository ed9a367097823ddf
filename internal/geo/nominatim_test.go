package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunwatch/slack-sunset-bot/internal/domain"
)

func TestClient_Resolve(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1100 Glendon Ave, Los Angeles, CA 90024", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"lat":"34.0622","lon":"-118.4440","display_name":"1100 Glendon Avenue, Los Angeles"}]`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	place, err := client.Resolve(context.Background(), "1100 Glendon Ave, Los Angeles, CA 90024")
	require.NoError(t, err)
	require.NotNil(t, place)

	assert.InDelta(t, 34.0622, place.Lat, 0.0001)
	assert.InDelta(t, -118.4440, place.Lon, 0.0001)
	assert.Equal(t, "1100 Glendon Avenue, Los Angeles", place.DisplayName)
}

func TestClient_Resolve_AddressNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Resolve(context.Background(), "nowhere at all")
	require.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func TestClient_Resolve_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL)

	_, err := client.Resolve(context.Background(), "los angeles")
	require.ErrorIs(t, err, domain.ErrResolverUnavailable)
}

func TestClient_Resolve_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := New(srv.URL)

	_, err := client.Resolve(context.Background(), "los angeles")
	require.ErrorIs(t, err, domain.ErrResolverUnavailable)
}
