package plannerservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestClient_GetPickupPoints(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trip-pickup-points", r.URL.Path)
		assert.Equal(t, "pickup-1,pickup-2", r.URL.Query().Get("ids"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"trip_pickup_id": "pickup-1", "lokasi_jemput": "Jl. Raya Bromo 1"},
			{"trip_pickup_id": "pickup-2", "lokasi_jemput": "Jl. Ijen 12"}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	points, err := client.GetPickupPoints(context.Background(), []string{"pickup-1", "pickup-2"})
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "pickup-1", points[0].ID)
	assert.Equal(t, "Jl. Raya Bromo 1", points[0].Location)
	assert.Equal(t, "pickup-2", points[1].ID)
}

func TestClient_GetPickupPoints_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": "internal"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetPickupPoints(context.Background(), []string{"pickup-1"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GetPickupPoints_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	_, err := client.GetPickupPoints(context.Background(), []string{"pickup-1"})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_GracefulDegradation(t *testing.T) {
	// Сервер недоступен
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 500*time.Millisecond, nopLogger{})

	_, err := client.GetPickupPointsWithGracefulDegradation(context.Background(), []string{"pickup-1"})
	assert.ErrorIs(t, err, ErrServiceDegraded)
}

func TestClient_GracefulDegradation_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"trip_pickup_id": "pickup-1", "lokasi_jemput": "Jl. Raya Bromo 1"}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 2*time.Second, nopLogger{})

	points, err := client.GetPickupPointsWithGracefulDegradation(context.Background(), []string{"pickup-1"})
	require.NoError(t, err)
	assert.Len(t, points, 1)
}
