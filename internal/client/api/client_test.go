package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stravaapi "github.com/iudanet/stravasync/pkg/api"
)

func TestClient_ExchangeToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req stravaapi.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "refresh_token", req.GrantType)
		assert.Equal(t, "old-refresh", req.RefreshToken)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stravaapi.TokenResponse{
			AccessToken:  "new-access",
			RefreshToken: "new-refresh",
			ExpiresAt:    1750000000,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	resp, err := client.ExchangeToken(context.Background(), stravaapi.TokenRequest{
		ClientID:     "id",
		ClientSecret: "secret",
		GrantType:    "refresh_token",
		RefreshToken: "old-refresh",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-access", resp.AccessToken)
	assert.Equal(t, "new-refresh", resp.RefreshToken)
	assert.Equal(t, int64(1750000000), resp.ExpiresAt)
}

func TestClient_ExchangeToken_BadCredentials(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(stravaapi.ErrorResponse{Message: "Bad Request"})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.ExchangeToken(context.Background(), stravaapi.TokenRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Bad Request")
}

func TestClient_ListActivities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/athlete/activities", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]stravaapi.SummaryActivity{
			{ID: 20, SportType: "Run"},
			{ID: 10, SportType: "Ride"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	activities, err := client.ListActivities(context.Background(), "access-token", 2, 100)

	require.NoError(t, err)
	require.Len(t, activities, 2)
	assert.Equal(t, int64(20), activities[0].ID)
	assert.Equal(t, "Ride", activities[1].SportType)
}

func TestClient_ListActivities_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	_, err := client.ListActivities(context.Background(), "bad-token", 1, 10)

	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.Code)
}

func TestClient_GetActivity(t *testing.T) {
	rpe := 7.0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/12345", r.URL.Path)
		assert.Equal(t, "Bearer access-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(stravaapi.DetailedActivity{
			SummaryActivity:   stravaapi.SummaryActivity{ID: 12345, SportType: "Run"},
			PerceivedExertion: &rpe,
			SplitsMetric: []stravaapi.SplitMetric{
				{Split: 1, Distance: 1000, MovingTime: 330},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	detail, err := client.GetActivity(context.Background(), "access-token", 12345)

	require.NoError(t, err)
	assert.Equal(t, int64(12345), detail.ID)
	require.NotNil(t, detail.PerceivedExertion)
	assert.Equal(t, 7.0, *detail.PerceivedExertion)
	require.Len(t, detail.SplitsMetric, 1)
}

func TestClient_GetActivityZones(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/activities/12345/zones", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]stravaapi.ActivityZone{
			{
				Type: "heartrate",
				DistributionBuckets: []stravaapi.ZoneBucket{
					{Min: 0, Max: 120, Time: 60},
					{Min: 120, Max: -1, Time: 30},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	zones, err := client.GetActivityZones(context.Background(), "access-token", 12345)

	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "heartrate", zones[0].Type)
	assert.Equal(t, -1.0, zones[0].DistributionBuckets[1].Max)
}

func TestClient_GetActivityZones_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)

	// 404 означает отсутствие зон, а не сбой
	zones, err := client.GetActivityZones(context.Background(), "access-token", 12345)

	require.NoError(t, err)
	assert.Nil(t, zones)
}

func TestStatusError_Message(t *testing.T) {
	withMessage := &StatusError{Code: 429, Message: "Rate Limit Exceeded"}
	assert.Equal(t, "server error (429): Rate Limit Exceeded", withMessage.Error())

	bare := &StatusError{Code: 500}
	assert.Equal(t, "request failed with status 500", bare.Error())
}
