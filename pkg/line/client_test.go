package line

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzhdanov/alert-router/internal/model"
)

func testAlert() model.Alert {
	return model.Alert{
		MessageType: "WARNING",
		Title:       "disk",
		Content:     "90% full",
		SourceHost:  "db-01",
		Priority:    2,
		Timestamp:   time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestPush(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody pushRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("test-token", srv.URL, time.Second)

	res, err := c.Push(context.Background(), "U123", testAlert())
	require.NoError(t, err)
	assert.True(t, res.Success)

	assert.Equal(t, "/message/push", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "U123", gotBody.To)
	require.Len(t, gotBody.Messages, 1)
	assert.True(t, strings.HasPrefix(gotBody.Messages[0].Text, "[WARNING] disk"))
}

func TestPush_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid user id"}`))
	}))
	defer srv.Close()

	c := NewClient("test-token", srv.URL, time.Second)

	res, err := c.Push(context.Background(), "bogus", testAlert())
	assert.Error(t, err)
	assert.False(t, res.Success)
	assert.Contains(t, res.ErrorMessage, "invalid user id")
}

func TestMulticast_ChunksLargeBatches(t *testing.T) {
	var mu sync.Mutex
	var chunkSizes []int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body multicastRequest
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &body)

		mu.Lock()
		chunkSizes = append(chunkSizes, len(body.To))
		mu.Unlock()

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("test-token", srv.URL, time.Second)

	targets := make([]string, MaxMulticastTargets+7)
	for i := range targets {
		targets[i] = "U" + string(rune('a'+i%26))
	}

	res, err := c.Multicast(context.Background(), targets, testAlert())
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, []int{MaxMulticastTargets, 7}, chunkSizes)
}

func TestMulticast_FailedChunkReportsitsTargets(t *testing.T) {
	var calls int

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient("test-token", srv.URL, time.Second)

	targets := make([]string, MaxMulticastTargets+2)
	for i := range targets {
		targets[i] = "U1"
	}

	res, err := c.Multicast(context.Background(), targets, testAlert())
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "PARTIAL_FAILURE", res.ErrorCode)
	assert.Len(t, res.FailedTargets, MaxMulticastTargets)
}

func TestFormatAlert(t *testing.T) {
	text := FormatAlert(testAlert())

	assert.Contains(t, text, "[WARNING] disk")
	assert.Contains(t, text, "90% full")
	assert.Contains(t, text, "host: db-01")
	assert.Contains(t, text, "priority: P2")
	assert.NotContains(t, text, "service:")
}
