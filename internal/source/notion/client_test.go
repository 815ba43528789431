package notion

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(srv *httptest.Server, attempts int) *Client {
	return New(Config{
		APIKey:         "secret_test",
		BaseURL:        srv.URL,
		Timeout:        5 * time.Second,
		MaxAttempts:    attempts,
		InitialBackoff: time.Millisecond,
		MaxBackoff:     5 * time.Millisecond,
	}, testLogger())
}

func TestQueryDatabase_SendsFilterAndDecodesPages(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/databases/db-1/query", r.URL.Path)
		assert.Equal(t, "Bearer secret_test", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultVersion, r.Header.Get("Notion-Version"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"object": "list",
			"results": [{
				"object": "page",
				"id": "page-1",
				"properties": {"Title": {"type": "title", "title": [{"plain_text": "Hello"}]}}
			}],
			"next_cursor": "cursor-2",
			"has_more": true
		}`)
	}))
	defer srv.Close()

	filter := And(SelectEquals("Status", "Published"), SelectEquals("Category", "AWS"))
	resp, err := newTestClient(srv, 1).QueryDatabase(context.Background(), QueryRequest{
		DatabaseID:  "db-1",
		Filter:      &filter,
		Sorts:       []Sort{{Property: "Date", Direction: Descending}},
		PageSize:    10,
		StartCursor: "cursor-1",
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	assert.Equal(t, "page-1", resp.Results[0].ID)
	assert.Contains(t, resp.Results[0].Properties, "Title")
	assert.True(t, resp.HasMore)
	require.NotNil(t, resp.NextCursor)
	assert.Equal(t, "cursor-2", *resp.NextCursor)

	assert.Equal(t, float64(10), gotBody["page_size"])
	assert.Equal(t, "cursor-1", gotBody["start_cursor"])
	and := gotBody["filter"].(map[string]any)["and"].([]any)
	assert.Len(t, and, 2)
}

func TestListBlockChildren_DecodesPayloadByType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/blocks/page-1/children", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("page_size"))
		assert.Equal(t, "", r.URL.Query().Get("start_cursor"))

		_, _ = io.WriteString(w, `{
			"object": "list",
			"results": [{
				"object": "block",
				"id": "b-1",
				"type": "code",
				"has_children": false,
				"archived": false,
				"code": {"rich_text": [{"plain_text": "x"}], "caption": [], "language": "python"}
			}],
			"next_cursor": null,
			"has_more": false
		}`)
	}))
	defer srv.Close()

	resp, err := newTestClient(srv, 1).ListBlockChildren(context.Background(), ListBlocksRequest{
		BlockID:  "page-1",
		PageSize: MaxPageSize,
	})
	require.NoError(t, err)

	require.Len(t, resp.Results, 1)
	block := resp.Results[0]
	assert.Equal(t, "code", block.Type)
	assert.JSONEq(t, `{"rich_text": [{"plain_text": "x"}], "caption": [], "language": "python"}`, string(block.Payload))
	assert.False(t, resp.HasMore)
	assert.Nil(t, resp.NextCursor)
}

func TestCall_DecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"object":"error","status":404,"code":"object_not_found","message":"Could not find database"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 3).QueryDatabase(context.Background(), QueryRequest{DatabaseID: "missing"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "object_not_found", apiErr.Code)
	assert.Equal(t, "Could not find database", apiErr.Message)
}

func TestCall_UndecodableErrorUsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, "slow down")
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 1).ListBlockChildren(context.Background(), ListBlocksRequest{BlockID: "b"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "rate_limited", apiErr.Code)
}

func TestCall_RetriesOnlyRetryableErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"object":"error","status":503,"code":"service_unavailable","message":"busy"}`)
			return
		}
		_, _ = io.WriteString(w, `{"object":"list","results":[],"next_cursor":null,"has_more":false}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 3).ListBlockChildren(context.Background(), ListBlocksRequest{BlockID: "b"})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCall_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"object":"error","status":400,"code":"validation_error","message":"bad filter"}`)
	}))
	defer srv.Close()

	_, err := newTestClient(srv, 3).QueryDatabase(context.Background(), QueryRequest{DatabaseID: "db"})
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestBlockMarshalJSON_RoundTripsPayload(t *testing.T) {
	in := Block{ID: "b-1", Type: "divider", Payload: json.RawMessage(`{}`)}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Block
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "divider", out.Type)
	assert.JSONEq(t, `{}`, string(out.Payload))
}
