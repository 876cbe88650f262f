package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicmunky/chronic/internal/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		Mode:               "dev",
		Context:            "future",
		Timezone:           "UTC",
		Guess:              true,
		AmbiguousTimeRange: 6,
		EndianPrecedence:   "middle",
		YearBias:           50,
	}
}

func postParse(t *testing.T, srv *Server, body ParseRequest) (int, ParseResponse) {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/parse", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	var resp ParseResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func TestParseEndpoint(t *testing.T) {
	srv := New(testProfile(), nil)

	code, resp := postParse(t, srv, ParseRequest{
		Text: "tomorrow",
		Now:  "2006-08-16T14:00:00Z",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Matched)
	require.NotNil(t, resp.Span)
	assert.Equal(t, "2006-08-17T00:00:00Z", resp.Span.Start.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, int64(86400), resp.Span.WidthSeconds)
	require.NotNil(t, resp.Instant)
	assert.Equal(t, "2006-08-17T12:00:00Z", resp.Instant.Format("2006-01-02T15:04:05Z07:00"))
}

func TestParseEndpoint_NoMatch(t *testing.T) {
	srv := New(testProfile(), nil)

	code, resp := postParse(t, srv, ParseRequest{Text: "nothing to see here"})
	require.Equal(t, http.StatusOK, code)
	assert.False(t, resp.Matched)
	assert.Nil(t, resp.Span)
	assert.Nil(t, resp.Instant)
}

func TestParseEndpoint_SpanOnly(t *testing.T) {
	srv := New(testProfile(), nil)
	guess := false

	code, resp := postParse(t, srv, ParseRequest{
		Text:  "tomorrow",
		Now:   "2006-08-16T14:00:00Z",
		Guess: &guess,
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Matched)
	require.NotNil(t, resp.Span)
	assert.Nil(t, resp.Instant)
}

func TestParseEndpoint_EndianOverride(t *testing.T) {
	srv := New(testProfile(), nil)

	code, resp := postParse(t, srv, ParseRequest{
		Text:             "03/04/2011",
		Now:              "2006-08-16T14:00:00Z",
		EndianPrecedence: "little",
	})
	require.Equal(t, http.StatusOK, code)
	require.True(t, resp.Matched)
	assert.Equal(t, "2011-04-03", resp.Span.Start.Format("2006-01-02"))
}

func TestParseEndpoint_BadRequests(t *testing.T) {
	srv := New(testProfile(), nil)

	code, _ := postParse(t, srv, ParseRequest{})
	assert.Equal(t, http.StatusBadRequest, code, "missing text")

	code, _ = postParse(t, srv, ParseRequest{Text: "tomorrow", Now: "16 aug"})
	assert.Equal(t, http.StatusBadRequest, code, "bad now format")

	code, _ = postParse(t, srv, ParseRequest{Text: "tomorrow", Context: "sideways"})
	assert.Equal(t, http.StatusBadRequest, code, "invalid context")
}

func TestHealthz(t *testing.T) {
	srv := New(testProfile(), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
