package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandler() http.Handler {
	return New(Config{Addr: ":0"}).Handler()
}

func TestHandleParseSuccess(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(`<a> ::= "b" | <c>`))
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	expected := `{"grammar":{"rules":[{"name":"a","alternation":[[{"literal":"b"}],[{"ref":"c"}]]}]}}`
	require.JSONEq(t, expected, rec.Body.String())
}

func TestHandleParseFailure(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader("<ab>::="))
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Error struct {
			Message  string `json:"message"`
			Expected string `json:"expected"`
			Line     int    `json:"line"`
			Column   int    `json:"column"`
			Offset   int    `json:"offset"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "term", body.Error.Expected)
	assert.Equal(t, 1, body.Error.Line)
	assert.Equal(t, 8, body.Error.Column)
	assert.Equal(t, 7, body.Error.Offset)
	assert.Contains(t, body.Error.Message, "expected term")
}

func TestHandleParseEmptyBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(""))
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	// An empty document is a parse failure, not a transport error.
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestHandleParseMethodNotAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/parse", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
}

func TestHandleParseBodyTooLarge(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(strings.Repeat("x", maxGrammarBytes+1)))
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHandleStaticIndex(t *testing.T) {
	for _, path := range []string{"/", "/index.html"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		testHandler().ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code, path)
		require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"), path)
		require.Contains(t, rec.Body.String(), "BNF Grammar Parser", path)
	}
}

func TestHandleStaticExampleGrammar(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/example.bnf", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))

	// The shipped example must itself parse.
	parseReq := httptest.NewRequest(http.MethodPost, "/api/parse", rec.Body)
	parseRec := httptest.NewRecorder()
	testHandler().ServeHTTP(parseRec, parseReq)
	require.Equal(t, http.StatusOK, parseRec.Code)
}

func TestHandleStaticNotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/no-such-file.txt", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	testHandler().ServeHTTP(rec, req)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}
