// Package testutil holds request builders and response assertions shared by
// the handler and router tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GeneratePath is the route of the code generation endpoint.
const GeneratePath = "/generate_curp"

// PostGenerate builds a JSON POST to the generation endpoint.
func PostGenerate(t *testing.T, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err, "encode generate body")
	return RawJSON(t, http.MethodPost, GeneratePath, string(raw))
}

// RawJSON builds a request whose body is sent exactly as given, for
// malformed payloads the encoder would never produce.
func RawJSON(t *testing.T, method, path, body string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// Get builds a bodiless GET request.
func Get(t *testing.T, path string) *http.Request {
	t.Helper()
	return httptest.NewRequest(http.MethodGet, path, nil)
}

// Serve runs req through h and returns the recorded response.
func Serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// DecodeJSON decodes the response body into T without consuming it, so
// several assertions can inspect the same recorder.
func DecodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&out), "decode response body")
	return out
}

// AssertField checks a top-level string field of a JSON object response.
func AssertField(t *testing.T, rr *httptest.ResponseRecorder, key, want string) {
	t.Helper()
	got := DecodeJSON[map[string]any](t, rr)
	assert.Equal(t, want, got[key], "field %q", key)
}

// AssertCode checks for a 200 whose curp field equals want. Folded legacy
// errors are asserted the same way with their fixed text.
func AssertCode(t *testing.T, rr *httptest.ResponseRecorder, want string) {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, "status, body %s", rr.Body.String())
	AssertField(t, rr, "curp", want)
}

// AssertStem checks for a 200 carrying a full-length code that starts with
// stem, for codes whose random tail is not controlled by the test.
func AssertStem(t *testing.T, rr *httptest.ResponseRecorder, stem string, length int) {
	t.Helper()
	require.Equal(t, http.StatusOK, rr.Code, "status, body %s", rr.Body.String())
	code, _ := DecodeJSON[map[string]any](t, rr)["curp"].(string)
	assert.Equal(t, length, utf8.RuneCountInString(code), "code %q", code)
	assert.True(t, strings.HasPrefix(code, stem), "code %q lacks stem %q", code, stem)
}

// AssertError checks the status and the error field of the error envelope.
func AssertError(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code, "status, body %s", rr.Body.String())
	AssertField(t, rr, "error", code)
}
