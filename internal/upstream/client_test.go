package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sikayet/console-api/internal/domain/model"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(ClientOptions{BaseURL: srv.URL})
}

func TestClient_AttachesBearerAndCacheHeaders(t *testing.T) {
	var gotAuth, gotCacheControl, gotPragma string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotCacheControl = r.Header.Get("Cache-Control")
		gotPragma = r.Header.Get("Pragma")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	ctx := WithToken(context.Background(), "tok-123")
	_, err := client.Guides().List(ctx)

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "no-cache, no-store", gotCacheControl)
	assert.Equal(t, "no-cache", gotPragma)
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	var sawAuth bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, sawAuth = r.Header["Authorization"]
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.Guides().List(context.Background())

	require.NoError(t, err)
	assert.False(t, sawAuth)
}

func TestClient_DecodesListResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/admin/guides", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"g1","title":"First"},{"id":"g2","title":"Second"}]`))
	})

	guides, err := client.Guides().List(context.Background())

	require.NoError(t, err)
	require.Len(t, guides, 2)
	assert.Equal(t, "g1", guides[0].ID)
	assert.Equal(t, "Second", guides[1].Title)
}

func TestClient_CreateSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id":"g9","title":"New guide"}`))
	})

	guide, err := client.Guides().Create(context.Background(), model.CreateGuideRequest{
		Title:   "New guide",
		Content: "Body",
	})

	require.NoError(t, err)
	assert.Equal(t, "g9", guide.ID)
}

func TestClient_DeleteIgnoresEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/admin/guides/g1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, client.Guides().Delete(context.Background(), "g1"))
}

func TestClient_ErrorMessageExtraction(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{
			name:    "message field",
			status:  http.StatusConflict,
			body:    `{"message":"Slug already in use"}`,
			message: "Slug already in use",
		},
		{
			name:    "error field fallback",
			status:  http.StatusBadRequest,
			body:    `{"error":"Title is required"}`,
			message: "Title is required",
		},
		{
			name:    "array messages joined",
			status:  http.StatusBadRequest,
			body:    `{"message":["Title is required","Content is required"]}`,
			message: "Title is required, Content is required",
		},
		{
			name:    "message wins over error",
			status:  http.StatusBadRequest,
			body:    `{"message":"primary","error":"secondary"}`,
			message: "primary",
		},
		{
			name:    "plain text body",
			status:  http.StatusBadGateway,
			body:    "Bad Gateway",
			message: "HTTP 502",
		},
		{
			name:    "empty body",
			status:  http.StatusInternalServerError,
			body:    "",
			message: "HTTP 500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Guides().List(context.Background())

			require.Error(t, err)
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestClient_ErrorKeepsParsedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Validation failed","fields":{"title":"required"}}`))
	})

	_, err := client.Guides().List(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	body, ok := apiErr.Body.(map[string]any)
	require.True(t, ok)
	assert.Contains(t, body, "fields")
}

func TestClient_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on
	client := NewClient(ClientOptions{BaseURL: srv.URL})

	_, err := client.Guides().List(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport failures are not API errors")
}

func TestClient_EscapesItemIDs(t *testing.T) {
	var gotPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = w.Write([]byte(`{"id":"a/b"}`))
	})

	_, err := client.Guides().Get(context.Background(), "a/b")

	require.NoError(t, err)
	assert.Equal(t, "/api/admin/guides/a%2Fb", gotPath)
}

func TestClient_ActionPostsUnderItemPath(t *testing.T) {
	var gotPath, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		_, _ = w.Write([]byte(`{"id":"f1","active":false}`))
	})

	faq, err := client.FAQs().SetStatus(context.Background(), "f1", false)

	require.NoError(t, err)
	assert.False(t, faq.Active)
	assert.Equal(t, "/api/admin/faqs/f1/status", gotPath)
	assert.JSONEq(t, `{"active":false}`, gotBody)
}
