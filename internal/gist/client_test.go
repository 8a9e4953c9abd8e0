package gist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(handler http.Handler) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient()
	client.BaseURL = server.URL
	return client, server
}

func TestCreateReturnsID(t *testing.T) {
	var gotBody map[string]any
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/gists", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"gist-1"}`))
	}))
	defer server.Close()

	id, err := client.Create(context.Background(), "tok", `{"folders":[]}`)
	require.NoError(t, err)
	assert.Equal(t, "gist-1", id)

	assert.Equal(t, false, gotBody["public"])
	files := gotBody["files"].(map[string]any)
	file := files[BlobFileName].(map[string]any)
	assert.Equal(t, `{"folders":[]}`, file["content"])
}

func TestCreateMissingIDIsMalformed(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := client.Create(context.Background(), "tok", "{}")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestUpdateSendsPatch(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/gists/gist-1", r.URL.Path)
		w.Write([]byte(`{"id":"gist-1"}`))
	}))
	defer server.Close()

	err := client.Update(context.Background(), "tok", "gist-1", `{"folders":[]}`)
	assert.NoError(t, err)
}

func TestReadReturnsContent(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"id":"gist-1","files":{"bookmarks.json":{"content":"{\"folders\":[]}"}}}`))
	}))
	defer server.Close()

	content, err := client.Read(context.Background(), "tok", "gist-1")
	require.NoError(t, err)
	assert.Equal(t, `{"folders":[]}`, content)
}

func TestReadMissingFileIsMalformed(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"gist-1","files":{"notes.txt":{"content":"hi"}}}`))
	}))
	defer server.Close()

	_, err := client.Read(context.Background(), "tok", "gist-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestReadTruncatedFileIsMalformed(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"gist-1","files":{"bookmarks.json":{"content":"partial","truncated":true}}}`))
	}))
	defer server.Close()

	_, err := client.Read(context.Background(), "tok", "gist-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestStatusClassification(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrUnauthorized},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusInternalServerError, ErrMalformedResponse},
		{http.StatusBadGateway, ErrMalformedResponse},
	}

	for _, tc := range cases {
		client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := client.Read(context.Background(), "tok", "gist-1")
		assert.ErrorIs(t, err, tc.want, "status %d", tc.status)
		server.Close()
	}
}

func TestGarbageBodyIsMalformed(t *testing.T) {
	client, server := testClient(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	_, err := client.Read(context.Background(), "tok", "gist-1")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}
