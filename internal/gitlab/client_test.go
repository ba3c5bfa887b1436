package gitlab

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/review-relay/internal/core"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("glpat-test", server.URL, server.Client(), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return client
}

func TestAPIURL(t *testing.T) {
	assert.Equal(t, "https://gitlab.example.com/api/v4", APIURL("https://gitlab.example.com"))
	assert.Equal(t, "https://gitlab.example.com/api/v4", APIURL("https://gitlab.example.com/"))
	assert.Equal(t, "https://gitlab.example.com/api/v4", APIURL("https://gitlab.example.com/api/v4"))
	assert.Equal(t, "https://gitlab.example.com/api/v4", APIURL("https://gitlab.example.com/api/v4/"))
}

func TestGetCodeDiff(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "glpat-test", r.Header.Get("Private-Token"))
		assert.Equal(t, "/api/v4/projects/group%2Fsub%2Fsvc/repository/compare", r.URL.EscapedPath())
		assert.Equal(t, "main", r.URL.Query().Get("from"))
		assert.Equal(t, "feature", r.URL.Query().Get("to"))
		assert.Equal(t, "true", r.URL.Query().Get("unidiff"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"diffs": [
			{"old_path": "a.go", "new_path": "a.go", "diff": "@@ -1 +1 @@\n-a\n+b"},
			{"old_path": "b.go", "new_path": "b.go", "diff": "@@ -0,0 +1 @@\n+b", "new_file": true},
			{"old_path": "c.go", "new_path": "c.go", "diff": "", "deleted_file": true},
			{"old_path": "d.go", "new_path": "e.go", "diff": "", "renamed_file": true}
		]}`))
	}))

	diffs, err := client.GetCodeDiff(context.Background(), "group/sub", "svc", "main", "feature")
	require.NoError(t, err)
	assert.Equal(t, []core.CodeDiff{
		{Filename: "a.go", Patch: "@@ -1 +1 @@\n-a\n+b", Status: core.DiffModified},
		{Filename: "b.go", Patch: "@@ -0,0 +1 @@\n+b", Status: core.DiffAdded},
		{Filename: "c.go", Patch: "", Status: core.DiffRemoved},
		{Filename: "e.go", Patch: "", Status: core.DiffRenamed},
	}, diffs)
}

func TestGetCodeDiff_NoDiffs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"commits": [], "diffs": []}`))
	}))

	diffs, err := client.GetCodeDiff(context.Background(), "group", "svc", "main", "main")
	require.NoError(t, err)
	assert.Empty(t, diffs)
}

func TestGetFileContent_SkipsMissingFiles(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		switch r.URL.EscapedPath() {
		case "/api/v4/projects/group%2Fsvc/repository/files/src%2Fmain.go/raw":
			_, _ = w.Write([]byte("package main\n"))
		default:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "404 File Not Found"}`))
		}
	}))

	files, err := client.GetFileContent(context.Background(), "group", "svc", []string{"src/main.go", "src/new.go"}, "main")
	require.NoError(t, err)
	assert.Equal(t, []core.FileContent{{Filename: "src/main.go", Content: "package main\n"}}, files)
}

func TestPostComment(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v4/projects/group%2Fsvc/merge_requests/3/notes", r.URL.EscapedPath())
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 1, "body": "LGTM"}`))
	}))

	err := client.PostComment(context.Background(), core.Comment{Owner: "group", Repo: "svc", PullNumber: 3, Body: "LGTM"})
	require.NoError(t, err)
	assert.Equal(t, "LGTM", got["body"])
}

func TestPostComment_Failure(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "403 Forbidden"}`))
	}))

	err := client.PostComment(context.Background(), core.Comment{Owner: "group", Repo: "svc", PullNumber: 3, Body: "LGTM"})
	assert.Error(t, err)
}

func TestVerifyToken(t *testing.T) {
	assert.True(t, VerifyToken("secret", "secret"))
	assert.False(t, VerifyToken("secret", "Secret"))
	assert.False(t, VerifyToken("", ""))
	assert.False(t, VerifyToken("secret", ""))
	assert.False(t, VerifyToken("", "secret"))
}
