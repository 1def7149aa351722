package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken(""))
	_, err := client.User(context.Background(), "ghost")
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Contains(t, err.Error(), `"ghost" not found`)
}

func TestUserRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken(""))
	_, err := client.User(context.Background(), "busy")
	require.Error(t, err)
	assert.Equal(t, KindRateLimited, KindOf(err))
}

func TestUserTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken(""), WithTimeout(20*time.Millisecond))
	_, err := client.User(context.Background(), "slow")
	require.Error(t, err)
	assert.Equal(t, KindTimeout, KindOf(err))
}

func TestUserConnectionError(t *testing.T) {
	// Nothing listens on this port.
	client := NewClient(WithBaseURL("http://127.0.0.1:1"), WithToken(""))
	_, err := client.User(context.Background(), "nobody")
	require.Error(t, err)
	assert.Equal(t, KindConnection, KindOf(err))
}

func TestUserDecodesProfile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"login": "octocat",
			"name": "The Octocat",
			"public_repos": 8,
			"followers": 3000,
			"created_at": "2011-01-25T18:44:36Z"
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken(""))
	user, err := client.User(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, 8, user.PublicRepos)
	assert.Equal(t, 2011, user.CreatedAt.Year())
}

func TestReposRequestShape(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name": "hello", "stargazers_count": 4}]`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken(""))
	repos, err := client.Repos(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello", repos[0].Name)
	assert.Equal(t, 4, repos[0].Stars)
}

func TestTokenHeaderSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sekrit", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithToken("sekrit"))
	_, err := client.User(context.Background(), "anyone")
	require.NoError(t, err)
}
