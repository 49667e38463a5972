package github

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillswap-hub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func requireAPIError(t *testing.T, err error) *domain.GitHubAPIError {
	t.Helper()
	var apiErr *domain.GitHubAPIError
	require.True(t, errors.As(err, &apiErr), "expected GitHubAPIError, got %T", err)
	return apiErr
}

func TestClient_GetUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat", r.URL.Path)
		assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
		assert.Equal(t, "SkillSwap-Hub", r.Header.Get("User-Agent"))
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","name":"The Octocat","public_repos":8,"followers":100,"created_at":"2011-01-25T18:44:36Z","updated_at":"2024-01-01T00:00:00Z"}`))
	})

	user, err := client.GetUser(context.Background(), "octocat")
	require.NoError(t, err)
	assert.Equal(t, "octocat", user.Login)
	assert.Equal(t, "The Octocat", user.Name)
	assert.Equal(t, 8, user.PublicRepos)
	assert.Equal(t, 100, user.Followers)
	assert.Equal(t, time.Date(2011, 1, 25, 18, 44, 36, 0, time.UTC), user.CreatedAt)
}

func TestClient_GetUser_StatusErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
	}{
		{"not found", http.StatusNotFound, "GitHub user not found"},
		{"rate limited", http.StatusForbidden, "GitHub API rate limit exceeded. Please try again later."},
		{"server error", http.StatusInternalServerError, "GitHub API error: 500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})

			user, err := client.GetUser(context.Background(), "octocat")
			assert.Nil(t, user)
			apiErr := requireAPIError(t, err)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.message, apiErr.Error())
		})
	}
}

func TestClient_ListRepositories(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		_, _ = w.Write([]byte(`[{"name":"hello-react","description":null,"language":"JavaScript","topics":["react","hooks"],"stargazers_count":3,"forks_count":1,"created_at":"2023-01-01T00:00:00Z","updated_at":"2024-05-01T00:00:00Z"}]`))
	})

	repos, err := client.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "hello-react", repos[0].Name)
	assert.Empty(t, repos[0].Description)
	assert.Equal(t, []string{"react", "hooks"}, repos[0].Topics)
	assert.Equal(t, 3, repos[0].StargazersCount)
	assert.Equal(t, 1, repos[0].ForksCount)
}

func TestClient_ListRepositories_StatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.ListRepositories(context.Background(), "octocat")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "Failed to fetch repositories: 502", apiErr.Error())
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	t.Cleanup(srv.Close)
	client := NewClient(WithBaseURL(srv.URL), WithTimeout(20*time.Millisecond))

	_, err := client.GetUser(context.Background(), "octocat")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "GitHub API request timed out", apiErr.Error())
}

func TestClient_Cancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetUser(ctx, "octocat")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "GitHub analysis was cancelled", apiErr.Error())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClient_MalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetUser(context.Background(), "octocat")
	apiErr := requireAPIError(t, err)
	assert.Equal(t, "GitHub API returned an unreadable response", apiErr.Error())
}
