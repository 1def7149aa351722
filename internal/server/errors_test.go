package server

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/github"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/portfolio"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"github not found", &github.Error{Kind: github.KindNotFound}, http.StatusNotFound},
		{"github rate limited", &github.Error{Kind: github.KindRateLimited}, http.StatusTooManyRequests},
		{"github timeout", &github.Error{Kind: github.KindTimeout}, http.StatusGatewayTimeout},
		{"github connection", &github.Error{Kind: github.KindConnection}, http.StatusBadGateway},
		{"github no repos", &github.Error{Kind: github.KindNoRepos}, http.StatusUnprocessableEntity},
		{"github unknown kind", &github.Error{Kind: github.KindUnknown}, http.StatusInternalServerError},
		{"fetch error", &fetch.Error{URL: "https://example.com", Message: "fetch failed"}, http.StatusBadGateway},
		{"unknown category", &matching.ErrUnknownCategory{Category: "Nope"}, http.StatusBadRequest},
		{"no repositories", portfolio.ErrNoRepositories, http.StatusUnprocessableEntity},
		{"plain error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestHTTPStatus_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("analyzing profile: %w", &github.Error{Kind: github.KindNotFound})
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))
}
