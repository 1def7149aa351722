package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/career-compass/internal/fetch"
	"github.com/jonathan/career-compass/internal/github"
	"github.com/jonathan/career-compass/internal/matching"
	"github.com/jonathan/career-compass/internal/portfolio"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
// GitHub provider errors map per their kind; everything the client could
// have fixed maps to 400-class codes, upstream failures to 502/504.
func HTTPStatus(err error) int {
	var ghErr *github.Error
	if errors.As(err, &ghErr) {
		switch ghErr.Kind {
		case github.KindNotFound:
			return http.StatusNotFound
		case github.KindRateLimited:
			return http.StatusTooManyRequests
		case github.KindTimeout:
			return http.StatusGatewayTimeout
		case github.KindConnection:
			return http.StatusBadGateway
		case github.KindNoRepos:
			return http.StatusUnprocessableEntity
		default:
			return http.StatusInternalServerError
		}
	}

	var fetchErr *fetch.Error
	if errors.As(err, &fetchErr) {
		return http.StatusBadGateway
	}

	var unknownCategory *matching.ErrUnknownCategory
	if errors.As(err, &unknownCategory) {
		return http.StatusBadRequest
	}

	if errors.Is(err, portfolio.ErrNoRepositories) {
		return http.StatusUnprocessableEntity
	}

	return http.StatusInternalServerError
}
