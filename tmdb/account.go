package tmdb

import (
	"context"
	"net/http"
)

// AuthService covers the authentication/* endpoints
type AuthService struct {
	c *Client
}

// NewToken requests a token the user must approve before NewSession
func (s *AuthService) NewToken(ctx context.Context) (*TokenAuthorisation, error) {
	var t TokenAuthorisation
	if err := s.c.get(ctx, newRequest("authentication/token/new"), &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// NewSession exchanges an approved token for a session. A token that was not
// granted fails with AuthorizationFailure without contacting the server.
func (s *AuthService) NewSession(ctx context.Context, token *TokenAuthorisation) (*TokenSession, error) {
	if err := token.Validate(); err != nil {
		return nil, err
	}

	var ts TokenSession
	r := newRequest("authentication/session/new").set(paramToken, token.RequestToken)
	if err := s.c.get(ctx, r, &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// NewGuestSession opens a guest session
func (s *AuthService) NewGuestSession(ctx context.Context) (*TokenSession, error) {
	var ts TokenSession
	if err := s.c.get(ctx, newRequest("authentication/guest_session/new"), &ts); err != nil {
		return nil, err
	}
	return &ts, nil
}

// AccountService covers the account/* endpoints. Every call needs a session.
type AccountService struct {
	c *Client
}

func accountRequest(sessionID string, accountID int, resource string) *request {
	return newRequest("account").pathInt(accountID).path(resource).set(paramSession, sessionID)
}

// Get retrieves the account behind a session
func (s *AccountService) Get(ctx context.Context, sessionID string) (*Account, error) {
	var a Account
	if err := s.c.get(ctx, newRequest("account").set(paramSession, sessionID), &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FavoriteMovies lists the movies marked as favorite
func (s *AccountService) FavoriteMovies(ctx context.Context, sessionID string, accountID int, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, accountRequest(sessionID, accountID, "favorite_movies").withOptions(opts))
}

// ChangeFavoriteStatus marks or unmarks a movie as favorite
func (s *AccountService) ChangeFavoriteStatus(ctx context.Context, sessionID string, accountID, movieID int, favorite bool) (*StatusCode, error) {
	return s.post(ctx, accountRequest(sessionID, accountID, "favorite"), map[string]any{
		"movie_id": movieID,
		"favorite": favorite,
	})
}

// RatedMovies lists the movies the account rated
func (s *AccountService) RatedMovies(ctx context.Context, sessionID string, accountID int, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, accountRequest(sessionID, accountID, "rated_movies").withOptions(opts))
}

// WatchList lists the movies on the watch list
func (s *AccountService) WatchList(ctx context.Context, sessionID string, accountID int, opts Options) (*ResultsList[Movie], error) {
	return getPage[Movie](ctx, s.c, accountRequest(sessionID, accountID, "movie_watchlist").withOptions(opts))
}

// AddToWatchList adds a movie to the watch list
func (s *AccountService) AddToWatchList(ctx context.Context, sessionID string, accountID, movieID int) (*StatusCode, error) {
	return s.modifyWatchList(ctx, sessionID, accountID, movieID, true)
}

// RemoveFromWatchList removes a movie from the watch list
func (s *AccountService) RemoveFromWatchList(ctx context.Context, sessionID string, accountID, movieID int) (*StatusCode, error) {
	return s.modifyWatchList(ctx, sessionID, accountID, movieID, false)
}

func (s *AccountService) modifyWatchList(ctx context.Context, sessionID string, accountID, movieID int, add bool) (*StatusCode, error) {
	return s.post(ctx, accountRequest(sessionID, accountID, "movie_watchlist"), map[string]any{
		"movie_id":        movieID,
		"movie_watchlist": add,
	})
}

// Lists lists the lists created by the account
func (s *AccountService) Lists(ctx context.Context, sessionID string, accountID int, opts Options) (*ResultsList[MovieList], error) {
	return getPage[MovieList](ctx, s.c, accountRequest(sessionID, accountID, "lists").withOptions(opts))
}

func (s *AccountService) post(ctx context.Context, r *request, fields map[string]any) (*StatusCode, error) {
	var sc StatusCode
	if err := s.c.send(ctx, http.MethodPost, r, fields, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
