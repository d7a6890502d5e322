package tmdb

import (
	"context"
	"errors"
	"net/http"
)

// ListService covers the list/* endpoints
type ListService struct {
	c *Client
}

type listCreated struct {
	StatusCode
	ListID string `json:"list_id"`
}

func (l *listCreated) validate() error {
	if l.ListID == "" {
		return errors.New("missing list_id")
	}
	return nil
}

type itemStatus struct {
	ID          string `json:"id"`
	ItemPresent bool   `json:"item_present"`
}

// Get retrieves a list with its items
func (s *ListService) Get(ctx context.Context, listID string) (*ListDetail, error) {
	var l ListDetail
	if err := s.c.get(ctx, newRequest("list").path(listID), &l); err != nil {
		return nil, err
	}
	return &l, nil
}

// Create creates a list and returns its id. A valid session is required.
func (s *ListService) Create(ctx context.Context, sessionID, name, description string) (string, error) {
	var created listCreated
	r := newRequest("list").set(paramSession, sessionID)
	fields := map[string]any{"name": name, "description": description}
	if err := s.c.send(ctx, http.MethodPost, r, fields, &created); err != nil {
		return "", err
	}
	return created.ListID, nil
}

// Contains reports whether movieID is on the list
func (s *ListService) Contains(ctx context.Context, listID string, movieID int) (bool, error) {
	var st itemStatus
	r := newRequest("list").path(listID).path("item_status").setInt(paramMovieID, movieID)
	if err := s.c.get(ctx, r, &st); err != nil {
		return false, err
	}
	return st.ItemPresent, nil
}

// AddMovie adds a movie to a list owned by the session user
func (s *ListService) AddMovie(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error) {
	return s.modify(ctx, sessionID, listID, movieID, "add_item")
}

// RemoveMovie removes a movie from a list owned by the session user
func (s *ListService) RemoveMovie(ctx context.Context, sessionID, listID string, movieID int) (*StatusCode, error) {
	return s.modify(ctx, sessionID, listID, movieID, "remove_item")
}

func (s *ListService) modify(ctx context.Context, sessionID, listID string, movieID int, operation string) (*StatusCode, error) {
	var sc StatusCode
	r := newRequest("list").path(listID).path(operation).set(paramSession, sessionID)
	if err := s.c.send(ctx, http.MethodPost, r, map[string]any{"media_id": movieID}, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Delete deletes a list owned by the session user
func (s *ListService) Delete(ctx context.Context, sessionID, listID string) (*StatusCode, error) {
	var sc StatusCode
	r := newRequest("list").path(listID).set(paramSession, sessionID)
	if err := s.c.send(ctx, http.MethodDelete, r, nil, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
