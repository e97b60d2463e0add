package services

import (
	"context"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/models"
	"foodexpress-storefront/internal/session"
	"foodexpress-storefront/pkg/messaging"
)

type AuthService struct {
	client    *backend.Client
	store     session.Store
	publisher *messaging.Publisher
}

func NewAuthService(client *backend.Client, store session.Store, publisher *messaging.Publisher) *AuthService {
	return &AuthService{
		client:    client,
		store:     store,
		publisher: publisher,
	}
}

// Login exchanges credentials for a token and writes the issued identity into
// the session store. This is the session's single write point; every view
// reads the store afresh, so no client-side refresh is needed after login.
// On failure nothing is persisted.
func (s *AuthService) Login(ctx context.Context, sessionID string, sess *session.Session, email, password string) (*models.User, error) {
	resp, err := s.client.Login(ctx, sess.Identity(), models.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}

	sess.Token = resp.AccessToken
	sess.UserID = resp.User.ID
	sess.UserEmail = resp.User.Email
	if err := s.store.Save(ctx, sessionID, sess); err != nil {
		return nil, err
	}

	s.publisher.Publish(resp.User.ID, messaging.LoginEvent{
		Type:   "login",
		UserID: resp.User.ID,
		Email:  resp.User.Email,
	})

	return &resp.User, nil
}
