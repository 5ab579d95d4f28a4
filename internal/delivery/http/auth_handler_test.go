package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dinoverse/internal/domain"
)

type stubUserRepo struct {
	users map[uuid.UUID]*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error { return nil }
func (s *stubUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, pgx.ErrNoRows
}
func (s *stubUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func TestMeReturnsAuthenticatedUser(t *testing.T) {
	user := &domain.User{
		ID:        uuid.New(),
		Username:  "dino",
		Role:      domain.RoleAdmin,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	h := NewAuthHandler(&stubUserRepo{users: map[uuid.UUID]*domain.User{user.ID: user}})

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")
	c.Set("user_id", user.ID)

	require.NoError(t, h.Me(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data UserOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, user.ID.String(), resp.Data.ID)
	assert.Equal(t, "dino", resp.Data.Username)
	assert.Equal(t, domain.RoleAdmin, resp.Data.Role)
}

func TestMeWithoutAuthContextReturns401(t *testing.T) {
	h := NewAuthHandler(&stubUserRepo{})

	c, rec := newTestContext(t, http.MethodGet, "/api/auth/me", "")
	require.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
