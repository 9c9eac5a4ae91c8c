package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRepo struct {
	CreateAdminFunc           func(ctx context.Context, admin *Admin) error
	GetAdminByCredentialsFunc func(ctx context.Context, username, password string) (Admin, error)
}

func (m *mockRepo) CreateAdmin(ctx context.Context, admin *Admin) error {
	return m.CreateAdminFunc(ctx, admin)
}

func (m *mockRepo) GetAdminByCredentials(ctx context.Context, username, password string) (Admin, error) {
	if m.GetAdminByCredentialsFunc != nil {
		return m.GetAdminByCredentialsFunc(ctx, username, password)
	}
	return Admin{}, NewAdminNotFoundError(username)
}

var testSuper = SuperAdminConfig{Username: "admin2k26", Password: "admin@2k26"}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("super admin pair resolves to full access", func(t *testing.T) {
		role, err := Authenticate(ctx, "admin2k26", "admin@2k26", &mockRepo{}, testSuper)
		require.NoError(t, err)
		assert.True(t, role.IsAll())
		assert.Equal(t, "ALL", role.String())
	})

	t.Run("super admin with wrong password falls through and is rejected", func(t *testing.T) {
		_, err := Authenticate(ctx, "admin2k26", "nope", &mockRepo{}, testSuper)

		var adminErr *Error
		require.ErrorAs(t, err, &adminErr)
		assert.Equal(t, REASON_INVALID_CREDENTIALS, adminErr.Reason)
	})

	t.Run("handler login resolves slug to the catalog event", func(t *testing.T) {
		role, err := Authenticate(ctx, "efootball@2026", "efootball@2026", &mockRepo{}, testSuper)
		require.NoError(t, err)
		assert.False(t, role.IsAll())
		assert.Equal(t, "E-Football (PES)", role.String())
	})

	t.Run("handler login folds catalog names", func(t *testing.T) {
		role, err := Authenticate(ctx, "webdesign@2026", "webdesign@2026", &mockRepo{}, testSuper)
		require.NoError(t, err)
		assert.Equal(t, "Web Design", role.String())
	})

	t.Run("unknown slug passes through literally", func(t *testing.T) {
		role, err := Authenticate(ctx, "quantumchess@2026", "quantumchess@2026", &mockRepo{}, testSuper)
		require.NoError(t, err)
		assert.Equal(t, "quantumchess", role.String())
	})

	t.Run("handler login requires password to equal username", func(t *testing.T) {
		_, err := Authenticate(ctx, "efootball@2026", "something-else", &mockRepo{}, testSuper)

		var adminErr *Error
		require.ErrorAs(t, err, &adminErr)
		assert.Equal(t, REASON_INVALID_CREDENTIALS, adminErr.Reason)
	})

	t.Run("stored admin resolves to full access", func(t *testing.T) {
		repo := &mockRepo{
			GetAdminByCredentialsFunc: func(ctx context.Context, username, password string) (Admin, error) {
				assert.Equal(t, "coordinator", username)
				assert.Equal(t, "hunter2", password)
				return Admin{Username: "coordinator"}, nil
			},
		}

		role, err := Authenticate(ctx, "coordinator", "hunter2", repo, testSuper)
		require.NoError(t, err)
		assert.True(t, role.IsAll())
	})

	t.Run("unknown stored admin is rejected as invalid credentials", func(t *testing.T) {
		_, err := Authenticate(ctx, "nobody", "nothing", &mockRepo{}, testSuper)

		var adminErr *Error
		require.ErrorAs(t, err, &adminErr)
		assert.Equal(t, REASON_INVALID_CREDENTIALS, adminErr.Reason)
	})

	t.Run("storage failure is not masked as invalid credentials", func(t *testing.T) {
		repo := &mockRepo{
			GetAdminByCredentialsFunc: func(ctx context.Context, username, password string) (Admin, error) {
				return Admin{}, NewFailedToFetchError("fetching admin", errors.New("connection reset"))
			},
		}

		_, err := Authenticate(ctx, "coordinator", "hunter2", repo, testSuper)

		var adminErr *Error
		require.ErrorAs(t, err, &adminErr)
		assert.Equal(t, REASON_FAILED_TO_FETCH, adminErr.Reason)
	})
}

func TestParseRole(t *testing.T) {
	assert.True(t, ParseRole("").IsAll())
	assert.True(t, ParseRole("ALL").IsAll())

	scoped := ParseRole("Free Fire")
	assert.False(t, scoped.IsAll())
	assert.Equal(t, "Free Fire", scoped.EventFilter())
	assert.Equal(t, "", SuperAdminRole().EventFilter())
}
