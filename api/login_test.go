package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/spirit-symposium/event-registration/admin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	creds := func(username, password string) map[string]any {
		return map[string]any{"username": username, "password": password}
	}

	t.Run("super admin gets an ALL token", func(t *testing.T) {
		a := testAPI(&mockDB{})

		rec := postJSON(t, a.Routes(), "/api/admin/login", creds("admin2k26", "admin@2k26"))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "ALL", resp.Role)

		claims, err := a.tokens.Validate(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "ALL", claims.Role)
	})

	t.Run("handler login resolves the event role", func(t *testing.T) {
		a := testAPI(&mockDB{})

		rec := postJSON(t, a.Routes(), "/api/admin/login", creds("efootball@2026", "efootball@2026"))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "E-Football (PES)", resp.Role)
	})

	t.Run("bad credentials are a 401 with the legacy message", func(t *testing.T) {
		a := testAPI(&mockDB{})

		rec := postJSON(t, a.Routes(), "/api/admin/login", creds("nobody", "wrong"))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid credentials")
	})

	t.Run("stored admin logs in with full access", func(t *testing.T) {
		db := &mockDB{
			GetAdminByCredentialsFunc: func(ctx context.Context, username, password string) (admin.Admin, error) {
				return admin.Admin{Username: username}, nil
			},
		}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/admin/login", creds("coordinator", "hunter2"))

		require.Equal(t, http.StatusOK, rec.Code)

		var resp loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "ALL", resp.Role)
	})

	t.Run("missing password is a 400", func(t *testing.T) {
		a := testAPI(&mockDB{})

		rec := postJSON(t, a.Routes(), "/api/admin/login", map[string]any{"username": "admin2k26"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminRegister(t *testing.T) {
	body := map[string]any{
		"username": "coordinator",
		"email":    "coord@example.com",
		"password": "hunter22",
	}

	t.Run("creates the admin", func(t *testing.T) {
		var created *admin.Admin
		db := &mockDB{
			CreateAdminFunc: func(ctx context.Context, a *admin.Admin) error {
				created = a
				return nil
			},
		}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/admin/register", body)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, created)
		assert.Equal(t, "coordinator", created.Username)
	})

	t.Run("duplicate username is a 400 with the legacy message", func(t *testing.T) {
		db := &mockDB{
			CreateAdminFunc: func(ctx context.Context, a *admin.Admin) error {
				return admin.NewUsernameAlreadyExistsError(a.Username, nil)
			},
		}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/admin/register", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Username already exists")
	})
}
