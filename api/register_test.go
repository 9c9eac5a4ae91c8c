package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spirit-symposium/event-registration/email"
	"github.com/spirit-symposium/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(t *testing.T, handler http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"regType":    "Individual",
		"name":       "Aruna K",
		"college":    "Some Engineering College",
		"department": "CSE",
		"year":       "III",
		"gender":     "Female",
		"phone":      "9876543210",
		"email":      "aruna@example.com",
		"events":     []string{"Web Design"},
	}
}

func TestRegister(t *testing.T) {
	t.Run("fresh registration succeeds with a code", func(t *testing.T) {
		db := &mockDB{}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/register", validRegisterBody())

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success      bool                      `json:"success"`
			Registration registration.Registration `json:"registration"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "SP26-0001", resp.Registration.RegistrationID)
		assert.Equal(t, registration.PAYMENT_COMPLETED, resp.Registration.PaymentStatus)
	})

	t.Run("symposium duplicate returns the legacy message", func(t *testing.T) {
		db := &mockDB{
			GetRegistrationsByEmailFunc: func(ctx context.Context, email string) ([]registration.Registration, error) {
				return []registration.Registration{{Events: []string{"Photography"}}}, nil
			},
		}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/register", validRegisterBody())

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Email already registered for Symposium Events", resp.Error)
	})

	t.Run("duplicate online game names the game", func(t *testing.T) {
		db := &mockDB{
			GetRegistrationsByEmailFunc: func(ctx context.Context, email string) ([]registration.Registration, error) {
				return []registration.Registration{{Events: []string{"Free Fire"}}}, nil
			},
		}
		a := testAPI(db)

		body := validRegisterBody()
		body["events"] = []string{"Free Fire"}
		rec := postJSON(t, a.Routes(), "/api/register", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered for Free Fire")
	})

	t.Run("missing fields fail validation with field names", func(t *testing.T) {
		a := testAPI(&mockDB{})

		body := validRegisterBody()
		delete(body, "email")
		rec := postJSON(t, a.Routes(), "/api/register", body)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp struct {
			Error   string   `json:"error"`
			Details []string `json:"details"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Validation failed", resp.Error)
		assert.Contains(t, resp.Details, "Email")
	})

	t.Run("email and phone formats are not re-checked server-side", func(t *testing.T) {
		db := &mockDB{}
		a := testAPI(db)

		body := validRegisterBody()
		body["email"] = "not-an-email-address"
		body["phone"] = "ext. 42"
		rec := postJSON(t, a.Routes(), "/api/register", body)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			Success bool `json:"success"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
	})

	t.Run("more than three events is rejected", func(t *testing.T) {
		a := testAPI(&mockDB{})

		body := validRegisterBody()
		body["events"] = []string{"A", "B", "C", "D"}
		rec := postJSON(t, a.Routes(), "/api/register", body)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed json is a 400", func(t *testing.T) {
		a := testAPI(&mockDB{})

		req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader([]byte("{not json")))
		rec := httptest.NewRecorder()
		a.Routes().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		db := &mockDB{
			CreateRegistrationFunc: func(ctx context.Context, reg *registration.Registration) error {
				return registration.NewFailedToWriteError("inserting registration", errors.New("down"))
			},
		}
		a := testAPI(db)

		rec := postJSON(t, a.Routes(), "/api/register", validRegisterBody())
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("email failure does not fail the registration", func(t *testing.T) {
		a := testAPI(&mockDB{})
		a.emailSender = &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				return errors.New("smtp down")
			},
		}

		rec := postJSON(t, a.Routes(), "/api/register", validRegisterBody())
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("confirmation email carries the code", func(t *testing.T) {
		var sent []email.Email
		a := testAPI(&mockDB{})
		a.emailSender = &mockEmailSender{
			SendEmailFunc: func(ctx context.Context, e email.Email) error {
				sent = append(sent, e)
				return nil
			},
		}

		rec := postJSON(t, a.Routes(), "/api/register", validRegisterBody())
		require.Equal(t, http.StatusOK, rec.Code)

		require.Len(t, sent, 1)
		assert.Equal(t, []string{"aruna@example.com"}, sent[0].ToAddresses)
		assert.Contains(t, sent[0].Subject, "SP26-0001")
	})
}
