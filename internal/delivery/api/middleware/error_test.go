package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"blog/internal/delivery/api/response"
	"blog/internal/delivery/api/validator"
	domainerrors "blog/internal/domain/errors"
	"blog/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_DomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", errors.Wrap(domainerrors.ErrBlogNotFound, "find blog"), http.StatusNotFound, "BLOG_NOT_FOUND"},
		{"forbidden", domainerrors.ErrBlogOwnershipViolation, http.StatusForbidden, "BLOG_OWNERSHIP_VIOLATION"},
		{"conflict", domainerrors.ErrEmailAlreadyRegistered, http.StatusConflict, "EMAIL_ALREADY_REGISTERED"},
		{"bad credentials", errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed"), http.StatusUnauthorized, "INVALID_CREDENTIALS"},
		{"database", domainerrors.NewDatabaseExecuteError(errors.New("conn reset"), "insert"), http.StatusInternalServerError, "DATABASE_EXECUTE_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := handleError(t, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, body.Error.Code)
		})
	}
}

func TestErrorMiddleware_UnauthorizedAdvertisesBearer(t *testing.T) {
	rec, _ := handleError(t, domainerrors.ErrRefreshTokenInvalid)

	assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
}

func TestErrorMiddleware_DetailsHiddenForServerErrors(t *testing.T) {
	_, body := handleError(t, domainerrors.ErrInternalError.WithDetails("pq: relation does not exist"))

	assert.Nil(t, body.Error.Details)
}

func TestErrorMiddleware_ValidationError(t *testing.T) {
	rec, body := handleError(t, &validator.ValidationError{Fields: []validator.FieldError{{Field: "email", Rule: "email"}}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.NotNil(t, body.Error.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body := handleError(t, echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"))

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Error.Code)
}

func TestErrorMiddleware_UnknownErrorIsGeneric500(t *testing.T) {
	rec, body := handleError(t, errors.New("secret internal detail"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Error.Code)
	assert.NotContains(t, rec.Body.String(), "secret internal detail")
}
