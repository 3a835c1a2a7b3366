package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	authdomain "github.com/tipaniya/hisaab/internal/auth/domain"
	farmerdomain "github.com/tipaniya/hisaab/internal/farmer/domain"
	invoicedomain "github.com/tipaniya/hisaab/internal/invoice/domain"
	paymentdomain "github.com/tipaniya/hisaab/internal/payment/domain"
)

func performWithError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.GET("/boom", func(c *gin.Context) {
		AbortWithError(c, err)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"bad credentials", authdomain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired session", authdomain.ErrSessionExpired, http.StatusUnauthorized},
		{"forbidden", ErrForbidden, http.StatusForbidden},
		{"duplicate user", authdomain.ErrUserExists, http.StatusConflict},
		{"farmer missing", farmerdomain.ErrNotFound, http.StatusNotFound},
		{"payment missing", paymentdomain.ErrNotFound, http.StatusNotFound},
		{"no entries", invoicedomain.ErrNoEntries, http.StatusNotFound},
		{"bad farmer name", farmerdomain.ErrInvalidName, http.StatusBadRequest},
		{"bad amount", paymentdomain.ErrInvalidAmount, http.StatusBadRequest},
		{"bad role", authdomain.ErrInvalidRole, http.StatusBadRequest},
		{"unknown", http.ErrBodyNotAllowed, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := performWithError(t, tc.err)
			if w.Code != tc.want {
				t.Fatalf("status = %d, want %d", w.Code, tc.want)
			}
		})
	}
}

func TestInvalidRequestErrorListsEveryField(t *testing.T) {
	err := &invoicedomain.InvalidRequestError{
		Fields: []invoicedomain.FieldError{
			{Field: "farmerId", Code: "required"},
			{Field: "userId", Code: "invalid_id"},
		},
	}

	w := performWithError(t, err)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var body errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Type != "validation_error" {
		t.Fatalf("type = %q", body.Error.Type)
	}
	if len(body.Error.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(body.Error.Errors))
	}
	if body.Error.Errors[0].Field != "farmerId" || body.Error.Errors[1].Field != "userId" {
		t.Fatalf("fields = %+v", body.Error.Errors)
	}
}

func TestValidationErrorCarriesFieldFromCode(t *testing.T) {
	w := performWithError(t, paymentdomain.ErrInvalidAmount)

	var body errorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Error.Errors) != 1 {
		t.Fatalf("expected 1 field error, got %d", len(body.Error.Errors))
	}
	if body.Error.Errors[0].Field != "amount" || body.Error.Errors[0].Code != "invalid_amount" {
		t.Fatalf("field error = %+v", body.Error.Errors[0])
	}
}

func TestNoErrorPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandlingMiddleware())
	r.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
}
