package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-rotech-website/config"
	"go-rotech-website/internal/delivery/http/middleware"
	v1 "go-rotech-website/internal/delivery/http/v1"
	"go-rotech-website/internal/domain"
	"go-rotech-website/internal/usecase"
	"go-rotech-website/pkg/apperror"
	"go-rotech-website/pkg/email"
	"go-rotech-website/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init()
}

// stubBookingUC lets handler tests script the usecase outcome.
type stubBookingUC struct {
	err   error
	calls int
}

func (s *stubBookingUC) SubmitBooking(ctx context.Context, req *domain.BookingRequest) error {
	s.calls++
	return s.err
}

// fakeMailer records sends; used for the end-to-end handler test.
type fakeMailer struct {
	sent    []email.Message
	failOn  int // 1-based index of the send that should fail; 0 = never
	sendErr error
}

func (f *fakeMailer) Send(msg email.Message) error {
	if f.failOn > 0 && len(f.sent)+1 == f.failOn {
		return f.sendErr
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeMailer) IsConfigured() bool { return true }

func newBookingRouter(uc domain.BookingUsecase) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.Error(apperror.MethodNotAllowed("Method not allowed"))
	})

	v1.NewBookingHandler(r.Group("/v1"), uc)
	return r
}

func postBooking(r *gin.Engine, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/v1/booking", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitBookingSuccess(t *testing.T) {
	uc := &stubBookingUC{}
	r := newBookingRouter(uc)

	w := postBooking(r, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"phone":   "+234-1-111",
		"service": "training",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, uc.calls)
	assert.Contains(t, w.Body.String(), "Consultation request submitted successfully")
}

func TestSubmitBookingMissingFieldsRejectedAtBinding(t *testing.T) {
	required := []string{"name", "email", "phone", "service"}

	for _, missing := range required {
		t.Run("missing "+missing, func(t *testing.T) {
			uc := &stubBookingUC{}
			r := newBookingRouter(uc)

			body := map[string]string{
				"name":    "Jane Doe",
				"email":   "jane@x.com",
				"phone":   "+234-1-111",
				"service": "training",
			}
			delete(body, missing)

			w := postBooking(r, body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			// The usecase (and therefore the mailer) is never reached.
			assert.Equal(t, 0, uc.calls)
		})
	}
}

func TestSubmitBookingUsecaseValidationError(t *testing.T) {
	uc := &stubBookingUC{err: fmt.Errorf("%w: name", usecase.ErrMissingFields)}
	r := newBookingRouter(uc)

	w := postBooking(r, map[string]string{
		"name":    "   ",
		"email":   "jane@x.com",
		"phone":   "+234-1-111",
		"service": "training",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Missing required fields")
}

func TestSubmitBookingDispatchFailure(t *testing.T) {
	uc := &stubBookingUC{err: errors.New("smtp: connection refused")}
	r := newBookingRouter(uc)

	w := postBooking(r, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"phone":   "+234-1-111",
		"service": "training",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send email")
	// The raw transport error never reaches the client.
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestSubmitBookingWrongMethod(t *testing.T) {
	uc := &stubBookingUC{}
	r := newBookingRouter(uc)

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		req := httptest.NewRequest(method, "/v1/booking", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, method)
	}
	assert.Equal(t, 0, uc.calls)
}

func TestSubmitBookingEndToEnd(t *testing.T) {
	mailer := &fakeMailer{}
	cfg := &config.Config{
		SMTPFromEmail:    "noreply@rotechconsult.com",
		SendGridFromName: "Rotech Data Consult",
		AdminEmail:       "ops@rotechconsult.com",
	}
	uc := usecase.NewBookingUsecase(mailer, validator.New(), cfg)
	r := newBookingRouter(uc)

	w := postBooking(r, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"phone":   "+234-1-111",
		"service": "training",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, mailer.sent, 2)
	assert.Equal(t, "ops@rotechconsult.com", mailer.sent[0].To)
	assert.Equal(t, "jane@x.com", mailer.sent[1].To)
	assert.Contains(t, mailer.sent[1].HTMLBody, "Individual Training")
}

func TestSubmitBookingEndToEndFirstDispatchFails(t *testing.T) {
	mailer := &fakeMailer{failOn: 1, sendErr: errors.New("relay unavailable")}
	cfg := &config.Config{
		SMTPFromEmail:    "noreply@rotechconsult.com",
		SendGridFromName: "Rotech Data Consult",
		AdminEmail:       "ops@rotechconsult.com",
	}
	uc := usecase.NewBookingUsecase(mailer, validator.New(), cfg)
	r := newBookingRouter(uc)

	w := postBooking(r, map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@x.com",
		"phone":   "+234-1-111",
		"service": "training",
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, mailer.sent)
}
