package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cubehq/dailycube-backend/pkg/apperror"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNotificationService struct {
	registered map[uint64]string
	removed    []uint64
	err        error
}

func newStubNotificationService() *stubNotificationService {
	return &stubNotificationService{registered: make(map[uint64]string)}
}

func (s *stubNotificationService) Register(ctx context.Context, fid uint64, token, url string) error {
	if s.err != nil {
		return s.err
	}
	s.registered[fid] = token
	return nil
}

func (s *stubNotificationService) Remove(ctx context.Context, fid uint64) error {
	if s.err != nil {
		return s.err
	}
	s.removed = append(s.removed, fid)
	return nil
}

func performWebhook(svc *stubNotificationService, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/webhook", NewWebhookHandler(svc).HandleLifecycle)

	req := httptest.NewRequest(http.MethodPost, "/api/webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestWebhookHandler_FrameAddedRegisters(t *testing.T) {
	svc := newStubNotificationService()

	rec := performWebhook(svc, `{"fid": 42, "event": "frame_added", "token": "tok-1", "url": "https://push.example/send"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-1", svc.registered[42])
}

func TestWebhookHandler_NotificationsEnabledRegisters(t *testing.T) {
	svc := newStubNotificationService()

	rec := performWebhook(svc, `{"fid": 42, "event": "notifications_enabled", "token": "tok-2", "url": "https://push.example/send"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tok-2", svc.registered[42])
}

func TestWebhookHandler_RemovalEvents(t *testing.T) {
	for _, event := range []string{"frame_removed", "notifications_disabled"} {
		t.Run(event, func(t *testing.T) {
			svc := newStubNotificationService()

			rec := performWebhook(svc, `{"fid": 42, "event": "`+event+`"}`)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, []uint64{42}, svc.removed)
			assert.Empty(t, svc.registered)
		})
	}
}

func TestWebhookHandler_InvalidPayload(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown event", `{"fid": 42, "event": "frame_painted"}`},
		{"missing fid", `{"event": "frame_added", "token": "tok", "url": "https://push.example/send"}`},
		{"malformed url", `{"fid": 42, "event": "frame_added", "token": "tok", "url": "::"}`},
		{"not json", `not json`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newStubNotificationService()

			rec := performWebhook(svc, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Empty(t, svc.registered)
			assert.Empty(t, svc.removed)
		})
	}
}

func TestWebhookHandler_MissingTokenRejected(t *testing.T) {
	svc := newStubNotificationService()
	svc.err = apperror.ErrInvalidInput

	rec := performWebhook(svc, `{"fid": 42, "event": "frame_added", "url": "https://push.example/send"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
