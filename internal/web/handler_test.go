package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/service/event"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	tmErr       error
	reviewerErr error
	deleteErr   error

	lastTMReq       event.TMEventRequest
	lastReviewerReq event.ReviewerEventRequest
	lastDeleteReq   event.DeleteReviewerRequest
}

func (f *fakeEventService) CreateTMEvent(_ context.Context, req event.TMEventRequest) (domain.Event, error) {
	f.lastTMReq = req
	if f.tmErr != nil {
		return domain.Event{}, f.tmErr
	}
	return domain.Event{ID: 1}, nil
}

func (f *fakeEventService) CreateReviewerEvent(_ context.Context, req event.ReviewerEventRequest) ([]domain.Event, error) {
	f.lastReviewerReq = req
	if f.reviewerErr != nil {
		return nil, f.reviewerErr
	}
	return []domain.Event{{ID: 1}, {ID: 2}}, nil
}

func (f *fakeEventService) DeleteReviewerNotifications(_ context.Context, req event.DeleteReviewerRequest) error {
	f.lastDeleteReq = req
	return f.deleteErr
}

type fakeReportService struct {
	sendErr error
	lastTo  string
}

func (f *fakeReportService) Send(_ context.Context, email string) error {
	f.lastTo = email
	return f.sendErr
}

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(eventSvc *fakeEventService, reportSvc *fakeReportService) *gin.Engine {
	engine := gin.New()
	NewHandler(eventSvc, reportSvc).PublicRoutes(engine)
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, Result) {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, req)
	var result Result
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &result))
	return recorder, result
}

func TestHandler_CreateTMEvent(t *testing.T) {
	t.Parallel()

	validReq := CreateTMEventReq{
		From:            PersonReq{Name: "HR Bot", Email: "hr@example.com"},
		To:              PersonReq{Name: "Tom Manager", Email: "tm@example.com"},
		For:             PersonReq{Name: "Bob Talent", Email: "bob@example.com"},
		StartDate:       "2025-01-02",
		EndDate:         "2025-01-20",
		ApplicationLink: "https://review.example.com/form/42",
	}

	t.Run("创建成功", func(t *testing.T) {
		t.Parallel()
		eventSvc := &fakeEventService{}
		engine := newEngine(eventSvc, &fakeReportService{})

		recorder, result := doJSON(t, engine, http.MethodPost, "/api/events/tm", validReq)
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "OK", result.Msg)
		assert.Equal(t, "tm@example.com", eventSvc.lastTMReq.To.Email)
		assert.Equal(t, 2025, eventSvc.lastTMReq.StartDate.Year())
	})

	t.Run("日期格式错误返回 400", func(t *testing.T) {
		t.Parallel()
		engine := newEngine(&fakeEventService{}, &fakeReportService{})

		req := validReq
		req.StartDate = "02/01/2025"
		recorder, _ := doJSON(t, engine, http.MethodPost, "/api/events/tm", req)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("校验失败返回 400", func(t *testing.T) {
		t.Parallel()
		eventSvc := &fakeEventService{tmErr: errs.ErrInvalidParameter}
		engine := newEngine(eventSvc, &fakeReportService{})

		recorder, _ := doJSON(t, engine, http.MethodPost, "/api/events/tm", validReq)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("内部错误返回 500", func(t *testing.T) {
		t.Parallel()
		eventSvc := &fakeEventService{tmErr: errs.ErrCreateEventFailed}
		engine := newEngine(eventSvc, &fakeReportService{})

		recorder, _ := doJSON(t, engine, http.MethodPost, "/api/events/tm", validReq)
		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}

func TestHandler_CreateReviewerEvent(t *testing.T) {
	t.Parallel()

	eventSvc := &fakeEventService{}
	engine := newEngine(eventSvc, &fakeReportService{})

	recorder, result := doJSON(t, engine, http.MethodPost, "/api/events/reviewer", CreateReviewerEventReq{
		From: PersonReq{Name: "Tom Manager", Email: "tm@example.com"},
		For:  PersonReq{Name: "Bob Talent", Email: "bob@example.com"},
		Reviewers: []PersonReq{
			{Name: "Alice Reviewer", Email: "alice@example.com"},
		},
		EndDate:         "2025-01-11",
		Attempts:        3,
		ApplicationLink: "https://review.example.com/form/42",
	})
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", result.Msg)
	require.Len(t, eventSvc.lastReviewerReq.Reviewers, 1)
	assert.Equal(t, "alice@example.com", eventSvc.lastReviewerReq.Reviewers[0].Email)
	assert.Equal(t, 3, eventSvc.lastReviewerReq.Attempts)
}

func TestHandler_DeleteReviewerEvent(t *testing.T) {
	t.Parallel()

	t.Run("撤销成功", func(t *testing.T) {
		t.Parallel()
		eventSvc := &fakeEventService{}
		engine := newEngine(eventSvc, &fakeReportService{})

		recorder, _ := doJSON(t, engine, http.MethodDelete, "/api/events/reviewer", DeleteReviewerEventReq{
			From: "tm@example.com",
			To:   "alice@example.com",
			For:  "bob@example.com",
		})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "alice@example.com", eventSvc.lastDeleteReq.To)
	})

	t.Run("没有匹配事件返回 404", func(t *testing.T) {
		t.Parallel()
		eventSvc := &fakeEventService{deleteErr: errs.ErrEventNotFound}
		engine := newEngine(eventSvc, &fakeReportService{})

		recorder, _ := doJSON(t, engine, http.MethodDelete, "/api/events/reviewer", DeleteReviewerEventReq{
			From: "tm@example.com",
			To:   "alice@example.com",
			For:  "bob@example.com",
		})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}

func TestHandler_SendReport(t *testing.T) {
	t.Parallel()

	t.Run("发送成功", func(t *testing.T) {
		t.Parallel()
		reportSvc := &fakeReportService{}
		engine := newEngine(&fakeEventService{}, reportSvc)

		recorder, _ := doJSON(t, engine, http.MethodPost, "/api/report", SendReportReq{Email: "tm@example.com"})
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, "tm@example.com", reportSvc.lastTo)
	})

	t.Run("名下没有事件返回 404", func(t *testing.T) {
		t.Parallel()
		reportSvc := &fakeReportService{sendErr: errs.ErrEventNotFound}
		engine := newEngine(&fakeEventService{}, reportSvc)

		recorder, _ := doJSON(t, engine, http.MethodPost, "/api/report", SendReportReq{Email: "tm@example.com"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
