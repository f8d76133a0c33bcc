package web

import (
	"errors"
	"net/http"
	"time"

	"gitee.com/flycash/review-reminder/internal/domain"
	"gitee.com/flycash/review-reminder/internal/errs"
	"gitee.com/flycash/review-reminder/internal/service/event"
	"gitee.com/flycash/review-reminder/internal/service/report"

	"github.com/ecodeclub/ekit/slice"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// Result 统一响应体
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

type PersonReq struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateTMEventReq struct {
	From            PersonReq `json:"from"`
	To              PersonReq `json:"to"`
	For             PersonReq `json:"for"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	ApplicationLink string    `json:"applicationLink"`
	CorrelationID   string    `json:"correlationId"`
}

type CreateReviewerEventReq struct {
	From            PersonReq   `json:"from"`
	For             PersonReq   `json:"for"`
	Reviewers       []PersonReq `json:"reviewers"`
	EndDate         string      `json:"endDate"`
	Attempts        int         `json:"attempts"`
	ApplicationLink string      `json:"applicationLink"`
	CorrelationID   string      `json:"correlationId"`
}

type DeleteReviewerEventReq struct {
	From string `json:"from"`
	To   string `json:"to"`
	For  string `json:"for"`
}

type SendReportReq struct {
	Email string `json:"email"`
}

type CreateEventResp struct {
	EventIDs []int64 `json:"eventIds"`
}

type Handler struct {
	eventSvc  event.Service
	reportSvc report.Service
	logger    *elog.Component
}

func NewHandler(eventSvc event.Service, reportSvc report.Service) *Handler {
	return &Handler{
		eventSvc:  eventSvc,
		reportSvc: reportSvc,
		logger:    elog.DefaultLogger.With(elog.String("component", "WebHandler")),
	}
}

func (h *Handler) PublicRoutes(engine gin.IRouter) {
	api := engine.Group("/api")
	api.POST("/events/tm", h.CreateTMEvent)
	api.POST("/events/reviewer", h.CreateReviewerEvent)
	api.DELETE("/events/reviewer", h.DeleteReviewerEvent)
	api.POST("/report", h.SendReport)
}

func (h *Handler) CreateTMEvent(ctx *gin.Context) {
	var req CreateTMEventReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, errs.ErrInvalidParameter)
		return
	}
	startDate, err := parseDate(req.StartDate, true)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	endDate, err := parseDate(req.EndDate, false)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	created, err := h.eventSvc.CreateTMEvent(ctx.Request.Context(), event.TMEventRequest{
		From:            toPerson(req.From),
		To:              toPerson(req.To),
		For:             toPerson(req.For),
		StartDate:       startDate,
		EndDate:         endDate,
		ApplicationLink: req.ApplicationLink,
		CorrelationID:   req.CorrelationID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg:  "OK",
		Data: CreateEventResp{EventIDs: []int64{created.ID}},
	})
}

func (h *Handler) CreateReviewerEvent(ctx *gin.Context) {
	var req CreateReviewerEventReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, errs.ErrInvalidParameter)
		return
	}
	endDate, err := parseDate(req.EndDate, true)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	created, err := h.eventSvc.CreateReviewerEvent(ctx.Request.Context(), event.ReviewerEventRequest{
		From: toPerson(req.From),
		For:  toPerson(req.For),
		Reviewers: slice.Map(req.Reviewers, func(_ int, src PersonReq) domain.Person {
			return toPerson(src)
		}),
		EndDate:         endDate,
		Attempts:        req.Attempts,
		ApplicationLink: req.ApplicationLink,
		CorrelationID:   req.CorrelationID,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{
		Msg: "OK",
		Data: CreateEventResp{
			EventIDs: slice.Map(created, func(_ int, src domain.Event) int64 {
				return src.ID
			}),
		},
	})
}

func (h *Handler) DeleteReviewerEvent(ctx *gin.Context) {
	var req DeleteReviewerEventReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, errs.ErrInvalidParameter)
		return
	}
	err := h.eventSvc.DeleteReviewerNotifications(ctx.Request.Context(), event.DeleteReviewerRequest{
		From: req.From,
		To:   req.To,
		For:  req.For,
	})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{Msg: "OK"})
}

func (h *Handler) SendReport(ctx *gin.Context) {
	var req SendReportReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		h.respondError(ctx, errs.ErrInvalidParameter)
		return
	}
	if err := h.reportSvc.Send(ctx.Request.Context(), req.Email); err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, Result{Msg: "OK"})
}

func (h *Handler) respondError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrInvalidParameter):
		ctx.JSON(http.StatusBadRequest, Result{Code: http.StatusBadRequest, Msg: err.Error()})
	case errors.Is(err, errs.ErrEventNotFound):
		ctx.JSON(http.StatusNotFound, Result{Code: http.StatusNotFound, Msg: err.Error()})
	default:
		h.logger.Error("处理请求失败",
			elog.String("path", ctx.FullPath()),
			elog.FieldErr(err))
		ctx.JSON(http.StatusInternalServerError, Result{Code: http.StatusInternalServerError, Msg: "系统错误"})
	}
}

func toPerson(p PersonReq) domain.Person {
	return domain.Person{Name: p.Name, Email: p.Email}
}

// parseDate 日期一律是 2006-01-02 格式，required 为 false 时允许为空
func parseDate(raw string, required bool) (time.Time, error) {
	if raw == "" {
		if required {
			return time.Time{}, errs.ErrInvalidParameter
		}
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, errs.ErrInvalidParameter
	}
	return parsed, nil
}
