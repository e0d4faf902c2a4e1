/**
* Name: 			submit_handler.go
* Description: 		연락처 폼 제출 HTTP 핸들러
* Workflow: 		요청 바인딩, 필수값 확인, Sheets append, 결과 envelope 반환
 */
package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"ContactForm_SheetsProject/internal/metrics"
	"ContactForm_SheetsProject/internal/middleware"
	"ContactForm_SheetsProject/internal/models"
	"ContactForm_SheetsProject/internal/sheets"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Appender is the single capability the endpoint needs from the gateway.
type Appender interface {
	AppendRow(ctx context.Context, sub models.Submission) (*models.AppendConfirmation, error)
}

type SubmitHandler struct {
	gateway Appender
	log     *zap.Logger
}

func NewSubmitHandler(gateway Appender, log *zap.Logger) *SubmitHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SubmitHandler{gateway: gateway, log: log}
}

// Submit godoc
// @Summary      연락처 폼 제출 (Submit)
// @Description  이름, 이메일, 전화번호, 메시지를 받아 Google Sheets 에 한 행으로 추가합니다.
// @Description  JSON 또는 form-urlencoded 바디를 받습니다. name, email, phone 은 필수입니다.
// @Tags         Contact
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        request body models.Submission true "폼 제출 내용"
// @Success      200 {object} models.SubmitResponse
// @Failure      400 {object} models.SubmitResponse "필수값 누락 또는 잘못된 바디"
// @Failure      500 {object} models.SubmitResponse "서버 내부 오류"
// @Failure      502 {object} models.SubmitResponse "Sheets 인증 실패 또는 시트 없음"
// @Failure      503 {object} models.SubmitResponse "Sheets 일시적 장애"
// @Router       /api/submit [post]
func (h *SubmitHandler) Submit(c *gin.Context) {
	var sub models.Submission
	if err := c.ShouldBind(&sub); err != nil {
		h.fail(c, http.StatusBadRequest, models.KindValidation, bindMessage(err), err)
		return
	}

	conf, err := h.gateway.AppendRow(c.Request.Context(), sub)
	if err != nil {
		status, kind, msg := gatewayFailure(err)
		h.fail(c, status, kind, msg, err)
		return
	}

	metrics.ObserveSubmission("ok")
	c.JSON(http.StatusOK, models.SubmitResponse{OK: true, Result: conf})
}

func (h *SubmitHandler) fail(c *gin.Context, status int, kind models.ErrorKind, msg string, cause error) {
	_ = c.Error(cause)
	metrics.ObserveSubmission(string(kind))

	fields := []zap.Field{
		zap.String("kind", string(kind)),
		zap.Int("status", status),
		zap.String(middleware.RequestIDKey, c.GetString(middleware.RequestIDKey)),
		zap.Error(cause),
	}
	if status >= 500 {
		h.log.Error("SubmitHandler.Submit(): submission failed", fields...)
	} else {
		h.log.Info("SubmitHandler.Submit(): submission rejected", fields...)
	}

	c.JSON(status, models.SubmitResponse{
		OK:    false,
		Error: &models.APIError{Kind: kind, Message: msg},
	})
}

func bindMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, strings.ToLower(fe.Field())+" is required")
	}
	return strings.Join(msgs, ", ")
}

// 자격 증명 등 내부 정보는 응답에 노출하지 않음
func gatewayFailure(err error) (int, models.ErrorKind, string) {
	switch {
	case errors.Is(err, sheets.ErrAuth):
		return http.StatusBadGateway, models.KindAuth, "the spreadsheet service rejected the server credentials"
	case errors.Is(err, sheets.ErrNotFound):
		return http.StatusBadGateway, models.KindNotFound, "the target spreadsheet was not found"
	case errors.Is(err, sheets.ErrRemoteUnavailable):
		return http.StatusServiceUnavailable, models.KindRemoteUnavailable, "the spreadsheet service is unavailable, please try again"
	default:
		return http.StatusInternalServerError, models.KindInternal, "failed to record the submission"
	}
}
