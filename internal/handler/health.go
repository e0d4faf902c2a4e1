package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// Health godoc
// @Summary      헬스 체크
// @Description  프로세스가 살아있는지만 확인합니다. Sheets 호출은 하지 않습니다.
// @Tags         System
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /healthz [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
