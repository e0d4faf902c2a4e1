package handler

import (
	"net/http"

	"ContactForm_SheetsProject/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	pageTitle  = "Contact Form"
	submitPath = "/api/submit"
)

// 폼 페이지 렌더링
func Index(c *gin.Context) {
	c.HTML(http.StatusOK, web.IndexTemplate, web.PageData{
		Title:      pageTitle,
		SubmitPath: submitPath,
	})
}
