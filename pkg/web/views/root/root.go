package root

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/scienceol/labprofile/internal/config"
)

// Root godoc
//
//	@Summary	Welcome message
//	@Tags		root
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/ [get]
func Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Welcome to root page. head towards 127.0.0.1:%d/docs to test API's", config.Global().Server.Port),
	})
}
