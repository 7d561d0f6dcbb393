package api

import (
	"github.com/gin-gonic/gin"
)

func (m ApiHandler) searchSymbols(c *gin.Context) {
	results, err := m.SymbolSearchService.Search(
		c.Request.Context(),
		c.Query("query"),
		c.DefaultQuery("type", "stocks"),
	)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	returnSuccessJson(c, results)
}
