package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokomember-backend/models"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

type LogController struct {
	Store *store.Store
}

// List returns activity log entries newest first, filtered by the caller's
// store scope and the optional type/store/search/from/to query parameters.
// "to" is inclusive of its whole day.
func (lc *LogController) List(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	logs := lc.Store.Logs(store.LogFilter{
		Type:   models.LogType(c.Query("type")),
		Store:  models.StoreCode(c.Query("store")),
		Search: c.Query("search"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Scope:  user.AllowedStores(),
	})

	c.JSON(http.StatusOK, gin.H{
		"count": len(logs),
		"logs":  logs,
	})
}
