package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tokomember-backend/store"
	"tokomember-backend/utils"
)

type DashboardController struct {
	Store *store.Store
}

// GetDashboardOverview recomputes the derived statistics over the live
// member collection, limited to the caller's store scope. Nothing is
// cached; every read reflects the latest mutations.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	c.JSON(http.StatusOK, dc.Store.DashboardStats(time.Now(), user.AllowedStores()))
}
