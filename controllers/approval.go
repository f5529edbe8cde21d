package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokomember-backend/models"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

type ApprovalController struct {
	Store *store.Store
}

// RegisterInput is the public registration form; submissions land on the
// pending list until an admin approves them.
type RegisterInput struct {
	Store     models.StoreCode `json:"store" binding:"required,oneof=A B C"`
	Name      string           `json:"name" binding:"required"`
	WaNumber  string           `json:"waNumber" binding:"required"`
	BirthDate string           `json:"birthDate" binding:"required,datetime=2006-01-02"`
}

// Register accepts a new membership submission. No authentication; the
// record stays pending until reviewed.
func (pc *ApprovalController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidatePhone(input.WaNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}

	pending := pc.Store.AddPending(store.AddMemberInput{
		Store:     input.Store,
		Name:      input.Name,
		WaNumber:  utils.NormalizePhone(input.WaNumber),
		BirthDate: input.BirthDate,
	})

	c.JSON(http.StatusCreated, pending)
}

// List returns the pending registrations within the caller's store scope.
func (pc *ApprovalController) List(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	pending := []models.Member{}
	for _, m := range pc.Store.Pending() {
		if user.CanAccess(m.Store) {
			pending = append(pending, m)
		}
	}
	c.JSON(http.StatusOK, pending)
}

// Approve promotes a pending registration into the member collection.
func (pc *ApprovalController) Approve(c *gin.Context) {
	item, ok := pc.scopedPending(c)
	if !ok {
		return
	}

	promoted, _ := pc.Store.ApprovePending(item.ID)
	c.JSON(http.StatusOK, promoted)
}

// Reject discards a pending registration.
func (pc *ApprovalController) Reject(c *gin.Context) {
	item, ok := pc.scopedPending(c)
	if !ok {
		return
	}

	pc.Store.RejectPending(item.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Registration rejected"})
}

func (pc *ApprovalController) scopedPending(c *gin.Context) (models.Member, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return models.Member{}, false
	}

	id := c.Param("id")
	for _, m := range pc.Store.Pending() {
		if m.ID == id {
			if !user.CanAccess(m.Store) {
				utils.RespondWithError(c, http.StatusNotFound, "Pending member not found")
				return models.Member{}, false
			}
			return m, true
		}
	}
	utils.RespondWithError(c, http.StatusNotFound, "Pending member not found")
	return models.Member{}, false
}
