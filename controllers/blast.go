// controllers/blast.go
package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tokomember-backend/models"
	"tokomember-backend/services"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

// BlastController serves the promotional blasting and birthday outreach
// views: per-store templates, deep-link sends and send-status resets.
type BlastController struct {
	Store    *store.Store
	WhatsApp *services.WhatsAppService
	Birthday *services.BirthdayService
}

type UpdateTemplateInput struct {
	Text string `json:"text" binding:"required"`
}

// GetTemplate returns the custom message template of one store.
func (bc *BlastController) GetTemplate(c *gin.Context) {
	code, ok := bc.scopedStore(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"store": code, "text": bc.Store.CustomMessage(code)})
}

// UpdateTemplate overwrites the store's template unconditionally.
func (bc *BlastController) UpdateTemplate(c *gin.Context) {
	code, ok := bc.scopedStore(c)
	if !ok {
		return
	}

	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bc.Store.SetCustomMessage(code, input.Text)
	c.JSON(http.StatusOK, gin.H{"store": code, "text": input.Text})
}

// Send builds the promo deep link for one member, marking them contacted.
func (bc *BlastController) Send(c *gin.Context) {
	member, ok := bc.scopedMember(c)
	if !ok {
		return
	}

	url, _ := bc.WhatsApp.SendPromo(member.ID)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ResetAll clears the contacted flag for every member of a store. A bulk
// field patch, intentionally unlogged like any direct update.
func (bc *BlastController) ResetAll(c *gin.Context) {
	code, ok := bc.scopedStore(c)
	if !ok {
		return
	}

	cleared := false
	count := 0
	for _, m := range bc.Store.Members() {
		if m.Store != code {
			continue
		}
		bc.Store.UpdateMember(m.ID, store.MemberPatch{WhatsappSent: &cleared})
		count++
	}
	c.JSON(http.StatusOK, gin.H{"reset": count})
}

// Birthdays lists the store's members with a birthday this month.
func (bc *BlastController) Birthdays(c *gin.Context) {
	code, ok := bc.scopedStore(c)
	if !ok {
		return
	}

	now := time.Now()
	type birthdayRow struct {
		models.Member
		DaysLeft int `json:"daysLeft"`
	}

	rows := []birthdayRow{}
	for _, m := range bc.Birthday.MembersThisMonth(code, now) {
		rows = append(rows, birthdayRow{Member: m, DaysLeft: utils.DaysUntilBirthday(m.BirthDate, now)})
	}
	c.JSON(http.StatusOK, rows)
}

// SendBirthday builds the birthday greeting deep link for one member.
func (bc *BlastController) SendBirthday(c *gin.Context) {
	member, ok := bc.scopedMember(c)
	if !ok {
		return
	}

	url, _ := bc.WhatsApp.SendBirthday(member.ID)
	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (bc *BlastController) scopedStore(c *gin.Context) (models.StoreCode, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return "", false
	}

	code := models.StoreCode(c.Query("store"))
	if code == "" {
		code = models.StoreCode(c.Param("store"))
	}
	if !code.Valid() {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid store")
		return "", false
	}
	if !user.CanAccess(code) {
		utils.RespondWithError(c, http.StatusForbidden, "Store not allowed")
		return "", false
	}
	return code, true
}

func (bc *BlastController) scopedMember(c *gin.Context) (models.Member, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return models.Member{}, false
	}

	member, found := bc.Store.FindMember(c.Param("id"))
	if !found || !user.CanAccess(member.Store) {
		utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		return models.Member{}, false
	}
	return member, true
}
