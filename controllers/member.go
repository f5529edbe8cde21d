package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tokomember-backend/models"
	"tokomember-backend/store"
	"tokomember-backend/utils"
)

type MemberController struct {
	Store *store.Store
}

// CreateMemberInput defines the expected JSON structure for creating a member
type CreateMemberInput struct {
	Store     models.StoreCode `json:"store" binding:"required,oneof=A B C"`
	Name      string           `json:"name" binding:"required"`
	WaNumber  string           `json:"waNumber" binding:"required"`
	BirthDate string           `json:"birthDate" binding:"required,datetime=2006-01-02"`
}

// UpdateMemberInput defines the expected JSON structure for updating a member
type UpdateMemberInput struct {
	Store     *models.StoreCode    `json:"store" binding:"omitempty,oneof=A B C"`
	Name      *string              `json:"name"`
	WaNumber  *string              `json:"waNumber"`
	BirthDate *string              `json:"birthDate" binding:"omitempty,datetime=2006-01-02"`
	Status    *models.MemberStatus `json:"status" binding:"omitempty,oneof=active inactive"`
}

// List returns the members within the caller's store scope, optionally
// narrowed by store, status and a name/number/phone search.
func (mc *MemberController) List(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	storeQuery := models.StoreCode(c.Query("store"))
	statusQuery := models.MemberStatus(c.Query("status"))
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))

	members := []models.Member{}
	for _, m := range mc.Store.Members() {
		if !user.CanAccess(m.Store) {
			continue
		}
		if storeQuery != "" && m.Store != storeQuery {
			continue
		}
		if statusQuery != "" && m.Status != statusQuery {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(m.Name + " " + m.MemberNo + " " + m.WaNumber)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		members = append(members, m)
	}

	c.JSON(http.StatusOK, members)
}

// Create adds an active member to one of the caller's stores.
func (mc *MemberController) Create(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	var input CreateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.WaNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
		return
	}
	if !user.CanAccess(input.Store) {
		utils.RespondWithError(c, http.StatusForbidden, "Store not allowed")
		return
	}

	member := mc.Store.AddMember(store.AddMemberInput{
		Store:     input.Store,
		Name:      input.Name,
		WaNumber:  utils.NormalizePhone(input.WaNumber),
		BirthDate: input.BirthDate,
	})

	c.JSON(http.StatusCreated, member)
}

// Get retrieves a specific member by ID
func (mc *MemberController) Get(c *gin.Context) {
	member, ok := mc.scopedMember(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, member)
}

// Update patches member fields and records a member_edit log entry. The
// underlying field merge itself is silent; the edit endpoint owns the log.
func (mc *MemberController) Update(c *gin.Context) {
	user, _ := utils.CurrentUser(c)

	member, ok := mc.scopedMember(c)
	if !ok {
		return
	}

	var input UpdateMemberInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.WaNumber != nil {
		if !utils.ValidatePhone(*input.WaNumber) {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid phone number format")
			return
		}
		normalized := utils.NormalizePhone(*input.WaNumber)
		input.WaNumber = &normalized
	}
	if input.Store != nil && !user.CanAccess(*input.Store) {
		utils.RespondWithError(c, http.StatusForbidden, "Store not allowed")
		return
	}

	mc.Store.UpdateMember(member.ID, store.MemberPatch{
		Store:     input.Store,
		Name:      input.Name,
		WaNumber:  input.WaNumber,
		BirthDate: input.BirthDate,
		Status:    input.Status,
	})

	updated, _ := mc.Store.FindMember(member.ID)
	mc.Store.AddLog(models.LogItem{
		Type:        models.LogMemberEdit,
		Title:       "Edit Data Member",
		Description: fmt.Sprintf("Edit data %s (%s) - Toko %s", updated.Name, updated.MemberNo, updated.Store),
		Store:       &updated.Store,
	})

	c.JSON(http.StatusOK, updated)
}

// Delete removes a member permanently.
func (mc *MemberController) Delete(c *gin.Context) {
	member, ok := mc.scopedMember(c)
	if !ok {
		return
	}

	mc.Store.DeleteMember(member.ID)
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}

// Reset clears both send flags for a member.
func (mc *MemberController) Reset(c *gin.Context) {
	member, ok := mc.scopedMember(c)
	if !ok {
		return
	}

	mc.Store.ResetStatuses(member.ID)
	updated, _ := mc.Store.FindMember(member.ID)
	c.JSON(http.StatusOK, updated)
}

// MarkPromo flags the member's promo as sent.
func (mc *MemberController) MarkPromo(c *gin.Context) {
	member, ok := mc.scopedMember(c)
	if !ok {
		return
	}

	mc.Store.MarkPromoSent(member.ID)
	updated, _ := mc.Store.FindMember(member.ID)
	c.JSON(http.StatusOK, updated)
}

// scopedMember resolves the :id parameter against the caller's store scope.
// Members outside the scope are reported as not found, not as forbidden.
func (mc *MemberController) scopedMember(c *gin.Context) (models.Member, bool) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return models.Member{}, false
	}

	member, found := mc.Store.FindMember(c.Param("id"))
	if !found || !user.CanAccess(member.Store) {
		utils.RespondWithError(c, http.StatusNotFound, "Member not found")
		return models.Member{}, false
	}
	return member, true
}
