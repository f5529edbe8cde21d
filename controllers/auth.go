// controllers/auth.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tokomember-backend/store"
	"tokomember-backend/utils"
)

type AuthController struct {
	Store *store.Store
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remember *bool  `json:"remember"`
}

// Login checks the credential list and issues a session token. Failures are
// a structured {ok:false, message} result, never an exception path.
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	user, found := ac.Store.FindUser(input.Username)
	if !found || !utils.CheckPasswordHash(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "message": "Username atau password salah"})
		return
	}

	token, err := utils.GenerateToken(user)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// "remember" keeps the session across browser restarts; an unset cookie
	// max-age makes it session-scoped instead.
	maxAge := utils.TokenExpiryHours() * 3600
	if input.Remember != nil && !*input.Remember {
		maxAge = 0
	}
	c.SetCookie("token", token, maxAge, "/", "", true, true)

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"username":      user.Username,
			"name":          user.Name,
			"role":          user.Role,
			"store":         user.Store,
			"allowedStores": user.AllowedStores(),
		},
	})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me echoes the authenticated session user and its store scope.
func (ac *AuthController) Me(c *gin.Context) {
	user, ok := utils.CurrentUser(c)
	if !ok {
		utils.RespondWithError(c, http.StatusUnauthorized, "User not found in context")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"username":      user.Username,
			"name":          user.Name,
			"role":          user.Role,
			"store":         user.Store,
			"allowedStores": user.AllowedStores(),
		},
	})
}
