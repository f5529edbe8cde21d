// utils/auth.go
package utils

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"tokomember-backend/models"
)

const userContextKey = "user"

// Generate JWT secret key (run once initially)
func GenerateJWTSecret() string {
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		panic("failed to generate JWT secret")
	}
	return base64.StdEncoding.EncodeToString(key)
}

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// TokenExpiryHours reads the session lifetime from the environment,
// defaulting to 24 hours. Shared by token generation and the login cookie.
func TokenExpiryHours() int {
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			return h
		}
	}
	return 24
}

// GenerateToken issues a JWT whose claims carry the persisted session record:
// username, display name, role and, for store admins, the store scope.
func GenerateToken(user models.User) (string, error) {
	expiryHours := TokenExpiryHours()
	claims := jwt.MapClaims{
		"sub":  user.Username,
		"name": user.Name,
		"role": string(user.Role),
		"exp":  time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	if user.Store != nil {
		claims["store"] = string(*user.Store)
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// UserFromClaims rebuilds the session user from token claims. A store_admin
// record without a store is invalid and discarded.
func UserFromClaims(claims jwt.MapClaims) (models.User, error) {
	username, _ := claims["sub"].(string)
	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	if username == "" || role == "" {
		return models.User{}, errors.New("incomplete token claims")
	}

	user := models.User{
		Username: username,
		Name:     name,
		Role:     models.Role(role),
	}
	if storeClaim, ok := claims["store"].(string); ok {
		code := models.StoreCode(storeClaim)
		if code.Valid() {
			user.Store = &code
		}
	}
	if user.Role == models.RoleStoreAdmin && user.Store == nil {
		return models.User{}, errors.New("store admin without store")
	}
	return user, nil
}

// Auth middleware. Accepts the token from the Authorization header or the
// session cookie set at login.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("Authorization")
		if len(tokenString) > 7 && strings.ToUpper(tokenString[0:6]) == "BEARER" {
			tokenString = tokenString[7:]
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authorization required"})
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token claims"})
			return
		}

		user, err := UserFromClaims(claims)
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid session"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the session user placed by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
