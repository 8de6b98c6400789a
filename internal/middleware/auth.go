package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/auth"
	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/types"
)

// AuthenticatedAccount is the identity placed into the gin context after
// token verification. ID is a user id or a company id depending on Role.
type AuthenticatedAccount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Auth verifies tokens and loads the matching account row.
type Auth struct {
	db *gorm.DB
}

func NewAuth(db *gorm.DB) *Auth {
	return &Auth{db: db}
}

// Require authenticates any account kind.
func (a *Auth) Require() gin.HandlerFunc { return a.require("") }

// RequireUser authenticates and rejects non-user accounts.
func (a *Auth) RequireUser() gin.HandlerFunc { return a.require(auth.RoleUser) }

// RequireCompany authenticates and rejects non-company accounts.
func (a *Auth) RequireCompany() gin.HandlerFunc { return a.require(auth.RoleCompany) }

func (a *Auth) require(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := bearerToken(ctx)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		accountIDFloat, ok := claims["account_id"].(float64)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid account ID in token claims"})
			return
		}

		tokenRole, ok := claims["role"].(string)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid role in token claims"})
			return
		}

		if role != "" && tokenRole != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
			return
		}

		accountID := uint(accountIDFloat)

		account, err := a.loadAccount(accountID, tokenRole)

		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Account not found"})
			return
		}

		ctx.Set(types.ContextAccountKey, account)
		ctx.Next()
	}
}

func (a *Auth) loadAccount(id uint, role string) (AuthenticatedAccount, error) {
	switch role {
	case auth.RoleCompany:
		var company models.Company
		if err := a.db.Where("id = ?", id).First(&company).Error; err != nil {
			return AuthenticatedAccount{}, err
		}
		return AuthenticatedAccount{
			ID:    company.ID,
			Name:  company.CompanyName,
			Email: company.Email,
			Role:  auth.RoleCompany,
		}, nil
	default:
		var user models.User
		if err := a.db.Where("id = ?", id).First(&user).Error; err != nil {
			return AuthenticatedAccount{}, err
		}
		return AuthenticatedAccount{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  auth.RoleUser,
		}, nil
	}
}

// bearerToken pulls the token from the Authorization header, falling back to
// the cookie set at login.
func bearerToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	if cookie, err := ctx.Cookie("token"); err == nil {
		return cookie
	}

	return ""
}
