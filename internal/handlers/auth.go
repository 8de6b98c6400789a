package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/worknow-dev/worknow/internal/auth"
	"github.com/worknow-dev/worknow/internal/models"
	"github.com/worknow-dev/worknow/internal/types"
	"github.com/worknow-dev/worknow/internal/utils"
)

type AuthHandler struct {
	db     *gorm.DB
	domain string
}

func NewAuthHandler(db *gorm.DB, domain string) *AuthHandler {
	return &AuthHandler{db: db, domain: domain}
}

type RegisterUserRequest struct {
	Name       string `json:"name" binding:"required"`
	Surname    string `json:"surname"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Profession string `json:"profession"`
}

type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Sector      string `json:"sector"`
	Website     string `json:"website"`
	Size        string `json:"size"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserProfileRequest struct {
	Name       string `json:"name"`
	Surname    string `json:"surname"`
	Phone      string `json:"phone"`
	City       string `json:"city"`
	Profession string `json:"profession"`
}

type UpdateCompanyProfileRequest struct {
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Sector      string `json:"sector"`
	Website     string `json:"website"`
	Size        string `json:"size"`
}

// emailTaken checks both account tables: users and companies share one email
// namespace so login can disambiguate by email alone.
func (h *AuthHandler) emailTaken(email string) (bool, error) {
	var user models.User
	err := h.db.Where("email = ?", email).First(&user).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	var company models.Company
	err = h.db.Where("email = ?", email).First(&company).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}
	return false, nil
}

func (h *AuthHandler) RegisterUser(ctx *gin.Context) {
	var body RegisterUserRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	taken, err := h.emailTaken(body.Email)
	if err != nil {
		log.Printf("Database error when checking existing account: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if taken {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user := models.User{
		Name:         body.Name,
		Surname:      body.Surname,
		Email:        body.Email,
		PasswordHash: string(passwordHash),
		Phone:        body.Phone,
		City:         body.City,
		Profession:   body.Profession,
	}

	if err := h.db.Create(&user).Error; err != nil {
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(user.ID, user.Email, auth.RoleUser)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setTokenCookie(ctx, token)

	ctx.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user":  userResponse(user),
	})
}

func (h *AuthHandler) RegisterCompany(ctx *gin.Context) {
	var body RegisterCompanyRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	taken, err := h.emailTaken(body.Email)
	if err != nil {
		log.Printf("Database error when checking existing account: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if taken {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists"})
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

	if err != nil {
		log.Printf("Failed to hash password: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	company := models.Company{
		CompanyName:  body.CompanyName,
		Email:        body.Email,
		PasswordHash: string(passwordHash),
		Phone:        body.Phone,
		Address:      body.Address,
		City:         body.City,
		Sector:       body.Sector,
		Website:      body.Website,
		Size:         body.Size,
	}

	if err := h.db.Create(&company).Error; err != nil {
		log.Printf("Failed to create company: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	token, err := auth.GenerateJWT(company.ID, company.Email, auth.RoleCompany)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setTokenCookie(ctx, token)

	ctx.JSON(http.StatusCreated, gin.H{
		"token":   token,
		"company": companyResponse(company),
	})
}

// Login authenticates either account kind; the email decides which table the
// credentials are checked against.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var body LoginRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	body.Email = strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User
	err := h.db.Where("email = ?", body.Email).First(&user).Error

	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		h.issueToken(ctx, user.ID, user.Email, auth.RoleUser, gin.H{"user": userResponse(user)})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error during login: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var company models.Company
	err = h.db.Where("email = ?", body.Email).First(&company).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			log.Printf("Database error during login: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(company.PasswordHash), []byte(body.Password)) != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	h.issueToken(ctx, company.ID, company.Email, auth.RoleCompany, gin.H{"company": companyResponse(company)})
}

// Me returns the authenticated account's profile.
func (h *AuthHandler) Me(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	if account.Role == auth.RoleCompany {
		var company models.Company
		if err := h.db.First(&company, account.ID).Error; err != nil {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"company": companyResponse(company)})
		return
	}

	var user models.User
	if err := h.db.First(&user, account.ID).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

// UpdateProfile updates the mutable fields of the authenticated account.
// Empty fields are left untouched.
func (h *AuthHandler) UpdateProfile(ctx *gin.Context) {
	account, err := utils.GetCurrentAccount(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Account not authenticated"})
		return
	}

	if account.Role == auth.RoleCompany {
		h.updateCompanyProfile(ctx, account.ID)
		return
	}
	h.updateUserProfile(ctx, account.ID)
}

func (h *AuthHandler) updateUserProfile(ctx *gin.Context, id uint) {
	var body UpdateUserProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	updates := map[string]interface{}{}
	if body.Name != "" {
		updates["name"] = body.Name
	}
	if body.Surname != "" {
		updates["surname"] = body.Surname
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}
	if body.City != "" {
		updates["city"] = body.City
	}
	if body.Profession != "" {
		updates["profession"] = body.Profession
	}

	if len(updates) > 0 {
		if err := h.db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Failed to update user profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

func (h *AuthHandler) updateCompanyProfile(ctx *gin.Context, id uint) {
	var body UpdateCompanyProfileRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var company models.Company
	if err := h.db.First(&company, id).Error; err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return
	}

	updates := map[string]interface{}{}
	if body.CompanyName != "" {
		updates["company_name"] = body.CompanyName
	}
	if body.Phone != "" {
		updates["phone"] = body.Phone
	}
	if body.Address != "" {
		updates["address"] = body.Address
	}
	if body.City != "" {
		updates["city"] = body.City
	}
	if body.Sector != "" {
		updates["sector"] = body.Sector
	}
	if body.Website != "" {
		updates["website"] = body.Website
	}
	if body.Size != "" {
		updates["size"] = body.Size
	}

	if len(updates) > 0 {
		if err := h.db.Model(&company).Updates(updates).Error; err != nil {
			log.Printf("Failed to update company profile: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{"company": companyResponse(company)})
}

func (h *AuthHandler) issueToken(ctx *gin.Context, id uint, email, role string, payload gin.H) {
	token, err := auth.GenerateJWT(id, email, role)

	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.setTokenCookie(ctx, token)

	payload["token"] = token
	ctx.JSON(http.StatusOK, payload)
}

func (h *AuthHandler) setTokenCookie(ctx *gin.Context, token string) {
	http.SetCookie(ctx.Writer, &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		Domain:   h.domain,
		MaxAge:   60 * 60 * 24 * 7,
		Secure:   true,
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	})
}

func userResponse(user models.User) types.UserResponse {
	return types.UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Surname:    user.Surname,
		Email:      user.Email,
		Phone:      user.Phone,
		City:       user.City,
		Profession: user.Profession,
	}
}

func companyResponse(company models.Company) types.CompanyResponse {
	return types.CompanyResponse{
		ID:          company.ID,
		CompanyName: company.CompanyName,
		Email:       company.Email,
		Phone:       company.Phone,
		Address:     company.Address,
		City:        company.City,
		Sector:      company.Sector,
		Website:     company.Website,
		Size:        company.Size,
	}
}
