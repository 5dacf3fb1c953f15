package devserver

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
)

// jwtSecret signs devserver tokens only; there is nothing to protect here.
var jwtSecret = []byte("storefront-dev")

const (
	accessTTL  = 48 * time.Hour
	refreshTTL = 30 * 24 * time.Hour
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
	UserType  string `json:"userType"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "email and password are required"})
		return
	}

	h.state.mu.Lock()
	u, ok := h.state.findUser(req.Email)
	h.state.mu.Unlock()
	if !ok || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if !u.Confirmed {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Please confirm your email address before signing in"})
		return
	}

	sess, err := issueSession(u)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "token issuance failed"})
		return
	}
	c.JSON(http.StatusOK, sess)
}

func issueSession(u user) (domain.Session, error) {
	now := time.Now().UTC()
	accessExpiry := now.Add(accessTTL)
	refreshExpiry := now.Add(refreshTTL)

	access, err := signToken(u.ID, accessExpiry)
	if err != nil {
		return domain.Session{}, err
	}
	refresh, err := signToken(u.ID, refreshExpiry)
	if err != nil {
		return domain.Session{}, err
	}

	return domain.Session{
		Token:                 access,
		RefreshToken:          refresh,
		ExpiresOn:             accessExpiry,
		RefreshTokenExpiresOn: refreshExpiry,
		UserID:                u.ID,
		UserName:              strings.TrimSpace(u.FirstName + " " + u.LastName),
		Email:                 u.Email,
		UserType:              u.UserType,
	}, nil
}

func signToken(userID string, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID,
		"exp": expiresAt.Unix(),
	})
	return token.SignedString(jwtSecret)
}

func (h *handlers) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "missing required fields"})
		return
	}

	h.state.mu.Lock()
	defer h.state.mu.Unlock()
	if _, exists := h.state.findUser(req.Email); exists {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.MinCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "hash failed"})
		return
	}
	userType := req.UserType
	if userType == "" {
		userType = "customer"
	}
	u := user{
		ID:           uuid.NewString(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hashed),
		UserType:     userType,
	}
	h.state.users = append(h.state.users, u)
	h.state.profiles[u.ID] = domain.Profile{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Phone:     req.Phone,
		UserType:  u.UserType,
	}
	c.JSON(http.StatusCreated, gin.H{"message": "confirmation email sent"})
}

func (h *handlers) forgotPassword(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "password reset email sent"})
}

func (h *handlers) resendConfirmation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "confirmation email sent"})
}

// requireAuth resolves the Bearer token to a fixture user and stores the id
// on the request context.
func (h *handlers) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}
	sub, _ := claims["sub"].(string)

	h.state.mu.Lock()
	_, found := h.state.userByID(sub)
	h.state.mu.Unlock()
	if !found {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unknown user"})
		return
	}
	c.Set("userID", sub)
	c.Next()
}

func currentUserID(c *gin.Context) string {
	return c.GetString("userID")
}
