package stubserver

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/domain"
)

var errEmailTaken = errors.New("email already registered")

const userContextKey = "user"

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

type orderRequest struct {
	UserID  string             `json:"user_id" binding:"required"`
	Date    string             `json:"date" binding:"required"`
	Total   float64            `json:"total" binding:"required,min=0"`
	Payment string             `json:"payment" binding:"required"`
	Address string             `json:"address" binding:"required"`
	Items   []domain.OrderItem `json:"items" binding:"required,min=1,dive"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
		return
	}

	user, err := s.register(req.Email, req.Name, req.Password)
	if errors.Is(err, errEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		s.logger.Error("Failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) handleToken(c *gin.Context) {
	email := c.PostForm("username")
	password := c.PostForm("password")

	acct, ok := s.authenticate(email, password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	token := uuid.NewString()
	s.issueToken(acct.user.Email, token)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) handleListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, s.products)
}

func (s *Server) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		user, ok := s.userForToken(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *domain.User {
	return c.MustGet(userContextKey).(*domain.User)
}

func (s *Server) handleMe(c *gin.Context) {
	// Re-read the account so points accrued since login are visible.
	user := currentUser(c)
	fresh, ok := s.userForToken(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	if ok {
		user = fresh
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"details": err.Error(),
		})
		return
	}

	user := currentUser(c)
	if req.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "order user does not match token"})
		return
	}

	confirmation := domain.OrderConfirmation{
		ID:      uuid.NewString(),
		Date:    req.Date,
		Total:   req.Total,
		Payment: req.Payment,
		Address: req.Address,
		Items:   req.Items,
	}
	if confirmation.Date == "" {
		confirmation.Date = time.Now().UTC().Format(time.RFC3339)
	}

	s.recordOrder(user.Email, confirmation)
	s.logger.Info("Order recorded",
		zap.String("order_id", confirmation.ID),
		zap.String("user_id", user.ID),
		zap.Float64("total", confirmation.Total),
	)

	c.JSON(http.StatusOK, confirmation)
}
