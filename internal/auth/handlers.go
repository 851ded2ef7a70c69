package auth

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Credentials is the request body of both register and login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by a successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// Controller handles the authentication HTTP endpoints.
type Controller struct {
	service     *Service
	rateLimiter *RateLimiter
}

// NewController creates a new authentication controller. The limiter may be
// nil to disable login throttling.
func NewController(service *Service, rateLimiter *RateLimiter) *Controller {
	return &Controller{
		service:     service,
		rateLimiter: rateLimiter,
	}
}

// RegisterRoutes mounts the auth endpoints on the given group.
func (ac *Controller) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/register", ac.Register)
	group.POST("/login", ac.Login)
}

// Register creates a new account.
func (ac *Controller) Register(c *gin.Context) {
	var req Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	if _, err := ac.service.Register(req.Email, req.Password); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": verr.Errors})
			return
		}
		log.Printf("Registration failed: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// Login exchanges credentials for a bearer token.
func (ac *Controller) Login(c *gin.Context) {
	var req Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": []string{"Invalid request body"}})
		return
	}

	ip := c.ClientIP()
	if ac.rateLimiter != nil {
		if allowed, retryAfter := ac.rateLimiter.Allow(ip, req.Email); !allowed {
			c.Header("Retry-After", retryAfterSeconds(retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{"message": "Too many login attempts"})
			return
		}
	}

	result, err := ac.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			if ac.rateLimiter != nil {
				if locked, _ := ac.rateLimiter.RecordFailure(ip, req.Email); locked {
					log.Printf("Login locked out for %s from %s", req.Email, ip)
				}
			}
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
			return
		}
		log.Printf("Login failed: %v", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	if ac.rateLimiter != nil {
		ac.rateLimiter.RecordSuccess(ip, req.Email)
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:  result.Token,
		Email:  result.Email,
		UserID: result.UserID,
	})
}

// Stop releases the rate limiter's background goroutine.
func (ac *Controller) Stop() {
	if ac.rateLimiter != nil {
		ac.rateLimiter.Stop()
	}
}
