package identity

import (
	"net/http"

	"github.com/beka-birhanu/snowmaze/service/i"
	"github.com/gin-gonic/gin"
)

// IdentityServer handles HTTP requests related to authentication.
type IdentityServer struct {
	authService i.Authenticator
	userRepo    i.UserRepo
}

// NewIdentityServer creates a new IdentityServer.
func NewIdentityServer(a i.Authenticator, ur i.UserRepo) *IdentityServer {
	return &IdentityServer{
		authService: a,
		userRepo:    ur,
	}
}

// RegisterPublic registers public routes.
func (c *IdentityServer) RegisterPublic(route *gin.RouterGroup) {
	auth := route.Group("/auth")
	{
		auth.POST("/register", c.registerUser)
		auth.POST("/login", c.login)
	}
}

// RegisterProtected registers privileged routes.
func (c *IdentityServer) RegisterProtected(route *gin.RouterGroup) {
	route.GET("/auth/me", c.me)
}

// registerUser handles user registration.
func (c *IdentityServer) registerUser(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := c.authService.Register(request.Username, request.Password)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response := gin.H{"message": "User registered successfully"}
	ctx.JSON(http.StatusCreated, response)
}

// login handles user login.
func (c *IdentityServer) login(ctx *gin.Context) {
	var request AuthRequest

	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := c.authService.SignIn(request.Username, request.Password)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	response := &AuthResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Escapes:         user.Escapes,
		Captures:        user.Captures,
		BestEscapeTicks: user.BestEscapeTicks,
		Token:           token,
	}
	ctx.JSON(http.StatusOK, response)
}

// me echoes the identity carried by the access token.
func (c *IdentityServer) me(ctx *gin.Context) {
	playerID, err := PlayerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userRepo.ByID(playerID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &AuthResponse{
		ID:              user.ID.String(),
		Username:        user.Username,
		Escapes:         user.Escapes,
		Captures:        user.Captures,
		BestEscapeTicks: user.BestEscapeTicks,
	})
}
