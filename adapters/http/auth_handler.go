package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/baonguyen/folio-api/internal/application/usecase/auth"
	"github.com/baonguyen/folio-api/pkg/apperror"
	"github.com/baonguyen/folio-api/pkg/auth"
	"github.com/baonguyen/folio-api/pkg/logger"
)

type AuthHandler struct {
	registerUseCase *authUC.RegisterUseCase
	loginUseCase    *authUC.LoginUseCase
	getMeUseCase    *authUC.GetMeUseCase
	jwtSvc          *auth.JWTService
	cookies         *CookieManager
	logger          logger.Logger
}

func NewAuthHandler(
	registerUC *authUC.RegisterUseCase,
	loginUC *authUC.LoginUseCase,
	getMeUC *authUC.GetMeUseCase,
	jwtSvc *auth.JWTService,
	cookies *CookieManager,
	log logger.Logger,
) *AuthHandler {
	return &AuthHandler{
		registerUseCase: registerUC,
		loginUseCase:    loginUC,
		getMeUseCase:    getMeUC,
		jwtSvc:          jwtSvc,
		cookies:         cookies,
		logger:          log,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	output, err := h.registerUseCase.Execute(c.Request.Context(), authUC.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.cookies.SetSession(c, output.AccessToken, h.jwtSvc.TokenLifespan())
	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    ToUserDTO(output.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewValidation(toFieldErrors(err)))
		return
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, authUC.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Your email or password is incorrect"})
			return
		}
		c.Error(err)
		return
	}

	h.cookies.SetSession(c, output.AccessToken, h.jwtSvc.TokenLifespan())
	c.JSON(http.StatusOK, gin.H{
		"message":      "Login successful",
		"access_token": output.AccessToken,
		"user":         ToUserDTO(output.User),
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("userID not found in context"))
		return
	}

	output, err := h.getMeUseCase.Execute(c.Request.Context(), authUC.GetMeInput{UserID: userID})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToUserDTO(output.User))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.cookies.ClearSession(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
