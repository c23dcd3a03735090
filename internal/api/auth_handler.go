package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"manisera/affirmation-app/internal/domain"
	"manisera/affirmation-app/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

// PreferencesRequest carries the tunable profile settings.
type PreferencesRequest struct {
	FocusArea string `json:"focusArea" binding:"required,oneof=bani sanatate iubire incredere calm focus"`
	Intensity string `json:"intensity" binding:"required,oneof=gentle moderate intense"`
	Style     string `json:"style" binding:"required,oneof=classic modern spiritual"`
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`

	// Onboarding answers, all optional.
	BirthDate      string              `json:"birthDate,omitempty"`
	Gender         string              `json:"gender,omitempty"`
	Preferences    *PreferencesRequest `json:"preferences,omitempty"`
	Goals          []string            `json:"goals,omitempty"`
	Experience     string              `json:"experience,omitempty" binding:"omitempty,oneof=incepator mediu avansat"`
	Motivation     string              `json:"motivation,omitempty"`
	TimePreference string              `json:"timePreference,omitempty" binding:"omitempty,oneof=dimineata dupa-amiaza seara flexibil"`
}

// UserResponse excludes sensitive info like password hash
type UserResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	BirthDate      string             `json:"birthDate,omitempty"`
	Gender         string             `json:"gender,omitempty"`
	Preferences    domain.Preferences `json:"preferences"`
	Goals          []string           `json:"goals,omitempty"`
	Experience     string             `json:"experience,omitempty"`
	Motivation     string             `json:"motivation,omitempty"`
	TimePreference string             `json:"timePreference,omitempty"`
	CreatedAt      time.Time          `json:"createdAt"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new user
// @Description Creates a new account, capturing the onboarding answers.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "Registration details"
// @Success 201 {object} UserResponse "User created successfully"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 409 {object} gin.H "Conflict (email already exists)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	// Bind JSON request body and perform validation based on `binding` tags
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	input := service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		BirthDate:      req.BirthDate,
		Gender:         req.Gender,
		Goals:          req.Goals,
		Experience:     domain.Experience(req.Experience),
		Motivation:     req.Motivation,
		TimePreference: domain.TimePreference(req.TimePreference),
	}
	if req.Preferences != nil {
		input.Preferences = &domain.Preferences{
			FocusArea: domain.FocusCategory(req.Preferences.FocusArea),
			Intensity: domain.Intensity(req.Preferences.Intensity),
			Style:     domain.Style(req.Preferences.Style),
		}
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		// Handle specific service errors
		if errors.Is(err, service.ErrUserAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrInvalidPreferences) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else if errors.Is(err, service.ErrHashingFailed) {
			abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	// Return the created user details (without password hash)
	c.JSON(http.StatusCreated, MapUserToResponse(user))
}

// Login godoc
// @Summary Log in a user
// @Description Authenticates a user and returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized (invalid credentials)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, service.ErrTokenGeneration) {
			abortWithError(c, http.StatusInternalServerError, "Could not process login")
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "User not found"
// @Router /users/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleRepoError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// UpdatePreferences godoc
// @Summary Update the authenticated user's preferences
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body PreferencesRequest true "New preferences"
// @Success 200 {object} UserResponse
// @Failure 400 {object} gin.H "Invalid input"
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /users/me/preferences [put]
func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	userID, err := getUserObjectIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, err.Error())
		return
	}

	var req PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	prefs := domain.Preferences{
		FocusArea: domain.FocusCategory(req.FocusArea),
		Intensity: domain.Intensity(req.Intensity),
		Style:     domain.Style(req.Style),
	}
	user, err := h.authService.UpdatePreferences(c.Request.Context(), userID, prefs)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPreferences) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		handleRepoError(c, err, "User")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// MapUserToResponse converts a domain User to a UserResponse DTO.
// Crucially excludes PasswordHash and converts ObjectIDs to strings.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{
		ID:             user.ID.Hex(),
		Name:           user.Name,
		Email:          user.Email,
		BirthDate:      user.BirthDate,
		Gender:         user.Gender,
		Preferences:    user.Preferences,
		Goals:          user.Goals,
		Experience:     string(user.Experience),
		Motivation:     user.Motivation,
		TimePreference: string(user.TimePreference),
		CreatedAt:      user.CreatedAt,
	}
}
