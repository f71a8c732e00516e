package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"magazine/internal/models"
	"magazine/internal/repository"
	"magazine/internal/session"
	"magazine/internal/validator"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	repo     repository.UserRepository
	sessions *session.Cache
}

func NewAuthController(repo repository.UserRepository, sessionCache *session.Cache) *AuthController {
	return &AuthController{repo: repo, sessions: sessionCache}
}

// SignUp godoc
// @Summary Register a reader account
// @Description Validate the sign-up form and create a user
// @Tags auth
// @Accept json
// @Produce json
// @Param form body validator.SignUpForm true "Sign-up form"
// @Success 201 {object} map[string]interface{} "Account created"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 409 {object} map[string]interface{} "Email already registered"
// @Failure 500 {object} map[string]interface{} "Sign-up failed"
// @Router /auth/signup [post]
func (ac *AuthController) SignUp(c *gin.Context) {
	var form validator.SignUpForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validator.ValidateSignUp(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Validation failed",
			"errors":  err,
		})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Sign-up failed. Please try again.",
			"error":   err.Error(),
		})
		return
	}

	user := models.User{
		Name:     form.Name,
		Phone:    validator.FormatPhone(form.Phone),
		Email:    form.Email,
		Password: string(hashed),
	}

	if err := ac.repo.CreateUser(&user); err != nil {
		if isDuplicateError(err) {
			c.JSON(http.StatusConflict, gin.H{
				"status":  "error",
				"message": "This email is already registered",
				"error":   "An account with this email exists",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Sign-up failed. Please try again.",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Account created. Please sign in.",
		"data":    nil,
	})
}

// SignIn godoc
// @Summary Sign in with email and password
// @Description Verify credentials, issue a JWT, and record the session hint
// @Tags auth
// @Accept json
// @Produce json
// @Param form body validator.SignInForm true "Sign-in form"
// @Success 200 {object} map[string]interface{} "Signed in"
// @Failure 400 {object} map[string]interface{} "Validation failed"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 500 {object} map[string]interface{} "Sign-in failed"
// @Router /auth/signin [post]
func (ac *AuthController) SignIn(c *gin.Context) {
	var form validator.SignInForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data",
			"error":   err.Error(),
		})
		return
	}

	if err := validator.ValidateSignIn(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Enter both email and password",
			"errors":  err,
		})
		return
	}

	user, err := ac.repo.GetUserByEmail(form.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Please check your email",
				"error":   "No account with this email",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Sign-in failed. Please try again.",
			"error":   err.Error(),
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(form.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Please check your password",
			"error":   "Password does not match",
		})
		return
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(time.Hour * 72).Unix(),
	})

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	tokenString, err := jwtToken.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Could not generate token",
			"error":   err.Error(),
		})
		return
	}

	// Cookie session carries a display hint only; /auth/me re-validates
	// against the store.
	cookieSession := sessions.Default(c)
	cookieSession.Set("email", user.Email)
	cookieSession.Set("name", user.Name)
	_ = cookieSession.Save()

	ac.sessions.Apply(session.Session{
		LoggedIn: true,
		Email:    user.Email,
		Name:     user.Name,
	})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Signed in successfully",
		"data":    tokenString,
	})
}

// SignOut godoc
// @Summary Sign out
// @Description Clear the session hint and broadcast the signed-out state
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "Signed out"
// @Router /auth/signout [post]
func (ac *AuthController) SignOut(c *gin.Context) {
	cookieSession := sessions.Default(c)
	cookieSession.Clear()
	_ = cookieSession.Save()

	ac.sessions.Apply(session.Session{})

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Signed out successfully",
		"data":    nil,
	})
}

// Me godoc
// @Summary Current account profile
// @Description Return the signed-in user's profile, re-validated against the store
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile retrieved"
// @Failure 401 {object} map[string]interface{} "Not signed in"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"status":  "error",
			"message": "Not signed in",
			"error":   "Missing authenticated user",
		})
		return
	}

	user, err := ac.repo.GetUserByID(userID.(uint))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "User not found",
			"error":   "No user exists for this session",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Profile retrieved successfully",
		"data": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
		},
	})
}

func isDuplicateError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
