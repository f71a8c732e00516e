package controllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"magazine/internal/models"
	"magazine/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupAuthRouter(mockRepo *MockUserRepository) (*gin.Engine, *session.Cache) {
	sessionCache := session.NewCache()
	controller := NewAuthController(mockRepo, sessionCache)

	router := setupTestRouter()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("magazine_session", store))
	router.POST("/auth/signup", controller.SignUp)
	router.POST("/auth/signin", controller.SignIn)
	router.POST("/auth/signout", controller.SignOut)
	return router, sessionCache
}

func postJSON(router *gin.Engine, url string, payload map[string]interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", url, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validSignUpPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":             "Reader",
		"phone":            "01012345678",
		"email":            "reader@example.com",
		"password":         "secret1",
		"confirm_password": "secret1",
	}
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name           string
		mutate         func(map[string]interface{})
		setupMock      func(*MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:   "successful sign-up",
			mutate: func(p map[string]interface{}) {},
			setupMock: func(m *MockUserRepository) {
				m.On("CreateUser", mock.AnythingOfType("*models.User")).Return(nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "Account created",
		},
		{
			name:           "short password",
			mutate:         func(p map[string]interface{}) { p["password"] = "abc"; p["confirm_password"] = "abc" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name:           "password mismatch",
			mutate:         func(p map[string]interface{}) { p["confirm_password"] = "different" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name:           "invalid phone",
			mutate:         func(p map[string]interface{}) { p["phone"] = "12345" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name:           "invalid email",
			mutate:         func(p map[string]interface{}) { p["email"] = "not-an-email" },
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Validation failed",
		},
		{
			name:   "duplicate email",
			mutate: func(p map[string]interface{}) {},
			setupMock: func(m *MockUserRepository) {
				m.On("CreateUser", mock.AnythingOfType("*models.User")).
					Return(errors.New(`duplicate key value violates unique constraint "uni_users_email"`))
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			router, _ := setupAuthRouter(mockRepo)

			payload := validSignUpPayload()
			tt.mutate(payload)
			w := postJSON(router, "/auth/signup", payload)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["message"], tt.expectedMsg)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSignUpNormalizesPhone(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
		return u.Phone == "010-1234-5678"
	})).Return(nil)
	router, _ := setupAuthRouter(mockRepo)

	w := postJSON(router, "/auth/signup", validSignUpPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSignUpHashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("CreateUser", mock.MatchedBy(func(u *models.User) bool {
		return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")) == nil
	})).Return(nil)
	router, _ := setupAuthRouter(mockRepo)

	w := postJSON(router, "/auth/signup", validSignUpPayload())

	assert.Equal(t, http.StatusCreated, w.Code)
	mockRepo.AssertExpectations(t)
}

func TestSignIn(t *testing.T) {
	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	existing := &models.User{Name: "Reader", Email: "reader@example.com", Password: string(hashed)}

	tests := []struct {
		name           string
		payload        map[string]interface{}
		setupMock      func(*MockUserRepository)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:    "successful sign-in",
			payload: map[string]interface{}{"email": "reader@example.com", "password": "secret1"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", "reader@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Signed in successfully",
		},
		{
			name:    "unknown email",
			payload: map[string]interface{}{"email": "nobody@example.com", "password": "secret1"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Please check your email",
		},
		{
			name:    "wrong password",
			payload: map[string]interface{}{"email": "reader@example.com", "password": "wrong"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", "reader@example.com").Return(existing, nil)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "Please check your password",
		},
		{
			name:           "missing fields",
			payload:        map[string]interface{}{"email": "", "password": ""},
			setupMock:      func(m *MockUserRepository) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Enter both email and password",
		},
		{
			name:    "store failure falls back to generic message",
			payload: map[string]interface{}{"email": "reader@example.com", "password": "secret1"},
			setupMock: func(m *MockUserRepository) {
				m.On("GetUserByEmail", "reader@example.com").Return(nil, errors.New("connection refused"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Sign-in failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET_KEY", "test-jwt-secret")

			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)
			router, _ := setupAuthRouter(mockRepo)

			w := postJSON(router, "/auth/signin", tt.payload)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Contains(t, response["message"], tt.expectedMsg)

			if tt.expectedStatus == http.StatusOK {
				assert.NotEmpty(t, response["data"])
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestSignInUpdatesSessionCache(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-jwt-secret")

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.DefaultCost)
	mockRepo := new(MockUserRepository)
	mockRepo.On("GetUserByEmail", "reader@example.com").
		Return(&models.User{Name: "Reader", Email: "reader@example.com", Password: string(hashed)}, nil)
	router, sessionCache := setupAuthRouter(mockRepo)

	var changes []session.Session
	sessionCache.Subscribe(func(s session.Session) {
		changes = append(changes, s)
	})

	w := postJSON(router, "/auth/signin", map[string]interface{}{
		"email": "reader@example.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, sessionCache.Current().LoggedIn)
	assert.Equal(t, "reader@example.com", sessionCache.Current().Email)

	w = postJSON(router, "/auth/signout", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, sessionCache.Current().LoggedIn)

	assert.Len(t, changes, 2)
}
