package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/buildledger/database"
	"github.com/buildledger/models"
	"github.com/buildledger/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()

	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("GEMINI_API_KEY", "")
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(database.AllModels()...))
	database.Use(conn)
	t.Cleanup(func() { database.Use(nil) })

	router := gin.New()
	RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerAndLogin bootstraps a company owner and returns a bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":       email,
		"password":    "secret123",
		"name":        "Test Owner",
		"companyName": "Test Builders",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHealthCheck(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthFlow(t *testing.T) {
	router := setupTestAPI(t)
	token := registerAndLogin(t, router, "owner@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "owner@example.com")

	// Duplicate registration is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":       "owner@example.com",
		"password":    "secret123",
		"name":        "Again",
		"companyName": "Other Co",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password is rejected.
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    "owner@example.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectEndpointsRequireAuth(t *testing.T) {
	router := setupTestAPI(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/projects", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/dashboard", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProjectCRUD(t *testing.T) {
	router := setupTestAPI(t)
	token := registerAndLogin(t, router, "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/projects", token, gin.H{
		"name":   "Downtown Tower",
		"client": "Metro Corp",
		"budget": 500000,
		"status": "ongoing",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/projects", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Downtown Tower")

	w = doJSON(t, router, http.MethodGet, "/api/v1/projects/"+created.Data.ID+"/stats", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "percentUsed")

	w = doJSON(t, router, http.MethodPut, "/api/v1/projects/"+created.Data.ID, token, gin.H{
		"budget": 600000,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/projects/"+created.Data.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestProjectCreate_RejectsInvalidStatus(t *testing.T) {
	router := setupTestAPI(t)
	token := registerAndLogin(t, router, "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/projects", token, gin.H{
		"name":   "Bad Status",
		"budget": 1000,
		"status": "cancelled",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// memberToken adds a member-role user to the first seeded company and
// returns a bearer token for them.
func memberToken(t *testing.T) string {
	t.Helper()

	db := database.DB()
	var company models.Company
	require.NoError(t, db.First(&company).Error)

	member := models.User{
		Email:     "member@example.com",
		Password:  "irrelevant-hash",
		Name:      "Site Member",
		Role:      models.RoleMember,
		CompanyID: company.ID,
	}
	require.NoError(t, db.Create(&member).Error)

	token, _, err := services.GenerateToken(member.ID, member.Email, string(member.Role), member.CompanyID)
	require.NoError(t, err)
	return token
}

func TestPurchaseMutationsRequireManagerRole(t *testing.T) {
	router := setupTestAPI(t)
	ownerToken := registerAndLogin(t, router, "owner@example.com")
	token := memberToken(t)

	db := database.DB()
	var company models.Company
	require.NoError(t, db.First(&company).Error)

	project := models.Project{Name: "Downtown Tower", Budget: 500000, Status: models.ProjectStatusOngoing, CompanyID: company.ID}
	require.NoError(t, db.Create(&project).Error)
	phase := models.Phase{Name: "Grey", Budget: 100000, ProjectID: project.ID, CompanyID: company.ID}
	require.NoError(t, db.Create(&phase).Error)
	category := models.Category{Name: "Materials", PhaseID: phase.ID, CompanyID: company.ID}
	require.NoError(t, db.Create(&category).Error)
	item := models.Item{Name: "Portland Cement", Unit: "bag", Rate: 12, CategoryID: category.ID, CompanyID: company.ID}
	require.NoError(t, db.Create(&item).Error)

	// Members may read and record purchases.
	w := doJSON(t, router, http.MethodPost, "/api/v1/purchases", token, gin.H{
		"itemId":       item.ID,
		"categoryId":   category.ID,
		"phaseId":      phase.ID,
		"projectId":    project.ID,
		"quantity":     10,
		"pricePerUnit": 12,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.Data.ID)

	w = doJSON(t, router, http.MethodGet, "/api/v1/purchases", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Changing or removing a record needs owner or admin.
	w = doJSON(t, router, http.MethodPut, "/api/v1/purchases/"+created.Data.ID, token, gin.H{
		"quantity": 99,
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/purchases/"+created.Data.ID, token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	// The owner still can.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/purchases/"+created.Data.ID, ownerToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatEndpoint(t *testing.T) {
	router := setupTestAPI(t)
	token := registerAndLogin(t, router, "owner@example.com")

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", token, gin.H{
		"query": "Give me a summary of all projects",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var env struct {
		Message   string `json:"message"`
		Intent    string `json:"intent"`
		Timestamp string `json:"timestamp"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "project_summary", env.Intent)
	assert.NotEmpty(t, env.Message)
	assert.NotEmpty(t, env.Timestamp)
}

func TestPurchasesCSVExport(t *testing.T) {
	router := setupTestAPI(t)
	token := registerAndLogin(t, router, "owner@example.com")

	w := doJSON(t, router, http.MethodGet, "/api/v1/reports/purchases.csv", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "date,item,quantity")
}
