package integrity

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"autoscan/core/database"
	"autoscan/feature/endpoints/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	app := fiber.New()
	NewHandler(NewService(db, zap.NewNop())).RegisterRoutes(app)
	return app, db
}

func TestHandleSchemaCheck(t *testing.T) {
	app, db := setupTestApp(t)

	req := httptest.NewRequest("GET", "/integrity/schema", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["matched"])
	assert.NotEmpty(t, body["missing_columns"])

	require.NoError(t, db.AutoMigrate(&models.Endpoint{}))

	resp, err = app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["matched"])
	assert.Equal(t, "endpoints", body["table"])
}

func TestHandleSchemaCheck_NoDatabase(t *testing.T) {
	app := fiber.New()
	NewHandler(NewService(nil, zap.NewNop())).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/schema", nil))
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
}
