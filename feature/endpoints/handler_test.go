package endpoints

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"autoscan/core/reconcile"
	"autoscan/core/storage/mocks"
	"autoscan/feature/endpoints/models"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client, *gorm.DB) {
	svc, db := setupService(t)
	mockClient := new(mocks.Client)
	svc.client = mockClient
	svc.bucket = "test-bucket"

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, mockClient, db
}

func postScan(t *testing.T, app *fiber.App, body string) (int, ScanResponse) {
	t.Helper()
	req := httptest.NewRequest("POST", "/scans", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	var out ScanResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestHandleScan(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := postScan(t, app, `{"device":"T10123456789","location":"PN12340V5"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, "0123456789", body.NetworkID)
	assert.Equal(t, string(reconcile.OutcomeInserted), body.Outcome)
	assert.Equal(t, string(reconcile.ActionInsert), body.Action)
	assert.Equal(t, ExitOK, body.ExitCode)

	status, body = postScan(t, app, `{"device":"T10123456789"}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, string(reconcile.OutcomeCleared), body.Outcome)
}

func TestHandleScan_Outcomes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		status   int
		exitCode int
	}{
		{"Unknown device removal", `{"device":"0999999999"}`, 404, ExitNotFound},
		{"Blocked removal", `{"device":"0123456789"}`, 409, ExitBlocked},
		{"Unrecognized location", `{"device":"0123456789","location":"NOWHERE"}`, 422, ExitUnrecognized},
		{"Empty device", `{"device":"  ","location":"S42"}`, 422, ExitUnrecognized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, _, db := setupTestApp(t)
			user := "jsmith"
			require.NoError(t, db.Create(&models.Endpoint{NetworkID: "0123456789", Location: "4", User: &user}).Error)

			status, body := postScan(t, app, tt.body)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.exitCode, body.ExitCode)
		})
	}
}

func TestHandleScan_EmptyLocationKeepsPlacement(t *testing.T) {
	app, _, db := setupTestApp(t)

	status, _ := postScan(t, app, `{"device":"T10123456789","location":"PN12340V5"}`)
	require.Equal(t, 200, status)

	status, body := postScan(t, app, `{"device":"T10123456789","location":""}`)
	assert.Equal(t, 422, status)
	assert.Equal(t, ExitUnrecognized, body.ExitCode)
	assert.Equal(t, "12N34", loadRow(t, db, "0123456789").Location)

	status, body = postScan(t, app, `{"device":"T10123456789","location":null}`)
	assert.Equal(t, 200, status)
	assert.Equal(t, string(reconcile.OutcomeCleared), body.Outcome)
}

func TestHandleScan_InvalidBody(t *testing.T) {
	app, _, _ := setupTestApp(t)

	status, body := postScan(t, app, `{not json`)
	assert.Equal(t, 400, status)
	assert.Equal(t, "invalid request body", body.Error)
}

func TestHandleDecode(t *testing.T) {
	app, _, db := setupTestApp(t)

	req := httptest.NewRequest("GET", "/decode?device=T20123456789&location=PE56782S240", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "0123456789", body["device"]["network_id"])
	assert.Equal(t, "T2", body["device"]["prefix"])
	assert.Equal(t, "56E78", body["location"]["location"])
	assert.Equal(t, "2S", body["location"]["socket_form"])
	assert.Zero(t, countRows(t, db))

	req = httptest.NewRequest("GET", "/decode?device=0123456789&location=X", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	req = httptest.NewRequest("GET", "/decode?device=0123456789&location=", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 422, resp.StatusCode)

	req = httptest.NewRequest("GET", "/decode?device=0123456789", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestHandleGetEndpoint(t *testing.T) {
	app, _, _ := setupTestApp(t)

	req := httptest.NewRequest("GET", "/endpoints/T10123456789", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	postScan(t, app, `{"device":"T10123456789","location":"S42"}`)

	req = httptest.NewRequest("GET", "/endpoints/T10123456789", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var rec reconcile.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rec))
	assert.Equal(t, "0123456789", rec.NetworkID)
	assert.Equal(t, "4", rec.Location)
	assert.Equal(t, "S-", rec.LocationPrefix)
}

func TestHandleExport(t *testing.T) {
	app, mockClient, _ := setupTestApp(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("PutObject", mock.Anything, "test-bucket", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{Size: 42}, nil)

	req := httptest.NewRequest("POST", "/endpoints/export", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.StatusCode)

	var report ExportReport
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&report))
	assert.Equal(t, "test-bucket", report.Bucket)
	assert.EqualValues(t, 42, report.Size)
	mockClient.AssertExpectations(t)
}

func TestStatusForExitCode(t *testing.T) {
	assert.Equal(t, 200, statusForExitCode(ExitOK))
	assert.Equal(t, 503, statusForExitCode(ExitConnection))
	assert.Equal(t, 500, statusForExitCode(ExitCommit))
	assert.Equal(t, 409, statusForExitCode(ExitBlocked))
	assert.Equal(t, 422, statusForExitCode(ExitUnrecognized))
	assert.Equal(t, 404, statusForExitCode(ExitNotFound))
}
