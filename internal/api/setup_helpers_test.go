package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/armedhealth/armed/internal/db"
	"github.com/armedhealth/armed/internal/services"
)

const testSimulatorDelay = 20 * time.Millisecond

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	database, err := db.Open(filepath.Join(t.TempDir(), "armed.db"))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.Seed(database); err != nil {
		t.Fatalf("seed test database: %v", err)
	}

	// A long toast duration keeps messages readable within a test; the
	// simulator delay is short so arrival tests finish quickly.
	toaster := services.NewToaster(time.Minute)
	repositories := db.NewRepositories(database)
	simulator := services.NewNotificationSimulator(repositories.Notifications, testSimulatorDelay)
	t.Cleanup(func() {
		simulator.Stop()
		toaster.Stop()
	})

	handler := NewHandler(database, time.UTC, toaster, simulator)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)
	return app
}

func performRequest(t *testing.T, app *fiber.App, method string, path string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()

	defer response.Body.Close()
	var payload map[string]any
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func listField(t *testing.T, payload map[string]any, key string) []any {
	t.Helper()

	value, ok := payload[key].([]any)
	if !ok {
		t.Fatalf("response field %q is %T, want a list", key, payload[key])
	}
	return value
}

func numberField(t *testing.T, payload map[string]any, key string) float64 {
	t.Helper()

	value, ok := payload[key].(float64)
	if !ok {
		t.Fatalf("response field %q is %T, want a number", key, payload[key])
	}
	return value
}

func currentToast(t *testing.T, app *fiber.App) string {
	t.Helper()

	response := performRequest(t, app, http.MethodGet, "/api/toast", nil)
	if response.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/toast status = %d", response.StatusCode)
	}
	message, _ := decodeBody(t, response)["message"].(string)
	return message
}
