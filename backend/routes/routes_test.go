package routes_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnhub/backend/auth"
	"learnhub/backend/config"
	"learnhub/backend/exam"
	"learnhub/backend/routes"
	"learnhub/backend/store"
)

// newTestApp wires a full application against fresh in-memory stores. Each
// test gets its own app because the active session is process-wide.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWTSecret:  "testsecret",
		ServerPort: "8080",
		StateFile:  filepath.Join(t.TempDir(), "state.json"),
	}

	sessions := store.NewSessionStore()
	catalog := store.NewCatalogStore()
	prefs := store.NewPrefsStore(cfg.StateFile)

	svc := &routes.Services{
		Sessions: sessions,
		Catalog:  catalog,
		Prefs:    prefs,
		Auth:     auth.NewService(sessions, prefs),
		Exams:    exam.NewManager(catalog),
	}

	app := fiber.New()
	routes.SetupRoutes(app, svc, cfg)
	return app
}

func request(method, path, token string, body interface{}) *http.Request {
	var buf *bytes.Buffer
	if body != nil {
		jsonData, _ := json.Marshal(body)
		buf = bytes.NewBuffer(jsonData)
	} else {
		buf = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	return req
}

func decode(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	return result
}

// login authenticates and returns the issued token.
func login(t *testing.T, app *fiber.App, email, password string) string {
	t.Helper()

	resp, err := app.Test(request("POST", "/api/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	require.NotEmpty(t, result["token"])
	return result["token"].(string)
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	// Unknown emails get the demo super-user.
	resp, err := app.Test(request("POST", "/api/auth/login", "", map[string]string{
		"email":    "anyone@example.com",
		"password": "whatever",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	assert.NotEmpty(t, result["token"])
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "1", user["id"])
	assert.Equal(t, "admin", user["role"])

	// Directory accounts must present the right password.
	resp, err = app.Test(request("POST", "/api/auth/login", "", map[string]string{
		"email":    "maria.gomez@learnhub.io",
		"password": "wrong",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Empty credentials are rejected.
	resp, err = app.Test(request("POST", "/api/auth/login", "", map[string]string{}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestUnauthenticatedRequestsRedirectToLogin(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{"/api/user/profile", "/api/dashboard", "/api/courses"} {
		resp, err := app.Test(request("GET", path, "", nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
	}
}

func TestTokenIsUselessAfterLogout(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("POST", "/api/auth/logout", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp, err = app.Test(request("GET", "/api/user/profile", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
}

func TestGetProfile(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("GET", "/api/user/profile", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	assert.Equal(t, "maria.gomez@learnhub.io", result["email"])
	assert.Equal(t, "learner", result["role"])
}

func TestNavigationReflectsActiveRole(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("GET", "/api/navigation", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))

	got := make([]string, len(items))
	for i, item := range items {
		got[i] = item["path"].(string)
	}
	assert.Equal(t, []string{"/dashboard", "/courses", "/assignments", "/grades"}, got)
}

func TestRoleGateRedirectsToDashboard(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("GET", "/api/teaching", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))

	resp, err = app.Test(request("POST", "/api/admin/courses/", token, map[string]string{
		"title": "Nope",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestSwitchRole(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin@learnhub.io", "admin123")

	// As admin, the learner view is gated off.
	resp, err := app.Test(request("GET", "/api/my-learning", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)

	resp, err = app.Test(request("POST", "/api/auth/role", token, map[string]string{
		"role": "learner",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	user := result["user"].(map[string]interface{})
	assert.Equal(t, "learner", user["role"])

	// Same token, new role: the learner view opens up.
	resp, err = app.Test(request("GET", "/api/my-learning", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSwitchRoleRejectsUnavailableRole(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("POST", "/api/auth/role", token, map[string]string{
		"role": "admin",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSidebarPreferenceRoundTrip(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "maria.gomez@learnhub.io", "learner123")

	resp, err := app.Test(request("GET", "/api/preferences/sidebar", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, false, decode(t, resp)["collapsed"])

	resp, err = app.Test(request("PUT", "/api/preferences/sidebar", token, map[string]bool{
		"collapsed": true,
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(request("GET", "/api/preferences/sidebar", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, true, decode(t, resp)["collapsed"])
}

func TestGetCourses(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("GET", "/api/courses", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var courses []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&courses))
	assert.Len(t, courses, 6)
}

func TestGetCourseDetails(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("GET", "/api/courses/course-1", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	course := result["course"].(map[string]interface{})
	assert.Equal(t, "course-1", course["id"])
	assert.NotEmpty(t, course["modules"])

	// The demo user is seeded with an enrollment in course-1.
	enrollment := result["enrollment"].(map[string]interface{})
	assert.Equal(t, float64(75), enrollment["progress"])

	resp, err = app.Test(request("GET", "/api/courses/course-999", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestDashboardOverview(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("GET", "/api/dashboard", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	overview := result["overview"].(map[string]interface{})
	assert.Equal(t, float64(3), overview["enrolled"])
	assert.Equal(t, float64(1), overview["completed"])
	assert.Equal(t, float64(2), overview["in_progress"])
}

func TestEnrollAndUpdateProgress(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("POST", "/api/courses/course-2/enroll", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = app.Test(request("POST", "/api/courses/course-2/progress", token, map[string]int{
		"progress":         50,
		"completedLessons": 3,
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	result := decode(t, resp)
	progress := result["progress"].(map[string]interface{})
	assert.Equal(t, float64(50), progress["progress"])
	assert.Equal(t, "in-progress", progress["status"])

	// No enrollment means no progress row to update.
	resp, err = app.Test(request("POST", "/api/courses/course-4/progress", token, map[string]int{
		"progress": 10,
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestExamFlow(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("POST", "/api/courses/course-2/enroll", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	base := "/api/courses/course-2/exam/course-2-exam"

	// Locked: no questions are exposed.
	resp, err = app.Test(request("GET", base, token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result := decode(t, resp)
	assert.Equal(t, "locked", result["state"])
	assert.NotContains(t, result, "questions")

	// A wrong password keeps it locked.
	resp, err = app.Test(request("POST", base+"/unlock", token, map[string]string{
		"password": "wrong",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, err = app.Test(request("POST", base+"/unlock", token, map[string]string{
		"password": "secret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "unlocked", decode(t, resp)["state"])

	resp, err = app.Test(request("POST", base+"/start", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decode(t, resp)
	assert.Equal(t, "in-progress", result["state"])
	assert.Equal(t, float64(30*60), result["remaining"])
	assert.Len(t, result["questions"], 4)

	for qID, idx := range map[string]int{
		"course-2-q1": 1,
		"course-2-q2": 1,
		"course-2-q3": 2,
		"course-2-q4": 1,
	} {
		resp, err = app.Test(request("POST", base+"/answer", token, map[string]interface{}{
			"questionId":  qID,
			"optionIndex": idx,
		}))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	resp, err = app.Test(request("POST", base+"/submit", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	result = decode(t, resp)
	assert.Equal(t, "finished", result["state"])
	graded := result["result"].(map[string]interface{})
	assert.Equal(t, float64(100), graded["score"])
	assert.Equal(t, true, graded["passed"])

	// Passing marked one of the five lessons complete and rescanned progress.
	resp, err = app.Test(request("GET", "/api/courses/course-2", token, nil))
	require.NoError(t, err)
	enrollment := decode(t, resp)["enrollment"].(map[string]interface{})
	assert.Equal(t, float64(20), enrollment["progress"])
	assert.Equal(t, float64(1), enrollment["completedLessons"])
}

func TestExamCannotStartWhileLocked(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	resp, err := app.Test(request("POST", "/api/courses/course-1/exam/course-1-exam/start", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestExamInvalidLessonRedirectsToCourse(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	// Unknown lesson id.
	resp, err := app.Test(request("GET", "/api/courses/course-1/exam/nope", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/courses/course-1", resp.Header.Get("Location"))

	// A lesson that exists but is not an exam.
	resp, err = app.Test(request("GET", "/api/courses/course-1/exam/course-1-lesson-1", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/courses/course-1", resp.Header.Get("Location"))
}

func TestExamCancelReturnsToCourse(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "jayden@example.com", "password")

	base := "/api/courses/course-3/exam/course-3-exam"

	resp, err := app.Test(request("POST", base+"/unlock", token, map[string]string{
		"password": "secret",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(request("POST", base+"/start", token, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(request("POST", base+"/cancel", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/courses/course-3", resp.Header.Get("Location"))
}

func TestAdminCourseManagement(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "admin@learnhub.io", "admin123")

	resp, err := app.Test(request("POST", "/api/admin/courses/", token, map[string]interface{}{
		"title":      "Bankruptcy Basics",
		"category":   "Legal",
		"difficulty": "intermediate",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decode(t, resp)["course"].(map[string]interface{})
	courseID := created["id"].(string)
	require.NotEmpty(t, courseID)

	resp, err = app.Test(request("PUT", "/api/admin/courses/"+courseID, token, map[string]string{
		"title": "Bankruptcy Fundamentals",
	}))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	updated := decode(t, resp)["course"].(map[string]interface{})
	assert.Equal(t, "Bankruptcy Fundamentals", updated["title"])

	resp, err = app.Test(request("DELETE", "/api/admin/courses/"+courseID, token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(request("DELETE", "/api/admin/courses/"+courseID, token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
