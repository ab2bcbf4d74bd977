package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"airline_admin_go/models"
	"airline_admin_go/store"
)

func newCrudRouter[T any](records store.Records, plural, singular, keyField string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rc := NewResourceController[T](records, keyField)
	api := r.Group("/api")
	api.GET("/"+plural, rc.List)
	api.POST("/create"+singular, rc.Create)
	api.POST("/update"+singular, rc.Update)
	api.POST("/delete"+singular, rc.Delete)
	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func listRecords(t *testing.T, r http.Handler, path string) []map[string]interface{} {
	t.Helper()
	w := doJSON(t, r, http.MethodGet, path, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list %s: got status %d, body %s", path, w.Code, w.Body.String())
	}
	var resp struct {
		Response []map[string]interface{} `json:"response"`
	}
	decodeBody(t, w, &resp)
	return resp.Response
}

func countResult(t *testing.T, w *httptest.ResponseRecorder, field string) float64 {
	t.Helper()
	var resp struct {
		Response map[string]interface{} `json:"response"`
	}
	decodeBody(t, w, &resp)
	n, ok := resp.Response[field].(float64)
	if !ok {
		t.Fatalf("expected numeric %q in response, got %v", field, resp.Response)
	}
	return n
}

func TestUserLifecycle(t *testing.T) {
	r := newCrudRouter[models.User](store.NewMemoryRecords(), "users", "user", "id")

	w := doJSON(t, r, http.MethodPost, "/api/createuser", models.User{Id: 1, Name: "Ann"})
	if w.Code != http.StatusOK {
		t.Fatalf("create: got status %d, body %s", w.Code, w.Body.String())
	}
	doJSON(t, r, http.MethodPost, "/api/createuser", models.User{Id: 2, Name: "Bea"})

	users := listRecords(t, r, "/api/users")
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0]["id"] != float64(1) || users[0]["name"] != "Ann" {
		t.Fatalf("unexpected first user: %v", users[0])
	}

	w = doJSON(t, r, http.MethodPost, "/api/updateuser", models.User{Id: 1, Name: "Anne"})
	if got := countResult(t, w, "matched"); got != 1 {
		t.Fatalf("update: expected 1 match, got %v", got)
	}

	users = listRecords(t, r, "/api/users")
	if users[0]["name"] != "Anne" {
		t.Errorf("expected renamed user, got %v", users[0])
	}
	if users[1]["name"] != "Bea" {
		t.Errorf("other record must be untouched, got %v", users[1])
	}

	w = doJSON(t, r, http.MethodPost, "/api/deleteuser", map[string]int{"id": 1})
	if got := countResult(t, w, "deleted"); got != 1 {
		t.Fatalf("delete: expected 1 deletion, got %v", got)
	}
	for _, u := range listRecords(t, r, "/api/users") {
		if u["id"] == float64(1) {
			t.Fatalf("user 1 still listed after delete")
		}
	}

	// deleting again is a zero-match success, not an error
	w = doJSON(t, r, http.MethodPost, "/api/deleteuser", map[string]int{"id": 1})
	if w.Code != http.StatusOK {
		t.Fatalf("repeat delete: got status %d", w.Code)
	}
	if got := countResult(t, w, "deleted"); got != 0 {
		t.Fatalf("repeat delete: expected 0 deletions, got %v", got)
	}
}

func TestUpdateZeroMatch(t *testing.T) {
	r := newCrudRouter[models.Schedule](store.NewMemoryRecords(), "schedules", "schedule", "id")

	w := doJSON(t, r, http.MethodPost, "/api/updateschedule", models.Schedule{Id: 99, FlightName: "AA100"})
	if w.Code != http.StatusOK {
		t.Fatalf("got status %d, body %s", w.Code, w.Body.String())
	}
	if got := countResult(t, w, "matched"); got != 0 {
		t.Fatalf("expected 0 matches, got %v", got)
	}
}

func TestDuplicateIdsFirstMatch(t *testing.T) {
	r := newCrudRouter[models.Staff](store.NewMemoryRecords(), "staffs", "staff", "id")

	doJSON(t, r, http.MethodPost, "/api/createstaff", models.Staff{Id: 7, Name: "First", Role: "pilot"})
	doJSON(t, r, http.MethodPost, "/api/createstaff", models.Staff{Id: 7, Name: "Second", Role: "crew"})

	// duplicate ids coexist; update touches the first match in store order
	w := doJSON(t, r, http.MethodPost, "/api/updatestaff", models.Staff{Id: 7, Name: "Changed", Role: "pilot"})
	if got := countResult(t, w, "matched"); got != 1 {
		t.Fatalf("expected 1 match, got %v", got)
	}

	staff := listRecords(t, r, "/api/staffs")
	if staff[0]["name"] != "Changed" {
		t.Errorf("first record should be updated, got %v", staff[0])
	}
	if staff[1]["name"] != "Second" {
		t.Errorf("second record should be untouched, got %v", staff[1])
	}

	w = doJSON(t, r, http.MethodPost, "/api/deletestaff", map[string]int{"id": 7})
	if got := countResult(t, w, "deleted"); got != 1 {
		t.Fatalf("expected 1 deletion, got %v", got)
	}
	staff = listRecords(t, r, "/api/staffs")
	if len(staff) != 1 || staff[0]["name"] != "Second" {
		t.Fatalf("expected the second duplicate to survive, got %v", staff)
	}
}

func TestCheckUniqueKeyRejected(t *testing.T) {
	records := store.NewMemoryRecords()
	if err := records.EnsureUniqueIndex(context.Background(), "checkId"); err != nil {
		t.Fatalf("ensure index: %v", err)
	}
	r := newCrudRouter[models.Check](records, "checks", "check", "checkId")

	w := doJSON(t, r, http.MethodPost, "/api/createcheck", models.Check{CheckId: 5, PassengerName: "Ann", PassportNumber: "N123"})
	if w.Code != http.StatusOK {
		t.Fatalf("first create: got status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/createcheck", models.Check{CheckId: 5, PassengerName: "Bea", PassportNumber: "N456"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("duplicate create: got status %d, body %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "duplicate key") {
		t.Fatalf("expected duplicate key error in body, got %s", w.Body.String())
	}
}

func TestCreateStoresZeroValueDefaults(t *testing.T) {
	r := newCrudRouter[models.Booking](store.NewMemoryRecords(), "bookings", "booking", "id")

	doJSON(t, r, http.MethodPost, "/api/createbooking", map[string]interface{}{"id": 3, "from": "CMB"})

	bookings := listRecords(t, r, "/api/bookings")
	if len(bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(bookings))
	}
	b := bookings[0]
	if b["from"] != "CMB" {
		t.Errorf("supplied field lost: %v", b)
	}
	if b["passengers"] != float64(0) || b["flexibleDates"] != false || b["returnDate"] != "" {
		t.Errorf("absent fields must store as zero values, got %v", b)
	}
}
