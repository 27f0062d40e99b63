package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"booking-backend/controllers"
	"booking-backend/models"
	"booking-backend/routes"
	"booking-backend/services"
)

var base = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	userSvc := services.NewUserService(db)
	hotelSvc := services.NewHotelService(db)
	roomSvc := services.NewRoomService(db)
	bookingSvc := services.NewBookingService(db)

	return routes.SetupRouter(
		controllers.NewUserController(userSvc),
		controllers.NewHotelController(hotelSvc),
		controllers.NewRoomController(roomSvc),
		controllers.NewBookingController(bookingSvc, hotelSvc),
	)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, decoded
}

func entityID(t *testing.T, resp map[string]interface{}) string {
	t.Helper()
	data, ok := resp["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	id, ok := data["id"].(string)
	if !ok {
		t.Fatalf("response data has no id: %v", data)
	}
	return id
}

func TestHealthEndpoints(t *testing.T) {
	r := newTestRouter(t)
	for _, path := range []string{"/health", "/api/users/health", "/api/hotels/health"} {
		w, _ := doJSON(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, want 200", path, w.Code)
		}
	}
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"name":         "Ada",
		"surname":      "Lovelace",
		"email":        "Ada.Lovelace@Example.COM",
		"phone_number": "+1-555-000",
		"status":       "active",
	}

	w, resp := doJSON(t, r, http.MethodPost, "/api/users", payload)
	if w.Code != http.StatusCreated {
		t.Fatalf("create user = %d (%v), want 201", w.Code, resp)
	}
	data := resp["data"].(map[string]interface{})
	if data["email"] != "ada.lovelace@example.com" {
		t.Fatalf("stored email = %v, want normalized lowercase", data["email"])
	}
	userID := entityID(t, resp)

	// Duplicate email, different casing.
	w, _ = doJSON(t, r, http.MethodPost, "/api/users", payload)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate user = %d, want 409", w.Code)
	}

	// Malformed id is rejected before storage access.
	w, _ = doJSON(t, r, http.MethodGet, "/api/users/not-a-uuid", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("malformed id = %d, want 400", w.Code)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/users/"+userID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get user = %d, want 200", w.Code)
	}

	// Update with no fields.
	w, _ = doJSON(t, r, http.MethodPut, "/api/users/"+userID, map[string]interface{}{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("empty update = %d, want 400", w.Code)
	}

	w, resp = doJSON(t, r, http.MethodPut, "/api/users/"+userID, map[string]interface{}{"status": "inactive"})
	if w.Code != http.StatusOK {
		t.Fatalf("update user = %d (%v), want 200", w.Code, resp)
	}

	w, resp = doJSON(t, r, http.MethodDelete, "/api/users/"+userID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete user = %d, want 200", w.Code)
	}
	data = resp["data"].(map[string]interface{})
	if msg, _ := data["message"].(string); !strings.Contains(msg, "deleted") {
		t.Fatalf("delete confirmation = %v, want message", data)
	}

	w, _ = doJSON(t, r, http.MethodGet, "/api/users/"+userID, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get deleted user = %d, want 404", w.Code)
	}
}

func TestBookingAdmissionOverHTTP(t *testing.T) {
	r := newTestRouter(t)

	w, resp := doJSON(t, r, http.MethodPost, "/api/hotels", map[string]interface{}{
		"name":      "Palace",
		"email":     "palace@example.com",
		"address":   "1 Main Street",
		"city":      "City",
		"country":   "Country",
		"amenities": []string{"wifi", "parking"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create hotel = %d (%v), want 201", w.Code, resp)
	}
	hotelID := entityID(t, resp)

	w, resp = doJSON(t, r, http.MethodPost, "/api/hotels/rooms", map[string]interface{}{
		"hotel_id": hotelID,
		"number":   "101",
		"size":     "double",
		"price":    100,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create room = %d (%v), want 201", w.Code, resp)
	}
	roomID := entityID(t, resp)

	// Taken room number.
	w, _ = doJSON(t, r, http.MethodPost, "/api/hotels/rooms", map[string]interface{}{
		"hotel_id": hotelID,
		"number":   "101",
		"size":     "single",
		"price":    80,
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate room number = %d, want 409", w.Code)
	}

	guestID := "b2d7f7f2-9c3e-4f4e-8b1a-000000000001"
	book := func(startDay, endDay int, status string) (*httptest.ResponseRecorder, map[string]interface{}) {
		body := map[string]interface{}{
			"guest_id":   guestID,
			"room_id":    roomID,
			"start_date": base.AddDate(0, 0, startDay).Format(time.RFC3339),
			"end_date":   base.AddDate(0, 0, endDay).Format(time.RFC3339),
		}
		if status != "" {
			body["status"] = status
		}
		return doJSON(t, r, http.MethodPost, fmt.Sprintf("/api/hotels/%s/bookings", hotelID), body)
	}

	w, resp = book(0, 2, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("first booking = %d (%v), want 201", w.Code, resp)
	}
	result := resp["data"].(map[string]interface{})
	if result["status"] != "confirmed" {
		t.Fatalf("result = %v, want confirmed", result)
	}
	bookingID := result["booking_id"].(string)

	// Overlapping stay is denied with the typed result.
	w, resp = book(1, 3, "")
	if w.Code != http.StatusConflict {
		t.Fatalf("overlapping booking = %d (%v), want 409", w.Code, resp)
	}
	result = resp["data"].(map[string]interface{})
	if reason, _ := result["reason_for_deny"].(string); !strings.Contains(reason, "not available") {
		t.Fatalf("denial = %v, want availability reason", result)
	}

	// Back-to-back stay touches the boundary only.
	w, _ = book(2, 4, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("back-to-back booking = %d, want 201", w.Code)
	}

	// Non-pending candidate is caller misuse, not a denial.
	w, _ = book(10, 12, "confirmed")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("confirmed candidate = %d, want 422", w.Code)
	}

	// Unknown hotel.
	w, _ = doJSON(t, r, http.MethodPost, "/api/hotels/b2d7f7f2-9c3e-4f4e-8b1a-0000000000ff/bookings", map[string]interface{}{
		"guest_id":   guestID,
		"room_id":    roomID,
		"start_date": base.Format(time.RFC3339),
		"end_date":   base.AddDate(0, 0, 1).Format(time.RFC3339),
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown hotel booking = %d, want 404", w.Code)
	}

	// Booking lifecycle via the bookings resource.
	w, _ = doJSON(t, r, http.MethodPatch, "/api/bookings/"+bookingID+"/status", map[string]interface{}{"status": "cancelled"})
	if w.Code != http.StatusOK {
		t.Fatalf("cancel booking = %d, want 200", w.Code)
	}

	// Cancellation frees the room for the same period.
	w, _ = book(0, 2, "")
	if w.Code != http.StatusCreated {
		t.Fatalf("rebooking after cancellation = %d, want 201", w.Code)
	}

	// Rooms listing for the hotel.
	w, _ = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/hotels/%s/rooms", hotelID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list rooms = %d, want 200", w.Code)
	}
}
