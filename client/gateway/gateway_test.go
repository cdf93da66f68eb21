package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"hostelhub/client/routes"
	"hostelhub/client/session"
	"hostelhub/client/state"
	"hostelhub/client/store"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"uid": "u1",
		"exp": exp.Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

type fixture struct {
	client  *Client
	storage *store.MemStore
	state   *state.Store
}

func newFixture(t *testing.T, handler http.Handler) fixture {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	storage := store.NewMemStore()
	sessions := session.NewEvaluator(storage, zerolog.Nop())
	stateStore, err := state.NewStore(storage, zerolog.Nop())
	if err != nil {
		t.Fatalf("state store: %v", err)
	}

	return fixture{
		client:  New(srv.URL, storage, sessions, stateStore, zerolog.Nop()),
		storage: storage,
		state:   stateStore,
	}
}

func (f fixture) authenticate(t *testing.T, role string) {
	t.Helper()
	f.storage.Write(store.KeyToken, signedToken(t, time.Now().Add(time.Hour)))
	f.storage.Write(store.KeyRole, role)
	f.storage.Write(store.KeyResidentStatus, "inactive")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func TestLoginSeedsStores(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token":          token,
			"role":           "resident",
			"residentStatus": "active",
			"name":           "Asha",
			"email":          "asha@example.com",
			"booking": map[string]any{
				"bookingId":     "b1",
				"roomId":        "r1",
				"roomNumber":    "101",
				"checkInDate":   "2026-09-01",
				"checkOutDate":  "2026-09-04",
				"totalPrice":    270.0,
				"bookingStatus": "confirmed",
				"paymentStatus": true,
				"guests":        map[string]int{"adults": 2},
			},
		})
	})

	f := newFixture(t, mux)
	sess, err := f.client.Login(context.Background(), Credentials{Email: "asha@example.com", Password: "pw", Role: "resident"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Role != session.RoleResident {
		t.Fatalf("role = %q", sess.Role)
	}

	if got, _ := f.storage.Read(store.KeyToken); got != token {
		t.Fatal("token not stored")
	}
	if got, _ := f.storage.Read(store.KeyResidentStatus); got != "active" {
		t.Fatalf("residentStatus = %q", got)
	}

	booking := f.state.Booking()
	if booking.BookingID != "b1" || booking.RoomNumber != "101" || !booking.PaymentStatus {
		t.Fatalf("booking state = %+v", booking)
	}
	if resident := f.state.Resident(); resident.Name != "Asha" {
		t.Fatalf("resident = %+v", resident)
	}
}

func TestLoginSkipsCancelledBooking(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token":          signedToken(t, time.Now().Add(time.Hour)),
			"role":           "resident",
			"residentStatus": "inactive",
			"name":           "Asha",
			"email":          "asha@example.com",
			"booking": map[string]any{
				"bookingId":     "b-old",
				"bookingStatus": "cancelled",
			},
		})
	})

	f := newFixture(t, mux)
	if _, err := f.client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw", Role: "resident"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if f.state.Booking() != state.DefaultBooking() {
		t.Fatalf("cancelled booking seeded state: %+v", f.state.Booking())
	}
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token": signedToken(t, time.Now().Add(time.Hour)),
			"role":  "superuser",
		})
	})

	f := newFixture(t, mux)
	if _, err := f.client.Login(context.Background(), Credentials{Email: "a@b.c", Password: "pw", Role: "admin"}); err == nil {
		t.Fatal("expected error for unknown role")
	}
	if _, ok := f.storage.Read(store.KeyToken); ok {
		t.Fatal("token stored despite rejected role")
	}
}

func TestExpiredTokenShortCircuits(t *testing.T) {
	var hits int
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { hits++ })

	f := newFixture(t, mux)
	f.storage.Write(store.KeyToken, signedToken(t, time.Now().Add(-time.Hour)))
	f.storage.Write(store.KeyRole, "resident")
	f.storage.Write(store.KeyResidentStatus, "active")

	_, err := f.client.Profile(context.Background())
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("err = %v, want ErrSessionExpired", err)
	}
	if hits != 0 {
		t.Fatal("expired token still reached the server")
	}
	for _, key := range []string{store.KeyToken, store.KeyRole, store.KeyResidentStatus} {
		if _, ok := f.storage.Read(key); ok {
			t.Fatalf("key %q survived", key)
		}
	}
}

func TestUnauthorizedResponseClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/resident/profile", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token revoked"})
	})

	f := newFixture(t, mux)
	f.authenticate(t, "resident")

	_, err := f.client.Profile(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("err = %v", err)
	}
	if apiErr.Message != "token revoked" {
		t.Fatalf("message = %q", apiErr.Message)
	}
	if _, ok := f.storage.Read(store.KeyToken); ok {
		t.Fatal("token survived a 401")
	}
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("not json"))
	})

	f := newFixture(t, mux)
	_, err := f.client.AvailableRooms(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v", err)
	}
	if apiErr.Status != http.StatusBadGateway || apiErr.Message != "request failed" {
		t.Fatalf("apiErr = %+v", apiErr)
	}
}

func TestReserveThenCancelRestoresDefaults(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/booking/create", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
			return
		}
		writeJSON(w, http.StatusCreated, map[string]any{
			"booking": map[string]any{
				"bookingId":     "b1",
				"roomId":        "r1",
				"roomNumber":    "101",
				"checkInDate":   "2026-09-01",
				"checkOutDate":  "2026-09-04",
				"totalPrice":    270.0,
				"bookingStatus": "pending",
				"guests":        map[string]int{"adults": 1},
			},
		})
	})
	mux.HandleFunc("PATCH /api/v1/booking/cancel/b1", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "booking cancelled"})
	})

	f := newFixture(t, mux)
	f.authenticate(t, "resident")

	booking, err := f.client.CreateBooking(context.Background(), ReserveRoomInput{
		RoomID:       "r1",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
		Guests:       state.Guests{Adults: 1},
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.BookingID != "b1" {
		t.Fatalf("booking = %+v", booking)
	}
	if got := f.state.Booking(); got.BookingID != "b1" || got.RoomNumber != "101" {
		t.Fatalf("state after reserve = %+v", got)
	}

	if err := f.client.CancelBooking(context.Background(), "b1"); err != nil {
		t.Fatalf("cancel booking: %v", err)
	}
	if f.state.Booking() != state.DefaultBooking() {
		t.Fatalf("state after cancel = %+v", f.state.Booking())
	}
}

func TestCapturePaymentFlipsLocalState(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/payment/capture-payment/ord-1", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("bookingId") != "b1" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bookingId required"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"message": "payment captured",
			"booking": map[string]any{
				"bookingId":     "b1",
				"roomNumber":    "101",
				"bookingStatus": "confirmed",
				"paymentStatus": true,
			},
		})
	})

	f := newFixture(t, mux)
	f.authenticate(t, "resident")
	f.state.SetBookingData(state.BookingPatch{
		BookingID:  strPtr("b1"),
		RoomID:     strPtr("r1"),
		RoomNumber: strPtr("101"),
	})

	booking, err := f.client.CapturePayment(context.Background(), "ord-1", "b1")
	if err != nil {
		t.Fatalf("capture: %v", err)
	}
	if !booking.Paid {
		t.Fatalf("booking = %+v", booking)
	}

	if got := f.state.Booking(); !got.PaymentStatus || got.BookingID != "b1" {
		t.Fatalf("state after capture = %+v", got)
	}
	if status, _ := f.storage.Read(store.KeyResidentStatus); status != "active" {
		t.Fatalf("residentStatus = %q", status)
	}
}

func TestDownloadReportReturnsBlob(t *testing.T) {
	pdf := []byte("%PDF-1.7 fake")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/download-report/expense", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	})

	f := newFixture(t, mux)
	f.authenticate(t, "admin")

	blob, err := f.client.DownloadReport(context.Background(), "expense", "2026-01-01", "2026-06-30")
	if err != nil {
		t.Fatalf("download report: %v", err)
	}
	if string(blob) != string(pdf) {
		t.Fatalf("blob = %q", blob)
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newFixture(t, http.NewServeMux())
	f.authenticate(t, "resident")
	f.state.SetBookingData(state.BookingPatch{BookingID: strPtr("b1")})
	f.state.SetResidentDetails("Asha", "asha@example.com")

	if err := f.client.Logout(); err != nil {
		t.Fatalf("logout: %v", err)
	}

	for _, key := range []string{store.KeyToken, store.KeyRole, store.KeyResidentStatus} {
		if _, ok := f.storage.Read(key); ok {
			t.Fatalf("key %q survived logout", key)
		}
	}
	if f.state.Booking() != state.DefaultBooking() {
		t.Fatal("booking state survived logout")
	}
	if f.state.Resident() != (state.ResidentIdentity{}) {
		t.Fatal("resident identity survived logout")
	}
}

func TestAdminLoginOpensAdminRoutes(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"token":          signedToken(t, time.Now().Add(time.Hour)),
			"role":           "admin",
			"residentStatus": "unknown",
			"name":           "Root",
			"email":          "root@example.com",
		})
	})

	f := newFixture(t, mux)
	guard := routes.NewGuard(session.NewEvaluator(f.storage, zerolog.Nop()))

	if guard.Resolve("/admin/add-expense") != routes.DecisionNotFound {
		t.Fatal("admin route open before login")
	}

	if _, err := f.client.Login(context.Background(), Credentials{Email: "root@example.com", Password: "pw", Role: "admin"}); err != nil {
		t.Fatalf("login: %v", err)
	}

	if guard.Resolve("/admin/add-expense") != routes.DecisionAllow {
		t.Fatal("admin route closed after admin login")
	}
	if guard.Resolve("/resident/profile") != routes.DecisionNotFound {
		t.Fatal("resident route open to admin")
	}
}

func strPtr(s string) *string { return &s }
