package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-booking-server/internal/config"
	"clinic-booking-server/internal/models"
	"clinic-booking-server/internal/routes"
	"clinic-booking-server/internal/store"
)

const testSecret = "test-secret"

// fakeUserStore is an in-memory store.UserStore for handler tests.
type fakeUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by email
	err   error                   // when set, every call fails with it
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.users[user.Email]; ok {
		return store.ErrDuplicateEmail
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	cp := *user
	f.users[user.Email] = &cp
	return nil
}

func (f *fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByID(ctx context.Context, id string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// fakeAppointmentStore is an in-memory store.AppointmentStore mirroring the
// GORM implementation's contracts (validation, defaults, literal search).
type fakeAppointmentStore struct {
	mu           sync.Mutex
	appointments []models.Appointment
	err          error
}

func newFakeAppointmentStore() *fakeAppointmentStore {
	return &fakeAppointmentStore{}
}

func (f *fakeAppointmentStore) List(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Appointment, len(f.appointments))
	copy(out, f.appointments)
	return out, nil
}

func (f *fakeAppointmentStore) Create(ctx context.Context, a *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if a.Name == "" || a.ImageURL == "" || a.Experience == "" || a.Location == "" || !a.Specialization.Valid() {
		return store.ErrInvalid
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Date.IsZero() {
		a.Date = time.Now()
	}
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentStore) Update(ctx context.Context, id string, patch store.AppointmentPatch) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	if patch.Specialization != nil && !patch.Specialization.Valid() {
		return nil, store.ErrInvalid
	}
	for i := range f.appointments {
		if f.appointments[i].ID != id {
			continue
		}
		a := &f.appointments[i]
		if patch.Name != nil {
			a.Name = *patch.Name
		}
		if patch.ImageURL != nil {
			a.ImageURL = *patch.ImageURL
		}
		if patch.Specialization != nil {
			a.Specialization = *patch.Specialization
		}
		if patch.Experience != nil {
			a.Experience = *patch.Experience
		}
		if patch.Location != nil {
			a.Location = *patch.Location
		}
		if patch.Date != nil {
			a.Date = *patch.Date
		}
		if patch.Slots != nil {
			a.Slots = *patch.Slots
		}
		if patch.Fee != nil {
			a.Fee = *patch.Fee
		}
		cp := *a
		return &cp, nil
	}
	return nil, store.ErrNotFound
}

func (f *fakeAppointmentStore) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *fakeAppointmentStore) Search(ctx context.Context, query store.AppointmentQuery) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Appointment, 0)
	for _, a := range f.appointments {
		if query.Specialization != "" && string(a.Specialization) != query.Specialization {
			continue
		}
		if query.Name != "" && !strings.Contains(strings.ToLower(a.Name), strings.ToLower(query.Name)) {
			continue
		}
		out = append(out, a)
	}
	switch query.Sort {
	case store.SortAscending:
		sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	case store.SortDescending:
		sort.Slice(out, func(i, j int) bool { return out[j].Date.Before(out[i].Date) })
	}
	return out, nil
}

// newTestRouter wires a gin engine exactly like main does, minus CORS.
func newTestRouter(users store.UserStore, appointments store.AppointmentStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	cfg := &config.Config{Port: "0", JWTSecret: testSecret}
	routes.SetupRoutes(router, users, appointments, cfg)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return v
}

func mustStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, want, w.Body.String())
	}
}
