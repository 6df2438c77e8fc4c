package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/nekogravitycat/petcare-booking-backend/internal/app"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/objectid"
	"github.com/nekogravitycat/petcare-booking-backend/internal/pkg/storage"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
	Count   *int            `json:"count"`
}

type testServer struct {
	t      *testing.T
	router *gin.Engine
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c := app.NewContainer(app.Config{
		Repos:          app.NewMemoryRepositories(),
		Storage:        storage.NewMemoryStorage(),
		JWTSecret:      "test-secret",
		JWTTTL:         time.Hour,
		BcryptCost:     bcrypt.MinCost,
		MaxUploadBytes: 1 << 20,
	})
	require.NoError(t, c.Bootstrap(context.Background(), "rootadmin", "rootpass"))
	return &testServer{t: t, router: c.Router}
}

func (s *testServer) do(req *http.Request, token string) (int, envelope) {
	s.t.Helper()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") != "" && bytes.HasPrefix(w.Body.Bytes(), []byte("{")) {
		require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w.Code, env
}

func (s *testServer) json(method, path, token string, body any) (int, envelope) {
	s.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	return s.do(req, token)
}

func (s *testServer) login(username, password string) (token, id, role string) {
	s.t.Helper()
	status, env := s.json(http.MethodPost, "/api/v1/user/login", "", gin.H{"username": username, "password": password})
	require.Equal(s.t, http.StatusOK, status, env.Message)

	var data struct {
		ID          string `json:"id"`
		Role        string `json:"role"`
		AccessToken string `json:"accessToken"`
	}
	require.NoError(s.t, json.Unmarshal(env.Data, &data))
	return data.AccessToken, data.ID, data.Role
}

func (s *testServer) register(username, password string) (token, id string) {
	s.t.Helper()
	status, env := s.json(http.MethodPost, "/api/v1/user/register", "", gin.H{"username": username, "password": password})
	require.Equal(s.t, http.StatusCreated, status, env.Message)
	token, id, _ = s.login(username, password)
	return token, id
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v))
	return v
}

type serviceData struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Duration  int     `json:"duration"`
	Available bool    `json:"available"`
}

type bookingData struct {
	ID                  string       `json:"id"`
	CustomerName        string       `json:"customerName"`
	PhoneNumber         string       `json:"phoneNumber"`
	PetName             string       `json:"petName"`
	AppointmentDateTime time.Time    `json:"appointmentDateTime"`
	ServiceID           string       `json:"serviceId"`
	Service             *serviceData `json:"service"`
	Status              string       `json:"status"`
	Owner               struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"owner"`
}

var bathService = gin.H{
	"name":        "Bath",
	"description": "Full wash and dry for dogs",
	"price":       300,
	"imageUrl":    "https://x.com/a.png",
	"duration":    45,
}

func TestRegisterLoginAndAdminServiceCreation(t *testing.T) {
	s := newTestServer(t)

	status, env := s.json(http.MethodPost, "/api/v1/user/register", "", gin.H{"username": "alice123", "password": "secret1"})
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)

	token, _, role := s.login("alice123", "secret1")
	assert.NotEmpty(t, token)
	assert.Equal(t, "user", role)

	status, env = s.json(http.MethodPost, "/api/v1/services", token, bathService)
	assert.Equal(t, http.StatusForbidden, status)
	assert.False(t, env.Success)

	adminToken, _, adminRole := s.login("rootadmin", "rootpass")
	assert.Equal(t, "admin", adminRole)

	status, env = s.json(http.MethodPost, "/api/v1/services", adminToken, bathService)
	require.Equal(t, http.StatusCreated, status, env.Errors)
	svc := decode[serviceData](t, env.Data)
	assert.True(t, objectid.IsValid(svc.ID))
	assert.Equal(t, "Bath", svc.Name)
	assert.Equal(t, 45, svc.Duration)
	assert.True(t, svc.Available)
}

func TestAccountErrors(t *testing.T) {
	s := newTestServer(t)
	s.register("alice123", "secret1")

	status, _ := s.json(http.MethodPost, "/api/v1/user/register", "", gin.H{"username": "alice123", "password": "secret1"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodPost, "/api/v1/user/login", "", gin.H{"username": "alice123", "password": "wrongpw"})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = s.json(http.MethodPost, "/api/v1/user/login", "", gin.H{"username": "nobody", "password": "secret1"})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.json(http.MethodGet, "/api/v1/user/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestServiceCatalogEndpoints(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, _ := s.login("rootadmin", "rootpass")

	status, env := s.json(http.MethodGet, "/api/v1/services", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)

	status, _ = s.json(http.MethodGet, "/api/v1/services/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodGet, "/api/v1/services/"+objectid.New(), "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	invalid := gin.H{"name": "ab", "description": "short", "price": -1, "imageUrl": "nope", "duration": 5}
	status, env = s.json(http.MethodPost, "/api/v1/services", adminToken, invalid)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Len(t, env.Errors, 5)

	_, env = s.json(http.MethodPost, "/api/v1/services", adminToken, bathService)
	svc := decode[serviceData](t, env.Data)

	status, env = s.json(http.MethodGet, "/api/v1/services", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	status, env = s.json(http.MethodPut, "/api/v1/services/"+svc.ID, adminToken, gin.H{"duration": 10})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"Duration must be at least 15 minutes"}, env.Errors)

	status, env = s.json(http.MethodPut, "/api/v1/services/"+svc.ID, adminToken, gin.H{"available": false})
	require.Equal(t, http.StatusOK, status)
	assert.False(t, decode[serviceData](t, env.Data).Available)

	status, env = s.json(http.MethodDelete, "/api/v1/services/"+svc.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, svc.ID, decode[serviceData](t, env.Data).ID)
}

func TestBookingLifecycle(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, _ := s.login("rootadmin", "rootpass")
	aliceToken, aliceID := s.register("alice123", "secret1")
	bobToken, _ := s.register("bob12345", "secret2")

	_, env := s.json(http.MethodPost, "/api/v1/services", adminToken, bathService)
	svc := decode[serviceData](t, env.Data)

	appointment := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	body := gin.H{
		"customerName":        "Alice Smith",
		"phoneNumber":         "0812345678",
		"petName":             "Rex",
		"appointmentDateTime": appointment.Format(time.RFC3339),
		"serviceId":           svc.ID,
		"notes":               "first visit",
	}

	status, _ := s.json(http.MethodPost, "/api/v1/bookings", "", body)
	assert.Equal(t, http.StatusUnauthorized, status)

	withOtherOwner := gin.H{}
	for k, v := range body {
		withOtherOwner[k] = v
	}
	withOtherOwner["owner"] = objectid.New()
	status, _ = s.json(http.MethodPost, "/api/v1/bookings", aliceToken, withOtherOwner)
	assert.Equal(t, http.StatusForbidden, status)

	status, env = s.json(http.MethodPost, "/api/v1/bookings", aliceToken, body)
	require.Equal(t, http.StatusCreated, status, env.Errors)
	created := decode[bookingData](t, env.Data)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, aliceID, created.Owner.ID)
	assert.Equal(t, "alice123", created.Owner.Username)
	require.NotNil(t, created.Service)
	assert.Equal(t, "Bath", created.Service.Name)

	// Round trip.
	status, env = s.json(http.MethodGet, "/api/v1/bookings/"+created.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	fetched := decode[bookingData](t, env.Data)
	assert.Equal(t, "Alice Smith", fetched.CustomerName)
	assert.Equal(t, "Rex", fetched.PetName)
	assert.Equal(t, "0812345678", fetched.PhoneNumber)
	assert.True(t, appointment.Equal(fetched.AppointmentDateTime))
	assert.Equal(t, "pending", fetched.Status)

	status, _ = s.json(http.MethodGet, "/api/v1/bookings/"+created.ID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/"+created.ID, adminToken, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/bad-id", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/"+objectid.New(), aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.json(http.MethodGet, "/api/v1/bookings/user/"+aliceID, aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, *env.Count)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/user/"+aliceID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/user/xyz", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodGet, "/api/v1/bookings/all", aliceToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, env = s.json(http.MethodGet, "/api/v1/bookings/all?status=pending&sortBy=appointmentDateTime", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, *env.Count)
	status, _ = s.json(http.MethodGet, "/api/v1/bookings/all?status=archived", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID, aliceToken, gin.H{"phoneNumber": "081234567"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, []string{"Phone number must be exactly 10 digits"}, env.Errors)

	status, _ = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID, aliceToken, gin.H{"status": "confirmed"})
	assert.Equal(t, http.StatusForbidden, status)
	status, env = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID, adminToken, gin.H{"status": "confirmed"})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "confirmed", decode[bookingData](t, env.Data).Status)

	status, env = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID+"/cancel", aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "cancelled", decode[bookingData](t, env.Data).Status)

	status, _ = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID+"/cancel", aliceToken, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodPut, "/api/v1/bookings/"+created.ID, aliceToken, gin.H{"petName": "Max"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodDelete, "/api/v1/bookings/"+created.ID, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, env = s.json(http.MethodDelete, "/api/v1/bookings/"+created.ID, aliceToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created.ID, decode[bookingData](t, env.Data).ID)

	status, _ = s.json(http.MethodGet, "/api/v1/bookings/user/"+aliceID, aliceToken, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestBookingAgainstServiceStates(t *testing.T) {
	s := newTestServer(t)
	adminToken, _, _ := s.login("rootadmin", "rootpass")
	token, _ := s.register("alice123", "secret1")

	_, env := s.json(http.MethodPost, "/api/v1/services", adminToken, bathService)
	svc := decode[serviceData](t, env.Data)

	body := func(serviceID string, at time.Time) gin.H {
		return gin.H{
			"customerName":        "Alice",
			"phoneNumber":         "0812345678",
			"petName":             "Rex",
			"appointmentDateTime": at.Format(time.RFC3339Nano),
			"serviceId":           serviceID,
		}
	}
	future := time.Now().Add(24 * time.Hour)

	status, _ := s.json(http.MethodPost, "/api/v1/bookings", token, body(objectid.New(), future))
	assert.Equal(t, http.StatusNotFound, status)

	status, env = s.json(http.MethodPost, "/api/v1/bookings", token, body(svc.ID, time.Now().Add(-time.Minute)))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, env.Errors, "Appointment date must be in the future")

	status, env = s.json(http.MethodPost, "/api/v1/bookings", token, gin.H{"customerName": "Alice"})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Validation error", env.Message)

	status, _ = s.json(http.MethodPut, "/api/v1/services/"+svc.ID, adminToken, gin.H{"available": false})
	require.Equal(t, http.StatusOK, status)
	status, env = s.json(http.MethodPost, "/api/v1/bookings", token, body(svc.ID, future))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "This service is not currently available", env.Message)
}

func TestPetsAndImageUpload(t *testing.T) {
	s := newTestServer(t)
	token, userID := s.register("alice123", "secret1")
	otherToken, _ := s.register("bob12345", "secret2")

	status, env := s.json(http.MethodGet, "/api/v1/pets", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 0, *env.Count)

	status, env = s.json(http.MethodPost, "/api/v1/pets/create", token, gin.H{"name": "Rex", "age": 3, "breed": "Beagle"})
	require.Equal(t, http.StatusCreated, status, env.Errors)
	var created struct {
		ID    string `json:"id"`
		Image string `json:"image"`
		Owner struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"owner"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, userID, created.Owner.ID)
	assert.Equal(t, "alice123", created.Owner.Username)

	status, _ = s.json(http.MethodPost, "/api/v1/pets", token, gin.H{"name": "Rex", "age": -1, "breed": "Beagle"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, env = s.json(http.MethodGet, "/api/v1/pets?owner="+userID, token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1, *env.Count)
	status, _ = s.json(http.MethodGet, "/api/v1/pets?owner=bad", token, nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = s.json(http.MethodPut, "/api/v1/pets/"+created.ID, otherToken, gin.H{"age": 4})
	assert.Equal(t, http.StatusForbidden, status)

	// Multipart cover upload.
	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 64, 64))))
	var form bytes.Buffer
	mw := multipart.NewWriter(&form)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="cover"; filename="rex.png"`)
	h.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/pets/"+created.ID+"/image", &form)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	status, env = s.do(req, token)
	require.Equal(t, http.StatusOK, status, env.Message)
	require.NoError(t, json.Unmarshal(env.Data, &created))
	require.NotEmpty(t, created.Image)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, created.Image, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, img.Bytes(), w.Body.Bytes())

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, created.Image+"/thumbnail", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/jpeg", w.Header().Get("Content-Type"))

	status, _ = s.json(http.MethodDelete, "/api/v1/pets/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, status)
	status, _ = s.json(http.MethodGet, "/api/v1/pets/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestHealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	s.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
