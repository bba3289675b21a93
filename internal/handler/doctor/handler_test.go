package doctor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
)

type fakeService struct {
	doctors map[string]*model.Doctor
}

func newFakeService() *fakeService {
	return &fakeService{doctors: make(map[string]*model.Doctor)}
}

func (s *fakeService) CreateDoctor(_ context.Context, payload *model.DoctorPayload) (string, error) {
	id := uuid.New().String()
	s.doctors[id] = payload.ToDoctor(id)
	return id, nil
}

func (s *fakeService) GetDoctor(_ context.Context, id string) (*model.Doctor, error) {
	d, ok := s.doctors[id]
	if !ok {
		return nil, apperrors.NotFound("doctor not found", nil)
	}
	return d, nil
}

func (s *fakeService) UpdateDoctor(_ context.Context, id string, payload *model.DoctorPayload) error {
	if _, ok := s.doctors[id]; !ok {
		return apperrors.NotFound("doctor not found", nil)
	}
	s.doctors[id] = payload.ToDoctor(id)
	return nil
}

func (s *fakeService) DeleteDoctor(_ context.Context, id string) error {
	if _, ok := s.doctors[id]; !ok {
		return apperrors.NotFound("doctor not found", nil)
	}
	delete(s.doctors, id)
	return nil
}

func (s *fakeService) ListDoctors(_ context.Context) ([]*model.Doctor, error) {
	out := make([]*model.Doctor, 0, len(s.doctors))
	for _, d := range s.doctors {
		out = append(out, d)
	}
	return out, nil
}

func setupRouter(svc *fakeService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	NewHandler(svc).RegisterRoutes(engine.Group(""))
	return engine
}

func performRequest(engine *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func doctorBody() map[string]interface{} {
	return map[string]interface{}{
		"full_name":           "Dr. A",
		"specialization":      "Cardiology",
		"phone_number":        "555-0100",
		"email":               "dr.a@example.com",
		"date_of_birth":       "1980-05-01",
		"gender":              "female",
		"years_of_experience": 10,
		"clinic_address":      "1 Clinic Way",
	}
}

func TestDoctorCRUDFlow(t *testing.T) {
	engine := setupRouter(newFakeService())

	// Create
	w := performRequest(engine, http.MethodPost, "/doctors/", doctorBody())
	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeResponse(t, w)
	data := resp["data"].(map[string]interface{})
	id := data["doctor_id"].(string)
	assert.NotEmpty(t, id)

	// Get returns the submitted fields
	w = performRequest(engine, http.MethodGet, fmt.Sprintf("/doctors/%s", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	doc := resp["data"].(map[string]interface{})
	assert.Equal(t, "Dr. A", doc["full_name"])
	assert.Equal(t, "Cardiology", doc["specialization"])
	assert.Equal(t, float64(10), doc["years_of_experience"])

	// Update years of experience
	body := doctorBody()
	body["years_of_experience"] = 12
	w = performRequest(engine, http.MethodPut, fmt.Sprintf("/doctors/%s", id), body)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(engine, http.MethodGet, fmt.Sprintf("/doctors/%s", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp = decodeResponse(t, w)
	doc = resp["data"].(map[string]interface{})
	assert.Equal(t, float64(12), doc["years_of_experience"])

	// Delete then get
	w = performRequest(engine, http.MethodDelete, fmt.Sprintf("/doctors/%s", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(engine, http.MethodGet, fmt.Sprintf("/doctors/%s", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListDoctorsEmptyIsInformational(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodGet, "/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, "No doctors found.", resp["message"])
	assert.Nil(t, resp["data"])
}

func TestCreateDoctorMissingRequiredField(t *testing.T) {
	engine := setupRouter(newFakeService())

	body := doctorBody()
	delete(body, "full_name")
	w := performRequest(engine, http.MethodPost, "/doctors/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateDoctorZeroExperienceAllowed(t *testing.T) {
	engine := setupRouter(newFakeService())

	body := doctorBody()
	body["years_of_experience"] = 0
	w := performRequest(engine, http.MethodPost, "/doctors/", body)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateUnknownDoctorReturnsNotFound(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodPut, "/doctors/no-such-id", doctorBody())
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "doctor not found", resp["message"])

	w = performRequest(engine, http.MethodDelete, "/doctors/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
