package medicalrecord

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/jwalitptl/clinic-api/pkg/errors"

	"github.com/jwalitptl/clinic-api/internal/model"
)

type fakeService struct {
	records map[int64]*model.MedicalRecord
	nextID  int64
}

func newFakeService() *fakeService {
	return &fakeService{records: make(map[int64]*model.MedicalRecord), nextID: 1}
}

func (s *fakeService) CreateRecord(_ context.Context, req *model.CreateMedicalRecordRequest) error {
	now := time.Now()
	s.records[s.nextID] = &model.MedicalRecord{
		RecordID:     s.nextID,
		PatientID:    req.PatientID,
		RecordDate:   req.RecordDate,
		Diagnosis:    req.Diagnosis,
		Treatment:    req.Treatment,
		Prescription: req.Prescription,
		DoctorNotes:  req.DoctorNotes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.nextID++
	return nil
}

func (s *fakeService) UpdateRecord(_ context.Context, recordID int64, req *model.UpdateMedicalRecordRequest) error {
	rec, ok := s.records[recordID]
	if !ok {
		return apperrors.NotFound("medical record not found", nil)
	}
	rec.Diagnosis = req.Diagnosis
	rec.Treatment = req.Treatment
	rec.Prescription = req.Prescription
	rec.DoctorNotes = req.DoctorNotes
	return nil
}

func (s *fakeService) ListRecordsByPatient(_ context.Context, patientID string) ([]*model.MedicalRecord, error) {
	var out []*model.MedicalRecord
	for _, rec := range s.records {
		if rec.PatientID == patientID {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, apperrors.NotFound("no medical records found for this patient", nil)
	}
	return out, nil
}

func (s *fakeService) DeleteRecord(_ context.Context, recordID int64) error {
	if _, ok := s.records[recordID]; !ok {
		return apperrors.NotFound("medical record not found", nil)
	}
	delete(s.records, recordID)
	return nil
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

func recordBody() map[string]interface{} {
	return map[string]interface{}{
		"patient_id":   "p1",
		"record_date":  "2024-03-01",
		"diagnosis":    "hypertension",
		"treatment":    "lifestyle changes",
		"prescription": "lisinopril 10mg",
		"doctor_notes": "follow up in 3 months",
	}
}

func TestCreateRecordEchoesPayloadWithoutID(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodPost, "/medical_records/", recordBody())
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w)["data"].(map[string]interface{})

	assert.Equal(t, "p1", data["patient_id"])
	assert.Equal(t, "hypertension", data["diagnosis"])
	// The store-assigned identifier is not part of the create response.
	_, hasID := data["record_id"]
	assert.False(t, hasID)
}

func TestListRecordsByPatient(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodPost, "/medical_records/", recordBody())
	require.Equal(t, http.StatusOK, w.Code)

	w = performRequest(engine, http.MethodGet, "/medical_records/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeResponse(t, w)["data"].([]interface{})
	require.Len(t, records, 1)

	rec := records[0].(map[string]interface{})
	assert.Equal(t, "p1", rec["patient_id"])
	assert.Equal(t, "lisinopril 10mg", rec["prescription"])
	assert.NotEmpty(t, rec["created_at"])
	assert.NotEmpty(t, rec["updated_at"])
}

func TestListRecordsForPatientWithoutRecordsIsNotFound(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodGet, "/medical_records/p404", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, "no medical records found for this patient", resp["message"])
}

func TestUpdateRecord(t *testing.T) {
	svc := newFakeService()
	engine := setupRouter(svc)

	performRequest(engine, http.MethodPost, "/medical_records/", recordBody())

	w := performRequest(engine, http.MethodPut, "/medical_records/1", map[string]interface{}{
		"diagnosis":    "controlled hypertension",
		"treatment":    "continue medication",
		"prescription": "lisinopril 20mg",
		"doctor_notes": "BP improving",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "controlled hypertension", svc.records[1].Diagnosis)
	assert.Equal(t, "p1", svc.records[1].PatientID)
}

func TestUpdateUnknownRecordReturnsNotFound(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodPut, "/medical_records/42", map[string]interface{}{
		"diagnosis":    "x",
		"treatment":    "y",
		"prescription": "z",
		"doctor_notes": "w",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRecordReturnsNoContent(t *testing.T) {
	engine := setupRouter(newFakeService())

	performRequest(engine, http.MethodPost, "/medical_records/", recordBody())

	w := performRequest(engine, http.MethodDelete, "/medical_records/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = performRequest(engine, http.MethodDelete, "/medical_records/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidRecordIDRejected(t *testing.T) {
	engine := setupRouter(newFakeService())

	w := performRequest(engine, http.MethodDelete, "/medical_records/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
