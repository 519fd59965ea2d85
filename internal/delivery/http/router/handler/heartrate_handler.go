package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"clinic/config"
	"clinic/internal/delivery/http/response"
	"clinic/internal/domain/entity"
	"clinic/internal/usecase"
)

// HeartRateHandler serves the heart rate CRUD endpoints.
type HeartRateHandler struct {
	heartRateUsecase usecase.HeartRateUsecase
	pagination       config.PaginationConfig
}

// NewHeartRateHandler creates the heart rate handler.
func NewHeartRateHandler(heartRateUsecase usecase.HeartRateUsecase, cfg *config.Config) *HeartRateHandler {
	return &HeartRateHandler{
		heartRateUsecase: heartRateUsecase,
		pagination:       cfg.Pagination,
	}
}

type createHeartRateRequest struct {
	Patient    string     `json:"patient" validate:"required,uuid"`
	BPM        int        `json:"bpm" validate:"required,gte=30,lte=250"`
	RecordedAt *time.Time `json:"recorded_at"`
}

type updateHeartRateRequest struct {
	Patient string `json:"patient" validate:"required,uuid"`
	BPM     int    `json:"bpm" validate:"required,gte=30,lte=250"`
}

type patchHeartRateRequest struct {
	Patient *string `json:"patient" validate:"omitempty,uuid"`
	BPM     *int    `json:"bpm" validate:"omitempty,gte=30,lte=250"`
}

type heartRatePatientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
}

type heartRateResponse struct {
	ID         string                    `json:"id"`
	Patient    *heartRatePatientResponse `json:"patient"`
	RecordedBy *string                   `json:"recorded_by"`
	BPM        int                       `json:"bpm"`
	RecordedAt time.Time                 `json:"recorded_at"`
	CreatedAt  time.Time                 `json:"created_at"`
	UpdatedAt  time.Time                 `json:"updated_at"`
}

func toHeartRateResponse(record *entity.HeartRate) heartRateResponse {
	resp := heartRateResponse{
		ID:         record.ID.String(),
		BPM:        record.BPM,
		RecordedAt: record.RecordedAt,
		CreatedAt:  record.CreatedAt,
		UpdatedAt:  record.UpdatedAt,
	}
	if record.Patient != nil {
		resp.Patient = &heartRatePatientResponse{
			ID:        record.Patient.ID.String(),
			FirstName: record.Patient.FirstName,
			LastName:  record.Patient.LastName,
			FullName:  record.Patient.FullName(),
		}
	}
	if record.RecordedByID != nil {
		recordedBy := record.RecordedByID.String()
		resp.RecordedBy = &recordedBy
	}
	return resp
}

// Create handles POST /api/vitals/heart-rates. The authenticated user is recorded
// as the reading's author.
func (h *HeartRateHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req createHeartRateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patientID, err := uuid.Parse(req.Patient)
	if err != nil {
		return err
	}

	record, err := h.heartRateUsecase.CreateHeartRate(c.Request().Context(), usecase.CreateHeartRateInput{
		PatientID:    patientID,
		RecordedByID: &userID,
		BPM:          req.BPM,
		RecordedAt:   req.RecordedAt,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, toHeartRateResponse(record))
}

// Get handles GET /api/vitals/heart-rates/:id.
func (h *HeartRateHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	record, err := h.heartRateUsecase.GetHeartRate(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toHeartRateResponse(record))
}

// List handles GET /api/vitals/heart-rates.
func (h *HeartRateHandler) List(c echo.Context) error {
	input := clampListInput(parseListInput(c), h.pagination)

	records, total, err := h.heartRateUsecase.ListHeartRates(c.Request().Context(), input)
	if err != nil {
		return err
	}

	results := make([]heartRateResponse, 0, len(records))
	for _, record := range records {
		results = append(results, toHeartRateResponse(record))
	}

	page := response.NewPage(c, total, input.Page, input.PageSize, results)
	return response.Success(c, http.StatusOK, page)
}

// Update handles PUT /api/vitals/heart-rates/:id. The recording timestamp cannot
// be changed.
func (h *HeartRateHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req updateHeartRateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patientID, err := uuid.Parse(req.Patient)
	if err != nil {
		return err
	}

	record, err := h.heartRateUsecase.UpdateHeartRate(c.Request().Context(), id, usecase.UpdateHeartRateInput{
		PatientID: patientID,
		BPM:       req.BPM,
	})
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toHeartRateResponse(record))
}

// Patch handles PATCH /api/vitals/heart-rates/:id. Absent fields keep their
// values; the recording timestamp cannot be changed.
func (h *HeartRateHandler) Patch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req patchHeartRateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch := usecase.HeartRatePatch{BPM: req.BPM}
	if req.Patient != nil {
		patientID, err := uuid.Parse(*req.Patient)
		if err != nil {
			return err
		}
		patch.PatientID = &patientID
	}

	record, err := h.heartRateUsecase.PartialUpdateHeartRate(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toHeartRateResponse(record))
}

// Delete handles DELETE /api/vitals/heart-rates/:id.
func (h *HeartRateHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.heartRateUsecase.DeleteHeartRate(c.Request().Context(), id); err != nil {
		return err
	}
	return response.NoContent(c)
}
