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

const dateLayout = "2006-01-02"

// PatientHandler serves the patient CRUD endpoints.
type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	pagination     config.PaginationConfig
}

// NewPatientHandler creates the patient handler.
func NewPatientHandler(patientUsecase usecase.PatientUsecase, cfg *config.Config) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		pagination:     cfg.Pagination,
	}
}

type patientRequest struct {
	FirstName     string  `json:"first_name" validate:"required,max=150"`
	LastName      string  `json:"last_name" validate:"required,max=150"`
	DateOfBirth   string  `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender        string  `json:"gender" validate:"required,oneof=Male Female Other"`
	Place         *string `json:"place" validate:"omitempty,uuid"`
	Email         *string `json:"email" validate:"omitempty,contains=@,max=254"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=10,max=15"`
}

type patchPatientRequest struct {
	FirstName     *string `json:"first_name" validate:"omitempty,max=150"`
	LastName      *string `json:"last_name" validate:"omitempty,max=150"`
	DateOfBirth   *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	Place         *string `json:"place" validate:"omitempty,uuid"`
	Email         *string `json:"email" validate:"omitempty,contains=@,max=254"`
	ContactNumber *string `json:"contact_number" validate:"omitempty,min=10,max=15"`
}

func (req *patchPatientRequest) toPatch() (usecase.PatientPatch, error) {
	patch := usecase.PatientPatch{
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}

	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return usecase.PatientPatch{}, err
		}
		patch.DateOfBirth = &dob
	}
	if req.Gender != nil {
		gender := entity.Gender(*req.Gender)
		patch.Gender = &gender
	}
	if req.Place != nil {
		id, err := uuid.Parse(*req.Place)
		if err != nil {
			return usecase.PatientPatch{}, err
		}
		patch.PlaceID = &id
	}
	return patch, nil
}

type patientResponse struct {
	ID            string            `json:"id"`
	User          string            `json:"user"`
	FirstName     string            `json:"first_name"`
	LastName      string            `json:"last_name"`
	FullName      string            `json:"full_name"`
	DateOfBirth   string            `json:"date_of_birth"`
	Gender        string            `json:"gender"`
	Place         *locationResponse `json:"place"`
	Email         *string           `json:"email"`
	ContactNumber *string           `json:"contact_number"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func toPatientResponse(patient *entity.Patient) patientResponse {
	resp := patientResponse{
		ID:            patient.ID.String(),
		User:          patient.UserID.String(),
		FirstName:     patient.FirstName,
		LastName:      patient.LastName,
		FullName:      patient.FullName(),
		DateOfBirth:   patient.DateOfBirth.Format(dateLayout),
		Gender:        patient.Gender.String(),
		Email:         patient.Email,
		ContactNumber: patient.ContactNumber,
		CreatedAt:     patient.CreatedAt,
		UpdatedAt:     patient.UpdatedAt,
	}
	if patient.Place != nil {
		place := toLocationResponse(patient.Place)
		resp.Place = &place
	}
	return resp
}

func (req *patientRequest) toInput(userID uuid.UUID) (usecase.PatientInput, error) {
	dob, err := time.Parse(dateLayout, req.DateOfBirth)
	if err != nil {
		return usecase.PatientInput{}, err
	}

	var placeID *uuid.UUID
	if req.Place != nil {
		id, err := uuid.Parse(*req.Place)
		if err != nil {
			return usecase.PatientInput{}, err
		}
		placeID = &id
	}

	return usecase.PatientInput{
		UserID:        userID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		DateOfBirth:   dob,
		Gender:        entity.Gender(req.Gender),
		PlaceID:       placeID,
		Email:         req.Email,
		ContactNumber: req.ContactNumber,
	}, nil
}

// Create handles POST /api/patients. The authenticated user becomes the
// patient's caregiver.
func (h *PatientHandler) Create(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput(userID)
	if err != nil {
		return err
	}

	patient, err := h.patientUsecase.CreatePatient(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusCreated, toPatientResponse(patient))
}

// Get handles GET /api/patients/:id.
func (h *PatientHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	patient, err := h.patientUsecase.GetPatient(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toPatientResponse(patient))
}

// List handles GET /api/patients.
func (h *PatientHandler) List(c echo.Context) error {
	input := clampListInput(parseListInput(c), h.pagination)

	patients, total, err := h.patientUsecase.ListPatients(c.Request().Context(), input)
	if err != nil {
		return err
	}

	results := make([]patientResponse, 0, len(patients))
	for _, patient := range patients {
		results = append(results, toPatientResponse(patient))
	}

	page := response.NewPage(c, total, input.Page, input.PageSize, results)
	return response.Success(c, http.StatusOK, page)
}

// Update handles PUT /api/patients/:id. Ownership is not transferred.
func (h *PatientHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req patientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input, err := req.toInput(uuid.Nil)
	if err != nil {
		return err
	}

	patient, err := h.patientUsecase.UpdatePatient(c.Request().Context(), id, input)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toPatientResponse(patient))
}

// Patch handles PATCH /api/patients/:id. Absent fields keep their values.
func (h *PatientHandler) Patch(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	var req patchPatientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	patch, err := req.toPatch()
	if err != nil {
		return err
	}

	patient, err := h.patientUsecase.PartialUpdatePatient(c.Request().Context(), id, patch)
	if err != nil {
		return err
	}
	return response.Success(c, http.StatusOK, toPatientResponse(patient))
}

// Delete handles DELETE /api/patients/:id.
func (h *PatientHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return err
	}

	if err := h.patientUsecase.DeletePatient(c.Request().Context(), id); err != nil {
		return err
	}
	return response.NoContent(c)
}
