package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cardiotrack/cardiotrack/internal/ml"
	"github.com/cardiotrack/cardiotrack/internal/models"
	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/types"
	"github.com/cardiotrack/cardiotrack/internal/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PatientFormRequest carries the clinical intake form. Feature fields are
// pointers because zero is a valid reading for most of them; a missing or
// non-numeric field must fail binding before the adapter is reached.
type PatientFormRequest struct {
	Name              string   `form:"name" json:"name" binding:"required"`
	Age               *int     `form:"age" json:"age" binding:"required"`
	Gender            *int     `form:"gender" json:"gender" binding:"required"`
	Chestpain         *int     `form:"chestpain" json:"chestpain" binding:"required"`
	RestingBP         *int     `form:"restingBP" json:"restingBP" binding:"required"`
	Serumcholestrol   *int     `form:"serumcholestrol" json:"serumcholestrol" binding:"required"`
	Fastingbloodsugar *int     `form:"fastingbloodsugar" json:"fastingbloodsugar" binding:"required"`
	Restingrelectro   *int     `form:"restingrelectro" json:"restingrelectro" binding:"required"`
	Maxheartrat       *int     `form:"maxheartrat" json:"maxheartrat" binding:"required"`
	Exerciseangia     *int     `form:"exerciseangia" json:"exerciseangia" binding:"required"`
	Oldpeak           *float64 `form:"oldpeak" json:"oldpeak" binding:"required"`
	Slope             *int     `form:"slope" json:"slope" binding:"required"`
	Noofmajor         *int     `form:"noofmajor" json:"noofmajor" binding:"required"`
}

type PatientHandler struct {
	patients  repository.PatientRepository
	predictor *ml.Predictor
}

func NewPatientHandler(patients repository.PatientRepository, predictor *ml.Predictor) *PatientHandler {
	return &PatientHandler{patients: patients, predictor: predictor}
}

func (h *PatientHandler) EnterPatientPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "enter_patient", "flash": takeFlash(ctx)})
}

// EnterPatient persists the submission and sends the browser back to the
// patient list; the prediction is not shown inline.
func (h *PatientHandler) EnterPatient(ctx *gin.Context) {
	if _, ok := h.submitAndPredict(ctx); !ok {
		return
	}

	setFlash(ctx, "Patient details saved and prediction done.")
	ctx.Redirect(http.StatusSeeOther, "/view_patients")
}

// Predict persists the submission exactly like EnterPatient but renders the
// result inline.
func (h *PatientHandler) Predict(ctx *gin.Context) {
	patient, ok := h.submitAndPredict(ctx)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, patientResponse(patient))
}

// submitAndPredict is the single shared submission path: bind the form,
// build the ordered feature vector, run the adapter, persist the patient and
// the audit log. The two prediction routes differ only in response shape.
func (h *PatientHandler) submitAndPredict(ctx *gin.Context) (*models.Patient, bool) {
	var req PatientFormRequest

	if err := ctx.ShouldBind(&req); err != nil {
		log.Printf("Failed to bind patient form: %v", err)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return nil, false
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return nil, false
	}

	// Order must match the order the scaler and classifier were fitted on.
	vector := ml.FeatureVector{
		float64(*req.Age),
		float64(*req.Gender),
		float64(*req.Chestpain),
		float64(*req.RestingBP),
		float64(*req.Serumcholestrol),
		float64(*req.Fastingbloodsugar),
		float64(*req.Restingrelectro),
		float64(*req.Maxheartrat),
		float64(*req.Exerciseangia),
		*req.Oldpeak,
		float64(*req.Slope),
		float64(*req.Noofmajor),
	}

	prediction := h.predictor.Predict(vector)

	patient := models.Patient{
		DoctorID:          userID,
		Name:              req.Name,
		Age:               *req.Age,
		Gender:            *req.Gender,
		Chestpain:         *req.Chestpain,
		RestingBP:         *req.RestingBP,
		Serumcholestrol:   *req.Serumcholestrol,
		Fastingbloodsugar: *req.Fastingbloodsugar,
		Restingrelectro:   *req.Restingrelectro,
		Maxheartrat:       *req.Maxheartrat,
		Exerciseangia:     *req.Exerciseangia,
		Oldpeak:           *req.Oldpeak,
		Slope:             *req.Slope,
		Noofmajor:         *req.Noofmajor,
		Prediction:        prediction,
	}

	if err := h.patients.Create(&patient); err != nil {
		log.Printf("Failed to create patient: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return nil, false
	}

	inputJSON, err := json.Marshal(vector)

	if err != nil {
		log.Printf("Failed to marshal prediction input: %v", err)
	} else {
		entry := models.PredictionLog{
			DoctorID:  userID,
			PatientID: patient.ID,
			Input:     datatypes.JSON(inputJSON),
			Output:    prediction,
		}

		// The audit trail is best effort; a failed log never fails the request.
		if err := h.patients.CreateLog(&entry); err != nil {
			log.Printf("Failed to write prediction log: %v", err)
		}
	}

	return &patient, true
}

func (h *PatientHandler) ViewPatients(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	patients, err := h.patients.ListForDoctor(userID)

	if err != nil {
		log.Printf("Failed to list patients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patients"})
		return
	}

	response := make([]types.PatientResponse, 0, len(patients))

	for i := range patients {
		response = append(response, patientResponse(&patients[i]))
	}

	ctx.JSON(http.StatusOK, gin.H{
		"patients": response,
		"flash":    takeFlash(ctx),
	})
}

func (h *PatientHandler) DeletePatient(ctx *gin.Context) {
	patientID, err := strconv.ParseUint(ctx.Param("id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	// Existence is checked before ownership so a missing record is always a
	// 404 and a foreign record is always a 403.
	patient, err := h.patients.FindByID(uint(patientID))

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		} else {
			log.Printf("Failed to fetch patient: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
		}
		return
	}

	if err := assertOwner(patient, userID); err != nil {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.patients.Delete(patient); err != nil {
		log.Printf("Failed to delete patient: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
		return
	}

	ctx.Redirect(http.StatusFound, "/view_patients")
}

var errNotOwner = errors.New("patient is owned by another doctor")

// assertOwner is the single ownership check every handler touching a patient
// must go through.
func assertOwner(patient *models.Patient, doctorID uint) error {
	if patient.DoctorID != doctorID {
		return errNotOwner
	}
	return nil
}

func patientResponse(patient *models.Patient) types.PatientResponse {
	return types.PatientResponse{
		ID:                patient.ID,
		DoctorID:          patient.DoctorID,
		Name:              patient.Name,
		Age:               patient.Age,
		Gender:            patient.Gender,
		Chestpain:         patient.Chestpain,
		RestingBP:         patient.RestingBP,
		Serumcholestrol:   patient.Serumcholestrol,
		Fastingbloodsugar: patient.Fastingbloodsugar,
		Restingrelectro:   patient.Restingrelectro,
		Maxheartrat:       patient.Maxheartrat,
		Exerciseangia:     patient.Exerciseangia,
		Oldpeak:           patient.Oldpeak,
		Slope:             patient.Slope,
		Noofmajor:         patient.Noofmajor,
		Prediction:        patient.Prediction,
	}
}
