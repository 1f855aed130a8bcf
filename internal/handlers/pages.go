package handlers

import (
	"log"
	"net/http"

	"github.com/cardiotrack/cardiotrack/internal/repository"
	"github.com/cardiotrack/cardiotrack/internal/utils"
	"github.com/gin-gonic/gin"
)

type PagesHandler struct {
	patients repository.PatientRepository
}

func NewPagesHandler(patients repository.PatientRepository) *PagesHandler {
	return &PagesHandler{patients: patients}
}

// Home serves the dashboard for the authenticated doctor.
func (h *PagesHandler) Home(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	count, err := h.patients.CountForDoctor(currentUser.ID)

	if err != nil {
		log.Printf("Failed to count patients: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"page":          "homes",
		"username":      currentUser.Name,
		"patient_count": count,
		"flash":         takeFlash(ctx),
	})
}

func (h *PagesHandler) About(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"page":        "about",
		"service":     "Cardiotrack",
		"description": "Clinical record keeping with heart disease risk prediction for doctors.",
	})
}

func (h *PagesHandler) PatientPage(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"page": "patient"})
}
