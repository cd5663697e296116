package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/services"
)

// PerkHandler, perk endpoint'lerini yöneten struct.
type PerkHandler struct {
	perkService services.PerkService
}

// NewPerkHandler, constructor.
func NewPerkHandler(perkService services.PerkService) *PerkHandler {
	return &PerkHandler{perkService: perkService}
}

// List godoc
// GET /api/perks?search=&sortBy=&direction=
// Üç parametre de opsiyoneldir. Bilinmeyen sortBy hata değildir —
// liste store-default sırayla döner.
func (h *PerkHandler) List(w http.ResponseWriter, r *http.Request) {
	query := services.PerkQuery{
		Search:    r.URL.Query().Get("search"),
		SortBy:    r.URL.Query().Get("sortBy"),
		Direction: r.URL.Query().Get("direction"),
	}

	perks, err := h.perkService.List(r.Context(), query)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, perks)
}

// Create godoc
// POST /api/perks
// Auth middleware gerektirir.
func (h *PerkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePerkRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	perk, err := h.perkService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, perk)
}

// Upvote godoc
// POST /api/perks/{id}/upvote
// Auth middleware gerektirir.
func (h *PerkHandler) Upvote(w http.ResponseWriter, r *http.Request) {
	id, err := perkID(r)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid perk id")
		return
	}

	perk, err := h.perkService.Upvote(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, perk)
}

// Downvote godoc
// POST /api/perks/{id}/downvote
// Auth middleware gerektirir.
func (h *PerkHandler) Downvote(w http.ResponseWriter, r *http.Request) {
	id, err := perkID(r)
	if err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid perk id")
		return
	}

	perk, err := h.perkService.Downvote(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, perk)
}

// perkID, path'teki {id} parametresini parse eder.
func perkID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
