package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/services"
)

// MembershipHandler, membership kataloğu endpoint'lerini yöneten struct.
type MembershipHandler struct {
	membershipService services.MembershipService
}

// NewMembershipHandler, constructor.
func NewMembershipHandler(membershipService services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// List godoc
// GET /api/memberships
// İsme göre alfabetik döner.
func (h *MembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	memberships, err := h.membershipService.List(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, memberships)
}

// Create godoc
// POST /api/memberships
// Auth middleware gerektirir. Boş isim → 400, isim çakışması → 409.
func (h *MembershipHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateMembershipRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	membership, err := h.membershipService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, membership)
}
