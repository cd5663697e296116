package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/akinalp/perkmanager/models"
	"github.com/akinalp/perkmanager/pkg"
	"github.com/akinalp/perkmanager/services"
)

// UserMembershipHandler, giriş yapmış kullanıcının membership seçimlerini yönetir.
type UserMembershipHandler struct {
	userMembershipService services.UserMembershipService
}

// NewUserMembershipHandler, constructor.
func NewUserMembershipHandler(userMembershipService services.UserMembershipService) *UserMembershipHandler {
	return &UserMembershipHandler{userMembershipService: userMembershipService}
}

// List godoc
// GET /api/user/memberships
// Auth middleware gerektirir — kullanıcı context'ten alınır.
func (h *UserMembershipHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	memberships, err := h.userMembershipService.ListForUser(r.Context(), user.ID)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, memberships)
}

// Replace godoc
// PUT /api/user/memberships
// Auth middleware gerektirir. Kullanıcının seçim listesini gönderilen
// id listesiyle komple değiştirir; bilinmeyen id'ler sessizce elenir.
func (h *UserMembershipHandler) Replace(w http.ResponseWriter, r *http.Request) {
	user, ok := r.Context().Value(UserContextKey).(*models.User)
	if !ok {
		pkg.ErrorWithMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req models.UpdateMembershipsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.userMembershipService.Replace(r.Context(), user.ID, req.MembershipIDs)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, updated)
}
