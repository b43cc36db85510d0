package handlers

import (
	"errors"
	"net/http"

	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	"github.com/otuedon/shop-tracker/internal/repo"
)

// GetProfileHandler godoc
// @Summary Get the signed-in user's profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.User
// @Failure 404 {string} string "Not found"
// @Router /profile [get]
func GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	user, err := userRepo.GetByID(mw.UserID(r))
	if err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// UpdateProfileHandler godoc
// @Summary Update name and profile image
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body UpdateProfileRequest true "Profile fields"
// @Success 200 {object} models.User
// @Failure 400 {string} string "Invalid input"
// @Router /profile [put]
func UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var req UpdateProfileRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := userRepo.GetByID(mw.UserID(r))
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}

	user.Name = req.Name
	user.ProfileImageURL = req.ProfileImage
	updated, err := userRepo.UpdateProfile(user)
	if err != nil {
		http.Error(w, "could not update profile", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// SetBusinessTypeHandler godoc
// @Summary Select the business type after sign-up
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BusinessTypeRequest true "Business type"
// @Success 200 {object} map[string]string
// @Failure 400 {string} string "Invalid input"
// @Router /profile/business-type [put]
func SetBusinessTypeHandler(w http.ResponseWriter, r *http.Request) {
	var req BusinessTypeRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if req.BusinessType == "" {
		http.Error(w, "business type is required", http.StatusBadRequest)
		return
	}

	if err := userRepo.SetBusinessType(mw.UserID(r), req.BusinessType); err != nil {
		if errors.Is(err, repo.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not save business type", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "business type saved"})
}
