package handlers

import (
	"errors"
	"io"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/otuedon/shop-tracker/internal/form"
	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	"github.com/otuedon/shop-tracker/internal/repo"
)

func draftResponse(s *draftSession) DraftResponse {
	return DraftResponse{
		ID:       s.id,
		Step:     s.ctrl.Step(),
		Progress: s.ctrl.Progress(),
		Busy:     s.ctrl.Busy(),
		Draft:    s.ctrl.Snapshot(),
	}
}

// OpenDraftHandler godoc
// @Summary Open a product form session
// @Description Starts an add flow, or an edit flow seeded from an existing product when ?product= is given
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param product query string false "Product ID to edit"
// @Success 201 {object} DraftResponse
// @Failure 404 {string} string "Product not found"
// @Router /drafts [post]
func OpenDraftHandler(w http.ResponseWriter, r *http.Request) {
	ownerID := mw.UserID(r)

	var ctrl *form.Controller
	if productID := r.URL.Query().Get("product"); productID != "" {
		product, err := productRepo.GetByID(ownerID, productID)
		if err != nil {
			if errors.Is(err, repo.ErrProductNotFound) {
				http.Error(w, "product not found", http.StatusNotFound)
				return
			}
			http.Error(w, "could not open form", http.StatusInternalServerError)
			return
		}
		ctrl = form.NewEditController(pipeline, ownerID, product)
	} else {
		ctrl = form.NewController(pipeline, ownerID)
	}

	s := newSession(ownerID, ctrl)
	writeJSON(w, http.StatusCreated, draftResponse(s))
}

// GetDraftHandler godoc
// @Summary Current state of a form session
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 200 {object} DraftResponse
// @Failure 404 {string} string "Not found"
// @Router /drafts/{id} [get]
func GetDraftHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, draftResponse(s))
}

// UpdateDraftFieldsHandler godoc
// @Summary Write one or more draft fields
// @Tags drafts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Param fields body FieldsRequest true "Field updates"
// @Success 200 {object} DraftResponse
// @Failure 400 {string} string "Unknown field"
// @Failure 404 {string} string "Not found"
// @Router /drafts/{id}/fields [patch]
func UpdateDraftFieldsHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}

	var req FieldsRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	for _, update := range req.Fields {
		field, err := form.ParseField(update.Field)
		if err != nil {
			http.Error(w, "unknown field: "+update.Field, http.StatusBadRequest)
			return
		}
		if err := s.ctrl.SetField(field, update.Value); err != nil {
			http.Error(w, "form session is closed", http.StatusGone)
			return
		}
	}
	writeJSON(w, http.StatusOK, draftResponse(s))
}

// UploadDraftImageHandler godoc
// @Summary Attach a product photo to the draft
// @Description Stages the image locally; it is only made durable on submit
// @Tags drafts
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Param image formData file true "Product image"
// @Success 200 {object} DraftResponse
// @Failure 400 {string} string "Invalid file"
// @Failure 404 {string} string "Not found"
// @Router /drafts/{id}/image [post]
func UploadDraftImageHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// Park the bytes in a transient local file; the save pipeline promotes
	// them to the blob store when the draft is submitted.
	tmp, err := os.CreateTemp("", "draft-image-*")
	if err != nil {
		http.Error(w, "could not stage image", http.StatusInternalServerError)
		return
	}
	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		http.Error(w, "could not stage image", http.StatusInternalServerError)
		return
	}
	tmp.Close()

	if err := s.ctrl.SetImage(form.LocalImage(tmp.Name())); err != nil {
		os.Remove(tmp.Name())
		http.Error(w, "form session is closed", http.StatusGone)
		return
	}
	s.stageImage(tmp.Name())
	writeJSON(w, http.StatusOK, draftResponse(s))
}

// AdvanceDraftHandler godoc
// @Summary Advance to the next form step
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 200 {object} AdvanceResult
// @Failure 404 {string} string "Not found"
// @Failure 422 {object} AdvanceResult "Missing required fields"
// @Router /drafts/{id}/advance [post]
func AdvanceDraftHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}

	missing, err := s.ctrl.Advance()
	if err != nil {
		http.Error(w, "form session is closed", http.StatusGone)
		return
	}

	result := AdvanceResult{Step: s.ctrl.Step(), Progress: s.ctrl.Progress()}
	if missing != nil {
		result.MissingFields = missing.Fields
		writeJSON(w, http.StatusUnprocessableEntity, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// RetreatDraftHandler godoc
// @Summary Step back in the form
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 200 {object} AdvanceResult
// @Failure 404 {string} string "Not found"
// @Router /drafts/{id}/retreat [post]
func RetreatDraftHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}
	if err := s.ctrl.Retreat(); err != nil {
		http.Error(w, "form session is closed", http.StatusGone)
		return
	}
	writeJSON(w, http.StatusOK, AdvanceResult{Step: s.ctrl.Step(), Progress: s.ctrl.Progress()})
}

// SubmitDraftHandler godoc
// @Summary Submit the draft, creating or updating the product
// @Tags drafts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 201 {object} ProductResponse
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Submit already in progress"
// @Failure 422 {object} AdvanceResult "Missing required fields"
// @Failure 502 {string} string "Image upload failed"
// @Router /drafts/{id}/submit [post]
func SubmitDraftHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}

	saved, err := s.ctrl.Submit(r.Context())
	if err != nil {
		var missing *form.MissingFields
		var uploadErr *form.UploadError
		switch {
		case errors.As(err, &missing):
			writeJSON(w, http.StatusUnprocessableEntity, AdvanceResult{
				Step:          s.ctrl.Step(),
				Progress:      s.ctrl.Progress(),
				MissingFields: missing.Fields,
			})
		case errors.As(err, &uploadErr):
			http.Error(w, "failed to upload image, please try again", http.StatusBadGateway)
		case errors.Is(err, form.ErrSubmitPending):
			http.Error(w, "save already in progress", http.StatusConflict)
		case errors.Is(err, form.ErrNotTerminalStep):
			http.Error(w, "finish the form before submitting", http.StatusBadRequest)
		case errors.Is(err, form.ErrAuthRequired):
			http.Error(w, "please sign in to add products", http.StatusUnauthorized)
		case errors.Is(err, form.ErrSessionClosed):
			http.Error(w, "form session is closed", http.StatusGone)
		default:
			http.Error(w, "failed to save product, please check your connection and try again", http.StatusInternalServerError)
		}
		return
	}

	dropSession(s.id)
	writeJSON(w, http.StatusCreated, toProductResponse(saved))
}

// AbandonDraftHandler godoc
// @Summary Abandon the form session
// @Tags drafts
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 204 "Abandoned"
// @Failure 404 {string} string "Not found"
// @Router /drafts/{id} [delete]
func AbandonDraftHandler(w http.ResponseWriter, r *http.Request) {
	s, ok := getSession(mw.UserID(r), chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "draft not found", http.StatusNotFound)
		return
	}
	s.ctrl.Abandon()
	dropSession(s.id)
	w.WriteHeader(http.StatusNoContent)
}
