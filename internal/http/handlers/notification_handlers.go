package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	"github.com/otuedon/shop-tracker/internal/models"
	"github.com/otuedon/shop-tracker/internal/repo"
)

func toNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Body:      n.Body,
		ProductID: n.ProductID,
		Read:      n.Read,
		DateAdded: n.DateAdded,
	}
}

// GetNotificationsHandler godoc
// @Summary List notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {array} NotificationResponse
// @Failure 500 {string} string "Internal error"
// @Router /notifications [get]
func GetNotificationsHandler(w http.ResponseWriter, r *http.Request) {
	notifications, err := notificationRepo.GetAll(mw.UserID(r))
	if err != nil {
		http.Error(w, "could not fetch notifications", http.StatusInternalServerError)
		return
	}
	response := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		response[i] = toNotificationResponse(n)
	}
	writeJSON(w, http.StatusOK, response)
}

// GetNotificationByIDHandler godoc
// @Summary Get a single notification
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResponse
// @Failure 404 {string} string "Notification not found"
// @Router /notifications/{id} [get]
func GetNotificationByIDHandler(w http.ResponseWriter, r *http.Request) {
	n, err := notificationRepo.GetByID(mw.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch notification", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(n))
}

// MarkNotificationReadHandler godoc
// @Summary Mark a notification as read
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 {string} string "No content"
// @Failure 404 {string} string "Notification not found"
// @Router /notifications/{id}/read [post]
func MarkNotificationReadHandler(w http.ResponseWriter, r *http.Request) {
	err := notificationRepo.MarkRead(mw.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update notification", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteNotificationHandler godoc
// @Summary Delete a notification
// @Tags notifications
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 204 {string} string "No content"
// @Failure 404 {string} string "Notification not found"
// @Router /notifications/{id} [delete]
func DeleteNotificationHandler(w http.ResponseWriter, r *http.Request) {
	err := notificationRepo.Delete(mw.UserID(r), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotificationNotFound) {
			http.Error(w, "notification not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not delete notification", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
