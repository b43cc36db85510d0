package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/otuedon/shop-tracker/internal/http/handlers"
	"github.com/otuedon/shop-tracker/internal/models"
)

func TestGetProfileHandler(t *testing.T) {
	w := doJSON(http.MethodGet, "/profile", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var user models.User
	if err := json.NewDecoder(w.Body).Decode(&user); err != nil {
		t.Fatal(err)
	}
	if user.ID != userID {
		t.Errorf("expected user %q, got %q", userID, user.ID)
	}
	if user.Phone != "+2348012345678" {
		t.Errorf("unexpected phone %q", user.Phone)
	}
}

func TestUpdateProfileHandler(t *testing.T) {
	w := doJSON(http.MethodPut, "/profile", token, handler.UpdateProfileRequest{
		Name:         "Bisi",
		ProfileImage: "https://blobs.local/avatars/1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var user models.User
	if err := json.NewDecoder(w.Body).Decode(&user); err != nil {
		t.Fatal(err)
	}
	if user.Name != "Bisi" {
		t.Errorf("expected name Bisi, got %q", user.Name)
	}
	if user.ProfileImageURL != "https://blobs.local/avatars/1" {
		t.Errorf("unexpected image url %q", user.ProfileImageURL)
	}
}

func TestSetBusinessTypeHandler(t *testing.T) {
	w := doJSON(http.MethodPut, "/profile/business-type", token, handler.BusinessTypeRequest{BusinessType: "Retail"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	user, err := userRepo.GetByID(userID)
	if err != nil {
		t.Fatal(err)
	}
	if user.BusinessType != "Retail" {
		t.Errorf("expected Retail, got %q", user.BusinessType)
	}
}

func TestSetBusinessTypeHandler_Empty(t *testing.T) {
	w := doJSON(http.MethodPut, "/profile/business-type", token, handler.BusinessTypeRequest{})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
