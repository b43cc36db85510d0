package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/otuedon/shop-tracker/internal/auth"
	"github.com/otuedon/shop-tracker/internal/blobstore"
	handler "github.com/otuedon/shop-tracker/internal/http/handlers"
	mw "github.com/otuedon/shop-tracker/internal/http/middleware"
	rl "github.com/otuedon/shop-tracker/internal/http/rate_limiter"
	"github.com/otuedon/shop-tracker/internal/http/router"
	"github.com/otuedon/shop-tracker/internal/repo"
)

var (
	r http.Handler

	productRepo      *repo.InMemoryProductRepository
	saleRepo         *repo.InMemorySaleRepository
	notificationRepo *repo.InMemoryNotificationRepository
	userRepo         *repo.InMemoryUserRepository
	blobs            *blobstore.InMemoryStore

	token  string
	userID string
)

func init() {
	setupTestRepos()
	r = router.NewRouter(os.TempDir())

	var err error
	token, userID, err = signIn("+2348012345678")
	if err != nil {
		panic(fmt.Sprintf("error signing in: %v", err))
	}
}

func setupTestRepos() {
	productRepo = repo.NewInMemoryProductRepository()
	saleRepo = repo.NewInMemorySaleRepository()
	notificationRepo = repo.NewInMemoryNotificationRepository()
	userRepo = repo.NewInMemoryUserRepository()
	blobs = blobstore.NewInMemoryStore()

	handler.SetProductRepo(productRepo)
	handler.SetSaleRepo(saleRepo)
	handler.SetNotificationRepo(notificationRepo)
	handler.SetUserRepo(userRepo)
	handler.SetBlobStore(blobs)
	handler.SetDevMode(true)

	authService := auth.NewService(auth.NewInMemoryCodeStore(), userRepo, auth.ServiceOptions{
		Secret:     "test-secret",
		JWTTTL:     time.Hour,
		RefreshTTL: 24 * time.Hour,
		OTPTTL:     10 * time.Minute,
		OTPLength:  6,
		MaxTries:   3,
	})
	handler.SetAuthService(authService)
	mw.SetAuthService(authService)
}

// signIn runs the OTP round trip and returns a bearer token and the user id.
// The dev-mode echo stands in for an SMS inbox.
func signIn(phone string) (string, string, error) {
	rl.CleanupAll()

	w := doJSON(http.MethodPost, "/auth/otp/request", "", handler.OTPRequest{Phone: phone})
	if w.Code != http.StatusOK {
		return "", "", fmt.Errorf("otp request failed with %d: %s", w.Code, w.Body.String())
	}
	var requested handler.OTPRequestResult
	if err := json.NewDecoder(w.Body).Decode(&requested); err != nil {
		return "", "", err
	}

	w = doJSON(http.MethodPost, "/auth/otp/verify", "", handler.OTPVerifyRequest{Phone: phone, Code: requested.DevCode})
	if w.Code != http.StatusOK {
		return "", "", fmt.Errorf("otp verify failed with %d: %s", w.Code, w.Body.String())
	}
	var result handler.AuthResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		return "", "", err
	}
	return result.Token, result.User.ID, nil
}

func doJSON(method, path, bearer string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func clearAll() {
	productRepo.Clear()
	saleRepo.Clear()
	notificationRepo.Clear()
	handler.ClearSessions()
}

// openDraft starts a form session and returns its id.
func openDraft(t *testing.T, query string) string {
	t.Helper()
	w := doJSON(http.MethodPost, "/drafts"+query, token, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("open draft: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.DraftResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding draft: %v", err)
	}
	return resp.ID
}

func setFields(t *testing.T, draftID string, updates ...handler.FieldUpdate) handler.DraftResponse {
	t.Helper()
	w := doJSON(http.MethodPatch, "/drafts/"+draftID+"/fields", token, handler.FieldsRequest{Fields: updates})
	if w.Code != http.StatusOK {
		t.Fatalf("set fields: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp handler.DraftResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding draft: %v", err)
	}
	return resp
}

func uploadImage(t *testing.T, draftID string) {
	t.Helper()
	var buf bytes.Buffer
	mp := multipart.NewWriter(&buf)
	part, err := mp.CreateFormFile("image", "pic.jpg")
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(part, "jpeg bytes")
	mp.Close()

	req := httptest.NewRequest(http.MethodPost, "/drafts/"+draftID+"/image", &buf)
	req.Header.Set("Content-Type", mp.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("upload image: expected 200, got %d: %s", w.Code, w.Body.String())
	}
}

func advance(t *testing.T, draftID string) handler.AdvanceResult {
	t.Helper()
	w := doJSON(http.MethodPost, "/drafts/"+draftID+"/advance", token, nil)
	var resp handler.AdvanceResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding advance result: %v", err)
	}
	if w.Code != http.StatusOK {
		t.Fatalf("advance blocked with %d on %v", w.Code, resp.MissingFields)
	}
	return resp
}
