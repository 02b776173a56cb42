package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cbodonnell/shaft/pkg/log"
)

const (
	DefaultIdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"
	DefaultSecureTokenURL     = "https://securetoken.googleapis.com/v1"
)

// AccountsHandler lets players sign up and sign in with email and password
// through the Firebase Auth REST API. The ID token it hands out is the
// bearer token the score API and the game server verify.
type AccountsHandler struct {
	apiKey             string
	identityToolkitURL string
	secureTokenURL     string
	client             *http.Client
}

type NewAccountsHandlerOptions struct {
	APIKey string
	// IdentityToolkitURL and SecureTokenURL default to the Google endpoints.
	IdentityToolkitURL string
	SecureTokenURL     string
	Client             *http.Client
}

func NewAccountsHandler(opts NewAccountsHandlerOptions) *AccountsHandler {
	h := &AccountsHandler{
		apiKey:             opts.APIKey,
		identityToolkitURL: opts.IdentityToolkitURL,
		secureTokenURL:     opts.SecureTokenURL,
		client:             opts.Client,
	}
	if h.identityToolkitURL == "" {
		h.identityToolkitURL = DefaultIdentityToolkitURL
	}
	if h.secureTokenURL == "" {
		h.secureTokenURL = DefaultSecureTokenURL
	}
	if h.client == nil {
		h.client = http.DefaultClient
	}
	return h
}

// https://firebase.google.com/docs/reference/rest/auth#section-error-format
type firebaseError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// accountErrors maps Firebase error codes to what the player is told.
var accountErrors = map[string]string{
	"EMAIL_EXISTS":                "Email already exists",
	"INVALID_EMAIL":               "Invalid email",
	"INVALID_LOGIN_CREDENTIALS":   "Invalid credentials",
	"TOO_MANY_ATTEMPTS_TRY_LATER": "Too many attempts, try again later",
	"TOKEN_EXPIRED":               "Token expired",
	"WEAK_PASSWORD : Password should be at least 6 characters": "Password should be at least 6 characters",
}

type credentials struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

// SessionResponse is returned by the register and login endpoints.
type SessionResponse struct {
	IDToken      string `json:"idToken"`
	Email        string `json:"email"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
}

type refreshRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshResponse is returned by the refresh endpoint.
type RefreshResponse struct {
	ExpiresIn    string `json:"expires_in"`
	TokenType    string `json:"token_type"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	UserID       string `json:"user_id"`
}

// accountError is a rejection the player can act on.
type accountError struct {
	message string
}

func (e *accountError) Error() string {
	return e.message
}

// call posts payload to url and decodes the answer into out.
func (h *AccountsHandler) call(ctx context.Context, url string, payload, out interface{}) error {
	body := bytes.NewBuffer(nil)
	if err := json.NewEncoder(body).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+h.apiKey, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fbErr := &firebaseError{}
		if err := json.NewDecoder(resp.Body).Decode(fbErr); err != nil {
			return fmt.Errorf("failed to decode error response with status %s: %v", resp.Status, err)
		}
		if msg, ok := accountErrors[fbErr.Error.Message]; ok {
			return &accountError{message: msg}
		}
		return fmt.Errorf("unhandled error response: %s", fbErr.Error.Message)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %v", err)
	}
	return nil
}

func writeAccountError(w http.ResponseWriter, action string, err error) {
	if accErr, ok := err.(*accountError); ok {
		http.Error(w, accErr.message, http.StatusBadRequest)
		return
	}
	log.Error("failed to %s: %v", action, err)
	http.Error(w, "Failed to "+action, http.StatusBadGateway)
}

func (h *AccountsHandler) handleCredentials(endpoint, action string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := r.FormValue("email")
		password := r.FormValue("password")
		if email == "" {
			http.Error(w, "Missing email", http.StatusBadRequest)
			return
		}
		if password == "" {
			http.Error(w, "Missing password", http.StatusBadRequest)
			return
		}

		session := &SessionResponse{}
		err := h.call(r.Context(), h.identityToolkitURL+endpoint, &credentials{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}, session)
		if err != nil {
			writeAccountError(w, action, err)
			return
		}
		writeJSON(w, http.StatusOK, session)
	}
}

// HandleRegister creates an account.
// https://firebase.google.com/docs/reference/rest/auth#section-create-email-password
func (h *AccountsHandler) HandleRegister() http.HandlerFunc {
	return h.handleCredentials("/accounts:signUp", "register")
}

// HandleLogin exchanges email and password for an ID token.
// https://firebase.google.com/docs/reference/rest/auth#section-sign-in-email-password
func (h *AccountsHandler) HandleLogin() http.HandlerFunc {
	return h.handleCredentials("/accounts:signInWithPassword", "login")
}

// HandleRefresh exchanges a refresh token for a new ID token.
// https://firebase.google.com/docs/reference/rest/auth#section-refresh-token
func (h *AccountsHandler) HandleRefresh() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := r.FormValue("refreshToken")
		if refreshToken == "" {
			http.Error(w, "Missing refresh token", http.StatusBadRequest)
			return
		}

		refreshed := &RefreshResponse{}
		err := h.call(r.Context(), h.secureTokenURL+"/token", &refreshRequest{
			GrantType:    "refresh_token",
			RefreshToken: refreshToken,
		}, refreshed)
		if err != nil {
			writeAccountError(w, "refresh", err)
			return
		}
		writeJSON(w, http.StatusOK, refreshed)
	}
}
