package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"pagelift.com/seo-assistant/internal/core"
)

type APIHandler struct {
	authService *core.AuthService
	llmClient   *core.GeminiClient
	fixService  *core.FixService
}

func NewAPIHandler(as *core.AuthService, llm *core.GeminiClient, fs *core.FixService) *APIHandler {
	return &APIHandler{authService: as, llmClient: llm, fixService: fs}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type RegisterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

func (h *APIHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	userID, err := h.authService.Register(r.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrValidation):
			respondError(w, http.StatusBadRequest, "Missing required fields.")
		case errors.Is(err, core.ErrConflict):
			respondError(w, http.StatusConflict, "Email already registered.")
		default:
			log.Printf("Error registering user %s: %v", req.Email, err)
			respondError(w, http.StatusInternalServerError, "Internal server error during registration.")
		}
		return
	}

	respondJSON(w, http.StatusCreated, RegisterResponse{
		Success: true,
		Message: "Registration successful.",
		UserID:  userID,
	})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Success   bool   `json:"success"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

func (h *APIHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrValidation):
			respondError(w, http.StatusBadRequest, "Missing email or password.")
		case errors.Is(err, core.ErrUnauthorized):
			respondError(w, http.StatusUnauthorized, "Invalid email or password.")
		default:
			log.Printf("Error logging in user %s: %v", req.Email, err)
			respondError(w, http.StatusInternalServerError, "Internal server error during login.")
		}
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Success:   true,
		UserID:    user.UserID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
	})
}

type GenerateFixRequest struct {
	IssueID string            `json:"issueId"`
	Context map[string]string `json:"context"`
}

func (h *APIHandler) GenerateFixHandler(w http.ResponseWriter, r *http.Request) {
	var req GenerateFixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.IssueID == "" {
		respondError(w, http.StatusBadRequest, "issueId is required.")
		return
	}

	prompt, err := core.BuildPrompt(req.IssueID, req.Context)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Unsupported issueId for AI content generation.")
		return
	}

	suggestion, err := h.llmClient.Complete(r.Context(), prompt)
	if err != nil {
		var upstreamErr *core.UpstreamError
		switch {
		case errors.Is(err, core.ErrConfig):
			respondError(w, http.StatusInternalServerError, "Gemini API key is not configured on the server.")
		case errors.As(err, &upstreamErr):
			log.Printf("Error calling Gemini API: %v", err)
			respondJSON(w, http.StatusBadGateway, map[string]any{
				"error":   "Failed to communicate with the Gemini API. Check API key or quota.",
				"details": upstreamErr.Details,
			})
		case errors.Is(err, core.ErrParse):
			log.Printf("Error parsing Gemini API response: %v", err)
			respondError(w, http.StatusInternalServerError, "Invalid response format from the Gemini API.")
		default:
			log.Printf("Error generating suggestion for issue %s: %v", req.IssueID, err)
			respondError(w, http.StatusInternalServerError, "Failed to generate suggestion.")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"suggestion": suggestion})
}

type ApplyFixRequest struct {
	IssueID    string `json:"issueId"`
	Suggestion string `json:"suggestion"`
}

func (h *APIHandler) ApplyFixHandler(w http.ResponseWriter, r *http.Request) {
	var req ApplyFixRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	msg, err := h.fixService.ApplyFix(req.IssueID, req.Suggestion)
	if err != nil {
		respondError(w, http.StatusBadRequest, "issueId and suggestion are required.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": msg})
}
