package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"passvault/internal/config"
	"passvault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// VaultHandler обрабатывает операции над записями хранилища.
type VaultHandler struct {
	VaultService *service.VaultService
	Logger       *zap.SugaredLogger
	Config       *config.Config
}

// NewVaultHandler создаёт хендлер хранилища.
func NewVaultHandler(vaultService *service.VaultService, logger *zap.SugaredLogger, cfg *config.Config) *VaultHandler {
	return &VaultHandler{VaultService: vaultService, Logger: logger, Config: cfg}
}

// UpsertRequest — тело PUT /vault. Идентичность — userEmail, который
// вызывающий получил при входе.
type UpsertRequest struct {
	Website   string `json:"website"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	UserEmail string `json:"userEmail"`
}

// EntryDTO — запись хранилища в ответах API.
type EntryDTO struct {
	ID       string `json:"id"`
	Website  string `json:"website"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func toDTO(e service.Entry) EntryDTO {
	return EntryDTO{ID: e.ID, Website: e.Website, Username: e.Username, Password: e.Secret}
}

// List отдаёт все записи учётной записи.
func (h *VaultHandler) List(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	entries, err := h.VaultService.List(r.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			writeMessage(w, http.StatusNotFound, "User not found")
			return
		}
		h.Logger.Errorw("List: service error", "email", email, "error", err)
		writeMessage(w, http.StatusInternalServerError, "Server error")
		return
	}

	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toDTO(e))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(out)
}

// Upsert вставляет запись или перезаписывает секрет существующей
// с тем же (website, username). 201 — создана, 200 — перезаписана.
func (h *VaultHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("Upsert: invalid request body", "error", err)
		writeMessage(w, http.StatusBadRequest, "invalid request")
		return
	}

	entry, created, err := h.VaultService.Upsert(r.Context(), req.UserEmail, req.Website, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyField):
			writeMessage(w, http.StatusBadRequest, "website, username and password are required")
		case errors.Is(err, service.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, "User not found")
		default:
			h.Logger.Errorw("Upsert: service error", "email", req.UserEmail, "error", err)
			writeMessage(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if created {
		w.WriteHeader(http.StatusCreated)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(toDTO(*entry))
}

// Delete удаляет запись по идентификатору.
func (h *VaultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.VaultService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrEntryNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "Entry not found"})
			return
		}
		h.Logger.Errorw("Delete: service error", "id", id, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "Server error during delete"})
		return
	}

	writeMessage(w, http.StatusOK, "Deleted successfully")
}
