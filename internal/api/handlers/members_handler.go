package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/naseer617/ta-member-service/internal/api/types"
	"github.com/naseer617/ta-member-service/internal/api/validators"
	"github.com/naseer617/ta-member-service/internal/repository"
	appErr "github.com/naseer617/ta-member-service/pkg/errors"
	"github.com/naseer617/ta-member-service/pkg/logger"
)

// MembersHandler serves the member endpoints. It is stateless across
// requests; all member state lives behind the repository.
type MembersHandler struct {
	repo repository.MemberRepository
}

func NewMembersHandler(repo repository.MemberRepository) *MembersHandler {
	return &MembersHandler{repo: repo}
}

// Create validates the payload and inserts a member. Uniqueness
// conflicts and any other persistence failure all map to 400 with the
// documented messages; validation never reaches the repository.
func (h *MembersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req types.MemberCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeDetail(w, http.StatusBadRequest, validators.Message(err))
		return
	}

	m := req.Model()
	if err := h.repo.Create(r.Context(), &m); err != nil {
		switch appErr.ConflictField(err) {
		case "login":
			writeDetail(w, http.StatusBadRequest, "Login already exists")
		case "email":
			writeDetail(w, http.StatusBadRequest, "Email already exists")
		default:
			logger.L().Error("create member failed", zap.Error(err))
			writeDetail(w, http.StatusBadRequest, "Database error")
		}
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// List returns all active members ordered by followers descending.
func (h *MembersHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.repo.ListActive(r.Context())
	if err != nil {
		logger.L().Error("list members failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "Failed to fetch members")
		return
	}
	writeJSON(w, http.StatusOK, members)
}

// DeleteAll soft-deletes every active member. The confirmation message
// is the same whether any rows were affected or not.
func (h *MembersHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.SoftDeleteAll(r.Context()); err != nil {
		logger.L().Error("soft delete members failed", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "Failed to delete members")
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: "Members soft deleted"})
}

// DeleteOne soft-deletes the member with the given id if it is still
// active. Zero rows affected means the id does not exist or the member
// was already deleted; both report 404.
func (h *MembersHandler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeDetail(w, http.StatusNotFound, "Member not found")
		return
	}

	deleted, err := h.repo.SoftDeleteOne(r.Context(), uint(id))
	if err != nil {
		logger.L().Error("soft delete member failed", zap.Uint64("id", id), zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, "Failed to delete member")
		return
	}
	if !deleted {
		writeDetail(w, http.StatusNotFound, "Member not found")
		return
	}
	writeJSON(w, http.StatusOK, types.MessageResponse{Message: fmt.Sprintf("Member %d soft deleted", id)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.DetailResponse{Detail: msg})
}
