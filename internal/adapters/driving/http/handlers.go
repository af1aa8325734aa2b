package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/stockhive-labs/stockhive-core/internal/core/domain"
	"github.com/stockhive-labs/stockhive-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Health endpoints

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req domain.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.authService.Signup(r.Context(), req); err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := s.authService.Login(r.Context(), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// refreshRequest carries the refresh token for logout and refresh
type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := s.authService.Logout(r.Context(), req.RefreshToken); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	pair, err := s.authService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (s *Server) handleHasCompany(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeError(w, http.StatusUnauthorized, "missing authorization token")
		return
	}

	has, err := s.authService.HasCompany(r.Context(), token)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"has_company": has})
}

// Company endpoints

func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateCompanyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.companyService.CreateCompany(r.Context(), GetClaims(r.Context()), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := s.companyService.CreateEmployee(r.Context(), GetClaims(r.Context()), req)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

// handleListBranches returns the branches of the caller's own memberships.
// A principal without branch-scoped memberships gets an empty list.
func (s *Server) handleListBranches(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	if claims == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	branchIDs := domain.BranchIDs(claims.Memberships)
	if len(branchIDs) == 0 {
		writeJSON(w, http.StatusOK, []domain.Branch{})
		return
	}

	branches, err := s.companyService.ListBranches(r.Context(), branchIDs)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if branches == nil {
		branches = []domain.Branch{}
	}

	writeJSON(w, http.StatusOK, branches)
}

// Warehouse endpoints

type createWarehouseRequest struct {
	Name string `json:"name"`
}

func (s *Server) handleCreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req createWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	warehouse, err := s.warehouseService.Create(r.Context(), GetClaims(r.Context()), req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, warehouse)
}

func (s *Server) handleListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := s.warehouseService.List(r.Context(), GetClaims(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if warehouses == nil {
		warehouses = []domain.Warehouse{}
	}

	writeJSON(w, http.StatusOK, warehouses)
}

type associateWarehouseRequest struct {
	BranchID string `json:"branch_id"`
}

func (s *Server) handleAssociateWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouseID := r.PathValue("id")

	var req associateWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	link, err := s.warehouseService.AssociateBranch(r.Context(), GetClaims(r.Context()), warehouseID, req.BranchID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, link)
}

// Category endpoints

type createCategoryRequest struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parent_id,omitempty"`
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	category, err := s.categoryService.Create(r.Context(), GetClaims(r.Context()), req.Name, req.ParentID)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, category)
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.categoryService.List(r.Context(), GetClaims(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	writeJSON(w, http.StatusOK, categories)
}

// writeDomainError maps domain errors to HTTP statuses
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "invalid token")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, domain.ErrInvalidParent):
		writeError(w, http.StatusBadRequest, "parent category not found")
	case errors.Is(err, domain.ErrCrossCompany):
		writeError(w, http.StatusBadRequest, "parent category belongs to another company")
	case errors.Is(err, domain.ErrCyclicTree):
		writeError(w, http.StatusBadRequest, "category tree cycle")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "invalid input")
	case errors.Is(err, domain.ErrEmailTaken):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, domain.ErrDuplicate):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
