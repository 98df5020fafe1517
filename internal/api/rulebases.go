package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/explainable-reasoning/argument-search/internal/auth"
	"github.com/explainable-reasoning/argument-search/internal/engine"
	"github.com/explainable-reasoning/argument-search/internal/storage"
	"github.com/explainable-reasoning/argument-search/pkg/models"
)

// CreateRulebaseRequest represents the rulebase creation body
type CreateRulebaseRequest struct {
	Name string `json:"name"`
}

// AddPremiseRequest represents the premise creation body
type AddPremiseRequest struct {
	Text string `json:"text"`
	Rank int    `json:"rank"`
}

// handleListRulebases handles GET /api/v1/rulebases
func (s *Server) handleListRulebases(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid user id")
		return
	}

	rulebases, err := s.rulebaseRepo.GetByUserID(r.Context(), userID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list rulebases")
		return
	}

	response := make([]models.Rulebase, len(rulebases))
	for i, rb := range rulebases {
		response[i] = toModelRulebase(rb)
	}
	respondJSON(w, http.StatusOK, response)
}

// handleCreateRulebase handles POST /api/v1/rulebases
func (s *Server) handleCreateRulebase(w http.ResponseWriter, r *http.Request) {
	claims := mustClaims(r)
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid user id")
		return
	}

	var req CreateRulebaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	rulebase := &storage.Rulebase{UserID: userID, Name: req.Name}
	if err := s.rulebaseRepo.Create(r.Context(), rulebase); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create rulebase")
		return
	}

	respondJSON(w, http.StatusCreated, toModelRulebase(rulebase))
}

// handleGetRulebase handles GET /api/v1/rulebases/{rulebaseID}
func (s *Server) handleGetRulebase(w http.ResponseWriter, r *http.Request) {
	rulebase, ok := s.ownedRulebase(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, toModelRulebase(rulebase))
}

// handleDeleteRulebase handles DELETE /api/v1/rulebases/{rulebaseID}
func (s *Server) handleDeleteRulebase(w http.ResponseWriter, r *http.Request) {
	rulebase, ok := s.ownedRulebase(w, r)
	if !ok {
		return
	}

	if err := s.premiseRepo.DeleteByRulebaseID(r.Context(), rulebase.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete premises")
		return
	}
	if err := s.rulebaseRepo.Delete(r.Context(), rulebase.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete rulebase")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleListPremises handles GET /api/v1/rulebases/{rulebaseID}/premises
func (s *Server) handleListPremises(w http.ResponseWriter, r *http.Request) {
	rulebase, ok := s.ownedRulebase(w, r)
	if !ok {
		return
	}

	premises, err := s.premiseRepo.GetByRulebaseID(r.Context(), rulebase.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to list premises")
		return
	}

	response := make([]models.Premise, len(premises))
	for i, p := range premises {
		response[i] = toModelPremise(p)
	}
	respondJSON(w, http.StatusOK, response)
}

// handleAddPremise handles POST /api/v1/rulebases/{rulebaseID}/premises.
// The premise text is parsed before insert; what is stored is the canonical
// form, so stored rulebases never contain unparseable formulas.
func (s *Server) handleAddPremise(w http.ResponseWriter, r *http.Request) {
	rulebase, ok := s.ownedRulebase(w, r)
	if !ok {
		return
	}

	var req AddPremiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	canonical, err := engine.ValidatePremise(req.Text)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	existing, err := s.premiseRepo.GetByRulebaseID(r.Context(), rulebase.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read premises")
		return
	}

	premise := &storage.Premise{
		RulebaseID: rulebase.ID,
		Text:       canonical,
		Rank:       req.Rank,
		Position:   len(existing),
	}
	if err := s.premiseRepo.Create(r.Context(), premise); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create premise")
		return
	}

	respondJSON(w, http.StatusCreated, toModelPremise(premise))
}

// ownedRulebase loads the routed rulebase and checks the caller owns it.
// On failure it writes the response and returns ok=false.
func (s *Server) ownedRulebase(w http.ResponseWriter, r *http.Request) (*storage.Rulebase, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "rulebaseID"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid rulebase id")
		return nil, false
	}

	rulebase, err := s.rulebaseRepo.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch rulebase")
		return nil, false
	}
	if rulebase == nil {
		respondError(w, http.StatusNotFound, "rulebase not found")
		return nil, false
	}

	claims, ok := auth.GetUserFromContext(r.Context())
	if !ok || rulebase.UserID.String() != claims.UserID {
		respondError(w, http.StatusForbidden, "access denied")
		return nil, false
	}

	return rulebase, true
}

func mustClaims(r *http.Request) *auth.Claims {
	claims, _ := auth.GetUserFromContext(r.Context())
	return claims
}

func toModelRulebase(rb *storage.Rulebase) models.Rulebase {
	return models.Rulebase{
		ID:        rb.ID.String(),
		UserID:    rb.UserID.String(),
		Name:      rb.Name,
		CreatedAt: rb.CreatedAt,
		UpdatedAt: rb.UpdatedAt,
	}
}

func toModelPremise(p *storage.Premise) models.Premise {
	return models.Premise{
		ID:         p.ID.String(),
		RulebaseID: p.RulebaseID.String(),
		Text:       p.Text,
		Rank:       p.Rank,
		Position:   p.Position,
		CreatedAt:  p.CreatedAt,
	}
}
