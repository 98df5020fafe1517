package api

import (
	"encoding/json"
	"net/http"

	"github.com/explainable-reasoning/argument-search/internal/engine"
)

// ExplainRequest represents an ad-hoc explain body: a question plus inline
// premises.
type ExplainRequest struct {
	Question string         `json:"question"`
	Premises []PremiseEntry `json:"premises"`
}

// PremiseEntry is one inline premise of an ad-hoc explain request.
type PremiseEntry struct {
	Text string `json:"text"`
	Rank int    `json:"rank"`
}

// RulebaseExplainRequest represents the body of a stored-rulebase explain.
type RulebaseExplainRequest struct {
	Question string `json:"question"`
}

// handleExplain handles POST /api/v1/explain
func (s *Server) handleExplain(w http.ResponseWriter, r *http.Request) {
	var req ExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	premises := make([]engine.PremiseInput, len(req.Premises))
	for i, p := range req.Premises {
		premises[i] = engine.PremiseInput{Text: p.Text, Rank: p.Rank}
	}

	result, err := s.engine.Explain(engine.Request{Question: req.Question, Premises: premises})
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// handleExplainRulebase handles POST /api/v1/rulebases/{rulebaseID}/explain
func (s *Server) handleExplainRulebase(w http.ResponseWriter, r *http.Request) {
	rulebase, ok := s.ownedRulebase(w, r)
	if !ok {
		return
	}

	var req RulebaseExplainRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		respondError(w, http.StatusBadRequest, "question is required")
		return
	}

	stored, err := s.premiseRepo.GetByRulebaseID(r.Context(), rulebase.ID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read premises")
		return
	}

	premises := make([]engine.PremiseInput, len(stored))
	for i, p := range stored {
		premises[i] = engine.PremiseInput{Text: p.Text, Rank: p.Rank}
	}

	result, err := s.engine.Explain(engine.Request{Question: req.Question, Premises: premises})
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}
