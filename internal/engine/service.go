// Package engine wires the parser and the argumentation core into the
// service-facing query API.
package engine

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/explainable-reasoning/argument-search/internal/argue"
	"github.com/explainable-reasoning/argument-search/internal/logic"
	"github.com/explainable-reasoning/argument-search/internal/parser"
	"github.com/explainable-reasoning/argument-search/pkg/models"
)

const defaultCacheSize = 256

// PremiseInput is one premise of an explain request. Rank feeds the
// preference relation; premises sharing a rank, and unranked premises
// (rank 0), are mutually incomparable.
type PremiseInput struct {
	Text string
	Rank int
}

// Request asks what can be argued for and against Question from Premises.
type Request struct {
	Question string
	Premises []PremiseInput
}

// Service answers explain requests. The core is pure, so results are cached
// by input digest; entries never go stale for identical inputs.
type Service struct {
	cache *lru.Cache[string, *models.ExplainResult]
}

// NewService creates a Service with a result cache of the given size.
// size <= 0 selects the default.
func NewService(cacheSize int) *Service {
	if cacheSize <= 0 {
		cacheSize = defaultCacheSize
	}
	cache, err := lru.New[string, *models.ExplainResult](cacheSize)
	if err != nil {
		// lru.New only fails on a non-positive size.
		panic(err)
	}
	return &Service{cache: cache}
}

// Explain parses the question and premises, builds the ranked preference,
// and returns the winners/losers partition together with the open questions.
// A parse failure in any input aborts with an error naming the input.
func (s *Service) Explain(req Request) (*models.ExplainResult, error) {
	key := requestDigest(req)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	question, err := parser.Parse(req.Question)
	if err != nil {
		return nil, fmt.Errorf("question %q: %w", req.Question, err)
	}

	information := make([]logic.Proposition, 0, len(req.Premises))
	var ranking argue.Ranking
	for _, in := range req.Premises {
		p, err := parser.Parse(in.Text)
		if err != nil {
			return nil, fmt.Errorf("premise %q: %w", in.Text, err)
		}
		information = append(information, p)
		if in.Rank != 0 {
			ranking = append(ranking, argue.RankedProposition{Rank: in.Rank, Proposition: p})
		}
	}

	var pref argue.Preference = argue.NoPreference
	if len(ranking) > 0 {
		pref = ranking
	}

	wl := argue.Explanation(pref, question, information)

	result := &models.ExplainResult{
		Question:    question.String(),
		Explanation: convertExplanation(wl),
		Questions:   convertQuestions(argue.Questions(wl)),
	}
	s.cache.Add(key, result)
	return result, nil
}

func requestDigest(req Request) string {
	h := sha256.New()
	h.Write([]byte(req.Question))
	for _, p := range req.Premises {
		h.Write([]byte{0})
		h.Write([]byte(p.Text))
		h.Write([]byte{0})
		h.Write([]byte(strconv.Itoa(p.Rank)))
	}
	return hex.EncodeToString(h.Sum(nil))
}

func convertExplanation(wl argue.WinnersLosers) models.Explanation {
	return models.Explanation{
		WinnersPro:    convertWinners(wl.ProWinners),
		WinnersContra: convertWinners(wl.ContraWinners),
		Losers: models.SupportSummary{
			Pro:    convertArguments(wl.ProLosers),
			Contra: convertArguments(wl.ContraLosers),
		},
	}
}

func convertWinners(winners []argue.Winner) []models.WinnerNode {
	out := make([]models.WinnerNode, len(winners))
	for i, w := range winners {
		out[i].Argument = convertArgument(w.Argument)
		if w.Sub != nil {
			detail := convertExplanation(*w.Sub)
			out[i].Detail = &detail
		}
	}
	return out
}

func convertArguments(args []argue.Argument) []models.ArgumentNode {
	out := make([]models.ArgumentNode, len(args))
	for i, a := range args {
		out[i] = convertArgument(a)
	}
	return out
}

func convertArgument(a argue.Argument) models.ArgumentNode {
	switch arg := a.(type) {
	case *argue.Assumption:
		return models.ArgumentNode{Kind: "assumption", Head: arg.Premise.String()}
	case *argue.Compound:
		return models.ArgumentNode{Kind: "argument", Head: arg.Premise.String()}
	case *argue.Open:
		open := make([]string, len(arg.Cases))
		for i, conj := range arg.Cases {
			open[i] = conj.String()
		}
		return models.ArgumentNode{Kind: "open", Open: open}
	}
	return models.ArgumentNode{}
}

func convertQuestions(questions [][]logic.Atom) [][]string {
	out := make([][]string, len(questions))
	for i, set := range questions {
		row := make([]string, len(set))
		for j, a := range set {
			row[j] = string(a)
		}
		out[i] = row
	}
	return out
}

// ValidatePremise parses text and returns its canonical form, for callers
// that store premises and want syntax checked at write time.
func ValidatePremise(text string) (string, error) {
	p, err := parser.Parse(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
