package models

import (
	"time"
)

// User represents a registered user
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Rulebase is a named collection of defeasible premises owned by a user.
type Rulebase struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Premise is one formula in a rulebase. Rank feeds the preference relation;
// higher ranks outrank lower ones. Position preserves the order premises
// were written in, which the engine's output order follows.
type Premise struct {
	ID         string    `json:"id"`
	RulebaseID string    `json:"rulebase_id"`
	Text       string    `json:"text"`
	Rank       int       `json:"rank"`
	Position   int       `json:"position"`
	CreatedAt  time.Time `json:"created_at"`
}

// ArgumentNode is one node of a serialized argument tree. Kind is
// "assumption", "argument" or "open". Head carries the premise's canonical
// form for the first two kinds; Open carries the undecided disjuncts for the
// third.
type ArgumentNode struct {
	Kind string   `json:"kind"`
	Head string   `json:"head,omitempty"`
	Open []string `json:"open,omitempty"`
}

// WinnerNode is a surviving argument with the partitioning of its own
// support. Detail is nil for assumptions and open leaves and is then omitted
// from the JSON.
type WinnerNode struct {
	Argument ArgumentNode `json:"argument"`
	Detail   *Explanation `json:"detail,omitempty"`
}

// SupportSummary lists the losing arguments of a partition, head-only.
type SupportSummary struct {
	Pro    []ArgumentNode `json:"pro"`
	Contra []ArgumentNode `json:"contra"`
}

// Explanation is the winners/losers partition for one question. Winners
// carry their full recursive decomposition; losers are reported by head.
type Explanation struct {
	WinnersPro    []WinnerNode   `json:"winners_pro"`
	WinnersContra []WinnerNode   `json:"winners_contra"`
	Losers        SupportSummary `json:"losers"`
}

// ExplainResult bundles an explanation with the open questions that would
// close its undecided branches.
type ExplainResult struct {
	Question    string      `json:"question"`
	Explanation Explanation `json:"explanation"`
	Questions   [][]string  `json:"questions"`
}
