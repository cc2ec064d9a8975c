package model

import "time"

// Assessment is the persisted record of one completed scoring run: the
// submitted answers, the structured report, and the final advisory text.
// The scoring engine itself never touches storage; the serve/CLI glue
// writes these through internal/store.
type Assessment struct {
	ID          string      `json:"id"`
	Answers     AnswerSet   `json:"answers"`
	Report      ScoreReport `json:"report"`
	Advisory    string      `json:"advisory"`
	Polished    bool        `json:"polished"`
	GeneratedAt time.Time   `json:"generated_at"`
}
