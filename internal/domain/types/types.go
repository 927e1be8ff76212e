// Package types contains common types used across the application
package types

import "github.com/okian/careerpath/internal/domain/model"

// DominantCount is the number of top-ranked codes that form a Holland Code.
const DominantCount = 3

// HollandSeparator joins dominant codes into a Holland Code.
const HollandSeparator = "-"

// Entry represents one ranked RIASEC score
type Entry struct {
	Rank  int        `json:"rank"`
	Code  model.Code `json:"code"`
	Score int        `json:"score"`
	Raw   float64    `json:"raw"`
}

// Profile is the ranked outcome of scoring one BigFive vector.
type Profile struct {
	Input       model.BigFive `json:"input"`
	Riasec      model.Riasec  `json:"riasec"`
	Entries     []Entry       `json:"scores"`
	Dominant    []model.Code  `json:"dominant_codes"`
	HollandCode string        `json:"holland_code"`
}

// IsDominant reports whether c is one of the profile's dominant codes.
func (p Profile) IsDominant(c model.Code) bool {
	for _, d := range p.Dominant {
		if d == c {
			return true
		}
	}
	return false
}

// TopScore returns the highest rounded score, or 0 for an empty profile.
func (p Profile) TopScore() int {
	if len(p.Entries) == 0 {
		return 0
	}
	return p.Entries[0].Score
}
