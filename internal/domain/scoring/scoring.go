// Package scoring maps Big Five personality scores onto RIASEC types and
// ranks the result into a Holland Code.
package scoring

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/okian/careerpath/internal/domain/model"
	"github.com/okian/careerpath/internal/domain/types"
)

// Mapping coefficients from Big Five traits to RIASEC accumulators.
const (
	opennessToArtistic              = 0.5
	opennessToInvestigative         = 0.5
	conscientiousnessToConventional = 0.6
	conscientiousnessToInvestigate  = 0.4
	extraversionToSocial            = 0.5
	extraversionToEnterprising      = 0.5
	agreeablenessToSocial           = 0.7

	// Below this neuroticism value the gap is added to R and E.
	neuroticismThreshold = 50
)

// MapToRiasec derives the RIASEC accumulators from b. Output is not clamped,
// normalized or rounded.
func MapToRiasec(b model.BigFive) model.Riasec {
	var r model.Riasec

	r.A += b.Openness * opennessToArtistic
	r.I += b.Openness * opennessToInvestigative

	r.C += b.Conscientiousness * conscientiousnessToConventional
	r.I += b.Conscientiousness * conscientiousnessToInvestigate

	r.S += b.Extraversion * extraversionToSocial
	r.E += b.Extraversion * extraversionToEnterprising

	r.S += b.Agreeableness * agreeablenessToSocial

	if b.Neuroticism < neuroticismThreshold {
		bonus := neuroticismThreshold - b.Neuroticism
		r.R += bonus
		r.E += bonus
	}

	return r
}

// Round rounds x to the nearest integer with halves going up (2.5 -> 3, -2.5 -> -2).
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}

// RankAndSelect rounds every accumulator, sorts descending by the rounded
// value and takes the top three codes. Rounding happens before sorting, and
// the sort is stable over the R, I, A, S, E, C order, so equal rounded scores
// keep that order even when their raw values differ.
func RankAndSelect(r model.Riasec) types.Profile {
	codes := model.Codes()
	entries := make([]types.Entry, 0, len(codes))
	for _, c := range codes {
		raw := r.Get(c)
		entries = append(entries, types.Entry{Code: c, Score: Round(raw), Raw: raw})
	}

	slices.SortStableFunc(entries, func(a, b types.Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})

	dominant := make([]model.Code, 0, types.DominantCount)
	for i := range entries {
		entries[i].Rank = i + 1
		if i < types.DominantCount {
			dominant = append(dominant, entries[i].Code)
		}
	}

	return types.Profile{
		Riasec:      r,
		Entries:     entries,
		Dominant:    dominant,
		HollandCode: HollandCode(dominant),
	}
}

// HollandCode joins codes with the Holland separator, e.g. "S-I-C".
func HollandCode(codes []model.Code) string {
	parts := make([]string, len(codes))
	for i, c := range codes {
		parts[i] = string(c)
	}
	return strings.Join(parts, types.HollandSeparator)
}

// Analyze runs MapToRiasec and RankAndSelect on b.
func Analyze(b model.BigFive) types.Profile {
	p := RankAndSelect(MapToRiasec(b))
	p.Input = b
	return p
}
