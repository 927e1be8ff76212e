// Package model contains domain models passed between layers.
package model

import "math"

// Trait score bounds enforced by the input layer.
const (
	MinTraitScore = 0
	MaxTraitScore = 100
)

// Code is one of the six RIASEC (Holland) types.
type Code string

// RIASEC codes.
const (
	Realistic     Code = "R"
	Investigative Code = "I"
	Artistic      Code = "A"
	Social        Code = "S"
	Enterprising  Code = "E"
	Conventional  Code = "C"
)

// Codes returns the six codes in their fixed enumeration order R, I, A, S, E, C.
// Ranking ties are resolved by this order.
func Codes() []Code {
	return []Code{Realistic, Investigative, Artistic, Social, Enterprising, Conventional}
}

// Valid reports whether c is one of the six RIASEC codes.
func (c Code) Valid() bool {
	switch c {
	case Realistic, Investigative, Artistic, Social, Enterprising, Conventional:
		return true
	}
	return false
}

// BigFive holds a user's Big Five personality scores, each nominally in [0, 100].
type BigFive struct {
	Openness          float64 `json:"openness"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Uniform returns a BigFive with every trait set to v.
func Uniform(v float64) BigFive {
	return BigFive{
		Openness:          v,
		Conscientiousness: v,
		Extraversion:      v,
		Agreeableness:     v,
		Neuroticism:       v,
	}
}

// Clamp returns a copy with every trait limited to [MinTraitScore, MaxTraitScore].
// Scoring never clamps; this is for input surfaces that mimic slider bounds.
func (b BigFive) Clamp() BigFive {
	return BigFive{
		Openness:          clamp(b.Openness),
		Conscientiousness: clamp(b.Conscientiousness),
		Extraversion:      clamp(b.Extraversion),
		Agreeableness:     clamp(b.Agreeableness),
		Neuroticism:       clamp(b.Neuroticism),
	}
}

func clamp(v float64) float64 {
	if math.IsNaN(v) {
		return MinTraitScore
	}
	return math.Max(MinTraitScore, math.Min(MaxTraitScore, v))
}

// Trait names a single Big Five dimension.
type Trait struct {
	Key         string
	Label       string
	Description string
}

// Traits lists the five dimensions in form order.
func Traits() []Trait {
	return []Trait{
		{Key: "openness", Label: "Openness", Description: "Rasa ingin tahu, kreativitas, imajinasi"},
		{Key: "conscientiousness", Label: "Conscientiousness", Description: "Organisasi, Tanggung Jawab, Disiplin"},
		{Key: "extraversion", Label: "Extraversion", Description: "Keterbukaan sosial, antusiasme, ketegasan"},
		{Key: "agreeableness", Label: "Agreeableness", Description: "Belas kasih, kerja sama, kepercayaan"},
		{Key: "neuroticism", Label: "Neuroticism", Description: "Sensitivitas emosional, respons terhadap stres"},
	}
}

// With returns a copy of b with the trait named key set to v.
// Unknown keys leave b unchanged and report false.
func (b BigFive) With(key string, v float64) (BigFive, bool) {
	switch key {
	case "openness":
		b.Openness = v
	case "conscientiousness":
		b.Conscientiousness = v
	case "extraversion":
		b.Extraversion = v
	case "agreeableness":
		b.Agreeableness = v
	case "neuroticism":
		b.Neuroticism = v
	default:
		return b, false
	}
	return b, true
}

// Get returns the trait named key and whether the key is known.
func (b BigFive) Get(key string) (float64, bool) {
	switch key {
	case "openness":
		return b.Openness, true
	case "conscientiousness":
		return b.Conscientiousness, true
	case "extraversion":
		return b.Extraversion, true
	case "agreeableness":
		return b.Agreeableness, true
	case "neuroticism":
		return b.Neuroticism, true
	}
	return 0, false
}

// Riasec holds the six RIASEC accumulators derived from a BigFive.
type Riasec struct {
	R float64 `json:"R"`
	I float64 `json:"I"`
	A float64 `json:"A"`
	S float64 `json:"S"`
	E float64 `json:"E"`
	C float64 `json:"C"`
}

// Get returns the accumulator for code c, or 0 for an unknown code.
func (r Riasec) Get(c Code) float64 {
	switch c {
	case Realistic:
		return r.R
	case Investigative:
		return r.I
	case Artistic:
		return r.A
	case Social:
		return r.S
	case Enterprising:
		return r.E
	case Conventional:
		return r.C
	}
	return 0
}
