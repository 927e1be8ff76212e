package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/okian/careerpath/internal/domain/model"
)

// traitFlags binds one float flag per Big Five trait.
type traitFlags struct {
	values map[string]*float64
}

func (t *traitFlags) register(cmd *cobra.Command) {
	t.values = make(map[string]*float64, len(model.Traits()))
	for _, tr := range model.Traits() {
		v := new(float64)
		cmd.Flags().Float64Var(v, tr.Key, 0, fmt.Sprintf("%s score, %d-%d (default from default_trait_score)", tr.Label, model.MinTraitScore, model.MaxTraitScore))
		t.values[tr.Key] = v
	}
}

// resolve returns the flag values, using def for traits not given on the
// command line. Non-finite values and values outside the slider range are
// rejected.
func (t *traitFlags) resolve(cmd *cobra.Command, def float64) (model.BigFive, error) {
	b := model.Uniform(def)
	for _, tr := range model.Traits() {
		if !cmd.Flags().Changed(tr.Key) {
			continue
		}
		v := *t.values[tr.Key]
		if math.IsNaN(v) || math.IsInf(v, 0) || v < model.MinTraitScore || v > model.MaxTraitScore {
			return model.BigFive{}, fmt.Errorf("--%s %g: must be within [%d, %d]", tr.Key, v, model.MinTraitScore, model.MaxTraitScore)
		}
		b, _ = b.With(tr.Key, v)
	}
	return b, nil
}
