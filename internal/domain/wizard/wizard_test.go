package wizard_test

import (
	"errors"
	"testing"

	"github.com/okian/careerpath/internal/domain/model"
	"github.com/okian/careerpath/internal/domain/wizard"
	"github.com/smartystreets/goconvey/convey"
)

func TestWizardTransitions(t *testing.T) {
	convey.Convey("Given the wizard at Home", t, func() {
		var s wizard.State = wizard.Home{}

		convey.Convey("Then it should have no step number", func() {
			convey.So(s.Step(), convey.ShouldEqual, 0)
			convey.So(s.Name(), convey.ShouldEqual, "home")
		})

		convey.Convey("When starting", func() {
			next, err := wizard.Start(s, model.Uniform(50))

			convey.Convey("Then it should move to Input with the draft", func() {
				convey.So(err, convey.ShouldBeNil)
				in, ok := next.(wizard.Input)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(in.Draft, convey.ShouldResemble, model.Uniform(50))
				convey.So(next.Step(), convey.ShouldEqual, 1)
			})

			convey.Convey("And submitting should move to Results holding the scores", func() {
				scores := model.BigFive{Openness: 80, Neuroticism: 20}
				res, err := wizard.Submit(next, scores)
				convey.So(err, convey.ShouldBeNil)
				r, ok := res.(wizard.Results)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(r.Scores, convey.ShouldResemble, scores)
				convey.So(res.Step(), convey.ShouldEqual, 2)
				convey.So(res.Name(), convey.ShouldEqual, "results")

				convey.Convey("And reset should return Home", func() {
					convey.So(wizard.Reset(res), convey.ShouldResemble, wizard.Home{})
				})
			})
		})

		convey.Convey("When submitting without starting", func() {
			next, err := wizard.Submit(s, model.Uniform(10))

			convey.Convey("Then it should be rejected and the state kept", func() {
				convey.So(errors.Is(err, wizard.ErrInvalidTransition), convey.ShouldBeTrue)
				convey.So(err.Error(), convey.ShouldContainSubstring, "cannot submit from home")
				convey.So(next, convey.ShouldResemble, wizard.Home{})
			})
		})
	})

	convey.Convey("Given the wizard at Results", t, func() {
		var s wizard.State = wizard.Results{Scores: model.Uniform(30)}

		convey.Convey("When starting again without reset", func() {
			next, err := wizard.Start(s, model.Uniform(50))

			convey.Convey("Then it should be rejected and the results kept", func() {
				convey.So(errors.Is(err, wizard.ErrInvalidTransition), convey.ShouldBeTrue)
				convey.So(next, convey.ShouldResemble, s)
			})
		})

		convey.Convey("When submitting again", func() {
			_, err := wizard.Submit(s, model.Uniform(60))

			convey.Convey("Then it should be rejected", func() {
				convey.So(errors.Is(err, wizard.ErrInvalidTransition), convey.ShouldBeTrue)
			})
		})
	})

	convey.Convey("Given a nil state", t, func() {
		_, err := wizard.Start(nil, model.BigFive{})

		convey.Convey("Then start should fail without panicking", func() {
			convey.So(errors.Is(err, wizard.ErrInvalidTransition), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldContainSubstring, "<nil>")
		})

		convey.Convey("And reset should still return Home", func() {
			convey.So(wizard.Reset(nil), convey.ShouldResemble, wizard.Home{})
		})
	})
}
