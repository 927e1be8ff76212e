package model_test

import (
	"math"
	"testing"

	model "github.com/okian/careerpath/internal/domain/model"
	"github.com/smartystreets/goconvey/convey"
)

func TestCodes(t *testing.T) {
	convey.Convey("Given the RIASEC enumeration", t, func() {
		codes := model.Codes()

		convey.Convey("Then it should be in the fixed R-I-A-S-E-C order", func() {
			convey.So(codes, convey.ShouldResemble, []model.Code{"R", "I", "A", "S", "E", "C"})
		})

		convey.Convey("And every code should be valid", func() {
			for _, c := range codes {
				convey.So(c.Valid(), convey.ShouldBeTrue)
			}
		})

		convey.Convey("And unknown codes should be invalid", func() {
			convey.So(model.Code("X").Valid(), convey.ShouldBeFalse)
			convey.So(model.Code("").Valid(), convey.ShouldBeFalse)
			convey.So(model.Code("r").Valid(), convey.ShouldBeFalse)
		})

		convey.Convey("And mutating the returned slice should not affect later calls", func() {
			codes[0] = "X"
			convey.So(model.Codes()[0], convey.ShouldEqual, model.Realistic)
		})
	})
}

func TestBigFiveClamp(t *testing.T) {
	convey.Convey("Given a BigFive with out-of-range traits", t, func() {
		b := model.BigFive{
			Openness:          -10,
			Conscientiousness: 150,
			Extraversion:      42.5,
			Agreeableness:     0,
			Neuroticism:       100,
		}

		convey.Convey("When clamping", func() {
			c := b.Clamp()

			convey.Convey("Then values should be limited to [0, 100]", func() {
				convey.So(c.Openness, convey.ShouldEqual, 0)
				convey.So(c.Conscientiousness, convey.ShouldEqual, 100)
				convey.So(c.Extraversion, convey.ShouldEqual, 42.5)
				convey.So(c.Agreeableness, convey.ShouldEqual, 0)
				convey.So(c.Neuroticism, convey.ShouldEqual, 100)
			})

			convey.Convey("And the original should be unchanged", func() {
				convey.So(b.Openness, convey.ShouldEqual, -10)
				convey.So(b.Conscientiousness, convey.ShouldEqual, 150)
			})
		})
	})
}

func TestBigFiveWith(t *testing.T) {
	convey.Convey("Given a uniform BigFive", t, func() {
		b := model.Uniform(50)

		convey.Convey("When setting each trait by key", func() {
			for i, tr := range model.Traits() {
				var ok bool
				b, ok = b.With(tr.Key, float64(i))
				convey.So(ok, convey.ShouldBeTrue)
			}

			convey.Convey("Then each field should hold its new value", func() {
				convey.So(b, convey.ShouldResemble, model.BigFive{
					Openness:          0,
					Conscientiousness: 1,
					Extraversion:      2,
					Agreeableness:     3,
					Neuroticism:       4,
				})
			})
		})

		convey.Convey("When setting an unknown key", func() {
			got, ok := b.With("honesty", 10)

			convey.Convey("Then it should report false and leave values alone", func() {
				convey.So(ok, convey.ShouldBeFalse)
				convey.So(got, convey.ShouldResemble, model.Uniform(50))
			})
		})
	})
}

func TestBigFiveClampNonFinite(t *testing.T) {
	convey.Convey("Given a BigFive with non-finite traits", t, func() {
		b := model.BigFive{
			Openness:          math.NaN(),
			Conscientiousness: math.Inf(1),
			Extraversion:      math.Inf(-1),
		}

		convey.Convey("Then Clamp should bring every trait into range", func() {
			c := b.Clamp()
			convey.So(c.Openness, convey.ShouldEqual, model.MinTraitScore)
			convey.So(c.Conscientiousness, convey.ShouldEqual, model.MaxTraitScore)
			convey.So(c.Extraversion, convey.ShouldEqual, model.MinTraitScore)
		})
	})
}

func TestBigFiveGet(t *testing.T) {
	convey.Convey("Given a BigFive built through With", t, func() {
		b := model.BigFive{}
		for i, tr := range model.Traits() {
			b, _ = b.With(tr.Key, float64(10*(i+1)))
		}

		convey.Convey("Then Get should read back every trait", func() {
			for i, tr := range model.Traits() {
				v, ok := b.Get(tr.Key)
				convey.So(ok, convey.ShouldBeTrue)
				convey.So(v, convey.ShouldEqual, float64(10*(i+1)))
			}
		})

		convey.Convey("Then an unknown key should report false", func() {
			v, ok := b.Get("honesty")
			convey.So(ok, convey.ShouldBeFalse)
			convey.So(v, convey.ShouldEqual, 0)
		})
	})
}

func TestRiasecGet(t *testing.T) {
	convey.Convey("Given a RIASEC vector", t, func() {
		r := model.Riasec{R: 1, I: 2, A: 3, S: 4, E: 5, C: 6}

		convey.Convey("Then Get should return each accumulator by code", func() {
			for i, c := range model.Codes() {
				convey.So(r.Get(c), convey.ShouldEqual, float64(i+1))
			}
			convey.So(r.Get("X"), convey.ShouldEqual, 0)
		})
	})
}
