package catalog_test

import (
	"errors"
	"testing"

	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func codesOf(cs []catalog.Career) []model.Code {
	out := make([]model.Code, len(cs))
	for i, c := range cs {
		out[i] = c.Code
	}
	return out
}

func TestCareers(t *testing.T) {
	Convey("Given the static career table", t, func() {
		all := catalog.Careers()

		Convey("Then it should hold two entries per code in R-I-A-S-E-C order", func() {
			So(len(all), ShouldEqual, 12)
			So(codesOf(all), ShouldResemble, []model.Code{"R", "R", "I", "I", "A", "A", "S", "S", "E", "E", "C", "C"})
		})

		Convey("And every entry should have a role, category and examples", func() {
			for _, c := range all {
				So(c.Role, ShouldNotBeEmpty)
				So(c.Category, ShouldNotBeEmpty)
				So(c.Examples, ShouldNotBeEmpty)
			}
		})

		Convey("And mutating the copy should not affect the table", func() {
			all[0].Role = "changed"
			all[0].Examples[0] = "changed"
			fresh := catalog.Careers()
			So(fresh[0].Role, ShouldEqual, "Insinyur")
			So(fresh[0].Examples[0], ShouldEqual, "Insinyur Mesin")
		})
	})
}

func TestRecommend(t *testing.T) {
	Convey("Given dominant codes I, S, C", t, func() {
		got := catalog.Recommend([]model.Code{"I", "S", "C"})

		Convey("Then exactly six entries in table order should be returned", func() {
			So(len(got), ShouldEqual, 6)
			So(codesOf(got), ShouldResemble, []model.Code{"I", "I", "S", "S", "C", "C"})
			So(got[0].Role, ShouldEqual, "Ilmuwan")
			So(got[5].Role, ShouldEqual, "Profesional Keuangan")
		})
	})

	Convey("Given dominant codes in a different rank order", t, func() {
		got := catalog.Recommend([]model.Code{"C", "S", "I"})

		Convey("Then table order should still be kept", func() {
			So(codesOf(got), ShouldResemble, []model.Code{"I", "I", "S", "S", "C", "C"})
		})
	})

	Convey("Given fewer or unknown codes", t, func() {
		So(len(catalog.Recommend(nil)), ShouldEqual, 0)
		So(len(catalog.Recommend([]model.Code{"E"})), ShouldEqual, 2)
		So(len(catalog.Recommend([]model.Code{"E", "X"})), ShouldEqual, 2)
		So(len(catalog.Recommend([]model.Code{"R", "A"})), ShouldEqual, 4)
	})
}

func TestNamesAndColors(t *testing.T) {
	Convey("Given every RIASEC code", t, func() {
		Convey("Then each should have a name and its chart colour", func() {
			So(catalog.Name(model.Realistic), ShouldEqual, "Realistic")
			So(catalog.Name(model.Investigative), ShouldEqual, "Investigative")
			So(catalog.Name(model.Artistic), ShouldEqual, "Artistic")
			So(catalog.Name(model.Social), ShouldEqual, "Social")
			So(catalog.Name(model.Enterprising), ShouldEqual, "Enterprising")
			So(catalog.Name(model.Conventional), ShouldEqual, "Conventional")

			So(catalog.Color(model.Realistic).Hex(), ShouldEqual, "#10b981")
			So(catalog.Color(model.Investigative).Hex(), ShouldEqual, "#3b82f6")
			So(catalog.Color(model.Artistic).Hex(), ShouldEqual, "#8b5cf6")
			So(catalog.Color(model.Social).Hex(), ShouldEqual, "#ec4899")
			So(catalog.Color(model.Enterprising).Hex(), ShouldEqual, "#f59e0b")
			So(catalog.Color(model.Conventional).Hex(), ShouldEqual, "#06b6d4")
		})

		Convey("And unknown codes should fall back", func() {
			So(catalog.Name("X"), ShouldEqual, "")
			So(catalog.Color("X").Hex(), ShouldEqual, "#9ca3af")
		})
	})
}

func TestParseCodes(t *testing.T) {
	Convey("Given code arguments", t, func() {
		Convey("When parsing a Holland Code string", func() {
			got, err := catalog.ParseCodes("s-i-c")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []model.Code{"S", "I", "C"})
		})

		Convey("When parsing separate and duplicated arguments", func() {
			got, err := catalog.ParseCodes("R", "a,R", "E")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, []model.Code{"R", "A", "E"})
		})

		Convey("When parsing an unknown code", func() {
			got, err := catalog.ParseCodes("S", "Q")
			So(got, ShouldBeNil)
			So(errors.Is(err, catalog.ErrUnknownCode), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, `"Q"`)
		})
	})
}
