// Package catalog holds the static career table and RIASEC display data.
// Everything here is read-only and built once at package init.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/okian/careerpath/internal/domain/model"
)

// Career is one career category suggested for a RIASEC code.
type Career struct {
	Code     model.Code `json:"riasec"`
	Category string     `json:"category"`
	Role     string     `json:"role"`
	Examples []string   `json:"examples"`
}

// RGB is a chart colour.
type RGB struct {
	R, G, B int
}

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Disclaimer is shown under every result.
const Disclaimer = "Hasil ini merupakan rekomendasi karier awal berdasarkan analisis kepribadian " +
	"dan tidak menggantikan konseling karier profesional. Untuk panduan yang lebih lengkap, " +
	"silakan berkonsultasi dengan konselor karier atau penasihat akademik yang berkualifikasi."

var careers = []Career{ //nolint:gochecknoglobals // static lookup table
	{Code: model.Realistic, Category: "Teknis & Praktis", Role: "Insinyur",
		Examples: []string{"Insinyur Mesin", "Insinyur Sipil", "Teknisi Listrik", "Tukang Kayu"}},
	{Code: model.Realistic, Category: "Teknis & Praktis", Role: "Teknisi",
		Examples: []string{"Teknisi IT", "Teknisi Laboratorium", "Teknisi Otomotif"}},
	{Code: model.Investigative, Category: "Ilmiah & Riset", Role: "Ilmuwan",
		Examples: []string{"Ahli Biologi", "Ahli Kimia", "Ahli Fisika", "Data Scientist"}},
	{Code: model.Investigative, Category: "Ilmiah & Riset", Role: "Peneliti",
		Examples: []string{"Peneliti Medis", "Ilmuwan Lingkungan", "Psikolog"}},
	{Code: model.Artistic, Category: "Industri Kreatif", Role: "Desainer",
		Examples: []string{"Desainer UI/UX", "Desainer Grafis", "Desainer Interior", "Desainer Busana"}},
	{Code: model.Artistic, Category: "Industri Kreatif", Role: "Seniman",
		Examples: []string{"Ilustrator", "Fotografer", "Musisi", "Penulis"}},
	{Code: model.Social, Category: "Sosial & Kesehatan", Role: "Tenaga Kesehatan",
		Examples: []string{"Perawat", "Dokter", "Terapis", "Konselor"}},
	{Code: model.Social, Category: "Sosial & Pendidikan", Role: "Pendidik",
		Examples: []string{"Guru", "Dosen", "Trainer", "Pekerja Sosial"}},
	{Code: model.Enterprising, Category: "Bisnis & Kepemimpinan", Role: "Manajer",
		Examples: []string{"Manajer Bisnis", "Manajer Pemasaran", "Manajer Penjualan", "Wirausaha"}},
	{Code: model.Enterprising, Category: "Bisnis & Kepemimpinan", Role: "Eksekutif",
		Examples: []string{"Direktur Utama (CEO)", "Direktur", "Manajer Proyek", "Pemimpin Tim"}},
	{Code: model.Conventional, Category: "Administratif & Berorientasi Detail", Role: "Administrator",
		Examples: []string{"Manajer Kantor", "Asisten Eksekutif", "Spesialis SDM"}},
	{Code: model.Conventional, Category: "Administratif & Keuangan", Role: "Profesional Keuangan",
		Examples: []string{"Akuntan", "Auditor", "Analis Keuangan", "Teller Bank"}},
}

var names = map[model.Code]string{ //nolint:gochecknoglobals // static lookup table
	model.Realistic:     "Realistic",
	model.Investigative: "Investigative",
	model.Artistic:      "Artistic",
	model.Social:        "Social",
	model.Enterprising:  "Enterprising",
	model.Conventional:  "Conventional",
}

var colors = map[model.Code]RGB{ //nolint:gochecknoglobals // static lookup table
	model.Realistic:     {0x10, 0xb9, 0x81},
	model.Investigative: {0x3b, 0x82, 0xf6},
	model.Artistic:      {0x8b, 0x5c, 0xf6},
	model.Social:        {0xec, 0x48, 0x99},
	model.Enterprising:  {0xf5, 0x9e, 0x0b},
	model.Conventional:  {0x06, 0xb6, 0xd4},
}

// Careers returns a copy of the full table in declaration order.
func Careers() []Career {
	out := make([]Career, len(careers))
	for i, c := range careers {
		out[i] = c.clone()
	}
	return out
}

// Recommend keeps the careers whose code is in dominant. Table order is
// preserved regardless of the order of dominant.
func Recommend(dominant []model.Code) []Career {
	out := make([]Career, 0, 2*len(dominant))
	for _, c := range careers {
		if slices.Contains(dominant, c.Code) {
			out = append(out, c.clone())
		}
	}
	return out
}

// Name returns the long RIASEC type name, e.g. "Social" for S.
func Name(c model.Code) string {
	return names[c]
}

// Color returns the chart colour for c; unknown codes get mid grey.
func Color(c model.Code) RGB {
	if rgb, ok := colors[c]; ok {
		return rgb
	}
	return RGB{0x9c, 0xa3, 0xaf}
}

// ParseCodes parses codes such as "S", "i" or "S-I-C" into RIASEC codes.
func ParseCodes(args ...string) ([]model.Code, error) {
	var out []model.Code
	for _, arg := range args {
		for _, part := range strings.FieldsFunc(arg, func(r rune) bool { return r == '-' || r == ',' || r == ' ' }) {
			code := model.Code(strings.ToUpper(strings.TrimSpace(part)))
			if !code.Valid() {
				return nil, fmt.Errorf("%w: %q", ErrUnknownCode, part)
			}
			if !slices.Contains(out, code) {
				out = append(out, code)
			}
		}
	}
	return out, nil
}

func (c Career) clone() Career {
	c.Examples = slices.Clone(c.Examples)
	return c
}
