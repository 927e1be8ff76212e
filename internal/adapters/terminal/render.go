// Package terminal renders the wizard screens as text and drives the
// interactive session over a reader/writer pair.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/careerpath/internal/domain/catalog"
	"github.com/okian/careerpath/internal/domain/model"
	"github.com/okian/careerpath/internal/domain/types"
)

// Layout constants.
const (
	screenWidth = 60
	barWidth    = 30
	wrapWidth   = 56
	barGlyph    = "█"
	steps       = 2

	bigFiveTestURL = "https://www.ibunda.id/tespsikologi/tes-kepribadian"
)

var (
	doubleRule = strings.Repeat("═", screenWidth) //nolint:gochecknoglobals // fixed glyph row
	singleRule = strings.Repeat("─", screenWidth) //nolint:gochecknoglobals // fixed glyph row
)

// RenderHome writes the landing screen.
func RenderHome(w io.Writer) {
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintln(w, "  Career Path Finder")
	fmt.Fprintln(w, "  Temukan arah karier ideal Anda berdasarkan kepribadian Anda")
	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "  Bagaimana Caranya:")
	fmt.Fprintln(w, "  1. Lakukan tes kepribadian Big Five di "+bigFiveTestURL)
	fmt.Fprintln(w, "  2. Kembali ke sini dan mulai proses analisis.")
	fmt.Fprintln(w, "  3. Masukkan skor tes Kepribadian Big Five Anda (0-100).")
	fmt.Fprintln(w, "  4. Dapatkan profil RIASEC (Kode Holland) Anda.")
	fmt.Fprintln(w, "  5. Jelajahi rekomendasi karir yang dipersonalisasi.")
	fmt.Fprintln(w, doubleRule)
}

// RenderStepIndicator writes the "(1)──(2)" progress line with the current
// step bracketed.
func RenderStepIndicator(w io.Writer, current int) {
	parts := make([]string, 0, steps)
	for i := 1; i <= steps; i++ {
		if i == current {
			parts = append(parts, fmt.Sprintf("[%d]", i))
		} else {
			parts = append(parts, fmt.Sprintf(" %d ", i))
		}
	}
	fmt.Fprintf(w, "\n  %s\n\n", strings.Join(parts, "────"))
}

// RenderInputHeader writes the title of the Big Five form.
func RenderInputHeader(w io.Writer) {
	fmt.Fprintln(w, "  Masukkan Score Big Five Anda")
	fmt.Fprintln(w, "  Masukkan hasil tes pribadi Anda (skala 0-100). Enter = nilai awal.")
	fmt.Fprintln(w, singleRule)
}

// RenderResults writes the results screen: Holland Code, ranked bar chart
// with dominant markers, career list and disclaimer.
func RenderResults(w io.Writer, p types.Profile, careers []catalog.Career) {
	fmt.Fprintln(w, doubleRule)
	fmt.Fprintln(w, "  Profile Career Kamu")
	fmt.Fprintf(w, "  Holland Code: %s\n", p.HollandCode)
	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "  Profil Kepribadian RIASEC Anda")
	fmt.Fprintln(w)
	RenderChart(w, p)
	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "  Rekomendasi Bidang Karir")
	fmt.Fprintln(w)
	RenderCareers(w, careers)
	fmt.Fprintln(w, singleRule)
	fmt.Fprintln(w, "  Disclaimer Penting")
	for _, line := range wrap(catalog.Disclaimer, wrapWidth) {
		fmt.Fprintf(w, "  %s\n", line)
	}
	fmt.Fprintln(w, doubleRule)
}

// RenderChart writes one horizontal bar per ranked entry, scaled to the top
// score. The top three carry a Dominant marker.
func RenderChart(w io.Writer, p types.Profile) {
	maxScore := p.TopScore()
	if maxScore < 1 {
		maxScore = 1
	}
	for _, e := range p.Entries {
		n := 0
		if e.Score > 0 {
			n = min(e.Score, maxScore) * barWidth / maxScore
		}
		bar := strings.Repeat(barGlyph, n) + strings.Repeat(" ", barWidth-n)
		marker := ""
		if p.IsDominant(e.Code) {
			marker = "  Dominant"
		}
		fmt.Fprintf(w, "  %s %-13s %s %3d%s\n", e.Code, catalog.Name(e.Code), bar, e.Score, marker)
	}
}

// RenderCareers writes the career list with example titles.
func RenderCareers(w io.Writer, careers []catalog.Career) {
	if len(careers) == 0 {
		fmt.Fprintln(w, "  (tidak ada rekomendasi)")
		return
	}
	for _, c := range careers {
		fmt.Fprintf(w, "  [%s Type] %s / %s\n", c.Code, c.Role, c.Category)
		fmt.Fprintf(w, "     Contoh: %s\n", strings.Join(c.Examples, ", "))
	}
}

// RenderCareerTable writes careers grouped under their RIASEC code heading.
func RenderCareerTable(w io.Writer, careers []catalog.Career) {
	var last model.Code
	for _, c := range careers {
		if c.Code != last {
			fmt.Fprintf(w, "%s  %s\n", c.Code, catalog.Name(c.Code))
			last = c.Code
		}
		fmt.Fprintf(w, "   %-22s %s\n", c.Role, c.Category)
		fmt.Fprintf(w, "   %-22s %s\n", "", strings.Join(c.Examples, ", "))
	}
}

// wrap breaks text into lines of at most width runes on word boundaries.
func wrap(text string, width int) []string {
	var (
		lines []string
		line  strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && len([]rune(line.String()))+1+len([]rune(word)) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
