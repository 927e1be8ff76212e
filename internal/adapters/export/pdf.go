package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/okian/careerpath/internal/domain/catalog"
)

// Layout constants in millimetres / points.
const (
	pageMargin     = 15.0
	lineHeight     = 6.0
	barHeight      = 7.0
	barGap         = 3.0
	barLabelWidth  = 42.0
	barValueWidth  = 14.0
	titleFontSize  = 20
	headFontSize   = 14
	bodyFontSize   = 10
	smallFontSize  = 8
	fontFamily     = "Helvetica"
	defaultTitle   = "Career Path Finder"
	pdfCreatorName = "careerpath"
)

// PDFOption configures a PDFRenderer.
type PDFOption func(*PDFRenderer)

// WithPageSize sets the page size, e.g. "A4" or "Letter".
func WithPageSize(size string) PDFOption {
	return func(p *PDFRenderer) {
		if size != "" {
			p.pageSize = size
		}
	}
}

// WithCompression toggles content stream compression.
func WithCompression(enabled bool) PDFOption {
	return func(p *PDFRenderer) {
		p.compress = enabled
	}
}

// PDFRenderer renders reports as paginated PDF documents.
type PDFRenderer struct {
	pageSize string
	compress bool
}

// NewPDFRenderer creates a PDF renderer. Defaults: A4, compressed.
func NewPDFRenderer(opts ...PDFOption) *PDFRenderer {
	p := &PDFRenderer{pageSize: "A4", compress: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Render implements Renderer.
func (p *PDFRenderer) Render(ctx context.Context, r Report) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", p.pageSize, "")
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := r.Title
	if title == "" {
		title = defaultTitle
	}

	pdf.SetCompression(p.compress)
	pdf.SetTitle(title, true)
	pdf.SetCreator(pdfCreatorName, true)
	if !r.GeneratedAt.IsZero() {
		pdf.SetCreationDate(r.GeneratedAt)
	}
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, pageMargin)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pageMargin + 5)
		pdf.SetFont(fontFamily, "", smallFontSize)
		pdf.SetTextColor(0x9c, 0xa3, 0xaf)
		pdf.CellFormat(0, 5, fmt.Sprintf("%d / {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: tr}
	w.header(title, r)
	w.chart(r)
	w.scoreGrid(r)
	w.careers(r.Careers)
	w.disclaimer()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	return buf.Bytes(), nil
}

type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

func (w *pdfWriter) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	left, _, right, _ := w.pdf.GetMargins()
	return pageW - left - right
}

// ensureSpace starts a new page when h does not fit; shapes drawn with Rect
// do not trigger automatic page breaks.
func (w *pdfWriter) ensureSpace(h float64) {
	_, pageH := w.pdf.GetPageSize()
	_, _, _, bottom := w.pdf.GetMargins()
	if w.pdf.GetY()+h > pageH-bottom {
		w.pdf.AddPage()
	}
}

func (w *pdfWriter) heading(text string) {
	w.ensureSpace(3 * lineHeight)
	w.pdf.Ln(lineHeight / 2)
	w.pdf.SetFont(fontFamily, "B", headFontSize)
	w.pdf.SetTextColor(0x1f, 0x29, 0x37)
	w.pdf.CellFormat(0, lineHeight+2, w.tr(text), "", 1, "L", false, 0, "")
	w.pdf.Ln(1)
}

func (w *pdfWriter) header(title string, r Report) {
	w.pdf.SetFont(fontFamily, "B", titleFontSize)
	w.pdf.SetTextColor(0x1f, 0x29, 0x37)
	w.pdf.CellFormat(0, 10, w.tr(title), "", 1, "C", false, 0, "")

	w.pdf.SetFont(fontFamily, "", headFontSize)
	w.pdf.SetTextColor(0x4f, 0x46, 0xe5)
	w.pdf.CellFormat(0, 8, w.tr("Holland Code: "+r.Profile.HollandCode), "", 1, "C", false, 0, "")

	if !r.GeneratedAt.IsZero() {
		w.pdf.SetFont(fontFamily, "", smallFontSize)
		w.pdf.SetTextColor(0x6b, 0x72, 0x80)
		w.pdf.CellFormat(0, 5, r.GeneratedAt.Format("2006-01-02 15:04"), "", 1, "C", false, 0, "")
	}
}

func (w *pdfWriter) chart(r Report) {
	w.heading("Profil Kepribadian RIASEC Anda")

	maxScore := r.Profile.TopScore()
	if maxScore < 1 {
		maxScore = 1
	}
	barSpan := w.contentWidth() - barLabelWidth - barValueWidth

	w.pdf.SetFont(fontFamily, "", bodyFontSize)
	for _, e := range r.Profile.Entries {
		w.ensureSpace(barHeight + barGap)
		x, y := w.pdf.GetX(), w.pdf.GetY()

		w.pdf.SetTextColor(0x37, 0x41, 0x51)
		w.pdf.CellFormat(barLabelWidth, barHeight, w.tr(fmt.Sprintf("%s  %s", e.Code, catalog.Name(e.Code))), "", 0, "L", false, 0, "")

		if e.Score > 0 {
			c := catalog.Color(e.Code)
			w.pdf.SetFillColor(c.R, c.G, c.B)
			w.pdf.Rect(x+barLabelWidth, y+1, barSpan*float64(e.Score)/float64(maxScore), barHeight-2, "F")
		}

		w.pdf.SetXY(x+barLabelWidth+barSpan, y)
		w.pdf.CellFormat(barValueWidth, barHeight, fmt.Sprintf("%d", e.Score), "", 1, "R", false, 0, "")
		w.pdf.SetY(y + barHeight + barGap)
	}
}

func (w *pdfWriter) scoreGrid(r Report) {
	w.heading("Skor")

	cols := 3
	cellW := w.contentWidth() / float64(cols)
	for i, e := range r.Profile.Entries {
		if i%cols == 0 {
			w.ensureSpace(2 * lineHeight)
		}
		label := fmt.Sprintf("%s %s: %d", e.Code, catalog.Name(e.Code), e.Score)
		style := ""
		if r.Profile.IsDominant(e.Code) {
			label += " (Dominant)"
			style = "B"
		}
		w.pdf.SetFont(fontFamily, style, bodyFontSize)
		c := catalog.Color(e.Code)
		w.pdf.SetTextColor(c.R, c.G, c.B)
		ln := 0
		if i%cols == cols-1 || i == len(r.Profile.Entries)-1 {
			ln = 1
		}
		w.pdf.CellFormat(cellW, lineHeight, w.tr(label), "", ln, "L", false, 0, "")
	}
}

func (w *pdfWriter) careers(careers []catalog.Career) {
	w.heading("Rekomendasi Bidang Karir")

	for _, c := range careers {
		w.ensureSpace(3 * lineHeight)
		w.pdf.SetFont(fontFamily, "B", bodyFontSize+1)
		w.pdf.SetTextColor(0x1f, 0x29, 0x37)
		w.pdf.CellFormat(0, lineHeight, w.tr(fmt.Sprintf("[%s Type] %s", c.Code, c.Role)), "", 1, "L", false, 0, "")

		w.pdf.SetFont(fontFamily, "", bodyFontSize)
		w.pdf.SetTextColor(0x6b, 0x72, 0x80)
		w.pdf.CellFormat(0, lineHeight-1, w.tr(c.Category), "", 1, "L", false, 0, "")

		w.pdf.SetTextColor(0x37, 0x41, 0x51)
		w.pdf.MultiCell(0, lineHeight-1, w.tr("Contoh: "+strings.Join(c.Examples, ", ")), "", "L", false)
		w.pdf.Ln(2)
	}
}

func (w *pdfWriter) disclaimer() {
	w.heading("Disclaimer Penting")
	w.pdf.SetFont(fontFamily, "", smallFontSize+1)
	w.pdf.SetTextColor(0x92, 0x40, 0x0e)
	w.pdf.SetFillColor(0xff, 0xfb, 0xeb)
	w.pdf.MultiCell(0, lineHeight-1, w.tr(catalog.Disclaimer), "", "L", true)
}
