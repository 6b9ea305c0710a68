package itinerary

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/phpdave11/gofpdf"

	"github.com/noah-isme/backend-tour/internal/pricing"
)

// RenderPDF lays the document out as an A4 portrait PDF and returns the
// bytes alongside a download filename.
func RenderPDF(doc Document) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(12)

	if doc.Narrative != "" {
		pdf.SetFont("Helvetica", "I", 11)
		pdf.MultiCell(0, 6, doc.Narrative, "", "", false)
		pdf.Ln(4)
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "Day by day")
	pdf.Ln(9)
	for _, day := range doc.Days {
		pdf.SetFont("Helvetica", "B", 11)
		header := fmt.Sprintf("Day %d", day.DayNumber)
		if day.City != "" {
			header += " - " + day.City
		}
		if !day.Date.IsZero() {
			header += " (" + day.Date.Format("2 Jan 2006") + ")"
		}
		pdf.Cell(0, 6, header)
		pdf.Ln(6)

		pdf.SetFont("Helvetica", "", 10)
		if len(day.Activities) == 0 {
			pdf.Cell(0, 5, "At leisure")
			pdf.Ln(6)
			continue
		}
		for _, act := range day.Activities {
			pdf.MultiCell(0, 5, "- "+act, "", "", false)
		}
		pdf.Ln(2)
	}

	renderPricingBlock(pdf, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), pdfFilename(doc.Title), nil
}

func renderPricingBlock(pdf *gofpdf.Fpdf, doc Document) {
	if len(doc.Matrix) == 0 {
		return
	}

	categories := make([]pricing.HotelCategory, 0, 3)
	for _, cat := range pricing.HotelCategories() {
		if _, ok := doc.Matrix[0].Categories[cat]; ok {
			categories = append(categories, cat)
		}
	}
	if len(categories) == 0 {
		return
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 13)
	label := "Prices per person"
	if doc.Currency != "" {
		label += " (" + doc.Currency + ")"
	}
	pdf.Cell(0, 8, label)
	pdf.Ln(9)

	colWidth := 165.0 / float64(len(categories))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 7, "PAX", "1", 0, "C", false, 0, "")
	for i, cat := range categories {
		pdf.CellFormat(colWidth, 7, string(cat), "1", lnAfter(i, len(categories)), "C", false, 0, "")
	}

	pdf.SetFont("Helvetica", "", 10)
	tiers := append([]pricing.PaxTier(nil), doc.Matrix...)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Pax < tiers[j].Pax })
	for _, tier := range tiers {
		pdf.CellFormat(25, 7, strconv.Itoa(tier.Pax), "1", 0, "C", false, 0, "")
		for i, cat := range categories {
			pdf.CellFormat(colWidth, 7, categoryCell(tier.Categories[cat]), "1", lnAfter(i, len(categories)), "C", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.SetFont("Helvetica", "I", 9)
	first := tiers[0].Categories[categories[0]]
	note := fmt.Sprintf("Children: 0-2 yrs %s, 3-5 yrs %s, 6-11 yrs %s. SS = single supplement.",
		FormatCharge(first.Child0to2), FormatCharge(first.Child3to5), FormatCharge(first.Child6to11))
	pdf.MultiCell(0, 5, note, "", "", false)
}

func lnAfter(i, n int) int {
	if i == n-1 {
		return 1
	}
	return 0
}

func categoryCell(ct pricing.CategoryTotals) string {
	cell := formatMoney(ct.AdultPerPerson)
	if ct.SingleSupplement != 0 {
		cell += " / SS " + formatMoney(ct.SingleSupplement)
	}
	return cell
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatCharge renders a child-surcharge value for document display.
func FormatCharge(c pricing.Charge) string {
	if c.IsFree() {
		return "FOC"
	}
	return formatMoney(c.Amount())
}

func pdfFilename(title string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(title))
	if slug == "" {
		slug = "itinerary"
	}
	return slug + ".pdf"
}
