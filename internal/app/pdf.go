package app

import (
    "fmt"

    "github.com/jung-kurt/gofpdf"
)

// writeOutlinePDF renders a one-column handout listing every slide with its
// ordinal, title and page file. Core fonts only cover cp1252, so runes
// outside it are replaced by the translator.
func writeOutlinePDF(deckTitle string, slides []GeneratedSlide, outPath string) error {
    pdf := gofpdf.New("P", "mm", "A4", "")
    tr := pdf.UnicodeTranslatorFromDescriptor("")
    pdf.SetTitle(deckTitle, true)
    pdf.SetCreator("slidesplit "+BuildVersion, true)
    pdf.AddPage()

    pdf.SetFont("Helvetica", "B", 16)
    pdf.CellFormat(0, 10, tr(deckTitle), "", 1, "L", false, 0, "")
    pdf.SetFont("Helvetica", "", 10)
    pdf.CellFormat(0, 6, fmt.Sprintf("%d slides", len(slides)), "", 1, "L", false, 0, "")
    pdf.Ln(4)

    for _, s := range slides {
        pdf.SetFont("Helvetica", "B", 11)
        pdf.CellFormat(12, 7, fmt.Sprintf("%d.", s.Ordinal), "", 0, "R", false, 0, "")
        pdf.SetFont("Helvetica", "", 11)
        pdf.CellFormat(120, 7, tr(s.Title), "", 0, "L", false, 0, "")
        pdf.SetFont("Helvetica", "", 9)
        pdf.CellFormat(0, 7, s.File, "", 1, "R", false, 0, "")
    }

    return pdf.OutputFileAndClose(outPath)
}
