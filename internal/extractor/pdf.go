package extractor

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
)

// Pages reads a PDF file and returns the text content of each page.
// Pages that yield no text are skipped without failing the document.
// If the structured library produces unreadable output, the external
// pdftotext command (poppler-utils) is tried as a fallback; when
// nothing readable can be extracted the whole call fails rather than
// returning garbage to the parser.
func Pages(filePath string) ([]string, error) {
	pages, libErr := extractWithLibrary(filePath)
	if libErr == nil && isReadableText(pages) {
		return pages, nil
	}

	popplerPages, popplerErr := extractWithPdftotext(filePath)
	if popplerErr == nil && isReadableText(popplerPages) {
		return popplerPages, nil
	}

	if libErr != nil {
		return nil, fmt.Errorf("pdf text extraction failed: %w", libErr)
	}
	return nil, fmt.Errorf("no readable text could be extracted; the file may be image-based or use custom font encodings")
}

// extractWithLibrary uses ledongthuc/pdf, trying row-oriented
// extraction first (best layout preservation) and plain-text
// extraction second. The library panics on some malformed files, so
// the panic is converted to an error.
func extractWithLibrary(filePath string) (pages []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf library crashed: %v", r)
		}
	}()

	f, r, openErr := pdf.Open(filePath)
	if openErr != nil {
		return nil, openErr
	}
	defer f.Close()

	numPages := r.NumPage()
	if numPages == 0 {
		return nil, fmt.Errorf("pdf has no pages")
	}

	pages = extractByRow(r, numPages)
	if isReadableText(pages) {
		return pages, nil
	}

	pages = extractByPlainText(r, numPages)
	return pages, nil
}

func extractByRow(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, strings.Join(lines, "\n"))
		}
	}
	return pages
}

func extractByPlainText(r *pdf.Reader, numPages int) []string {
	var pages []string
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		fonts := make(map[string]*pdf.Font)
		for _, name := range page.Fonts() {
			f := page.Font(name)
			fonts[name] = &f
		}
		text, err := page.GetPlainText(fonts)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text != "" {
			pages = append(pages, text)
		}
	}
	return pages
}

// extractWithPdftotext shells out to poppler-utils, extracting page by
// page so page boundaries survive.
func extractWithPdftotext(filePath string) ([]string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, fmt.Errorf("pdftotext not available: %w", err)
	}

	numPages := 1
	if out, err := exec.Command("pdfinfo", filePath).Output(); err == nil {
		for _, line := range strings.Split(string(out), "\n") {
			if strings.HasPrefix(line, "Pages:") {
				if n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "Pages:"))); err == nil && n > 0 {
					numPages = n
				}
			}
		}
	}

	var pages []string
	for i := 1; i <= numPages; i++ {
		p := strconv.Itoa(i)
		out, err := exec.Command("pdftotext", "-layout", "-f", p, "-l", p, filePath, "-").Output()
		if err != nil {
			continue
		}
		if text := strings.TrimSpace(string(out)); text != "" {
			pages = append(pages, text)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

// isReadableText guards against garbage from identity-encoded fonts:
// extracted text must be long enough and mostly plain ASCII.
func isReadableText(pages []string) bool {
	total, readable := 0, 0
	for _, page := range pages {
		for _, r := range page {
			total++
			if r < 128 && (unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(`.,-/:;()'"&#@!?+=*%`, r)) {
				readable++
			} else if r == '£' || r == '€' {
				readable++
			}
		}
	}
	if total <= 50 {
		return false
	}
	return float64(readable)/float64(total) > 0.6
}

// ReadAllText is a convenience for callers that want the whole
// document as one block, pages joined by newlines.
func ReadAllText(filePath string) (string, error) {
	pages, err := Pages(filePath)
	if err != nil {
		return "", err
	}
	return strings.Join(pages, "\n"), nil
}
