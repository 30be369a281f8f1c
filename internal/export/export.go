package export

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Artifact is a downloadable export payload.
type Artifact struct {
	Filename    string
	ContentType string
	Content     []byte
}

// WordContentType is the MIME type Word associates with HTML-wrapped .doc files.
const WordContentType = "application/msword;charset=utf-8"

var unsafeFilenameRuns = regexp.MustCompile(`[^\w\-]+`)

// wordShellCSS styles the Word-compatible export.
const wordShellCSS = `body { font-family: Calibri, Arial, sans-serif; color: #111827; margin: 0; padding: 24px; }
.docPaper { width: 100%; max-width: 800px; margin: 0 auto; }
.docPaperHeader { border-bottom: 1px solid #d1d5db; padding-bottom: 10px; margin-bottom: 12px; }
.docPaperTitle { font-size: 28px; font-weight: 700; margin-bottom: 8px; }
.docMetaRow { font-size: 12px; color: #374151; }
.docSection { border: 1px solid #e5e7eb; border-radius: 8px; padding: 10px; margin-top: 10px; }
.docSection h2 { margin: 0 0 8px; font-size: 16px; }
.docSection p, .docSection li, .docInlineList, .docSlipRow { font-size: 12px; line-height: 1.5; }
.docContactSlip { margin-top: 12px; border: 1px dashed #94a3b8; padding: 10px; border-radius: 8px; }
.docContactSlipTitle { font-weight: 700; margin-bottom: 6px; font-size: 13px; }`

// printShellCSS styles the print-triggered PDF surrogate.
const printShellCSS = `@page { size: A4; margin: 12mm; }
html, body { margin: 0; padding: 0; }
body { font-family: Calibri, Arial, sans-serif; color: #111827; -webkit-print-color-adjust: exact; print-color-adjust: exact; }
.docPaper { width: 100%; box-sizing: border-box; border: 1px solid #d1d5db; padding: 10mm; }
.docPaperHeader { border-bottom: 1px solid #d1d5db; padding-bottom: 10px; margin-bottom: 10px; }
.docPaperTitle { font-size: 24px; font-weight: 700; margin-bottom: 6px; }
.docMetaRow { font-size: 11px; color: #374151; }
.docSection { border: 1px solid #e5e7eb; border-radius: 8px; padding: 8px 10px; margin-top: 9px; break-inside: avoid; page-break-inside: avoid; }
.docSection h2 { margin: 0 0 6px; font-size: 14px; }
.docSection p, .docSection li, .docInlineList, .docSlipRow { font-size: 11.5px; line-height: 1.45; }
.docContactSlip { margin-top: 12px; border: 1px dashed #94a3b8; border-radius: 8px; padding: 8px 10px; break-inside: avoid; page-break-inside: avoid; }
.docContactSlipTitle { font-size: 12px; font-weight: 700; margin-bottom: 4px; }`

// printScript triggers the print dialog once the page paints, with an explicit
// user-facing message when printing cannot start.
const printScript = `window.addEventListener("load", function () {
  setTimeout(function () {
    try {
      window.print();
    } catch (err) {
      alert("Unable to start printing. Please try again.");
    }
  }, 350);
});`

// Word wraps already-rendered document markup into a Word-compatible .doc
// download. The markup must contain the .docPaper root produced by the
// renderer; export never re-parses canonical content.
func Word(markup, title string) (*Artifact, error) {
	paper, err := extractPaper(markup)
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>%s</title>
    <style>
%s
    </style>
  </head>
  <body>
%s
  </body>
</html>`, title, wordShellCSS, paper)

	// Leading BOM keeps Word from misreading the charset.
	content := append([]byte("\uFEFF"), []byte(html)...)

	return &Artifact{
		Filename:    SanitizeFilename(title) + ".doc",
		ContentType: WordContentType,
		Content:     content,
	}, nil
}

// Printable wraps already-rendered document markup into a self-printing HTML
// page, the PDF surrogate: opening it triggers the browser print dialog.
func Printable(markup, title string) (*Artifact, error) {
	paper, err := extractPaper(markup)
	if err != nil {
		return nil, err
	}

	html := fmt.Sprintf(`<!DOCTYPE html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>%s</title>
    <style>
%s
    </style>
    <script>
%s
    </script>
  </head>
  <body>
%s
    <noscript>Printing requires JavaScript. Use your browser's print command instead.</noscript>
  </body>
</html>`, title, printShellCSS, printScript, paper)

	return &Artifact{
		Filename:    SanitizeFilename(title) + ".html",
		ContentType: "text/html; charset=utf-8",
		Content:     []byte(html),
	}, nil
}

// extractPaper locates the rendered .docPaper root in the markup and
// re-serializes it. A missing root means nothing was rendered, which is an
// explicit ErrExportUnavailable, never a silent no-op.
func extractPaper(markup string) (string, error) {
	if strings.TrimSpace(markup) == "" {
		return "", &ErrExportUnavailable{Reason: "document has not been rendered"}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", &ErrExportUnavailable{Reason: "rendered markup is unreadable"}
	}

	paper := doc.Find("article.docPaper").First()
	if paper.Length() == 0 {
		return "", &ErrExportUnavailable{Reason: "rendered markup has no document root"}
	}

	html, err := goquery.OuterHtml(paper)
	if err != nil {
		return "", &ErrExportUnavailable{Reason: "failed to serialize document markup"}
	}
	return html, nil
}

// SanitizeFilename collapses characters unsafe for download filenames into
// underscores. An empty result falls back to "portfolio".
func SanitizeFilename(title string) string {
	name := unsafeFilenameRuns.ReplaceAllString(title, "_")
	name = strings.Trim(name, "_")
	if name == "" {
		return "portfolio"
	}
	return name
}
