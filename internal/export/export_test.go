package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMarkup = `<div class="preview">
  <article class="docPaper">
    <header class="docPaperHeader"><h1 class="docPaperTitle">Internship CV</h1></header>
    <section class="docSection"><h2>About</h2><p>Hello.</p></section>
  </article>
</div>`

func TestWord_WrapsPaperWithBOM(t *testing.T) {
	artifact, err := Word(sampleMarkup, "Internship CV")
	require.NoError(t, err)

	assert.Equal(t, "Internship_CV.doc", artifact.Filename)
	assert.Equal(t, WordContentType, artifact.ContentType)

	// Word needs a UTF-8 BOM ahead of the markup.
	require.True(t, len(artifact.Content) >= 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, artifact.Content[:3])

	body := string(artifact.Content)
	assert.Contains(t, body, "<!DOCTYPE html>")
	assert.Contains(t, body, `class="docPaper"`)
	assert.Contains(t, body, "Internship CV")
	assert.NotContains(t, body, `class="preview"`)
}

func TestPrintable_SelfPrintingPage(t *testing.T) {
	artifact, err := Printable(sampleMarkup, "Internship CV")
	require.NoError(t, err)

	assert.Equal(t, "Internship_CV.html", artifact.Filename)
	assert.Equal(t, "text/html; charset=utf-8", artifact.ContentType)

	body := string(artifact.Content)
	assert.Contains(t, body, "window.print()")
	assert.Contains(t, body, "@page { size: A4;")
	assert.Contains(t, body, "<noscript>")
	assert.Contains(t, body, `class="docPaper"`)
}

func TestWord_EmptyMarkup(t *testing.T) {
	_, err := Word("   ", "Internship CV")

	var unavailable *ErrExportUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "not been rendered")
}

func TestWord_MarkupWithoutDocumentRoot(t *testing.T) {
	_, err := Word("<div>no paper here</div>", "Internship CV")

	var unavailable *ErrExportUnavailable
	require.ErrorAs(t, err, &unavailable)
	assert.Contains(t, unavailable.Reason, "no document root")
}

func TestPrintable_EmptyMarkup(t *testing.T) {
	_, err := Printable("", "Internship CV")

	var unavailable *ErrExportUnavailable
	assert.ErrorAs(t, err, &unavailable)
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Internship CV", "Internship_CV"},
		{"My CV: Final (v2)!", "My_CV_Final_v2"},
		{"already-safe_name", "already-safe_name"},
		{"///", "portfolio"},
		{"", "portfolio"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestSanitizeFilename_NoLeadingOrTrailingUnderscores(t *testing.T) {
	name := SanitizeFilename("  spaced out  ")

	assert.False(t, strings.HasPrefix(name, "_"))
	assert.False(t, strings.HasSuffix(name, "_"))
	assert.Equal(t, "spaced_out", name)
}
