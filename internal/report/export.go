package report

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/Techy233/FSE1/internal/filelock"
)

const htmlHeader = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>FSE Compliance Assessment Report</title>
<style>
body { font-family: sans-serif; max-width: 48rem; margin: 2rem auto; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.3rem 0.8rem; }
img { max-height: 4rem; }
</style>
</head>
<body>
`

const htmlFooter = "</body>\n</html>\n"

// Export writes report.md and report.html for a completed view into dir.
// Writes happen under an advisory lock and are atomic, so concurrent exports
// to the same directory never corrupt each other. Returns the two written
// paths.
func Export(dir string, v *View) (mdPath, htmlPath string, err error) {
	exporter := &MarkdownExporter{IncludeSignatures: true}
	md, err := exporter.Export(v)
	if err != nil {
		return "", "", err
	}

	html, err := renderHTML(md)
	if err != nil {
		return "", "", err
	}

	mdPath = filepath.Join(dir, "report.md")
	htmlPath = filepath.Join(dir, "report.html")

	err = filelock.WithLock(filepath.Join(dir, ".export.lock"), func() error {
		if err := filelock.AtomicWrite(mdPath, []byte(md)); err != nil {
			return fmt.Errorf("writing markdown report: %w", err)
		}
		if err := filelock.AtomicWrite(htmlPath, []byte(html)); err != nil {
			return fmt.Errorf("writing html report: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", "", err
	}
	return mdPath, htmlPath, nil
}

// renderHTML converts the markdown report to a standalone HTML page. The
// breakdown table needs the GFM table extension.
func renderHTML(md string) (string, error) {
	converter := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := converter.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("converting report to html: %w", err)
	}
	return htmlHeader + buf.String() + htmlFooter, nil
}
