// Package widget packages a compiled frontend build into a single
// self-contained HTML file plus the embed snippet host pages paste in.
package widget

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	WidgetFileName    = "dog-forum-widget.html"
	EmbedCodeFileName = "embed-code.txt"
)

const embedCode = `
<!-- Dog Forum Widget Embed Code -->
<!-- Add this code to your Webflow page where you want the widget to appear -->
<div id="dog-forum-widget-container" style="width: 100%; min-height: 600px;">
  <iframe
    src="YOUR_HOSTING_URL/dog-forum-widget.html"
    style="width: 100%; height: 100%; min-height: 600px; border: none; border-radius: 16px;"
    title="Dog Forum Widget">
  </iframe>
</div>
<!-- End Dog Forum Widget -->
`

// Build inlines every CSS and JS asset from buildDir/static into one HTML
// document under outDir, and writes the iframe embed snippet next to it.
// Source maps are skipped. Assets are inlined in name order so repeated
// builds produce identical output.
func Build(buildDir, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating widget output dir: %w", err)
	}

	cssFiles, err := listAssets(filepath.Join(buildDir, "static", "css"), ".css")
	if err != nil {
		return err
	}
	jsFiles, err := listAssets(filepath.Join(buildDir, "static", "js"), ".js")
	if err != nil {
		return err
	}

	var html strings.Builder
	html.WriteString(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <style>
    #dog-forum-widget {
      width: 100%;
      height: 100%;
      min-height: 600px;
    }
  </style>
`)

	for _, file := range cssFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading css asset %s: %w", file, err)
		}
		html.WriteString("<style>")
		html.Write(content)
		html.WriteString("</style>\n")
	}

	html.WriteString(`</head>
<body>
  <div id="dog-forum-widget"></div>
`)

	for _, file := range jsFiles {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading js asset %s: %w", file, err)
		}
		html.WriteString("<script>")
		html.Write(content)
		html.WriteString("</script>\n")
	}

	html.WriteString("</body>\n</html>\n")

	widgetFile := filepath.Join(outDir, WidgetFileName)
	if err := os.WriteFile(widgetFile, []byte(html.String()), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", widgetFile, err)
	}

	embedFile := filepath.Join(outDir, EmbedCodeFileName)
	if err := os.WriteFile(embedFile, []byte(embedCode), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", embedFile, err)
	}

	return nil
}

func listAssets(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing assets in %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) || strings.Contains(name, ".map") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}
