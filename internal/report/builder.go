// Package report assembles standalone HTML report pages around the
// histogram renderer: charting engine script, theme CSS, header, one
// chart section per dataset, footer.
package report

import (
	"bytes"
	"fmt"
	"html"
	"os"
	"strings"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/histogram"
	"github.com/probelab/logitscope/internal/page"
)

// plotlyCDN is the charting engine the report pages load.
const plotlyCDN = "https://cdn.plot.ly/plotly-2.35.2.min.js"

// Config configures the report page.
type Config struct {
	Title       string
	Description string
	Theme       string // "dark" or "light"
}

// DefaultConfig returns the standard report configuration.
func DefaultConfig() Config {
	return Config{
		Title:       "Logits Histograms",
		Description: "Interactive logit distribution histograms",
		Theme:       "dark",
	}
}

type builder struct {
	col *dataset.Collection
	cfg Config
}

// Generate builds the report for a dataset collection and writes it to
// the output path.
func Generate(col *dataset.Collection, outputPath string, cfg Config) error {
	out, err := Build(col, cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}
	return nil
}

// Build renders the report page: the shell with one container per
// dataset is generated first, then the renderer fills in headings and
// engine invocations.
func Build(col *dataset.Collection, cfg Config) (string, error) {
	b := &builder{col: col, cfg: cfg}

	doc, err := page.Parse(strings.NewReader(b.renderShell()))
	if err != nil {
		return "", err
	}

	r := histogram.NewRenderer(doc)
	if err := r.Render(col); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (b *builder) renderShell() string {
	var sb strings.Builder

	sb.WriteString(b.renderHead())
	sb.WriteString(`<body><div class="container">`)
	sb.WriteString(b.renderHeader())

	for _, suffix := range b.col.Suffixes() {
		sb.WriteString(b.renderChartBox(suffix))
	}

	sb.WriteString(b.renderFooter())
	sb.WriteString(`</div></body></html>`)

	return sb.String()
}

func (b *builder) renderHead() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>
    <script src="%s"></script>
    <style>%s</style>
</head>`, html.EscapeString(b.cfg.Title), plotlyCDN, b.themeCSS())
}

func (b *builder) themeCSS() string {
	if b.cfg.Theme == "light" {
		return lightThemeCSS
	}
	return darkThemeCSS
}

func (b *builder) renderHeader() string {
	return fmt.Sprintf(`
<header>
    <h1>%s</h1>
    <p>%s</p>
</header>`, html.EscapeString(b.cfg.Title), html.EscapeString(b.cfg.Description))
}

// renderChartBox emits the container div for one dataset. Headings are
// left to the renderer so untitled datasets stay heading-free.
func (b *builder) renderChartBox(suffix string) string {
	return fmt.Sprintf(`
<div class="widget chart-box">
    <div id="%s" class="chart"></div>
</div>`, histogram.ContainerID(suffix))
}

func (b *builder) renderFooter() string {
	return `<footer><p>Generated by logitscope</p></footer>`
}

const darkThemeCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: linear-gradient(135deg, #1a1a2e 0%, #16213e 100%);
    min-height: 100vh;
    color: #e4e4e4;
}
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 30px 0; border-bottom: 1px solid #333; margin-bottom: 30px; }
header h1 { font-size: 2.2rem; background: linear-gradient(90deg, #4A90D9, #FFB347); -webkit-background-clip: text; -webkit-text-fill-color: transparent; margin-bottom: 10px; }
header p { color: #888; font-size: 1.1rem; }
.widget { margin-bottom: 25px; }
.chart-box { background: rgba(255,255,255,0.05); border-radius: 12px; padding: 20px; border: 1px solid rgba(255,255,255,0.1); }
.chart-box h3 { margin-bottom: 15px; color: #fff; font-size: 1.2rem; }
.chart { width: 100%; height: 350px; }
footer { text-align: center; padding: 30px 0; color: #666; border-top: 1px solid #333; margin-top: 30px; }
`

const lightThemeCSS = `
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
    background: linear-gradient(135deg, #f5f7fa 0%, #e4e8ec 100%);
    min-height: 100vh;
    color: #333;
}
.container { max-width: 1200px; margin: 0 auto; padding: 20px; }
header { text-align: center; padding: 30px 0; border-bottom: 1px solid #ddd; margin-bottom: 30px; }
header h1 { font-size: 2.2rem; background: linear-gradient(90deg, #4A90D9, #FFB347); -webkit-background-clip: text; -webkit-text-fill-color: transparent; margin-bottom: 10px; }
header p { color: #666; font-size: 1.1rem; }
.widget { margin-bottom: 25px; }
.chart-box { background: #fff; border-radius: 12px; padding: 20px; border: 1px solid #e0e0e0; box-shadow: 0 2px 8px rgba(0,0,0,0.05); }
.chart-box h3 { margin-bottom: 15px; color: #333; font-size: 1.2rem; }
.chart { width: 100%; height: 350px; }
footer { text-align: center; padding: 30px 0; color: #999; border-top: 1px solid #ddd; margin-top: 30px; }
`
