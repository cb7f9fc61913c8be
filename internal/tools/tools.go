package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/probelab/logitscope/internal/dataset"
	"github.com/probelab/logitscope/internal/export"
	"github.com/probelab/logitscope/internal/report"
)

// Register registers all tools with the MCP server.
func Register(s *server.MCPServer) {
	registerRenderReportTool(s)
	registerExportPNGTool(s)
}

func registerRenderReportTool(s *server.MCPServer) {
	tool := mcp.NewTool("render_histogram_report",
		mcp.WithDescription("Renders logits histogram datasets into an interactive HTML report. The input is a JSON object mapping suffix keys to {x, y, ticks, title?} datasets; each dataset becomes one bar chart split into non-negative and negative series."),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("The absolute path to the histogram dataset JSON file"),
		),
		mcp.WithString("output_path",
			mcp.Description("The output path for the HTML report. Defaults to the input path with an .html extension"),
		),
		mcp.WithString("theme",
			mcp.Description("Report theme: dark or light. Defaults to dark"),
		),
	)

	s.AddTool(tool, renderReportHandler)
}

func registerExportPNGTool(s *server.MCPServer) {
	tool := mcp.NewTool("export_histogram_png",
		mcp.WithDescription("Exports logits histogram datasets as static PNG bar charts, one image per dataset."),
		mcp.WithString("input_path",
			mcp.Required(),
			mcp.Description("The absolute path to the histogram dataset JSON file"),
		),
		mcp.WithString("output_dir",
			mcp.Description("The directory for the PNG files. Defaults to the input file's directory"),
		),
	)

	s.AddTool(tool, exportPNGHandler)
}

func renderReportHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath, ok := request.Params.Arguments["input_path"].(string)
	if !ok {
		return newToolResultError("input_path is required"), nil
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return newToolResultError(fmt.Sprintf("input path does not exist: %s", inputPath)), nil
	}

	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".html"
	if op, ok := request.Params.Arguments["output_path"].(string); ok && op != "" {
		outputPath = op
	}

	cfg := report.DefaultConfig()
	if theme, ok := request.Params.Arguments["theme"].(string); ok && theme != "" {
		cfg.Theme = theme
	}

	col, err := dataset.LoadFile(inputPath)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to load datasets: %v", err)), nil
	}

	if err := report.Generate(col, outputPath, cfg); err != nil {
		return newToolResultError(fmt.Sprintf("failed to generate report: %v", err)), nil
	}

	return mcp.NewToolResultText(buildSummary(col, outputPath)), nil
}

func exportPNGHandler(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputPath, ok := request.Params.Arguments["input_path"].(string)
	if !ok {
		return newToolResultError("input_path is required"), nil
	}
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return newToolResultError(fmt.Sprintf("input path does not exist: %s", inputPath)), nil
	}

	outputDir := filepath.Dir(inputPath)
	if od, ok := request.Params.Arguments["output_dir"].(string); ok && od != "" {
		outputDir = od
	}

	col, err := dataset.LoadFile(inputPath)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to load datasets: %v", err)), nil
	}

	paths, err := export.WritePNGs(outputDir, col)
	if err != nil {
		return newToolResultError(fmt.Sprintf("failed to export PNGs: %v", err)), nil
	}

	summary := fmt.Sprintf("Exported %d histogram(s):\n", len(paths))
	for _, p := range paths {
		summary += fmt.Sprintf("  - %s\n", p)
	}
	return mcp.NewToolResultText(summary), nil
}

func newToolResultError(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

func buildSummary(col *dataset.Collection, outputPath string) string {
	summary := fmt.Sprintf("Histogram report generated successfully!\n\nOutput: %s\n\nDatasets rendered:\n", outputPath)
	for _, suffix := range col.Suffixes() {
		ds, _ := col.Get(suffix)
		label := ds.Title
		if label == "" {
			label = suffix
		}
		summary += fmt.Sprintf("  - %s: %d bins\n", label, len(ds.X))
	}
	return summary
}
