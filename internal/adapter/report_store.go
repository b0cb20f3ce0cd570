package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
	m "upshift.dev/pkg/upshift/internal/model"
)

// ReportFormat selects how a run report is rendered.
type ReportFormat string

// Supported report formats.
const (
	ReportMarkdown ReportFormat = "markdown"
	ReportYAML     ReportFormat = "yaml"
	ReportJSON     ReportFormat = "json"
)

// ReportBaseName is the file name of a report without its extension.
const ReportBaseName = "upshift-report"

// ErrUnknownReportFormat is returned for unsupported formats or report files.
var ErrUnknownReportFormat = errors.New("unknown report format")

// ParseReportFormat validates a format name. "md" is accepted for markdown.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "markdown", "md":
		return ReportMarkdown, nil
	case "yaml", "yml":
		return ReportYAML, nil
	case "json":
		return ReportJSON, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownReportFormat, name)
}

// Extension returns the file extension used for the format.
func (f ReportFormat) Extension() string {
	switch f {
	case ReportYAML:
		return "yaml"
	case ReportJSON:
		return "json"
	default:
		return "md"
	}
}

// ReportStore persists run reports.
type ReportStore interface {
	// SaveReport renders result in format into dir and returns the file path.
	SaveReport(dir m.Path, format ReportFormat, result m.RunResult) (m.Path, error)
	// LoadReport reads back a YAML or JSON report.
	LoadReport(path m.Path) (m.RunResult, error)
}

type reportStore struct{}

// NewReportStore creates a ReportStore writing to the local disk.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReport(dir m.Path, format ReportFormat, result m.RunResult) (m.Path, error) {
	content, err := RenderReport(format, result)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}

	path := filepath.Join(string(dir), ReportBaseName+"."+format.Extension())
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

func (s *reportStore) LoadReport(path m.Path) (m.RunResult, error) {
	var result m.RunResult

	data, err := os.ReadFile(string(path))
	if err != nil {
		return result, fmt.Errorf("read report: %w", err)
	}

	switch strings.ToLower(filepath.Ext(string(path))) {
	case ".json":
		err = json.Unmarshal(data, &result)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &result)
	default:
		return result, fmt.Errorf("%w: %s", ErrUnknownReportFormat, path)
	}

	if err != nil {
		return result, fmt.Errorf("decode report %s: %w", path, err)
	}

	return result, nil
}

// RenderReport renders result in the given format.
func RenderReport(format ReportFormat, result m.RunResult) ([]byte, error) {
	switch format {
	case ReportMarkdown:
		return []byte(renderMarkdown(result)), nil
	case ReportYAML:
		return yaml.Marshal(result)
	case ReportJSON:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, err
		}

		return append(out, '\n'), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownReportFormat, format)
}

func renderMarkdown(result m.RunResult) string {
	var b strings.Builder

	mode := "applied"
	if result.Preview {
		mode = "preview (no files written)"
	}

	b.WriteString("# upshift migration report\n\n")
	fmt.Fprintf(&b, "- From: %s\n- To: %s\n- Mode: %s\n\n", result.From, result.To, mode)

	if len(result.Warnings) > 0 {
		b.WriteString("## Run warnings\n\n")
		writeWarnings(&b, result.Warnings)
		b.WriteString("\n")
	}

	if len(result.Steps) == 0 {
		b.WriteString("No migration steps were run.\n")
		return b.String()
	}

	b.WriteString(summaryTable(result))
	b.WriteString("\n")

	for _, step := range result.Steps {
		fmt.Fprintf(&b, "## %s: %s\n\n", step.Step.Label(), step.Step.Name)

		if step.Step.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", step.Step.Description)
		}

		if len(step.Errors) > 0 {
			b.WriteString("### Errors\n\n")

			for _, stepErr := range step.Errors {
				fmt.Fprintf(&b, "- %s\n", stepErr.Message)
			}

			b.WriteString("\n")
		}

		b.WriteString("### Changes\n\n")

		if len(step.Changes) == 0 {
			b.WriteString("None.\n")
		}

		for _, change := range step.Changes {
			fmt.Fprintf(&b, "- `%s`: %s", change.File, change.Description)

			if change.Before != "" || change.After != "" {
				fmt.Fprintf(&b, " (`%s` → `%s`)", change.Before, change.After)
			}

			b.WriteString("\n")
		}

		b.WriteString("\n")

		if len(step.Warnings) > 0 {
			b.WriteString("### Manual actions\n\n")
			writeWarnings(&b, step.Warnings)
			b.WriteString("\n")
		}

		for _, diff := range step.Diffs {
			fmt.Fprintf(&b, "<details><summary>%s</summary>\n\n```diff\n%s```\n\n</details>\n\n", diff.File, diff.Diff)
		}
	}

	return b.String()
}

func writeWarnings(b *strings.Builder, warnings []m.Warning) {
	for _, warning := range warnings {
		if warning.File == "" {
			fmt.Fprintf(b, "- %s\n", warning.Message)
			continue
		}

		fmt.Fprintf(b, "- `%s`: %s\n", warning.File, warning.Message)
	}
}

func summaryTable(result m.RunResult) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Step", "Changes", "Warnings", "Errors"})
	table.SetAutoFormatHeaders(false)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")

	for _, step := range result.Steps {
		table.Append([]string{
			step.Step.Label(),
			fmt.Sprintf("%d", len(step.Changes)),
			fmt.Sprintf("%d", len(step.Warnings)),
			fmt.Sprintf("%d", len(step.Errors)),
		})
	}

	table.Render()

	return buf.String()
}
