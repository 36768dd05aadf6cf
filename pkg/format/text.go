package format

import (
	"fmt"
	"io"
	"regexp"

	"github.com/charmbracelet/lipgloss"

	"github.com/translint/translint/pkg/rule"
)

// highlightTag matches one inline highlight span, e.g. <e0>OAuth</e0>.
var highlightTag = regexp.MustCompile(`<e(\d+)>(.*?)</e\d+>`)

// Text renders findings as styled lines grouped under their file path, with
// highlight spans emphasized.
type Text struct {
	styles textStyles
}

type textStyles struct {
	path      lipgloss.Style
	err       lipgloss.Style
	warn      lipgloss.Style
	suggest   lipgloss.Style
	key       lipgloss.Style
	ruleName  lipgloss.Style
	highlight lipgloss.Style
	summary   lipgloss.Style
}

// TextOpt is a functional option for configuring a [Text] renderer.
type TextOpt func(*Text)

// NewText creates a new text renderer.
func NewText(opts ...TextOpt) *Text {
	t := &Text{
		styles: textStyles{
			path:      lipgloss.NewStyle().Bold(true).Underline(true),
			err:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			warn:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			suggest:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			key:       lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			ruleName:  lipgloss.NewStyle().Faint(true),
			highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Underline(true),
			summary:   lipgloss.NewStyle().Bold(true),
		},
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (t *Text) Render(w io.Writer, findings []rule.Finding) error {
	var errs, warns, suggests int

	lastPath := ""
	for _, f := range findings {
		if f.Path != lastPath {
			_, err := fmt.Fprintf(w, "%s\n", t.styles.path.Render(f.Path))
			if err != nil {
				return fmt.Errorf("render findings: %w", err)
			}

			lastPath = f.Path
		}

		switch f.Severity {
		case rule.SeverityError:
			errs++
		case rule.SeverityWarning:
			warns++
		case rule.SeveritySuggestion:
			suggests++
		}

		err := t.renderFinding(w, f)
		if err != nil {
			return fmt.Errorf("render findings: %w", err)
		}
	}

	total := errs + warns + suggests

	summary := fmt.Sprintf("%d problems (%d errors, %d warnings, %d suggestions)",
		total, errs, warns, suggests)

	_, err := fmt.Fprintf(w, "%s\n", t.styles.summary.Render(summary))
	if err != nil {
		return fmt.Errorf("render summary: %w", err)
	}

	return nil
}

func (t *Text) renderFinding(w io.Writer, f rule.Finding) error {
	severity := t.severityStyle(f.Severity).Render(string(f.Severity))

	locale := ""
	if f.Locale != "" {
		locale = fmt.Sprintf(" (%s)", f.Locale)
	}

	_, err := fmt.Fprintf(w, "  %s  %s%s  %s  %s\n",
		severity,
		t.styles.key.Render(f.Key),
		locale,
		f.Description,
		t.styles.ruleName.Render(f.RuleName),
	)
	if err != nil {
		return err
	}

	if f.Source != "" {
		_, err = fmt.Fprintf(w, "    source: %s\n", f.Source)
		if err != nil {
			return err
		}
	}

	if f.Highlight != "" {
		_, err = fmt.Fprintf(w, "    %s\n", t.renderHighlight(f.Highlight))
		if err != nil {
			return err
		}
	}

	return nil
}

// renderHighlight converts the inline tag convention into styled emphasis.
func (t *Text) renderHighlight(highlight string) string {
	return highlightTag.ReplaceAllStringFunc(highlight, func(tag string) string {
		parts := highlightTag.FindStringSubmatch(tag)

		return t.styles.highlight.Render(parts[2])
	})
}

func (t *Text) severityStyle(s rule.Severity) lipgloss.Style {
	switch s {
	case rule.SeverityError:
		return t.styles.err
	case rule.SeverityWarning:
		return t.styles.warn
	case rule.SeveritySuggestion:
		return t.styles.suggest
	}

	return t.styles.err
}
