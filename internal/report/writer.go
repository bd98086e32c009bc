package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"

	"reddit-persona/internal/domain"
)

const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// Disclaimer acompana todo reporte generado: el persona es una lectura
// heuristica de contenido publico, no un diagnostico.
const Disclaimer = "This persona was generated automatically from publicly available Reddit activity " +
	"using rule-based keyword analysis. It is a speculative sketch, not a factual profile, " +
	"and may misrepresent the person behind the account. Use it responsibly."

// Text produce el reporte plano con el layout clasico del generador.
func Text(p domain.Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "USER PERSONA: %s\n", p.Username)
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	fmt.Fprintf(&b, "Analysis Date: %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "Items Analyzed: %d\n\n", p.ItemCount)

	for _, r := range p.Dimensions {
		b.WriteString(strings.ToUpper(r.Dimension.Title()) + ":\n")
		b.WriteString(strings.Repeat("-", 30) + "\n")

		if r.Assignment.Sentinel() {
			b.WriteString("  Insufficient evidence\n")
			if r.Assignment.Note != "" {
				fmt.Fprintf(&b, "  Note: %s\n", r.Assignment.Note)
			}
			b.WriteString("\n")
			continue
		}

		fmt.Fprintf(&b, "  Trait: %s\n", r.Assignment.TraitValue)
		fmt.Fprintf(&b, "  Confidence: %.2f\n", r.Assignment.Confidence)
		fmt.Fprintf(&b, "  Supporting items: %d\n\n", r.Assignment.SupportingMatchCount)
	}

	b.WriteString("CITATIONS:\n")
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	for _, r := range p.Dimensions {
		if len(r.Citations) == 0 {
			continue
		}
		b.WriteString(r.Dimension.Title() + ":\n")
		b.WriteString(strings.Repeat("-", 30) + "\n")
		for _, c := range r.Citations {
			fmt.Fprintf(&b, "  Matched term: %s\n", c.MatchedTerm)
			fmt.Fprintf(&b, "  Source: %s\n", c.SourceURL)
			fmt.Fprintf(&b, "  Context: %s\n\n", c.Snippet)
		}
	}

	b.WriteString("DISCLAIMER:\n")
	b.WriteString(strings.Repeat("-", 30) + "\n")
	b.WriteString(Disclaimer + "\n")
	return b.String()
}

// Markdown produce el mismo contenido en formato markdown.
func Markdown(p domain.Persona) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# User Persona: %s\n\n", p.Username)
	fmt.Fprintf(&b, "- **Analysis date:** %s\n", p.GeneratedAt.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(&b, "- **Items analyzed:** %d\n\n", p.ItemCount)

	for _, r := range p.Dimensions {
		fmt.Fprintf(&b, "## %s\n\n", r.Dimension.Title())

		if r.Assignment.Sentinel() {
			b.WriteString("_Insufficient evidence._\n\n")
			if r.Assignment.Note != "" {
				fmt.Fprintf(&b, "> %s\n\n", r.Assignment.Note)
			}
			continue
		}

		fmt.Fprintf(&b, "**%s** (confidence %.2f, %d supporting items)\n\n",
			r.Assignment.TraitValue, r.Assignment.Confidence, r.Assignment.SupportingMatchCount)

		for _, c := range r.Citations {
			fmt.Fprintf(&b, "- `%s` — [source](%s)\n\n  > %s\n\n", c.MatchedTerm, c.SourceURL, c.Snippet)
		}
	}

	b.WriteString("---\n\n")
	fmt.Fprintf(&b, "_%s_\n", Disclaimer)
	return b.String()
}

// HTML renderiza el markdown del reporte con goldmark.
func HTML(p domain.Persona) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(Markdown(p)), &buf); err != nil {
		return "", fmt.Errorf("render html report: %w", err)
	}
	return buf.String(), nil
}

// Save escribe el reporte en dir con el formato pedido y devuelve la ruta.
func Save(p domain.Persona, dir, format string) (string, error) {
	if dir == "" {
		dir = "output"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var (
		content string
		ext     string
		err     error
	)
	switch format {
	case FormatText, "":
		content, ext = Text(p), "txt"
	case FormatMarkdown:
		content, ext = Markdown(p), "md"
	case FormatHTML:
		content, err = HTML(p)
		ext = "html"
		if err != nil {
			return "", err
		}
	default:
		return "", fmt.Errorf("unknown report format: %q", format)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s_persona.%s", p.Username, ext))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
