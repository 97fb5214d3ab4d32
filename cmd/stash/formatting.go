package stash

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/arthur-debert/stash/pkg/types"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// isTerminal reports whether w is a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// colorEnabled reports whether styled output should be written to w
func colorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isTerminal(w) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	codecStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
)

// formatBold returns the string formatted as bold using pterm
func formatBold(s string) string {
	// Only apply formatting if output is a terminal
	if !isTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}

// renderArtifactList writes artifacts as a table on terminals and as tab
// separated lines otherwise
func renderArtifactList(w io.Writer, artifacts []types.ArtifactInfo) error {
	if colorEnabled(w) {
		data := pterm.TableData{{"PATH", "CODEC", "KIND", "SIZE"}}
		for _, a := range artifacts {
			data = append(data, []string{a.Path, a.Codec, a.Kind, fmt.Sprintf("%d", a.Size)})
		}
		out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, out)
		return err
	}

	for _, a := range artifacts {
		if _, err := fmt.Fprintf(w, MsgArtifactLine, a.Path, a.Codec, a.Kind, a.Size); err != nil {
			return err
		}
	}
	return nil
}

// renderArtifactInfo writes one artifact header as aligned fields
func renderArtifactInfo(w io.Writer, info *types.ArtifactInfo) {
	styled := colorEnabled(w)
	label := func(s string) string {
		padded := fmt.Sprintf("%-10s", s)
		if styled {
			return labelStyle.Render(padded)
		}
		return padded
	}
	codec := info.Codec
	if styled {
		codec = codecStyle.Render(codec)
	}
	fmt.Fprintf(w, MsgInspectField, label("path"), info.Path)
	fmt.Fprintf(w, MsgInspectField, label("codec"), codec)
	fmt.Fprintf(w, MsgInspectField, label("kind"), info.Kind)
	fmt.Fprintf(w, MsgInspectField, label("version"), fmt.Sprintf("%d", info.Version))
	fmt.Fprintf(w, MsgInspectField, label("created"), info.CreatedAt.Format(time.RFC3339))
	fmt.Fprintf(w, MsgInspectSizeField, label("size"), info.Size)
}
