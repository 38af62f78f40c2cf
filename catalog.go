package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/catalog"
	"github.com/Zachkp/portfolio/internal/content"
)

var (
	activeTab   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("63")).Padding(0, 1)
	inactiveTab = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	cardStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(0, 1).Width(60)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	starStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [filter]",
		Short: "Preview the project gallery in the terminal",
		Long:  "Show the projects matching a gallery filter: all, featured, cli or web.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := catalog.All
			if len(args) == 1 {
				f = catalog.Filter(args[0])
			}
			printCatalog(cmd.OutOrStdout(), f)
			return nil
		},
	}
}

func printCatalog(w io.Writer, f catalog.Filter) {
	tabs := make([]string, 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		style := inactiveTab
		if c.ID == f {
			style = activeTab
		}
		tabs = append(tabs, style.Render(c.Name))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))

	projects := catalog.Filtered(content.Projects(), f)
	if len(projects) == 0 {
		fmt.Fprintf(w, "No projects in category %q.\n", f)
		return
	}
	for _, p := range projects {
		title := titleStyle.Render(p.Title)
		if p.Featured {
			title += " " + starStyle.Render("★ featured")
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			title,
			p.Description,
			tagStyle.Render(strings.Join(p.Tags, " · ")),
			p.Link,
		)
		fmt.Fprintln(w, cardStyle.Render(body))
	}
}
