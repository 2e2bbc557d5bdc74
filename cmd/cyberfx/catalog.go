package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/cyberfx/effect"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List effects with their default durations and phases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeCatalog(cmd.OutOrStdout())
		},
	}
}

func writeCatalog(w io.Writer) error {
	rows := make([][]string, 0, len(effect.Kinds()))
	for _, k := range effect.Kinds() {
		names := make([]string, 0, len(k.Phases()))
		for _, ph := range k.Phases() {
			names = append(names, ph.Name)
		}
		rows = append(rows, []string{
			k.String(),
			fmt.Sprintf("%dms", k.DefaultDuration().Milliseconds()),
			strings.Join(names, " > "),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("effect", "default", "phases").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Inherit(cellStyle)
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func newCommandsCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "Print the command script table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := g.config()
			if err != nil {
				return err
			}
			tbl, err := loadTable(cfg)
			if err != nil {
				return err
			}
			_, err = tbl.WriteTo(cmd.OutOrStdout())
			return err
		},
	}
}
