package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/gridsheet/internal/config"
	"github.com/five82/gridsheet/internal/sheet"
	"github.com/five82/gridsheet/internal/ui"
)

type columnInfo struct {
	Index int    `json:"index"`
	Key   string `json:"key"`
	Title string `json:"title"`
	Width int    `json:"width"`
	Cells int    `json:"cells"`
}

func newColumnsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "List the column schema with default widths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			infos := describeColumns(cfg.PixelsPerCell)
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(infos)
			}
			fmt.Fprintln(out, renderColumns(infos))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output in JSON format")
	return cmd
}

func describeColumns(pxPerCell int) []columnInfo {
	widths := sheet.DefaultWidths()
	infos := make([]columnInfo, len(sheet.Columns))
	for i, col := range sheet.Columns {
		infos[i] = columnInfo{
			Index: i,
			Key:   col.Key,
			Title: col.Title,
			Width: widths[i],
			Cells: ui.ColumnCells(widths[i], pxPerCell),
		}
	}
	return infos
}

func renderColumns(infos []columnInfo) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := ltable.New().
		Border(lipgloss.RoundedBorder()).
		Headers("#", "Key", "Title", "Width (px)", "Cells").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return header
			}
			return cell
		})
	for _, c := range infos {
		t.Row(strconv.Itoa(c.Index), c.Key, c.Title, strconv.Itoa(c.Width), strconv.Itoa(c.Cells))
	}
	return t.String()
}
