package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/cards"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the filtered internships as a table",
	RunE:  runList,
}

var (
	listFilters filterFlags
	listPlain   bool
)

func init() {
	listFilters.register(listCmd)
	listCmd.Flags().BoolVar(&listPlain, "plain", false, "disable colors")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if listPlain {
		pterm.DisableStyling()
	}
	page, err := loadPage(cmd, listFilters, time.Now())
	if err != nil {
		return err
	}
	return writeList(cmd.OutOrStdout(), page)
}

func writeList(w io.Writer, page cards.Page) error {
	if _, err := fmt.Fprintln(w, listSummary(page)); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	if page.Status == cards.StatusEmpty {
		if _, err := fmt.Fprintln(w, "No internships match your filters."); err != nil {
			return fmt.Errorf("write list: %w", err)
		}
		return nil
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(listRows(page.Cards)).Srender()
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return fmt.Errorf("write list: %w", err)
	}
	return nil
}

func listSummary(page cards.Page) string {
	total := humanize.Comma(int64(page.TotalCount))
	if page.ShowResultsInfo {
		return fmt.Sprintf("Showing %s of %s internships (updated %s)",
			humanize.Comma(int64(page.ResultsCount)), total, page.LastUpdated)
	}
	return fmt.Sprintf("%s internships (updated %s)", total, page.LastUpdated)
}

func listRows(cs []cards.Card) pterm.TableData {
	rows := pterm.TableData{{"Title", "Company", "Type", "Where", "Stipend", "Deadline", "Views"}}
	for _, c := range cs {
		where := c.Location
		if c.WorkFromHome {
			where = "WFH"
		}
		stipend := c.Stipend
		if stipend == "" {
			stipend = cards.Unpaid
		}
		rows = append(rows, []string{
			cards.Truncate(c.Title, 40),
			cards.Truncate(c.Company, 24),
			c.TypeLabel,
			orDash(where),
			stipend,
			orDash(c.Deadline),
			orDash(c.Views),
		})
	}
	return rows
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
