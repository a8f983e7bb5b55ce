package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/internboard/internal/app"
	"github.com/five82/internboard/internal/board"
	"github.com/five82/internboard/internal/cards"
)

// filterFlags are the selectors shared by the non-interactive commands.
type filterFlags struct {
	search   string
	typ      string
	location string
	remote   bool
	sort     string
}

func (f *filterFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.search, "search", "q", "", "case-insensitive search over title, company, location and skills")
	cmd.Flags().StringVarP(&f.typ, "type", "t", "", "only show this type (exact match)")
	cmd.Flags().StringVar(&f.location, "location", "any", "location filter: any or remote-only")
	cmd.Flags().BoolVar(&f.remote, "remote", false, "shorthand for --location remote-only")
	cmd.Flags().StringVarP(&f.sort, "sort", "s", string(board.SortRecent), "sort key: recent, stipend-high, views or registrations")
}

func (f filterFlags) filter() (board.Filter, error) {
	key, err := board.ParseSortKey(f.sort)
	if err != nil {
		return board.Filter{}, err
	}
	loc, err := board.ParseLocation(f.location)
	if err != nil {
		return board.Filter{}, err
	}
	if f.remote {
		loc = board.LocationRemote
	}
	return board.Filter{Search: f.search, Type: f.typ, Location: loc, Sort: key}, nil
}

// loadPage performs the single load and returns the filtered page.
func loadPage(cmd *cobra.Command, flags filterFlags, now time.Time) (cards.Page, error) {
	f, err := flags.filter()
	if err != nil {
		return cards.Page{}, err
	}

	rt, err := app.Boot(appOptions())
	if err != nil {
		return cards.Page{}, err
	}
	defer rt.Close()

	s, err := app.Snapshot(cmd.Context(), rt.Feed, f)
	if err != nil {
		return cards.Page{}, fmt.Errorf("load %s: %w", rt.Feed.Source(), err)
	}
	return cards.NewPage(s, now), nil
}
