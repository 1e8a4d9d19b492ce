// Command pagerdemo pages through a synthetic photo album in the terminal.
//
// Left/right (or up/down with -vertical) scroll one page, "a" appends items
// at the tail, "g" jumps to the first page, "q" quits. Resizing the terminal
// exercises the transient resize handling.
package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnimtadd/pagingview"
	"github.com/hnimtadd/pagingview/logger"
	"github.com/hnimtadd/pagingview/pager/geometry"
)

func main() {
	items := flag.Int("items", 50, "Number of items in the album")
	vertical := flag.Bool("vertical", false, "Page vertically instead of horizontally")
	spacing := flag.Float64("spacing", 2, "Columns (or rows) between pages")
	poolCap := flag.Int("pool-cap", 0, "Maximum idle cells kept per tag, 0 for unbounded")
	logPath := flag.String("log", "", "Write debug logs to this file")
	flag.Parse()

	log := logger.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log = logger.New(logger.Options{Buffer: f, Level: logger.DebugLevel})
	}

	axis := geometry.AxisHorizontal
	if *vertical {
		axis = geometry.AxisVertical
	}

	host := newAlbum(*items, log)
	surface := newSurface()
	view := pagingview.NewPagingView(host, pagingview.Options{
		Axis:            axis,
		Spacing:         *spacing,
		MaxPooledPerTag: *poolCap,
		Surface:         surface,
		Logger:          log,
	})

	m := newModel(view, host, surface, log)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "pagerdemo: %v\n", err)
		os.Exit(1)
	}
}
