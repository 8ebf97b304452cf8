package main

import (
	"cmp"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"
	"strings"

	"shipment-insights-service/internal/adapters/csvsource"
	"shipment-insights-service/internal/domain"
	"shipment-insights-service/internal/services"

	"github.com/mattn/go-runewidth"
)

// Offline counterpart of the HTTP service: runs the same validation,
// leg derivation, and aggregation over a local CSV file and prints the
// per-route table plus overall mode totals.
func main() {
	file := flag.String("file", "", "path to a shipments CSV file (required)")
	sortKey := flag.String("sort", "frequency", "table sort: frequency or route")
	flag.Parse()

	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *sortKey != "frequency" && *sortKey != "route" {
		log.Fatalf("unknown sort %q (want frequency or route)", *sortKey)
	}

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	records, err := csvsource.NewParser().Parse(f)
	if err != nil {
		log.Fatalf("read %s: %v", *file, err)
	}

	result := services.ValidateRows(records)
	for _, rowErr := range result.Errors {
		for _, fe := range rowErr.Fields {
			fmt.Fprintf(os.Stderr, "row %d rejected: %s\n", rowErr.Row, fe.Message)
		}
	}
	if len(result.ValidRows) == 0 {
		log.Fatal("no valid rows in input, nothing to aggregate")
	}

	ds := services.ProcessShipments(result.ValidRows)

	groups := slices.Clone(ds.RouteGroups)
	switch *sortKey {
	case "route":
		slices.SortStableFunc(groups, func(a, b domain.RouteGroup) int {
			return strings.Compare(a.RouteKey, b.RouteKey)
		})
	default:
		slices.SortStableFunc(groups, func(a, b domain.RouteGroup) int {
			return cmp.Compare(b.TimesTaken, a.TimesTaken)
		})
	}

	renderTable(os.Stdout, groups)

	chart := services.WeightByMode(ds.Journeys)
	fmt.Printf("\nTotal road weight: %d kg\nTotal sea weight:  %d kg\n", chart.Road, chart.Sea)
}

// renderTable prints route groups as a width-aligned text table. Column
// widths use display width rather than byte length so routes with wide or
// combining characters still line up.
func renderTable(w io.Writer, groups []domain.RouteGroup) {
	header := []string{"Route", "Distance (km)", "Times", "Total (km)", "Modes", "Weight (kg)"}

	rows := make([][]string, 0, len(groups)+1)
	rows = append(rows, header)
	for _, g := range groups {
		rows = append(rows, []string{
			g.RouteKey,
			fmt.Sprintf("%d", g.DistanceKm),
			fmt.Sprintf("%d", g.TimesTaken),
			fmt.Sprintf("%d", g.TotalDistanceKm),
			g.Modes,
			fmt.Sprintf("%.1f", g.TotalWeight),
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for ri, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))

		if ri == 0 {
			seps := make([]string, len(widths))
			for i, width := range widths {
				seps[i] = strings.Repeat("-", width)
			}
			fmt.Fprintln(w, strings.Join(seps, "  "))
		}
	}
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
