// Command dickson_plot renders a swept records table as an HTML page:
// a scatter of value-set cardinality against the index n for one prime,
// and a bar view of the cardinality distribution per parameter a.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"dickson-valuesets/analysis"
	"dickson-valuesets/results"
	"dickson-valuesets/valueset"
)

func main() {
	inPath := flag.String("in", "reversed_dickson_values.csv", "records table (.csv or .jsonl)")
	outPath := flag.String("out", "dickson_valuesets.html", "output HTML path")
	primeFlag := flag.Uint64("p", 0, "prime to plot (default: first in table)")
	flag.Parse()

	records, err := results.Load(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load records: %v\n", err)
		os.Exit(1)
	}
	ps := analysis.Primes(records)
	p := *primeFlag
	if p == 0 {
		p = ps[0]
	}
	sub := analysis.ByPrime(records, p)
	if len(sub) == 0 {
		fmt.Fprintf(os.Stderr, "no records for p=%d in %s\n", p, *inPath)
		os.Exit(1)
	}

	page := components.NewPage()
	page.AddCharts(cardinalityScatter(sub, p), parameterBars(sub, p))

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s | p=%d records=%d\n", *outPath, p, len(sub))
}

func cardinalityScatter(sub []valueset.Record, p uint64) *charts.Scatter {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Value-set cardinality of D_n(a, x) over F_%d", p),
			Subtitle: "one point per swept index n",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "index n", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "cardinality", Type: "value"}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside"},
			opts.DataZoom{Type: "slider"},
		),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	byA := make(map[uint64][]opts.ScatterData)
	for _, rec := range sub {
		byA[rec.A] = append(byA[rec.A], opts.ScatterData{
			Value: []interface{}{rec.N, rec.Cardinality},
		})
	}
	as := make([]uint64, 0, len(byA))
	for a := range byA {
		as = append(as, a)
	}
	sort.Slice(as, func(i, j int) bool { return as[i] < as[j] })
	for _, a := range as {
		sc.AddSeries(fmt.Sprintf("a=%d", a), byA[a],
			charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 5}))
	}
	return sc
}

func parameterBars(sub []valueset.Record, p uint64) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Cardinality distribution per parameter a, p=%d", p),
			Subtitle: "identical bars for every nonzero a; a=0 is the degenerate case",
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "cardinality"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "index count"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	cards := make([]int, 0, int(p))
	for c := 1; c <= int(p); c++ {
		cards = append(cards, c)
	}
	bar.SetXAxis(cards)

	as := make(map[uint64]bool)
	for _, rec := range sub {
		as[rec.A] = true
	}
	sorted := make([]uint64, 0, len(as))
	for a := range as {
		sorted = append(sorted, a)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	for _, a := range sorted {
		h := analysis.HistogramFor(sub, p, a)
		data := make([]opts.BarData, len(cards))
		for i, c := range cards {
			data[i] = opts.BarData{Value: h[c]}
		}
		bar.AddSeries(fmt.Sprintf("a=%d", a), data)
	}
	return bar
}
