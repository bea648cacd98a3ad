package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type BenchmarkResult struct {
	Name       string
	Framework  string
	Category   string
	Scenario   string
	Iterations int64
	NsPerOp    float64
	BytesPerOp int64
	AllocsOp   int64
}

var frameworkColors = map[string]text.Colors{
	"Spindle": {text.FgGreen},
	"Do":      {text.FgYellow},
	"Dig":     {text.FgMagenta},
	"Fx":      {text.FgBlue},
}

var groupTitles = map[string]string{
	"Record_Simple":  "Configuration Recording (Simple)",
	"Record_Chain":   "Configuration Recording (Dependency Chain)",
	"Named_10":       "Named Bindings (10 keys)",
	"Modules_Nested": "Nested Module Composition",
	"Visualize_DOT":  "DOT Graph Rendering",
	"Inspect_Visit":  "Element Visitor Walk",
	"Inspect_Sprint": "Element Pretty-Printing",
}

var groupOrder = []string{
	"Record_Simple", "Record_Chain",
	"Named_10",
	"Modules_Nested",
	"Visualize_DOT",
	"Inspect_Visit", "Inspect_Sprint",
}

func main() {
	header := table.NewWriter()
	header.SetOutputMirror(os.Stdout)
	header.SetStyle(table.StyleDouble)
	header.AppendRow(table.Row{text.Colors{text.Bold, text.FgCyan}.Sprint("Spindle Recording Benchmark Suite")})
	header.Render()
	fmt.Println()

	benchDir := ".."
	if len(os.Args) > 1 && os.Args[1] != "--json" {
		benchDir = os.Args[1]
	}

	fmt.Println(text.Faint.Sprint("Running benchmarks..."))
	fmt.Println()

	cmd := exec.Command("go", "test", "-bench=.", "-benchmem", "-count=3", "-benchtime=100ms")
	cmd.Dir = benchDir
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "benchmark failed: %s\n", string(exitErr.Stderr))
		}
		os.Exit(1)
	}

	results := parseResults(output)
	grouped := groupResults(results)

	for _, key := range groupOrder {
		group, ok := grouped[key]
		if !ok {
			continue
		}
		renderGroup(key, group)
	}

	renderSummary(grouped)

	if len(os.Args) > 1 && os.Args[1] == "--json" {
		exportJSON(results)
	}
}

var benchLine = regexp.MustCompile(`^Benchmark(\w+)_(\w+)_(\w+)-\d+\s+(\d+)\s+([\d.]+) ns/op\s+(\d+) B/op\s+(\d+) allocs/op`)

// parseResults averages the -count repetitions of each benchmark.
func parseResults(output []byte) []BenchmarkResult {
	runs := make(map[string][]BenchmarkResult)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		matches := benchLine.FindStringSubmatch(scanner.Text())
		if matches == nil {
			continue
		}

		iterations, _ := strconv.ParseInt(matches[4], 10, 64)
		nsPerOp, _ := strconv.ParseFloat(matches[5], 64)
		bytesPerOp, _ := strconv.ParseInt(matches[6], 10, 64)
		allocsOp, _ := strconv.ParseInt(matches[7], 10, 64)

		name := matches[1] + "_" + matches[2] + "_" + matches[3]
		runs[name] = append(runs[name], BenchmarkResult{
			Name:       name,
			Category:   matches[1],
			Scenario:   matches[2],
			Framework:  matches[3],
			Iterations: iterations,
			NsPerOp:    nsPerOp,
			BytesPerOp: bytesPerOp,
			AllocsOp:   allocsOp,
		})
	}

	var results []BenchmarkResult
	for _, reps := range runs {
		if len(reps) == 0 {
			continue
		}

		var totalNs float64
		var totalBytes, totalAllocs int64
		for _, r := range reps {
			totalNs += r.NsPerOp
			totalBytes += r.BytesPerOp
			totalAllocs += r.AllocsOp
		}
		count := float64(len(reps))

		avg := reps[0]
		avg.NsPerOp = totalNs / count
		avg.BytesPerOp = int64(float64(totalBytes) / count)
		avg.AllocsOp = int64(float64(totalAllocs) / count)
		results = append(results, avg)
	}

	return results
}

func groupResults(results []BenchmarkResult) map[string][]BenchmarkResult {
	groups := make(map[string][]BenchmarkResult)
	for _, r := range results {
		key := r.Category + "_" + r.Scenario
		groups[key] = append(groups[key], r)
	}
	for _, group := range groups {
		sort.Slice(group, func(i, j int) bool {
			return group[i].NsPerOp < group[j].NsPerOp
		})
	}
	return groups
}

func renderGroup(key string, group []BenchmarkResult) {
	title := groupTitles[key]
	if title == "" {
		title = strings.ReplaceAll(key, "_", " ")
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle(title)
	tw.AppendHeader(table.Row{"Framework", "ns/op", "B/op", "allocs/op", ""})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "ns/op", Align: text.AlignRight},
		{Name: "B/op", Align: text.AlignRight},
		{Name: "allocs/op", Align: text.AlignRight},
	})

	fastest := group[0].NsPerOp
	for i, r := range group {
		name := r.Framework
		if colors, ok := frameworkColors[name]; ok {
			name = colors.Sprint(name)
		}

		note := text.FgGreen.Sprint("fastest")
		if i > 0 && fastest > 0 {
			note = text.Faint.Sprintf("%.1fx slower", r.NsPerOp/fastest)
		}

		tw.AppendRow(table.Row{
			name,
			formatNs(r.NsPerOp),
			fmt.Sprintf("%d B", r.BytesPerOp),
			r.AllocsOp,
			note,
		})
	}

	tw.Render()
	fmt.Println()
}

func renderSummary(grouped map[string][]BenchmarkResult) {
	wins := make(map[string]int)
	total := 0
	for _, group := range grouped {
		if len(group) > 0 {
			wins[group[0].Framework]++
			total++
		}
	}

	type standing struct {
		framework string
		wins      int
	}
	var standings []standing
	for framework, count := range wins {
		standings = append(standings, standing{framework, count})
	}
	sort.Slice(standings, func(i, j int) bool {
		return standings[i].wins > standings[j].wins
	})

	tw := table.NewWriter()
	tw.SetOutputMirror(os.Stdout)
	tw.SetStyle(table.StyleLight)
	tw.SetTitle("Summary")
	tw.AppendHeader(table.Row{"Framework", "Wins"})
	for _, s := range standings {
		name := s.framework
		if colors, ok := frameworkColors[name]; ok {
			name = colors.Sprint(name)
		}
		tw.AppendRow(table.Row{name, fmt.Sprintf("%d/%d", s.wins, total)})
	}
	tw.Render()

	fmt.Println()
	fmt.Println(text.Faint.Sprint("Frameworks compared:"))
	fmt.Println("  • Spindle    - this library (github.com/danpasecinic/spindle)")
	fmt.Println("  • samber/do  - generics-based DI (github.com/samber/do)")
	fmt.Println("  • uber/dig   - reflection-based DI (go.uber.org/dig)")
	fmt.Println("  • uber/fx    - full application framework (go.uber.org/fx)")
	fmt.Println()
}

func formatNs(ns float64) string {
	if ns >= 1_000_000 {
		return fmt.Sprintf("%.2f ms", ns/1_000_000)
	}
	if ns >= 1_000 {
		return fmt.Sprintf("%.2f µs", ns/1_000)
	}
	return fmt.Sprintf("%.0f ns", ns)
}

func exportJSON(results []BenchmarkResult) {
	output := struct {
		Benchmarks []BenchmarkResult `json:"benchmarks"`
	}{
		Benchmarks: results,
	}

	data, _ := json.MarshalIndent(output, "", "  ")
	_ = os.WriteFile("benchmark_results.json", data, 0644)
	fmt.Println(text.Faint.Sprint("Results exported to benchmark_results.json"))
}
