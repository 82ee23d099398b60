package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/darrylwongqz/ai-text-editor/internal/transform"
)

type transformRequest struct {
	Text           string `json:"text"`
	Action         string `json:"action"`
	TargetLanguage string `json:"target_language,omitempty"`
}

type transformResponse struct {
	TransformedText string `json:"transformed_text"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type result struct {
	Sample   string `json:"sample"`
	Action   string `json:"action"`
	Chars    int    `json:"chars"`
	Run      int    `json:"run"`
	WallMs   int64  `json:"wall_ms"`
	OutChars int    `json:"out_chars"`
	Output   string `json:"-"`
	Error    string `json:"error,omitempty"`
}

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	styleTitle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleOK    = lipgloss.NewStyle().Foreground(colorSuccess)
	styleFail  = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
)

type runner struct {
	client  *http.Client
	baseURL string
	apiKey  string
	lang    string
}

func main() {
	url := flag.String("url", "http://localhost:8080", "API base URL")
	apiKey := flag.String("api-key", "", "API key (optional)")
	runs := flag.Int("runs", 3, "Number of runs per sample and action")
	actions := flag.String("actions", "all", "Comma-separated actions to run, or \"all\"")
	lang := flag.String("lang", "spanish", "Target language for translate")
	quality := flag.Bool("quality", false, "Quality mode: show input/output for each sample (1 run, no timing table)")
	jsonOut := flag.String("json", "", "Write results to JSON file (e.g. results.json)")
	warmup := flag.Bool("warmup", false, "Run one warmup request per sample before measuring")
	flag.Parse()

	selected, err := parseActions(*actions)
	if err != nil {
		fmt.Fprintln(os.Stderr, styleFail.Render("Error: "+err.Error()))
		os.Exit(2)
	}

	r := &runner{
		client:  &http.Client{Timeout: 180 * time.Second},
		baseURL: strings.TrimRight(*url, "/"),
		apiKey:  *apiKey,
		lang:    *lang,
	}

	if *quality {
		if failures := r.runQualityMode(selected); failures > 0 {
			os.Exit(1)
		}
		return
	}

	fmt.Println(styleTitle.Render(fmt.Sprintf("Benchmarking %s (%d runs per sample and action)", r.baseURL, *runs)))

	var results []result
	var failures int
	for _, sample := range Samples {
		for _, action := range selected {
			if *warmup {
				w := r.transform(sample, action, 0)
				if w.Error != "" {
					fmt.Printf("  warmup %s/%s %s\n", sample.Name, action, styleFail.Render("FAILED ("+w.Error+")"))
				}
			}
			for run := 1; run <= *runs; run++ {
				fmt.Printf("  %s/%s (run %d/%d)...", sample.Name, action, run, *runs)
				res := r.transform(sample, action, run)
				results = append(results, res)
				if res.Error != "" {
					fmt.Println(" " + styleFail.Render("FAILED ("+res.Error+")"))
					failures++
				} else {
					fmt.Println(" " + styleOK.Render(fmt.Sprintf("%dms", res.WallMs)))
				}
			}
		}
	}

	fmt.Println()
	printTable(results)
	printSummary(results)

	if *jsonOut != "" {
		if err := writeJSON(*jsonOut, results, r.baseURL); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing JSON: %v\n", err)
		} else {
			fmt.Printf("\nResults written to %s\n", *jsonOut)
		}
	}

	if failures > 0 {
		os.Exit(1)
	}
}

func parseActions(s string) ([]transform.Action, error) {
	if s == "" || s == "all" {
		return transform.Actions, nil
	}
	var out []transform.Action
	for _, name := range strings.Split(s, ",") {
		a, err := transform.ParseAction(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *runner) transform(sample Sample, action transform.Action, run int) result {
	res := result{Sample: sample.Name, Action: string(action), Chars: len(sample.Text), Run: run}

	body := transformRequest{Text: sample.Text, Action: string(action)}
	if action == transform.Translate {
		body.TargetLanguage = r.lang
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequest(http.MethodPost, r.baseURL+"/api/transform", bytes.NewReader(payload))
	if err != nil {
		res.Error = err.Error()
		return res
	}
	req.Header.Set("Content-Type", "application/json")
	if r.apiKey != "" {
		req.Header.Set("X-API-Key", r.apiKey)
	}

	start := time.Now()
	resp, err := r.client.Do(req)
	res.WallMs = time.Since(start).Milliseconds()
	if err != nil {
		res.Error = err.Error()
		return res
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var er errorResponse
		if json.Unmarshal(raw, &er) == nil && er.Message != "" {
			res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, er.Message)
		} else {
			res.Error = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
		}
		return res
	}

	var tr transformResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Output = tr.TransformedText
	res.OutChars = len(tr.TransformedText)
	return res
}

func printTable(results []result) {
	fmt.Println("| Sample | Action     | Chars | Run | Wall (ms) | Out Chars | Ratio |")
	fmt.Println("|--------|------------|-------|-----|-----------|-----------|-------|")
	for _, r := range results {
		if r.Error != "" {
			fmt.Printf("| %-6s | %-10s | %5d | %3d | %9s | %9s | %5s |\n",
				r.Sample, r.Action, r.Chars, r.Run, "FAIL", "-", "-")
			continue
		}
		ratio := float64(r.OutChars) / float64(r.Chars)
		fmt.Printf("| %-6s | %-10s | %5d | %3d | %9d | %9d | %5.2f |\n",
			r.Sample, r.Action, r.Chars, r.Run, r.WallMs, r.OutChars, ratio)
	}
}

func (r *runner) runQualityMode(actions []transform.Action) int {
	fmt.Println(styleTitle.Render("Quality test against " + r.baseURL))
	fmt.Println(strings.Repeat("=", 72))

	total := len(QualitySamples) * len(actions)
	var failures, n int
	for _, sample := range QualitySamples {
		for _, action := range actions {
			n++
			fmt.Printf("\n--- %d/%d: %s / %s (%d chars) ---\n", n, total, sample.Name, action, len(sample.Text))
			fmt.Println(styleMuted.Render("IN:  " + sample.Text))

			res := r.transform(sample, action, 1)
			if res.Error != "" {
				fmt.Println(styleFail.Render("ERR: " + res.Error))
				failures++
				continue
			}
			fmt.Printf("OUT: %s\n", res.Output)
			fmt.Println(styleMuted.Render(fmt.Sprintf("     [%dms, %d->%d chars]", res.WallMs, res.Chars, res.OutChars)))
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 72))
	summary := fmt.Sprintf("Done: %d/%d passed", total-failures, total)
	if failures > 0 {
		fmt.Println(styleFail.Render(summary))
	} else {
		fmt.Println(styleOK.Render(summary))
	}
	return failures
}

func printSummary(results []result) {
	var ok []result
	for _, r := range results {
		if r.Error == "" {
			ok = append(ok, r)
		}
	}

	failed := len(results) - len(ok)

	if len(ok) == 0 {
		fmt.Println(styleFail.Render(fmt.Sprintf("\nSummary: all %d runs failed", len(results))))
		return
	}

	perAction := make(map[string][]int64)
	var order []string
	minRun, maxRun := ok[0], ok[0]
	for _, r := range ok {
		if _, seen := perAction[r.Action]; !seen {
			order = append(order, r.Action)
		}
		perAction[r.Action] = append(perAction[r.Action], r.WallMs)
		if r.WallMs < minRun.WallMs {
			minRun = r
		}
		if r.WallMs > maxRun.WallMs {
			maxRun = r
		}
	}

	fmt.Println(styleTitle.Render("\nSummary:"))
	for _, action := range order {
		var sum int64
		for _, ms := range perAction[action] {
			sum += ms
		}
		fmt.Printf("- %-10s avg %dms over %d runs\n", action, sum/int64(len(perAction[action])), len(perAction[action]))
	}
	fmt.Printf("- Min wall: %dms (%s/%s)\n", minRun.WallMs, minRun.Sample, minRun.Action)
	fmt.Printf("- Max wall: %dms (%s/%s)\n", maxRun.WallMs, maxRun.Sample, maxRun.Action)
	fmt.Printf("- Total runs: %d (%d ok, %d failed)\n", len(results), len(ok), failed)
}

type jsonReport struct {
	Timestamp string   `json:"timestamp"`
	URL       string   `json:"url"`
	Results   []result `json:"results"`
}

func writeJSON(path string, results []result, baseURL string) error {
	report := jsonReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		URL:       baseURL,
		Results:   results,
	}
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
