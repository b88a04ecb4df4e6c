package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/strycore/dojo-20130708/data"
	"github.com/strycore/dojo-20130708/matcher"
	"github.com/strycore/dojo-20130708/morse"
	"github.com/strycore/dojo-20130708/recompose"
)

const (
	maxWorkers   = 4
	maxArgs      = 2
	maxDecodings = 200000 // words with more readings are counted but not enumerated
	maxLineBytes = 1 << 20
)

type Stats struct {
	mu             sync.Mutex
	filesScanned   int
	wordsChecked   int
	roundTripOK    int
	roundTripFail  int
	skipped        int
	decodingCounts []float64
}

type fileState struct {
	path       string
	words      int
	ok         int
	fail       int
	skipped    int
	counts     []float64
	failLogged bool
}

func main() {
	if len(os.Args) > maxArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s [directory]\n", os.Args[0])
		os.Exit(1)
	}

	failures := checkExamples() + checkGolden()
	if failures > 0 {
		fmt.Fprintf(os.Stderr, "\n%d example checks failed\n", failures)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr, "Example checks passed")

	if len(os.Args) < maxArgs {
		return
	}

	dirPath := os.Args[1]
	stats := &Stats{}

	var filePaths []string
	err := filepath.WalkDir(dirPath, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		filePaths = append(filePaths, path)
		return nil
	})

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(filePaths))
	start := time.Now()

	semaphore := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup

	for _, path := range filePaths {
		wg.Add(1)
		semaphore <- struct{}{}
		go func(p string) {
			defer wg.Done()
			defer func() { <-semaphore }()
			processFile(p, stats)
		}(path)
	}

	wg.Wait()

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)

	if stats.roundTripFail > 0 {
		os.Exit(1)
	}
}

// checkExamples verifies the documented behavior on literal inputs and
// returns the number of failed checks.
func checkExamples() int {
	failures := 0
	check := func(name string, ok bool, detail string) {
		if !ok {
			failures++
			fmt.Fprintf(os.Stderr, "EXAMPLE_FAIL: %s: %s\n", name, detail)
		}
	}

	c := matcher.Match(".-")
	check("match", c.Quadruple(0).String() == "(e a _ _)" && c.Quadruple(1).String() == "(t _ _ _)",
		fmt.Sprintf("got %s", c))
	check("match length", len(c) == 8, fmt.Sprintf("got %d candidates, want 8", len(c)))

	var windows []string
	for w := range matcher.Windows(".--.--..") {
		windows = append(windows, w)
	}
	wantWindows := []string{".--.", "--.-", "-.--", ".--.", "--.."}
	check("windows", slices.Equal(windows, wantWindows), fmt.Sprintf("got %q, want %q", windows, wantWindows))

	q, err := matcher.Decompose(".--.")
	check("decompose", err == nil && q.String() == "(e a w p)", fmt.Sprintf("got %v, %v", q, err))

	for _, tc := range []struct {
		input string
		want  []string
	}{
		{".-", []string{"a", "et"}},
		{".-.", []string{"ae", "en", "ete", "r"}},
		{"", []string{""}},
	} {
		segs, err := morse.DecodeAll(tc.input)
		got := recompose.Strings(segs)
		check("decode "+tc.input, err == nil && slices.Equal(got, tc.want),
			fmt.Sprintf("got %q, %v; want %q", got, err, tc.want))
	}

	segs, err := morse.DecodeAll("...---...")
	check("decode sos", err == nil && slices.Contains(recompose.Strings(segs), "sos"),
		fmt.Sprintf("%d results, %v", len(segs), err))

	_, err = morse.DecodeAll(".x-")
	check("malformed", morse.Classify(err) == morse.CodeMalformed, fmt.Sprintf("got %v", err))

	prefixes, err := morse.New().Prefixes(".-.")
	wantPrefixes := []string{"a", "ae", "e", "en", "et", "ete", "r"}
	check("prefixes", err == nil && slices.Equal(recompose.Strings(prefixes), wantPrefixes),
		fmt.Sprintf("got %q, %v", recompose.Strings(prefixes), err))

	return failures
}

type goldenCase struct {
	Name         string   `json:"name"`
	Input        string   `json:"input"`
	WantError    string   `json:"want_error"`
	WantCount    int      `json:"want_count"`
	Want         []string `json:"want"`
	WantContains []string `json:"want_contains"`
}

// checkGolden replays the embedded golden cases and returns the number of
// failed cases.
func checkGolden() int {
	var cases []goldenCase
	if err := json.Unmarshal(data.GoldenMorse, &cases); err != nil {
		fmt.Fprintf(os.Stderr, "GOLDEN_FAIL: parsing embedded cases: %v\n", err)
		return 1
	}

	failures := 0
	for _, tc := range cases {
		segs, err := morse.DecodeAll(tc.Input)
		got := recompose.Strings(segs)

		var reason string
		switch {
		case tc.WantError != "":
			if code := string(morse.Classify(err)); code != tc.WantError {
				reason = fmt.Sprintf("error class %q, want %q", code, tc.WantError)
			}
		case err != nil:
			reason = err.Error()
		case len(got) != tc.WantCount:
			reason = fmt.Sprintf("%d decodings, want %d", len(got), tc.WantCount)
		case tc.Want != nil && !slices.Equal(got, tc.Want):
			reason = fmt.Sprintf("got %q, want %q", got, tc.Want)
		}
		for _, w := range tc.WantContains {
			if reason == "" && !slices.Contains(got, w) {
				reason = fmt.Sprintf("missing %q", w)
			}
		}

		if reason != "" {
			failures++
			fmt.Fprintf(os.Stderr, "GOLDEN_FAIL: %s: %s\n", tc.Name, reason)
		}
	}
	return failures
}

func processFile(path string, stats *Stats) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %s: %v\n", path, err)
		return
	}
	defer func() { _ = f.Close() }()

	fmt.Fprintf(os.Stderr, "START %s\n", path)
	fileStart := time.Now()

	state := &fileState{path: path}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)
	for sc.Scan() {
		state.processLine(sc.Text())
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
	}

	fmt.Fprintf(os.Stderr, "DONE  %s in %s (%d words)\n",
		filepath.Base(path), time.Since(fileStart).Round(time.Millisecond), state.words)

	mergeFileState(state, stats)
}

// processLine encodes each ASCII word of line and checks that decoding the
// code yields the word back.
func (fs *fileState) processLine(line string) {
	words := strings.FieldsFunc(line, func(r rune) bool {
		return !('a' <= r && r <= 'z' || 'A' <= r && r <= 'Z')
	})

	for _, word := range words {
		fs.words++
		code, err := morse.Encode(word)
		if err != nil {
			fs.recordFailure(word, code, err.Error())
			continue
		}

		n, err := morse.Count(code)
		if err != nil {
			fs.recordFailure(word, code, err.Error())
			continue
		}
		if !n.IsInt64() || n.Int64() > maxDecodings {
			fs.skipped++
			continue
		}
		fs.counts = append(fs.counts, float64(n.Int64()))

		segs, err := morse.DecodeAll(code)
		if err != nil {
			fs.recordFailure(word, code, err.Error())
			continue
		}
		if int64(len(segs)) != n.Int64() {
			fs.recordFailure(word, code, fmt.Sprintf("count %s, decoded %d", n, len(segs)))
			continue
		}
		if !slices.Contains(recompose.Strings(segs), strings.ToLower(word)) {
			fs.recordFailure(word, code, "word missing from decodings")
			continue
		}
		fs.ok++
	}
}

func (fs *fileState) recordFailure(word, code, reason string) {
	fs.fail++
	if !fs.failLogged {
		fmt.Fprintf(os.Stderr, "ROUNDTRIP_FAIL: %s: %q (%s): %s\n", fs.path, word, code, reason)
		fs.failLogged = true
	}
}

func mergeFileState(fs *fileState, stats *Stats) {
	stats.mu.Lock()
	defer stats.mu.Unlock()

	stats.filesScanned++
	stats.wordsChecked += fs.words
	stats.roundTripOK += fs.ok
	stats.roundTripFail += fs.fail
	stats.skipped += fs.skipped
	stats.decodingCounts = append(stats.decodingCounts, fs.counts...)
}

func computeMedian(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2 //nolint:mnd // arithmetic mean of two middle values
	}
	return sorted[mid]
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Words checked:           %d\n", stats.wordsChecked)
	fmt.Printf("Round trip OK:           %d\n", stats.roundTripOK)
	fmt.Printf("Round trip FAIL:         %d\n", stats.roundTripFail)
	fmt.Printf("Skipped (> %d):      %d\n", maxDecodings, stats.skipped)
	fmt.Printf("Median decodings/word:   %.1f\n", computeMedian(stats.decodingCounts))
}
