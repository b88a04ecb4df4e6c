package morse

import (
	"encoding/json"
	"flag"
	"os"
	"slices"
	"testing"

	"github.com/strycore/dojo-20130708/recompose"
)

var updateGolden = flag.Bool("update", false, "regenerate golden test files")

// goldenCase is one decoding pinned in the golden file. Want lists every
// decoding for small inputs; larger ones pin only the count and a few words.
type goldenCase struct {
	Name         string   `json:"name"`
	Input        string   `json:"input"`
	WantError    string   `json:"want_error,omitempty"`
	WantCount    int      `json:"want_count"`
	Want         []string `json:"want,omitempty"`
	WantContains []string `json:"want_contains,omitempty"`
}

const (
	goldenPath = "../data/golden/morse.json"
	maxListed  = 32
)

func TestGolden(t *testing.T) {
	if *updateGolden {
		updateGoldenFile(t)
		return
	}

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Skip("morse.json not found, run with -update to generate")
		}
		t.Fatalf("reading golden file: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file: %v", err)
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			segs, err := DecodeAll(tc.Input)
			if tc.WantError != "" {
				if got := string(Classify(err)); got != tc.WantError {
					t.Fatalf("DecodeAll(%q) error class = %q (%v), want %q", tc.Input, got, err, tc.WantError)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeAll(%q): %v", tc.Input, err)
			}

			got := recompose.Strings(segs)
			if len(got) != tc.WantCount {
				t.Errorf("DecodeAll(%q) returned %d segmentations, want %d", tc.Input, len(got), tc.WantCount)
			}
			if tc.Want != nil && !slices.Equal(got, tc.Want) {
				t.Errorf("DecodeAll(%q) mismatch:\n  got  %q\n  want %q", tc.Input, got, tc.Want)
			}
			for _, w := range tc.WantContains {
				if !slices.Contains(got, w) {
					t.Errorf("DecodeAll(%q) is missing %q", tc.Input, w)
				}
			}

			n, err := Count(tc.Input)
			if err != nil {
				t.Fatalf("Count(%q): %v", tc.Input, err)
			}
			if !n.IsInt64() || n.Int64() != int64(tc.WantCount) {
				t.Errorf("Count(%q) = %s, want %d", tc.Input, n, tc.WantCount)
			}
		})
	}
}

func updateGoldenFile(t *testing.T) {
	t.Helper()

	data, err := os.ReadFile(goldenPath)
	if err != nil {
		t.Fatalf("reading golden file for update: %v", err)
	}

	var cases []goldenCase
	if err := json.Unmarshal(data, &cases); err != nil {
		t.Fatalf("parsing golden file for update: %v", err)
	}

	for i := range cases {
		tc := &cases[i]
		tc.WantError, tc.WantCount, tc.Want = "", 0, nil

		segs, err := DecodeAll(tc.Input)
		if err != nil {
			tc.WantError = string(Classify(err))
			continue
		}
		tc.WantCount = len(segs)
		if len(segs) <= maxListed {
			tc.Want = recompose.Strings(segs)
		}
	}

	out, err := json.MarshalIndent(cases, "", "  ")
	if err != nil {
		t.Fatalf("marshaling golden data: %v", err)
	}

	out = append(out, '\n')

	if err := os.WriteFile(goldenPath, out, 0644); err != nil {
		t.Fatalf("writing golden file: %v", err)
	}

	t.Log("golden file updated, review with: git diff data/golden/morse.json")
}
