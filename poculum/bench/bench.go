// Package bench compares Poculum's wire size against a JSON baseline for a
// fixed battery of representative values (SPEC_FULL.md §6.4). It is a
// peripheral collaborator, not part of the codec: grounded on the
// teacher's cmd/bench/main.go (CaseResult struct, markdown summary
// writer), trimmed of the teacher's LLM-token-estimation concern, which
// has no analogue for a binary wire format.
package bench

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/poculum/poculum/poculum"
)

// CaseResult holds one benchmark case's byte-size comparison.
type CaseResult struct {
	Name         string
	JSONBytes    int
	PoculumBytes int
	BytesSaved   int
	BytesPct     float64
}

// Case is one named (Value, equivalent JSON-able) benchmark input.
type Case struct {
	Name  string
	Value poculum.Value
	JSON  any // the `any`-typed equivalent, marshaled with encoding/json
}

// DefaultCases returns the standard battery of representative values:
// scalars, short and long strings, nested containers, and a byte blob.
func DefaultCases() []Case {
	return []Case{
		{"null", poculum.Null(), nil},
		{"bool_true", poculum.Bool(true), true},
		{"small_uint", poculum.UInt(42), 42},
		{"large_uint", poculum.UInt(1 << 40), 1 << 40},
		{"negative_int", poculum.Int(-12345), -12345},
		{"float", poculum.Float(3.14159265), 3.14159265},
		{"short_string", poculum.String("hi"), "hi"},
		{
			"long_string",
			poculum.String("the quick brown fox jumps over the lazy dog, repeatedly, for a while"),
			"the quick brown fox jumps over the lazy dog, repeatedly, for a while",
		},
		{
			"nested_list",
			poculum.List(poculum.UInt(1), poculum.UInt(2), poculum.UInt(3), poculum.String("four")),
			[]any{1, 2, 3, "four"},
		},
		{
			"small_map",
			poculum.Map(
				poculum.Field("id", poculum.UInt(7)),
				poculum.Field("name", poculum.String("widget")),
				poculum.Field("active", poculum.Bool(true)),
			),
			map[string]any{"id": 7, "name": "widget", "active": true},
		},
		{
			"byte_blob",
			poculum.Bytes(make([]byte, 256)),
			make([]byte, 256), // json.Marshal base64-encodes []byte
		},
	}
}

// Run encodes each case with both Poculum and encoding/json and reports
// the byte-size delta.
func Run(cases []Case) ([]CaseResult, error) {
	results := make([]CaseResult, 0, len(cases))
	for _, c := range cases {
		poculumBytes, err := poculum.Encode(c.Value)
		if err != nil {
			return nil, fmt.Errorf("bench: encode case %q: %w", c.Name, err)
		}
		jsonBytes, err := json.Marshal(c.JSON)
		if err != nil {
			return nil, fmt.Errorf("bench: json.Marshal case %q: %w", c.Name, err)
		}

		saved := len(jsonBytes) - len(poculumBytes)
		pct := 0.0
		if len(jsonBytes) > 0 {
			pct = float64(saved) / float64(len(jsonBytes)) * 100.0
		}

		results = append(results, CaseResult{
			Name:         c.Name,
			JSONBytes:    len(jsonBytes),
			PoculumBytes: len(poculumBytes),
			BytesSaved:   saved,
			BytesPct:     pct,
		})
	}
	return results, nil
}

// WriteMarkdown writes a summary table in the teacher's markdown-report
// shape (cmd/bench/main.go's writeMarkdown), scoped to bytes only.
func WriteMarkdown(w io.Writer, results []CaseResult) {
	fmt.Fprintf(w, "# Poculum Benchmark Results\n\n")
	fmt.Fprintf(w, "| Case | JSON Bytes | Poculum Bytes | Saved | Saved %% |\n")
	fmt.Fprintf(w, "|------|-----------:|--------------:|------:|--------:|\n")

	var totalJSON, totalPoculum int
	for _, r := range results {
		fmt.Fprintf(w, "| %s | %d | %d | %d | %.1f%% |\n",
			r.Name, r.JSONBytes, r.PoculumBytes, r.BytesSaved, r.BytesPct)
		totalJSON += r.JSONBytes
		totalPoculum += r.PoculumBytes
	}

	totalSaved := totalJSON - totalPoculum
	totalPct := 0.0
	if totalJSON > 0 {
		totalPct = float64(totalSaved) / float64(totalJSON) * 100.0
	}
	fmt.Fprintf(w, "| **total** | %d | %d | %d | %.1f%% |\n", totalJSON, totalPoculum, totalSaved, totalPct)
}
