package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mikeschinkel/go-sqltemplater"
)

func writeTemplated(w io.Writer, tf *sqltemplater.TemplatedFile) {
	fmt.Fprint(w, tf.TemplatedStr)
	if !strings.HasSuffix(tf.TemplatedStr, "\n") {
		fmt.Fprintln(w)
	}
}

type jsonSlice struct {
	Type      sqltemplater.SliceType `json:"type"`
	Source    [2]int                 `json:"source"`
	Templated [2]int                 `json:"templated"`
	Raw       string                 `json:"raw"`
}

type jsonParameter struct {
	Name        sqltemplater.Identifier `json:"name"`
	Index       int                     `json:"index"`
	Replacement string                  `json:"replacement"`
	Occurrences int                     `json:"occurrences"`
}

type jsonResult struct {
	Filename   string          `json:"filename"`
	Source     string          `json:"source"`
	Templated  string          `json:"templated"`
	Slices     []jsonSlice     `json:"slices"`
	Parameters []jsonParameter `json:"parameters"`
}

func writeJSON(w io.Writer, tf *sqltemplater.TemplatedFile) error {
	raws := tf.RawSlices()
	out := jsonResult{
		Filename:   tf.Filename,
		Source:     tf.SourceStr,
		Templated:  tf.TemplatedStr,
		Slices:     make([]jsonSlice, 0, len(raws)),
		Parameters: make([]jsonParameter, 0),
	}
	for i, s := range tf.Slices() {
		out.Slices = append(out.Slices, jsonSlice{
			Type:      s.Type,
			Source:    [2]int{s.SourceSlice.Start, s.SourceSlice.End},
			Templated: [2]int{s.TemplatedSlice.Start, s.TemplatedSlice.End},
			Raw:       raws[i].Raw,
		})
	}
	for _, p := range tf.Parameters() {
		out.Parameters = append(out.Parameters, jsonParameter(p))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// writeSliceTable prints one row per slice: where it sits in each text and
// what it became.
func writeSliceTable(w io.Writer, tf *sqltemplater.TemplatedFile) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.SetTitle(tf.Filename)
	t.AppendHeader(table.Row{"#", "Type", "Source", "Templated", "Raw", "Output"})

	raws := tf.RawSlices()
	for i, s := range tf.Slices() {
		t.AppendRow(table.Row{
			i,
			s.Type,
			fmt.Sprintf("[%d,%d)", s.SourceSlice.Start, s.SourceSlice.End),
			fmt.Sprintf("[%d,%d)", s.TemplatedSlice.Start, s.TemplatedSlice.End),
			fmt.Sprintf("%q", raws[i].Raw),
			fmt.Sprintf("%q", tf.TemplatedStr[s.TemplatedSlice.Start:s.TemplatedSlice.End]),
		})
	}
	t.AppendFooter(table.Row{"", "", len(tf.SourceStr), len(tf.TemplatedStr), "", ""})
	t.Render()
}
