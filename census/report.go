package census

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report is the final rendering of a census run. Counts stay exact
// integers; only the percentages are floating point.
type Report struct {
	// Totals are the merged counters of the run.
	Totals Totals
	// TotalDraws is C(bag total, hand size), the exact weighted
	// denominator.
	TotalDraws uint64
}

// Render writes the fixed-format text report. Integers are grouped with
// thousands separators; percentages carry four decimal places.
func (r *Report) Render(w io.Writer) error {
	p := message.NewPrinter(language.English)
	rawTotal := r.Totals.RawTotal()
	_, err := p.Fprintf(w,
		"------- Results --------\n"+
			"Total hands : %d\n"+
			"With valid  : %d %8.4f%%\n"+
			"No options  : %d %8.4f%%\n"+
			"------- Weighted -------\n"+
			"Total hands : %d\n"+
			"With valid  : %d %8.4f%%\n"+
			"No options  : %d %8.4f%%\n"+
			"------------------------\n",
		rawTotal,
		r.Totals.RawPlayable, pct(r.Totals.RawPlayable, rawTotal),
		r.Totals.RawDead, pct(r.Totals.RawDead, rawTotal),
		r.TotalDraws,
		r.Totals.WeightedPlayable, pct(r.Totals.WeightedPlayable, r.TotalDraws),
		r.Totals.WeightedDead, pct(r.Totals.WeightedDead, r.TotalDraws),
	)
	return err
}

type jsonBucket struct {
	Count      uint64  `json:"count"`
	Percentage float64 `json:"percentage"`
}

type jsonSection struct {
	TotalHands uint64     `json:"total_hands"`
	WithValid  jsonBucket `json:"with_valid"`
	NoOptions  jsonBucket `json:"no_options"`
}

type jsonReport struct {
	Results  jsonSection `json:"results"`
	Weighted jsonSection `json:"weighted"`
}

// RenderJSON writes the same figures as an indented JSON document.
func (r *Report) RenderJSON(w io.Writer) error {
	rawTotal := r.Totals.RawTotal()
	doc := jsonReport{
		Results: jsonSection{
			TotalHands: rawTotal,
			WithValid: jsonBucket{
				Count:      r.Totals.RawPlayable,
				Percentage: round4(pct(r.Totals.RawPlayable, rawTotal)),
			},
			NoOptions: jsonBucket{
				Count:      r.Totals.RawDead,
				Percentage: round4(pct(r.Totals.RawDead, rawTotal)),
			},
		},
		Weighted: jsonSection{
			TotalHands: r.TotalDraws,
			WithValid: jsonBucket{
				Count:      r.Totals.WeightedPlayable,
				Percentage: round4(pct(r.Totals.WeightedPlayable, r.TotalDraws)),
			},
			NoOptions: jsonBucket{
				Count:      r.Totals.WeightedDead,
				Percentage: round4(pct(r.Totals.WeightedDead, r.TotalDraws)),
			},
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}

func pct(count, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(count) / float64(total)
}

func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
