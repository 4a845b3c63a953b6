package renderer

import (
	"bytes"
	"strconv"

	md "github.com/nao1215/markdown"

	"tickerwatch"
)

// SummaryMarkdown renders the price statistics of one fetch operation.
func SummaryMarkdown(s tickerwatch.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H2("Summary")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{
			md.Bold("Count"),
			md.Bold(strconv.Itoa(s.Count)),
		},
		Rows: [][]string{
			{"Min", s.Min.String()},
			{"Max", s.Max.String()},
			{"Avg", s.Avg.String()},
		},
	})

	return doc.String()
}
