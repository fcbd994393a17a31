package renderer

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	md "github.com/nao1215/markdown"
	"github.com/smartviews/pos"
)

// barWidth is the width of the busiest day's bar.
const barWidth = 20

// Revenue renders the daily revenue series as a table with a text bar per
// day, scaled to the busiest day.
func Revenue(buckets []pos.RevenueBucket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Revenue (%d days)", len(buckets)))

	var max pos.Money
	for _, b := range buckets {
		if b.Total.GreaterThan(max) {
			max = b.Total
		}
	}

	table := md.TableSet{
		Header: []string{"Day", "Revenue", ""},
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignLeft,
		},
	}
	for _, b := range buckets {
		n := int(math.Round(b.Total.Ratio(max) * barWidth))
		table.Rows = append(table.Rows, []string{
			b.Day.Format("01-02"),
			b.Total.String(),
			strings.Repeat("█", n),
		})
	}
	doc.Table(table)

	return doc.String()
}
