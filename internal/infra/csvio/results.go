package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

// ExportHeader is the column order of the results export.
var ExportHeader = []string{"name", "role", "company", "industry", "intent", "score", "reasoning"}

// WriteResults writes the export CSV in the order results are given.
// Rows end in \r\n. Reasoning must not carry \r, which csv readers fold away.
func WriteResults(w io.Writer, results []entity.ScoreResult) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true
	if err := cw.Write(ExportHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		row := []string{
			r.Name, r.Role, r.Company, r.Industry,
			string(r.Intent), strconv.Itoa(r.Score), r.Reasoning,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row for %q: %w", r.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
