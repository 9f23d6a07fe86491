package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xavierca1/lead-scoring/internal/entity"
)

const utf8BOM = "\uFEFF"

// LeadColumns are the recognized upload columns. Others are ignored.
var LeadColumns = []string{"name", "role", "company", "industry", "location", "linkedin_bio"}

// LeadReader parses uploaded lead files.
type LeadReader struct{}

// ParseLeads reads a header-driven CSV. Missing columns become empty
// strings and every value is trimmed.
func (LeadReader) ParseLeads(r io.Reader) ([]entity.Lead, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []entity.Lead{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, utf8BOM)
		}
		// a repeated column name resolves to its last occurrence
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}

	leads := []entity.Lead{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(leads)+1, err)
		}

		get := func(col string) string {
			i, ok := index[col]
			if !ok || i >= len(record) {
				return ""
			}
			return record[i]
		}
		leads = append(leads, entity.NewLead(
			get("name"), get("role"), get("company"),
			get("industry"), get("location"), get("linkedin_bio"),
		))
	}
	return leads, nil
}
