package parser

import "github.com/roowe/xlsx2json-go/pkg/xlsx2json/models"

// Partition projects the columns visible to target ("s" or "c") into an output document.
// A column is visible when its mark is "b" or equals target. Column order is preserved.
func Partition(schema *models.Schema, rows []models.Row, target string) *models.OutputDocument {
	var indices []int
	for i, mark := range schema.Marks {
		if mark == models.MarkBoth || mark == target {
			indices = append(indices, i)
		}
	}

	doc := &models.OutputDocument{
		Headers: make([]string, 0, len(indices)),
		Types:   make([]string, 0, len(indices)),
		Data:    make([]models.Row, 0, len(rows)),
	}
	for _, idx := range indices {
		doc.Headers = append(doc.Headers, schema.Headers[idx])
		doc.Types = append(doc.Types, schema.Types[idx])
	}
	for _, row := range rows {
		filtered := make(models.Row, len(indices))
		for k, idx := range indices {
			filtered[k] = row[idx]
		}
		doc.Data = append(doc.Data, filtered)
	}

	return doc
}
