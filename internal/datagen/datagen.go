// Package datagen compiles the trait spreadsheet export into the data
// document the catalog loads.
package datagen

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strings"

	"github.com/KirkDiggler/op-character-creator/internal/entities"
	"github.com/KirkDiggler/op-character-creator/internal/errors"
)

// SchemaVersion is written to every compiled document
const SchemaVersion = "0.0.1"

// headerRows is the number of leading spreadsheet rows that hold titles
const headerRows = 2

// DefaultTraits returns the fixed trait definitions. A trait's ID is also
// the spreadsheet column its values are read from.
func DefaultTraits() []*entities.Trait {
	return []*entities.Trait{
		{ID: 1, Code: entities.TraitFacial, Title: "Hair & Facial Features", Sentence: "They have %XXX%."},
		{ID: 2, Code: entities.TraitBody, Title: "Body, Clothes, or Accessories", Sentence: "They don %XXX%."},
		{ID: 3, Code: entities.TraitPersonality, Title: "Personality Quirk", Sentence: "They are %XXX%."},
		{ID: 4, Code: entities.TraitVoice, Title: "Voice or Vocal Quirk", Sentence: "Their voice is %XXX%."},
		{ID: 5, Code: entities.TraitWeapon, Title: "Weaponry", Sentence: "They attack using %XXX%."},
	}
}

// Compile reads the CSV export and builds a document. Rows are read left
// to right, values get sequential ids from 1 and blank cells are skipped.
// Returns errors.InvalidArgument when the input is not valid CSV
func Compile(r io.Reader) (*entities.Document, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	traits := DefaultTraits()
	doc := &entities.Document{
		Meta:        entities.DocumentMeta{DataSchemaVersion: SchemaVersion},
		Traits:      traits,
		TraitValues: []*entities.TraitValue{},
	}

	nextID := 1
	for row := 0; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse csv")
		}
		if row < headerRows {
			continue
		}

		for _, trait := range traits {
			if trait.ID >= len(record) {
				continue
			}
			cell := record[trait.ID]
			if strings.TrimSpace(cell) == "" {
				continue
			}
			doc.TraitValues = append(doc.TraitValues, &entities.TraitValue{
				ID:        nextID,
				TraitCode: trait.Code,
				Value:     cell,
			})
			nextID++
		}
	}

	return doc, nil
}

// Renumber rewrites the trait value ids sequentially from 1 in document
// order and returns how many were renumbered
func Renumber(doc *entities.Document) int {
	if doc == nil {
		return 0
	}

	n := 0
	for _, tv := range doc.TraitValues {
		if tv == nil {
			continue
		}
		n++
		tv.ID = n
	}
	return n
}

// Encode writes doc as compact JSON
func Encode(w io.Writer, doc *entities.Document) error {
	if doc == nil {
		return errors.InvalidArgument("document is required")
	}
	if err := json.NewEncoder(w).Encode(doc); err != nil {
		return errors.Wrap(err, "failed to encode document")
	}
	return nil
}

// Decode reads a document written by Encode
// Returns errors.DataLoss for malformed JSON
func Decode(r io.Reader) (*entities.Document, error) {
	var doc entities.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "malformed data document")
	}
	return &doc, nil
}
