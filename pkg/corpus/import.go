package corpus

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrymomot/devicekit/pkg/textmatch"
	"github.com/google/uuid"
)

// Column layout of the pipe-delimited corpus source, after the header row.
const (
	colID = iota
	colFullName
	colManufacturer
	colDeviceType
	colOperatingSystem
	colBands
	colLTE
	colFiveG
	colSIMSlots
	colEUICC

	sourceColumns = 10
)

// Name sentinels the registry uses for rows that identify nothing.
// Such rows are excluded at import time; the engine never sees them.
var excludedNames = map[string]struct{}{
	"":                 {},
	"not in signaling": {},
	"not known":        {},
}

// ImportResult describes one corpus import run. BatchID correlates the
// run with the caller's logs and any persisted provenance.
type ImportResult struct {
	BatchID  string
	Records  []Record
	Imported int
	Skipped  int
	Total    int
}

// Import reads a pipe-delimited corpus source with a header row and
// returns the records fit for resolution. Rows with an unusable name
// sentinel, a malformed identifier, or too few columns are counted as
// skipped rather than failing the import: the corpus is external data
// and a handful of bad rows must not take the snapshot down with them.
func Import(r io.Reader) (ImportResult, error) {
	res := ImportResult{BatchID: uuid.New().String()}
	if r == nil {
		return res, ErrInvalidSource
	}

	cr := csv.NewReader(r)
	cr.Comma = '|'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return res, errors.Join(ErrInvalidSource, err)
		}
		if header {
			header = false
			continue
		}

		res.Total++
		rec, ok := parseRow(row)
		if !ok {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
		res.Imported++
	}

	return res, nil
}

func parseRow(row []string) (Record, bool) {
	if len(row) < sourceColumns {
		return Record{}, false
	}
	if _, excluded := excludedNames[textmatch.Fold(row[colFullName])]; excluded {
		return Record{}, false
	}

	id, err := strconv.ParseInt(textmatch.Fold(row[colID]), 10, 64)
	if err != nil {
		return Record{}, false
	}

	slots, err := strconv.Atoi(textmatch.Fold(row[colSIMSlots]))
	if err != nil {
		slots = 0
	}

	return Record{
		ID:              id,
		FullName:        strings.TrimSpace(row[colFullName]),
		Manufacturer:    strings.TrimSpace(row[colManufacturer]),
		DeviceType:      strings.TrimSpace(row[colDeviceType]),
		OperatingSystem: strings.TrimSpace(row[colOperatingSystem]),
		Bands:           strings.TrimSpace(row[colBands]),
		LTESupport:      parseFlag(row[colLTE]),
		FiveGSupport:    parseFlag(row[colFiveG]),
		SIMSlotCount:    slots,
		EUICC:           parseFlag(row[colEUICC]),
	}, true
}

// parseFlag accepts the flag spellings seen in registry exports.
func parseFlag(s string) bool {
	switch textmatch.Fold(s) {
	case "1", "y", "yes", "true":
		return true
	default:
		return false
	}
}
