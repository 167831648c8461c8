package client

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-dataset-loader/models"
)

const (
	initialLineBuffer = 64 * 1024
	maxLineSize       = 16 * 1024 * 1024
)

var errNotAnObject = errors.New("expected a JSON object")

// ReadItems decodes one dataset item per line. A line holding a "data" key is
// a full item; any other object is used as the data of a manual item. Blank
// lines are skipped. The first bad line aborts reading.
func ReadItems(r io.Reader) ([]models.DatasetItem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialLineBuffer), maxLineSize)

	var items []models.DatasetItem
	line := 0
	for scanner.Scan() {
		line++
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		item, err := decodeItem(raw)
		if err != nil {
			return nil, fmt.Errorf("%w %d: %w", ErrInvalidLine, line, err)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading items: %w", err)
	}

	return items, nil
}

func decodeItem(raw []byte) (models.DatasetItem, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.DatasetItem{}, err
	}
	if fields == nil {
		return models.DatasetItem{}, errNotAnObject
	}

	if _, ok := fields["data"]; !ok {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.UseNumber()

		var data map[string]any
		if err := dec.Decode(&data); err != nil {
			return models.DatasetItem{}, err
		}
		return models.DatasetItem{Source: models.SourceManual, Data: data}, nil
	}

	// models.DatasetItem keeps numbers as json.Number on its own
	var item models.DatasetItem
	if err := json.Unmarshal(raw, &item); err != nil {
		return models.DatasetItem{}, err
	}
	if item.Source == "" {
		item.Source = models.SourceManual
	}
	return item, nil
}
