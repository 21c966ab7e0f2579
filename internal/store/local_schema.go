package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Collection names of the local store.
const (
	CollectionDecks     = "decks"
	CollectionCards     = "cards"
	CollectionSyncQueue = "syncQueue"
)

// Index names used by the local data service.
const (
	IndexUserID   = "userId"
	IndexDeckID   = "deckId"
	IndexEntityID = "entityId"
)

// Schema describes one collection: the JSON field holding the record key,
// the fields that must be present and non-empty, and the fields that are
// indexed for lookups.
type Schema struct {
	Name     string
	Key      string
	Required []string
	Indexes  []string
}

// DefaultSchemas returns the collections used by decks, cards and the sync
// queue.
func DefaultSchemas() []Schema {
	return []Schema{
		{
			Name:     CollectionDecks,
			Key:      "id",
			Required: []string{"id", "userId", "title"},
			Indexes:  []string{IndexUserID},
		},
		{
			Name:     CollectionCards,
			Key:      "id",
			Required: []string{"id", "deckId", "userId", "title"},
			Indexes:  []string{IndexDeckID, IndexUserID},
		},
		{
			Name:     CollectionSyncQueue,
			Key:      "id",
			Required: []string{"id", "entityType", "entityId", "operation"},
			Indexes:  []string{IndexEntityID},
		},
	}
}

func (s Schema) hasIndex(name string) bool {
	for _, idx := range s.Indexes {
		if idx == name {
			return true
		}
	}
	return false
}

// encodedRecord is a validated record ready to be written.
type encodedRecord struct {
	id      string
	data    []byte
	indexes map[string]string
}

// encode converts record to JSON, validates it against the schema and
// extracts its key and index values.
func (s Schema) encode(record any) (encodedRecord, error) {
	data, err := marshalRecord(record)
	if err != nil {
		return encodedRecord{}, fmt.Errorf("%w: collection %s: %w", ErrEncodingRecord, s.Name, err)
	}

	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err = dec.Decode(&fields); err != nil {
		return encodedRecord{}, fmt.Errorf("%w: collection %s: record is not a JSON object: %w", ErrValidation, s.Name, err)
	}

	for _, name := range s.Required {
		if _, ok := fieldValue(fields, name); !ok {
			return encodedRecord{}, fmt.Errorf("%w: collection %s: field %q is required", ErrValidation, s.Name, name)
		}
	}

	id, ok := fieldValue(fields, s.Key)
	if !ok || id == "" {
		return encodedRecord{}, fmt.Errorf("%w: collection %s: key field %q is required", ErrValidation, s.Name, s.Key)
	}

	indexes := make(map[string]string, len(s.Indexes))
	for _, name := range s.Indexes {
		if value, ok := fieldValue(fields, name); ok && value != "" {
			indexes[name] = value
		}
	}

	return encodedRecord{id: id, data: data, indexes: indexes}, nil
}

func marshalRecord(record any) ([]byte, error) {
	switch r := record.(type) {
	case json.RawMessage:
		return r, nil
	case []byte:
		return r, nil
	default:
		return json.Marshal(record)
	}
}

// fieldValue returns the string form of a scalar field. Missing, null and
// empty string values report false.
func fieldValue(fields map[string]any, name string) (string, bool) {
	raw, ok := fields[name]
	if !ok || raw == nil {
		return "", false
	}

	switch v := raw.(type) {
	case string:
		return v, v != ""
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		// objects and arrays still satisfy "required"; they are not indexable
		return "", true
	}
}
