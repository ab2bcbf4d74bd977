package store

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRecords is an insertion-ordered, in-process Records used by the
// handler tests. It mirrors the store semantics the controllers rely on:
// first-match update/delete, cross-type numeric equality, and duplicate-key
// rejection on uniquely indexed fields.
type MemoryRecords struct {
	mu     sync.RWMutex
	docs   []bson.M
	unique []string
}

func NewMemoryRecords() *MemoryRecords {
	return &MemoryRecords{}
}

// toDoc normalizes any insertable value (model struct or bson.M) into the
// stored document form by a bson round trip.
func toDoc(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// equalValues matches the store's equality: numbers compare across integer
// and floating types, everything else compares structurally.
func equalValues(a, b interface{}) bool {
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	return reflect.DeepEqual(a, b)
}

func (m *MemoryRecords) All(ctx context.Context) ([]bson.M, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]bson.M, 0, len(m.docs))
	for _, d := range m.docs {
		copied, err := toDoc(d)
		if err != nil {
			return nil, err
		}
		out = append(out, copied)
	}
	return out, nil
}

func (m *MemoryRecords) Insert(ctx context.Context, doc interface{}) (interface{}, error) {
	stored, err := toDoc(doc)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, field := range m.unique {
		val, ok := stored[field]
		if !ok {
			continue
		}
		for _, d := range m.docs {
			if equalValues(d[field], val) {
				return nil, fmt.Errorf("duplicate key error: index %s_1 dup key: %v", field, val)
			}
		}
	}

	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, stored)
	return stored["_id"], nil
}

func (m *MemoryRecords) FindBy(ctx context.Context, field string, value interface{}, out interface{}) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, d := range m.docs {
		if equalValues(d[field], value) {
			raw, err := bson.Marshal(d)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}
	return ErrNoRecord
}

func (m *MemoryRecords) CountBy(ctx context.Context, field string, value interface{}) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var n int64
	for _, d := range m.docs {
		if equalValues(d[field], value) {
			n++
		}
	}
	return n, nil
}

func (m *MemoryRecords) UpdateFirst(ctx context.Context, field string, value interface{}, fields bson.M) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.docs {
		if equalValues(d[field], value) {
			for k, v := range fields {
				d[k] = v
			}
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MemoryRecords) DeleteFirst(ctx context.Context, field string, value interface{}) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, d := range m.docs {
		if equalValues(d[field], value) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MemoryRecords) EnsureUniqueIndex(ctx context.Context, field string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, f := range m.unique {
		if f == field {
			return nil
		}
	}
	m.unique = append(m.unique, field)
	return nil
}
