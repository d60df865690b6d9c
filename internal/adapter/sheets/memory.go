package sheets

import (
	"context"
	"fmt"
	"sync"
)

type memoryKey struct {
	source    string
	worksheet string
}

// MemorySource is an in-process ports.SheetSource. It backs tests and runs
// without credentials.
type MemorySource struct {
	mu     sync.Mutex
	sheets map[memoryKey][][]any
	err    error
}

func NewMemorySource() *MemorySource {
	return &MemorySource{sheets: make(map[memoryKey][][]any)}
}

// Seed replaces the contents of one worksheet.
func (m *MemorySource) Seed(sourceID, worksheet string, values [][]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sheets[memoryKey{ParseSheetID(sourceID), worksheet}] = copyGrid(values)
}

// FailWith makes every subsequent call return err; nil restores normal
// operation.
func (m *MemorySource) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MemorySource) ReadAll(_ context.Context, sourceID, worksheet string) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	values, ok := m.sheets[memoryKey{ParseSheetID(sourceID), worksheet}]
	if !ok {
		return nil, fmt.Errorf("%s: %w", sourceID, ErrSheetNotFound)
	}
	return copyGrid(values), nil
}

func (m *MemorySource) AppendRow(_ context.Context, sourceID, worksheet string, row []any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	key := memoryKey{ParseSheetID(sourceID), worksheet}
	values, ok := m.sheets[key]
	if !ok {
		return fmt.Errorf("%s: %w", sourceID, ErrSheetNotFound)
	}
	line := make([]any, len(row))
	copy(line, row)
	m.sheets[key] = append(values, line)
	return nil
}

func (m *MemorySource) ReplaceAll(_ context.Context, sourceID, worksheet string, values [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sheets[memoryKey{ParseSheetID(sourceID), worksheet}] = copyGrid(values)
	return nil
}

func (m *MemorySource) Ping(context.Context) error { return nil }

func (m *MemorySource) Name() string { return "sheets" }

func copyGrid(values [][]any) [][]any {
	out := make([][]any, len(values))
	for i, row := range values {
		out[i] = make([]any, len(row))
		copy(out[i], row)
	}
	return out
}
