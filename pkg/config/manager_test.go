package config

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSection is a test implementation of the Section interface
type mockSection struct {
	id          string
	data        map[string]interface{}
	validateErr error
	setErr      error
	resets      int
}

func (m *mockSection) ID() string                   { return m.id }
func (m *mockSection) Title() string                { return "Mock " + m.id }
func (m *mockSection) Description() string          { return "" }
func (m *mockSection) Data() map[string]interface{} { return m.data }
func (m *mockSection) Validate() error              { return m.validateErr }
func (m *mockSection) Reset()                       { m.resets++; m.data = nil }

func (m *mockSection) SetData(data map[string]interface{}) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data = data
	return nil
}

// mockStore is a test implementation of the Store interface
type mockStore struct {
	sections map[string]map[string]interface{}
	loadErr  error
	saveErr  error
	saves    int
}

func newMockStore() *mockStore {
	return &mockStore{sections: make(map[string]map[string]interface{})}
}

func (m *mockStore) Load() error { return m.loadErr }

func (m *mockStore) Save() error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	return nil
}

func (m *mockStore) GetSection(id string) (map[string]interface{}, error) {
	return m.sections[id], nil
}

func (m *mockStore) SetSection(id string, data map[string]interface{}) error {
	m.sections[id] = data
	return nil
}

func (m *mockStore) GetAll() (map[string]map[string]interface{}, error) { return m.sections, nil }

func (m *mockStore) SetAll(data map[string]map[string]interface{}) error {
	m.sections = data
	return nil
}

func TestManager_RegisterSection(t *testing.T) {
	manager := NewManager(newMockStore())
	require.NoError(t, manager.RegisterSection(&mockSection{id: "b"}))
	require.NoError(t, manager.RegisterSection(&mockSection{id: "a"}))

	err := manager.RegisterSection(&mockSection{id: "a"})
	assert.ErrorContains(t, err, `"a" already registered`)

	sections := manager.GetSections()
	require.Len(t, sections, 2)
	assert.Equal(t, "b", sections[0].ID(), "registration order is kept")
	assert.Equal(t, "a", sections[1].ID())

	sections[0] = nil
	assert.NotNil(t, manager.GetSections()[0], "GetSections returns a copy")

	_, ok := manager.GetSection("missing")
	assert.False(t, ok)
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("applies stored data", func(t *testing.T) {
		store := newMockStore()
		store.sections["s"] = map[string]interface{}{"k": "v"}
		section := &mockSection{id: "s"}
		untouched := &mockSection{id: "empty", data: map[string]interface{}{"keep": true}}

		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(section))
		require.NoError(t, manager.RegisterSection(untouched))

		require.NoError(t, manager.LoadAll())
		assert.Equal(t, "v", section.data["k"])
		assert.Equal(t, true, untouched.data["keep"], "sections without stored data keep defaults")
	})

	errBoom := errors.New("boom")
	tests := []struct {
		name    string
		store   func() *mockStore
		section *mockSection
	}{
		{
			name:    "store load error",
			store:   func() *mockStore { s := newMockStore(); s.loadErr = errBoom; return s },
			section: &mockSection{id: "s"},
		},
		{
			name: "set data error",
			store: func() *mockStore {
				s := newMockStore()
				s.sections["s"] = map[string]interface{}{"k": 1}
				return s
			},
			section: &mockSection{id: "s", setErr: errBoom},
		},
		{
			name: "validation error",
			store: func() *mockStore {
				s := newMockStore()
				s.sections["s"] = map[string]interface{}{"k": 1}
				return s
			},
			section: &mockSection{id: "s", validateErr: errBoom},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(tt.store())
			require.NoError(t, manager.RegisterSection(tt.section))
			assert.ErrorIs(t, manager.LoadAll(), errBoom)
		})
	}
}

func TestManager_SaveAll(t *testing.T) {
	t.Run("writes every section", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "s", data: map[string]interface{}{"k": "v"}}))

		require.NoError(t, manager.SaveAll())
		assert.Equal(t, "v", store.sections["s"]["k"])
		assert.Equal(t, 1, store.saves)
	})

	t.Run("invalid section blocks the save", func(t *testing.T) {
		store := newMockStore()
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "ok", data: map[string]interface{}{}}))
		require.NoError(t, manager.RegisterSection(&mockSection{id: "bad", validateErr: errors.New("nope")}))

		assert.ErrorContains(t, manager.SaveAll(), "invalid section bad")
		assert.Empty(t, store.sections, "nothing is written when validation fails")
		assert.Zero(t, store.saves)
	})

	t.Run("store save error", func(t *testing.T) {
		store := newMockStore()
		store.saveErr = errors.New("disk full")
		manager := NewManager(store)
		require.NoError(t, manager.RegisterSection(&mockSection{id: "s"}))

		assert.ErrorIs(t, manager.SaveAll(), store.saveErr)
	})
}

func TestManager_ResetAll(t *testing.T) {
	manager := NewManager(newMockStore())
	a, b := &mockSection{id: "a"}, &mockSection{id: "b"}
	require.NoError(t, manager.RegisterSection(a))
	require.NoError(t, manager.RegisterSection(b))

	manager.ResetAll()
	assert.Equal(t, 1, a.resets)
	assert.Equal(t, 1, b.resets)
}

func TestManager_ConcurrentRegistration(t *testing.T) {
	manager := NewManager(newMockStore())

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = manager.RegisterSection(&mockSection{id: fmt.Sprintf("section%d", i)})
			manager.GetSections()
		}(i)
	}
	wg.Wait()

	assert.Len(t, manager.GetSections(), 10)
}
