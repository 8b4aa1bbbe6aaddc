// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"testing"

	"github.com/MKhiriev/go-lab-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingList collects appended items in call order.
type recordingList struct {
	items []string
}

func (l *recordingList) AddItem(item string) {
	l.items = append(l.items, item)
}

// ── New / IsEmpty ────────────────────────────────────────────────────────────

func TestNew_IsEmpty(t *testing.T) {
	r := New()
	require.NotNil(t, r)
	assert.True(t, r.IsEmpty())
	assert.Equal(t, 0, r.Len())
	assert.Empty(t, r.ConfigNames())
}

func TestAddConfig_NotEmptyAfterInsert(t *testing.T) {
	r := New()
	r.AddConfig("prod", "host1", "8080")

	assert.False(t, r.IsEmpty())
	assert.Equal(t, 1, r.Len())
}

// ── AddConfig ────────────────────────────────────────────────────────────────

func TestAddConfig_LastWriteWins(t *testing.T) {
	r := New()
	r.AddConfig("x", "old-host", "1")
	r.AddConfig("x", "new-host", "2")

	server, err := r.ConfigServer("x")
	require.NoError(t, err)
	port, err := r.ConfigPort("x")
	require.NoError(t, err)

	assert.Equal(t, "new-host", server)
	assert.Equal(t, "2", port)
	assert.Equal(t, 1, r.Len())
}

func TestAddConfig_AcceptsEmptyValues(t *testing.T) {
	r := New()
	r.AddConfig("blank", "", "")

	server, err := r.ConfigServer("blank")
	require.NoError(t, err)
	assert.Empty(t, server)

	port, err := r.ConfigPort("blank")
	require.NoError(t, err)
	assert.Empty(t, port)
}

// ── ConfigNames ──────────────────────────────────────────────────────────────

func TestConfigNames_Sorted(t *testing.T) {
	r := New()
	r.AddConfig("charlie", "c", "3")
	r.AddConfig("alpha", "a", "1")
	r.AddConfig("bravo", "b", "2")

	assert.Equal(t, []string{"alpha", "bravo", "charlie"}, r.ConfigNames())
}

func TestConfigNames_ByteWiseOrder(t *testing.T) {
	r := New()
	r.AddConfig("b", "", "")
	r.AddConfig("B", "", "")
	r.AddConfig("a", "", "")
	r.AddConfig("A", "", "")

	assert.Equal(t, []string{"A", "B", "a", "b"}, r.ConfigNames())
}

func TestConfigNames_ReturnsCopy(t *testing.T) {
	r := New()
	r.AddConfig("a", "h", "1")

	names := r.ConfigNames()
	names[0] = "mutated"

	assert.Equal(t, []string{"a"}, r.ConfigNames())
}

// ── Lookups ──────────────────────────────────────────────────────────────────

func TestConfigServer_NotFound(t *testing.T) {
	r := New()

	_, err := r.ConfigServer("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestConfigPort_NotFound(t *testing.T) {
	r := New()
	r.AddConfig("present", "h", "1")

	_, err := r.ConfigPort("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestConfig_Found(t *testing.T) {
	r := New()
	r.AddConfig("prod", "host1", "8080")

	got, ok := r.Config("prod")
	require.True(t, ok)
	assert.Equal(t, models.ConfigInfo{Name: "prod", Server: "host1", Port: "8080"}, got)
}

func TestConfig_NotFound(t *testing.T) {
	_, ok := New().Config("nope")
	assert.False(t, ok)
}

func TestEntry_Accessors(t *testing.T) {
	r := New()
	r.AddConfig("prod", "host1", "8080")

	entry, ok := r.Entry("prod")
	require.True(t, ok)
	assert.Equal(t, "host1", entry.Server())
	assert.Equal(t, "8080", entry.Port())
}

func TestConfigs_InNameOrder(t *testing.T) {
	r := New()
	r.AddConfig("b", "hb", "2")
	r.AddConfig("a", "ha", "1")

	assert.Equal(t, []models.ConfigInfo{
		{Name: "a", Server: "ha", Port: "1"},
		{Name: "b", Server: "hb", Port: "2"},
	}, r.Configs())
}

// ── Editor definition ────────────────────────────────────────────────────────

func TestEditorDefinition_AlwaysConstant(t *testing.T) {
	r := New()
	r.AddConfig("prod", "host1", "8080")

	for _, name := range []string{"prod", "unknown", ""} {
		assert.Equal(t, "EC-LabManager", r.EditorDefinition(name), "name=%q", name)
	}
}

func TestSetEditorDefinition_NoOp(t *testing.T) {
	r := New()
	r.AddConfig("prod", "host1", "8080")

	r.SetEditorDefinition("host1", "Other")

	assert.Equal(t, EditorDefinition, r.EditorDefinition("prod"))
	assert.Equal(t, []string{"prod"}, r.ConfigNames())
}

// ── PopulateListControl ──────────────────────────────────────────────────────

func TestPopulateListControl_SortedOrder(t *testing.T) {
	r := New()
	r.AddConfig("B", "hb", "2")
	r.AddConfig("A", "ha", "1")
	r.AddConfig("C", "hc", "3")

	list := &recordingList{}
	r.PopulateListControl(list)

	assert.Equal(t, []string{"A", "B", "C"}, list.items)
}

func TestPopulateListControl_Empty(t *testing.T) {
	list := &recordingList{}
	New().PopulateListControl(list)

	assert.Empty(t, list.items)
}

func TestPopulateListControl_DoesNotMutateRegistry(t *testing.T) {
	r := New()
	r.AddConfig("A", "ha", "1")

	r.PopulateListControl(&recordingList{})
	r.PopulateListControl(&recordingList{})

	assert.Equal(t, 1, r.Len())
}
