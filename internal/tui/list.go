package tui

import (
	"github.com/MKhiriev/go-lab-manager/models"
	"github.com/charmbracelet/bubbles/list"
)

// configItem is one row of the picker list.
type configItem struct {
	cfg models.ConfigInfo
}

func (i configItem) Title() string       { return i.cfg.Name }
func (i configItem) Description() string { return i.cfg.Address() }
func (i configItem) FilterValue() string { return i.cfg.Name }

// listBox collects names handed out by PopulateListControl and turns each
// one into a list row using a single snapshot of the configurations. Names
// missing from the snapshot are skipped.
type listBox struct {
	byName map[string]models.ConfigInfo
	items  []list.Item
}

func newListBox(snapshot []models.ConfigInfo) *listBox {
	byName := make(map[string]models.ConfigInfo, len(snapshot))
	for _, cfg := range snapshot {
		byName[cfg.Name] = cfg
	}
	return &listBox{byName: byName, items: make([]list.Item, 0, len(snapshot))}
}

func (b *listBox) AddItem(name string) {
	cfg, ok := b.byName[name]
	if !ok {
		return
	}
	b.items = append(b.items, configItem{cfg: cfg})
}
