// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-lab-manager/internal/service"
	"github.com/MKhiriev/go-lab-manager/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	statusTTL     = 2 * time.Second
	defaultWidth  = 80
	defaultHeight = 20
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

type pickerModel struct {
	ctx             context.Context
	configs         service.ConfigService
	refreshInterval time.Duration
	buildInfo       models.AppBuildInfo

	list    list.Model
	spinner spinner.Model
	width   int

	loading       bool
	status        string
	errMsg        string
	overlay       *errorOverlayModel
	showBuildInfo bool

	selection  *models.Selection
	quitByUser bool
}

func newPickerModel(ctx context.Context, configs service.ConfigService, refreshInterval time.Duration, buildInfo models.AppBuildInfo) pickerModel {
	l := list.New(nil, list.NewDefaultDelegate(), defaultWidth, defaultHeight)
	l.Title = "EC-LabManager"
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return pickerModel{
		ctx:             ctx,
		configs:         configs,
		refreshInterval: refreshInterval,
		buildInfo:       buildInfo,
		list:            l,
		spinner:         s,
		width:           defaultWidth,
		loading:         true,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdRefresh(false), m.cmdScheduleTick())
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.width = msg.Width - h
		// status and help lines sit under the list
		m.list.SetSize(msg.Width-h, msg.Height-v-3)
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		return m.handleRefreshDone(msg)

	case refreshTickMsg:
		if m.loading {
			return m, m.cmdScheduleTick()
		}
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh(true), m.cmdScheduleTick())

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) handleRefreshDone(msg refreshDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		text := humanizeServerUnavailableError(msg.err)
		if msg.background && !errorIsApplication(msg.err) {
			m.errMsg = text
			return m, nil
		}
		m.overlay = &errorOverlayModel{message: text}
		return m, nil
	}

	m.errMsg = ""
	m.status = fmt.Sprintf("Загружено конфигураций: %d", len(msg.items))
	cmd := m.list.SetItems(msg.items)
	return m, tea.Batch(cmd, m.cmdClearStatus())
}

func (m pickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.overlay != nil {
		if key.Matches(msg, keys.esc, keys.enter) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	// while the filter input is open every key belongs to the list
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
		return m, nil

	case key.Matches(msg, keys.refresh):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.errMsg = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdRefresh(false))

	case key.Matches(msg, keys.copy):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		address := item.cfg.Address()
		if err := clipboardWriteAll(address); err != nil {
			m.errMsg = "Не удалось скопировать: " + err.Error()
			return m, nil
		}
		m.status = "Скопировано: " + address
		return m, m.cmdClearStatus()

	case key.Matches(msg, keys.enter):
		item, ok := m.selectedItem()
		if !ok {
			return m, nil
		}
		sel, err := m.configs.Select(item.cfg.Name)
		if err != nil {
			m.overlay = &errorOverlayModel{message: err.Error()}
			return m, nil
		}
		m.selection = &sel
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) selectedItem() (configItem, bool) {
	item, ok := m.list.SelectedItem().(configItem)
	return item, ok
}

func (m pickerModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.overlay != nil {
		return appStyle.Render(m.overlay.View())
	}

	out := m.list.View() + "\n"

	switch {
	case m.loading:
		out += m.spinner.View() + " Загрузка конфигураций..."
	case m.errMsg != "":
		out += errorStyle.Render("Ошибка: " + fitText(m.errMsg, m.width-8))
	case m.status != "":
		out += m.status
	default:
		if item, ok := m.selectedItem(); ok {
			out += addressStyle.Render(fitText(item.cfg.Address(), m.width))
		}
	}

	out += "\n" + helpStyle.Render("enter выбрать  c копировать адрес  r обновить  / поиск  v версия  q выход")
	return appStyle.Render(out)
}

func (m pickerModel) cmdRefresh(background bool) tea.Cmd {
	ctx, configs := m.ctx, m.configs
	return func() tea.Msg {
		if err := configs.Refresh(ctx); err != nil {
			return refreshDoneMsg{err: err, background: background}
		}

		box := newListBox(configs.Configs())
		configs.PopulateListControl(box)
		return refreshDoneMsg{items: box.items, background: background}
	}
}

func (m pickerModel) cmdScheduleTick() tea.Cmd {
	if m.refreshInterval <= 0 {
		return nil
	}
	return tea.Tick(m.refreshInterval, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

func (m pickerModel) cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// errorIsApplication reports whether err came from the backend's own
// <error> element rather than from the transport.
func errorIsApplication(err error) bool {
	return errors.Is(err, service.ErrApplication)
}
