// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal dashboard: a login flow followed by the tabbed
// configuration dashboard, both built on Bubble Tea.
package tui

import (
	"context"

	"github.com/NeonGeckoCom/neon-hub-config/internal/logger"
	"github.com/NeonGeckoCom/neon-hub-config/internal/service"
	"github.com/NeonGeckoCom/neon-hub-config/internal/validators"
	"github.com/NeonGeckoCom/neon-hub-config/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	validator validators.Validator
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
	options   []tea.ProgramOption
}

func New(services *service.ClientServices, validator validators.Validator, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		validator: validator,
		buildInfo: buildInfo,
		logger:    logger,
		options:   []tea.ProgramOption{tea.WithAltScreen()},
	}, nil
}

// LoginFlow runs the login screen until the backend accepts a login. It
// returns [ErrUserQuit] when the operator quits instead.
func (t *TUI) LoginFlow(ctx context.Context) (username string, err error) {
	pages := map[string]tea.Model{
		pageLogin:   NewLoginModel(ctx, t.services, t.validator),
		pageBaseURL: baseURLPage{newBaseURLEditor(ctx, t.services, t.validator, pageLogin)},
	}

	root := NewRootModel(pages, pageLogin, t.buildInfo, t.services.Hub.BaseURL)
	finalModel, runErr := tea.NewProgram(root, append(t.options, tea.WithContext(ctx))...).Run()
	if runErr != nil {
		return "", runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return "", tea.ErrProgramKilled
	}
	if result.quitByUser {
		return "", ErrUserQuit
	}

	t.logger.Info().Str("username", result.username).Msg("login flow finished")
	return result.username, nil
}

// MainLoop runs the dashboard until the operator quits or logs out. Edits
// are auto-saved through a debounced saver that lives as long as the loop.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	saver, saved, stop := t.startAutoSave(ctx)
	defer stop()

	model := newMainLoopModel(ctx, t.services, t.validator, saver, saved, t.buildInfo)
	finalModel, runErr := tea.NewProgram(model, append(t.options, tea.WithContext(ctx))...).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}

// startAutoSave creates the loop's saver and the channel its results arrive
// on. stop cancels pending saves, waits for running ones and closes the
// channel so a pending [waitForAutoSave] returns.
func (t *TUI) startAutoSave(ctx context.Context) (service.AutoSaver, <-chan sectionSavedMsg, func()) {
	saved := make(chan sectionSavedMsg, 16)
	saver := t.services.NewAutoSaver(ctx, func(section models.SectionKey, err error) {
		select {
		case saved <- sectionSavedMsg{section: section, err: err, auto: true}:
		default:
			t.logger.Warn().Str("section", section.String()).Msg("auto-save notification dropped")
		}
	})

	stop := func() {
		saver.Stop()
		close(saved)
	}
	return saver, saved, stop
}
