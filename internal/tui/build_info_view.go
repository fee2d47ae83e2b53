// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/NeonGeckoCom/neon-hub-config/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, baseURL string) string {
	var b strings.Builder

	b.WriteString("Application: Neon Hub Config\n")
	b.WriteString("Version: ")
	b.WriteString(info.BuildVersion())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.BuildDate())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.BuildCommit())
	if baseURL != "" {
		b.WriteString("\nBackend: ")
		b.WriteString(baseURL)
	}

	return renderPage("ABOUT", b.String(), "esc: back")
}
