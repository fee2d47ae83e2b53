// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package panel maps configuration sections to the fields the dashboards
// render.
//
// Everything here is pure: [BuildSection] turns section data into an ordered
// [SectionView] of [Field] descriptors (widget kind, select options, masking,
// help links) without touching any state. Both the terminal dashboard and the
// web handlers draw from the same descriptors, so a key renders as the same
// kind of widget in either front end.
package panel
