// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api dispatches shell commands to the constelia.ai HTTP API.
//
// The API exposes one endpoint; every call identifies itself with a cmd
// query parameter and the member key. This package coerces parsed
// string arguments to their declared wire types, routes body parameters
// into a form POST, rate-limits outgoing calls, and hands decoded JSON
// (or raw text) back to the caller for rendering.
package api
