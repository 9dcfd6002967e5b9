// Package web holds static assets delivered to the browser.
package web

import _ "embed"

// TrackerScript is the client heartbeat script served at
// /api/track/script.js.
//
//go:embed tracker.js
var TrackerScript []byte
