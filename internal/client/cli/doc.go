// Package cli provides the interactive Snapfeed command-line client.
//
// It wires configuration, the local session store, API services, and an
// interactive REPL over a live feed. Typical flow: restore or prompt for
// credentials, open the feed subscription, start a background connectivity
// watcher, and execute user commands.
//
// Key features:
//   - Register / SignIn / Logout with persisted sessions
//   - Live feed: posts arrive and re-render without polling
//   - Post creation with image uploads
//   - Profile viewing and editing, personal image gallery
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
