// SPDX-License-Identifier: MPL-2.0

// Package instance talks to an already-running editor instance over its local
// channel (a Unix domain socket, or a named pipe on Windows).
//
// The Notifier side sends a single OpenPaths notification and returns as soon
// as the write completes; it neither waits for a reply nor retries. The
// Receiver side is the listening peer: it accepts connections and delivers
// decoded notifications on a channel.
package instance
