// SPDX-License-Identifier: MPL-2.0

// Package serverbase provides the start/stop state machine for long-running
// listeners such as the instance Receiver.
package serverbase
