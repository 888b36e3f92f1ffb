// Package session holds the in-memory state of one chat session.
//
// # Model
//
// A Session owns three structures, created once and never torn down:
//
//   - Roster: ordered alias names plus the active alias used to stamp
//     outgoing messages. The active alias is a copy, so removing the roster
//     entry equal to it leaves it untouched.
//   - Log: append-only messages, each stamped with a 1-based sequence
//     number and a snapshot of the active alias at send time.
//   - ScrollState: whether the log view is pinned to the newest message or
//     detached because the user scrolled away.
//
// # Events
//
// The UI shell either calls the Session methods directly or wraps an action
// in one of the Event variants and hands it to Dispatch. Both paths apply
// exactly the same operation.
//
// # Concurrency
//
// A Session is driven from the single Bubble Tea update loop and is not safe
// for concurrent use.
package session
