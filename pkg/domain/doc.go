/*
Package domain contains the core domain models of the jumptable controller.

It defines the screens of the state machine, the kinds of structure that can be
persisted, and the lifecycle events the controller emits. This package is kept pure
and free of external dependencies like I/O or persistence, following Hexagonal
Architecture principles.

# Key Entities

  - State: A screen of the controller (None, Idle, List, Stack, Queue).
  - Kind: A persisted structure (stack, queue, list), one per structure screen.
  - LifecycleHooks: Callbacks fired on state entry, state exit and structure operations.
*/
package domain
