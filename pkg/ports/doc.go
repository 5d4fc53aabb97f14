/*
Package ports defines the driven ports (interfaces) for the jumptable controller.

These interfaces decouple the screen controller from external implementations,
allowing it to persist structures to various storage backends.

# Key Interfaces

  - Store: Responsible for loading and flushing the contents of each structure kind.
*/
package ports
