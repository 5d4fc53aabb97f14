/*
Package jumptable is an interactive terminal program for editing three classic linear
data structures (a stack, a queue and a list of single characters) through a
menu-driven state machine.

Each screen is a state with three actions: entering it loads the structure from its
store, staying in it renders the structure and applies one menu command, and leaving
it persists the structure. Navigation between screens is a transition, so data is
always flushed before another structure is loaded.

# Architecture

  - pkg/domain: states, structure kinds, lifecycle hooks and sentinel errors.
  - pkg/structures: the Stack, Queue and List containers.
  - pkg/codec: the single-line, comma-delimited persisted format.
  - pkg/ports and pkg/adapters: the Store port and its file, memory, redis and sqlite adapters.
  - internal/screen: the state-driven screen controller, wrapped by Session.
  - internal/server: HTTP inspection of a store.
  - cmd/jumptable: the CLI.

# Usage

	store := file.NewStore(".")
	session := jumptable.New(store,
		jumptable.WithIO(os.Stdin, os.Stdout),
		jumptable.WithColor(true),
	)

	if err := session.Run(ctx); err != nil {
		log.Fatal(err)
	}
*/
package jumptable
