/*
Package screen implements the state-driven screen controller.

The controller is a finite state machine over domain.State. Every state except
domain.StateNone owns three actions:

  - enter: runs once when the state becomes current and loads its structure from the store.
  - stay: runs on every RunStep; renders the structure, reads one line and either
    applies an operation or requests a transition.
  - exit: runs once when the state is left; flushes the structure to the store and
    empties the in-memory copy, so the next entry reloads it without duplicates.

A transition always runs the outgoing exit before the incoming enter, so a structure
is persisted before another one is loaded. Store failures are logged and reported
through the lifecycle hooks but never stop a transition.

Input is line based. The first character selects a menu option; push, enqueue and
append take their operand from the third character ("2 a"). Anything unrecognised
redraws the current screen. Reaching the end of the input quits as if the user had
chosen Quit.
*/
package screen
