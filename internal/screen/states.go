package screen

import (
	"context"

	"github.com/aretw0/jumptable/pkg/domain"
)

// stateHandler is the action table of one state.
type stateHandler interface {
	enter(ctx context.Context)
	stay(ctx context.Context) bool
	exit(ctx context.Context)
}

// handler returns the actions of st, or nil for NONE.
func (s *Screen) handler(st domain.State) stateHandler {
	switch st {
	case domain.StateIdle:
		return idleState{s}
	case domain.StateStack:
		return stackState{s}
	case domain.StateQueue:
		return queueState{s}
	case domain.StateList:
		return listState{s}
	case domain.StateNone:
		return nil
	}
	return nil
}

type idleState struct{ *Screen }

func (idleState) enter(ctx context.Context) {}

func (st idleState) stay(ctx context.Context) bool {
	cmd, ok := st.readCommand(idleMenu)
	if !ok {
		return false
	}
	switch cmd.option {
	case '1':
		st.Transition(ctx, domain.StateStack)
	case '2':
		st.Transition(ctx, domain.StateQueue)
	case '3':
		st.Transition(ctx, domain.StateList)
	case '4':
		return false
	}
	return true
}

func (idleState) exit(ctx context.Context) {}

type stackState struct{ *Screen }

func (st stackState) enter(ctx context.Context) {
	st.stack.Reset()
	for _, r := range st.load(ctx, domain.KindStack) {
		st.stack.Push(r)
	}
}

func (st stackState) stay(ctx context.Context) bool {
	st.draw(domain.KindStack, st.stack.Items())

	cmd, ok := st.readCommand(stackMenu)
	if !ok {
		return st.quit(ctx)
	}
	switch cmd.option {
	case '1':
		r, applied := st.stack.Pop()
		st.operation(ctx, domain.KindStack, domain.OpPop, r, applied, st.stack.Len())
	case '2':
		if cmd.hasOperand {
			applied := st.stack.Push(cmd.operand)
			st.operation(ctx, domain.KindStack, domain.OpPush, cmd.operand, applied, st.stack.Len())
		}
	case '3':
		st.Transition(ctx, domain.StateList)
	case '4':
		st.Transition(ctx, domain.StateQueue)
	case '5':
		return st.quit(ctx)
	}
	return true
}

func (st stackState) exit(ctx context.Context) {
	st.save(ctx, domain.KindStack, st.stack.Items())
	st.stack.Reset()
}

type queueState struct{ *Screen }

func (st queueState) enter(ctx context.Context) {
	st.queue.Reset()
	for _, r := range st.load(ctx, domain.KindQueue) {
		st.queue.Enqueue(r)
	}
}

func (st queueState) stay(ctx context.Context) bool {
	st.draw(domain.KindQueue, st.queue.Items())

	cmd, ok := st.readCommand(queueMenu)
	if !ok {
		return st.quit(ctx)
	}
	switch cmd.option {
	case '1':
		if cmd.hasOperand {
			applied := st.queue.Enqueue(cmd.operand)
			st.operation(ctx, domain.KindQueue, domain.OpEnqueue, cmd.operand, applied, st.queue.Len())
		}
	case '2':
		r, applied := st.queue.Dequeue()
		st.operation(ctx, domain.KindQueue, domain.OpDequeue, r, applied, st.queue.Len())
	case '3':
		st.Transition(ctx, domain.StateStack)
	case '4':
		st.Transition(ctx, domain.StateList)
	case '5':
		return st.quit(ctx)
	}
	return true
}

func (st queueState) exit(ctx context.Context) {
	st.save(ctx, domain.KindQueue, st.queue.Items())
	st.queue.Reset()
}

type listState struct{ *Screen }

func (st listState) enter(ctx context.Context) {
	st.list.Reset()
	for _, r := range st.load(ctx, domain.KindList) {
		st.list.Append(r)
	}
}

func (st listState) stay(ctx context.Context) bool {
	st.draw(domain.KindList, st.list.Items())

	cmd, ok := st.readCommand(listMenu)
	if !ok {
		return st.quit(ctx)
	}
	switch cmd.option {
	case '1':
		if cmd.hasOperand {
			applied := st.list.Append(cmd.operand)
			st.operation(ctx, domain.KindList, domain.OpAppend, cmd.operand, applied, st.list.Len())
		}
	case '2':
		r, applied := st.list.RemoveLast()
		st.operation(ctx, domain.KindList, domain.OpRemoveLast, r, applied, st.list.Len())
	case '3':
		st.Transition(ctx, domain.StateStack)
	case '4':
		st.Transition(ctx, domain.StateQueue)
	case '5':
		return st.quit(ctx)
	}
	return true
}

func (st listState) exit(ctx context.Context) {
	st.save(ctx, domain.KindList, st.list.Items())
	st.list.Reset()
}
