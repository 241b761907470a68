package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
)

// Ledger entry lifecycle states
const (
	EntryActive  = "active"
	EntryDeleted = "deleted"
	EntryPurged  = "purged"
)

const (
	eventDelete = "delete"
	eventPurge  = "purge"
)

// EntryFSM guards the lifecycle of a ledger entry:
// active → deleted (soft delete, ordinary users) → purged (privileged, irreversible).
type EntryFSM struct {
	fsm *fsm.FSM
}

// NewEntryFSM creates a state machine starting at state.
func NewEntryFSM(state string) *EntryFSM {
	return &EntryFSM{
		fsm: fsm.NewFSM(
			state,
			fsm.Events{
				{Name: eventDelete, Src: []string{EntryActive}, Dst: EntryDeleted},
				{Name: eventPurge, Src: []string{EntryDeleted}, Dst: EntryPurged},
			},
			fsm.Callbacks{},
		),
	}
}

// Current returns the current state
func (e *EntryFSM) Current() string {
	return e.fsm.Current()
}

// Delete moves an active entry to the deleted history
func (e *EntryFSM) Delete(ctx context.Context) error {
	if err := e.fsm.Event(ctx, eventDelete); err != nil {
		if e.fsm.Current() == EntryDeleted {
			return fmt.Errorf("entry is already deleted: %w", err)
		}
		return fmt.Errorf("entry cannot be deleted in state %s: %w", e.fsm.Current(), err)
	}
	return nil
}

// Purge permanently removes a deleted entry
func (e *EntryFSM) Purge(ctx context.Context) error {
	if err := e.fsm.Event(ctx, eventPurge); err != nil {
		if e.fsm.Current() == EntryActive {
			return fmt.Errorf("entry must be deleted first: %w", err)
		}
		return fmt.Errorf("entry cannot be purged in state %s: %w", e.fsm.Current(), err)
	}
	return nil
}
