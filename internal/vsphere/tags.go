package vsphere

import (
	"context"
	"fmt"

	"github.com/bk147/vmprov/internal/domain"
)

// AssignTag attaches an existing tag, resolved by name, to the named VM.
// Tags are never created here; tag and category management stays with the
// cluster administrators.
func (s *Session) AssignTag(ctx context.Context, vm domain.VMRef, tag string) error {
	machine, err := s.virtualMachine(ctx, string(vm))
	if err != nil {
		return err
	}

	resolved, err := s.tags.GetTag(ctx, tag)
	if err != nil {
		return fmt.Errorf("tag %q: %w", tag, domain.ErrNotFound)
	}

	if err := s.tags.AttachTag(ctx, resolved.ID, machine.Reference()); err != nil {
		return fmt.Errorf("attach tag %q to %q: %w", tag, vm, err)
	}
	return nil
}
