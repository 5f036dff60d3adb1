package yoga

import "github.com/matzehuels/yogabind/pkg/errors"

// lifecycle is the one-way Live -> Freed state of a wrapper.
type lifecycle struct {
	freed bool
}

func (l *lifecycle) check(kind string) error {
	if l.freed {
		return errors.New(errors.ErrCodeUseAfterFree, "cannot access freed yoga %s", kind)
	}
	return nil
}

func (l *lifecycle) markFreed() {
	l.freed = true
}
