package errors_test

import (
	"fmt"

	"tealc/errors"
)

var ErrOutOfScratchSpace = errors.New("out of scratch space")

func allocate(next int) (int, error) {
	if next > 255 {
		return 0, errors.WithDetailf(ErrOutOfScratchSpace, "slot %d", next)
	}
	return next, nil
}

func ExampleRoot() {
	_, err := allocate(256)
	fmt.Println(errors.Root(err) == ErrOutOfScratchSpace)
	fmt.Println(errors.Detail(err))
	// Output:
	// true
	// slot 256
}
