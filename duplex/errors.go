package duplex

import "errors"

// ErrInvalidParameters is the panic value (wrapped) of a sponge built over
// a permutation without capacity, an empty rate, or a mis-sized state.
var ErrInvalidParameters = errors.New("invalid permutation parameters")
