package domain

import "errors"

// ErrConfig is returned when a Topology cannot produce a stochastic relation,
// e.g. when jail and goto_jail coincide.
var ErrConfig = errors.New("invalid board configuration")

// ErrUnknownState is returned when a state lies outside the topology's state space.
var ErrUnknownState = errors.New("unknown state")
