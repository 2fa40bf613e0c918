/*
Package domain contains the core domain model for boardchain.

It describes the board as a finite set of states and the fixed parameters that
shape the transition rules. The package is pure: no I/O, no logging, no
numeric representation choices. Those live in pkg/numeric, pkg/model and
pkg/assemble.

# Key Entities

  - State: an ordinary board space (0 … size-1) or one of the three synthetic
    jail sub-states (size, size+1, size+2).
  - Topology: board size, dice count, jail and go-to-jail indices and the
    chance spaces. Validated at construction.
  - Board: immutable lookup of space names and hotel costs for reporting.
*/
package domain
