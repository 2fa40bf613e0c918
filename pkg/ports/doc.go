/*
Package ports defines the driven ports (interfaces) that consume a board model.

These interfaces decouple the model construction from the libraries that
analyse it, so the steady-state solver, the random walker and the regularity
check can be swapped without touching pkg/model.

# Key Interfaces

  - Chain: a row-stochastic chain over the full state space. It enumerates
    states, solves for the stationary distribution and simulates walks.
  - RegularityOracle: matrix power and strict positivity over the dense,
    column-stochastic matrix.
*/
package ports
