/*
Package boardchain models a Monopoly style board as a finite Markov chain.

A board is described by a domain.Topology: its size, the number of six sided
dice rolled per turn, the jail and "go to jail" spaces and the Chance spaces.
The engine derives the transition probabilities from the dice distribution
and the board rules, then offers three views of the same chain:

  - Dense: a column-stochastic gonum matrix with the goto_jail space removed,
    used to certify regularity by raising it to a power.
  - Exact: the same matrix in exact rationals.
  - Sparse: a row-stochastic relation over every state, used to solve for
    the steady state and to sample random walks.

# Usage

	eng, err := boardchain.New()
	if err != nil {
		log.Fatal(err)
	}

	analysis, err := eng.Analyze(6)
	if err != nil {
		log.Fatal(err)
	}
	if analysis.Regular {
		fmt.Println(analysis.Steady[domain.DefaultJail])
	}

Custom boards are passed with WithTopology. Invalid boards, such as one whose
jail and goto_jail coincide, are rejected by New with an error matching
domain.ErrConfig.
*/
package boardchain
