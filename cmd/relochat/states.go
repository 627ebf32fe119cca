package main

import (
	"fmt"

	"github.com/mrmovin/relochat"
)

// Run executes the states command.
func (c *StatesCmd) Run(deps *Dependencies) error {
	ds, err := deps.Loader.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relochat.ErrorMessage(err))
		return err
	}

	states := ds.AvailableStates()
	if len(states) == 0 {
		fmt.Fprintln(deps.Stdout, "No state-level entries in the current dataset.")
		return nil
	}

	for _, s := range states {
		fmt.Fprintln(deps.Stdout, s)
	}
	return nil
}
