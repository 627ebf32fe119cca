package main

import (
	"fmt"

	"github.com/mrmovin/relochat"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	reply, err := deps.Bot.Respond(deps.Ctx, c.Message)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", relochat.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply)
	return nil
}
