package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mrmovin/relochat"
)

// Run executes the chat command: an interactive session that answers one
// message per line. "reset" re-shows the intro message; "exit" ends the
// session.
func (c *ChatCmd) Run(deps *Dependencies) error {
	sessionID := uuid.New().String()

	fmt.Fprintln(deps.Stdout, relochat.IntroMessage)
	fmt.Fprintln(deps.Stdout)

	scanner := bufio.NewScanner(deps.Stdin)
	for {
		fmt.Fprint(deps.Stdout, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(line) {
		case "exit", "quit":
			fmt.Fprintln(deps.Stdout, "Good luck with the move!")
			return nil
		case "reset", "clear":
			fmt.Fprintln(deps.Stdout, relochat.IntroMessage)
			fmt.Fprintln(deps.Stdout)
			continue
		}

		reply, err := deps.Bot.Respond(deps.Ctx, line)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", relochat.ErrorMessage(err))
			return err
		}

		deps.Logger.Info("chat message",
			"session", sessionID,
			"message_len", len(line),
			"reply_len", len(reply),
		)

		fmt.Fprintln(deps.Stdout, reply)
		fmt.Fprintln(deps.Stdout)
	}

	return scanner.Err()
}
