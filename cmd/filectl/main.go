package main

import (
	"fmt"
	"os"

	"chatbot-srv/cmd/filectl/commands"
)

func main() {
	if err := commands.NewRootCmd(commands.LoadApp).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
