// Package main demonstrates basic ask and hidden prompts.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/console"
)

func main() {
	c := console.New()
	defer c.Close()

	name, err := c.Ask("What is your name?", "name")
	if err != nil {
		log.Fatal(err)
	}

	password, err := c.Hidden("Password:", true, "password")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Hello, %s! Your password has %d characters.\n", name, len([]rune(password)))
}
