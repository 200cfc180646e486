// Package main demonstrates a selection menu with base-36 option ids.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/console"
)

func main() {
	c := console.New()
	defer c.Close()

	choice, ok, err := c.Select("Pick a color", []console.Choice{
		{Key: "red", Label: "Red"},
		{Key: "green", Label: "Green"},
		{Key: "blue", Label: "Blue"},
	}, "color")
	if err != nil {
		log.Fatal(err)
	}
	if !ok {
		fmt.Println("nothing selected")
		return
	}

	fmt.Printf("You picked %s (%s)\n", choice.Label, choice.Key)

	c.Table(
		[]string{"Key", "Label"},
		[][]string{{choice.Key, choice.Label}},
	)
}
