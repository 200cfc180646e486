// Package main demonstrates recording answers to a file and replaying
// them in a later, non-interactive run.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/nao1215/console"
)

const answerFile = "answers.json"

func main() {
	answers := console.NewAnswerStore()

	if _, err := os.Stat(answerFile); err == nil {
		// Replay mode: prompts are answered from the file without a terminal.
		if err := answers.LoadFromFile(answerFile); err != nil {
			log.Fatal(err)
		}
		fmt.Println("replaying recorded answers")
	} else {
		// Record mode: live answers are written back into the store.
		answers.SetRecording(true)
	}

	c := console.New(console.WithAnswers(answers))
	defer c.Close()

	name, err := c.Ask("Project name?", "project")
	if err != nil {
		log.Fatal(err)
	}

	env, ok, err := c.Select("Deploy environment", []console.Choice{
		{Key: "dev", Label: "Development"},
		{Key: "stage", Label: "Staging"},
		{Key: "prod", Label: "Production"},
	}, "environment")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("project=%s", name)
	if ok {
		fmt.Printf(" environment=%s", env.Key)
	}
	fmt.Println()

	if answers.Recording() {
		if err := answers.SaveToFile(answerFile); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("answers recorded to %s\n", answerFile)
	}
}
