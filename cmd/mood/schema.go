package main

import (
	"fmt"

	outputSvc "github.com/panbanda/mood/internal/service/output"
	"github.com/urfave/cli/v2"
)

func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Print the JSON Schema of the analyze --format=json report",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintln(c.App.Writer, outputSvc.Schema)
			return err
		},
	}
}
