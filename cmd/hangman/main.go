package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play an interactive game in the terminal"`
	Check   CheckCmd         `cmd:"" help:"Apply guesses non-interactively and print the progress"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("hangman"),
		kong.Description("Guess the hidden word one letter at a time"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
