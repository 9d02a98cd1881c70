package main

import (
	"github.com/alecthomas/kong"
)

type Command struct {
	Verbose  bool            `help:"Enable verbose output." short:"v"`
	Generate GenerateCommand `cmd:"generate" help:"Generate the structural primitive list for a configuration."`
	Presets  PresetsCommand  `cmd:"presets" help:"List built-in presets."`
	Validate ValidateCommand `cmd:"validate" help:"Validate a configuration file without generating."`
}

type App struct {
	Verbose bool
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name("hangarctl"),
		kong.Description("Hangar structure generator command line interface"),
		kong.UsageOnError(),
	)
	err := ctx.Run(&App{
		Verbose: command.Verbose,
	})
	ctx.FatalIfErrorf(err)
}
