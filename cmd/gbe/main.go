/*
Gbe starts an interactive Goblinear engine session.

It reads in a world file and starts the game in the designated starting room.
The engine then prints what is happening in the game to stdout and reads
player input from stdin until the game is over or the "quit" command is
input.

Usage:

	gbe [flags]

The flags are:

	-v, --version
		Give the current version of Goblinear and then exit.

	-w, --world FILE
		Use the provided TOML world data file. Defaults to the file
		"world.toml" in the current working directory.

	-d, --direct
		Force reading directly from the console as opposed to using GNU
		readline based routines for reading command input, even if launched
		in a tty with stdin and stdout.

Once a session has started, each input line is parsed for commands. For an
explanation of the commands, type "help" once in a session. To exit, type
"quit".
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/kmetzlaff/goblinear"
	"github.com/kmetzlaff/goblinear/internal/version"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitGameError indicates an unsuccessful program execution due to a
	// problem during the game.
	ExitGameError

	// ExitInitError indicates an unsuccessful program execution due to an
	// issue initializing the engine.
	ExitInitError
)

var (
	returnCode = ExitSuccess

	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of Goblinear and then exit.")
	worldFile   = pflag.StringP("world", "w", "world.toml", "The TOML world data file that contains the definition of the world.")
	forceDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible.")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic("unrecoverable panic occured")
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	gameEng, initErr := goblinear.New(os.Stdin, os.Stdout, *worldFile, *forceDirect)
	if initErr != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", initErr.Error())
		returnCode = ExitInitError
		return
	}
	defer gameEng.Close()

	if err := gameEng.RunUntilQuit(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitGameError
		return
	}
}
