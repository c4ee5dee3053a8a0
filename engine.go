// Package goblinear contains a CLI-driven adventure engine that reads
// command lines and advances a game session until the player quits or the
// hero falls.
package goblinear

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/kmetzlaff/goblinear/internal/game"
	"github.com/kmetzlaff/goblinear/internal/input"
	"github.com/kmetzlaff/goblinear/internal/worldfile"
)

const consoleOutputWidth = 80

// Engine ties a command source, an output stream, and a game session
// together into a runnable interactive shell.
type Engine struct {
	session *game.Session
	in      input.Reader
	out     *bufio.Writer
	running bool
}

// New creates an engine for the world file at worldPath, reading from
// inputStream and writing to outputStream. Nil streams default to stdin and
// stdout. When both streams are the real terminal, readline-backed
// interactive input is used unless forceDirect is set.
func New(inputStream io.Reader, outputStream io.Writer, worldPath string, forceDirect bool) (*Engine, error) {
	if inputStream == nil {
		inputStream = os.Stdin
	}
	if outputStream == nil {
		outputStream = os.Stdout
	}

	world, err := worldfile.LoadFile(worldPath)
	if err != nil {
		return nil, fmt.Errorf("loading world: %w", err)
	}

	eng := &Engine{out: bufio.NewWriter(outputStream)}

	useReadline := !forceDirect && inputStream == os.Stdin && outputStream == os.Stdout
	if useReadline {
		eng.in, err = input.NewTermReader("> ")
		if err != nil {
			return nil, fmt.Errorf("initializing interactive input: %w", err)
		}
	} else {
		eng.in = input.NewDirectReader(inputStream)
	}

	ioDev := game.IODevice{
		Width: consoleOutputWidth,
		Output: func(s string, a ...interface{}) error {
			if _, err := fmt.Fprintf(eng.out, s, a...); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}
			if err := eng.out.Flush(); err != nil {
				return fmt.Errorf("could not flush output: %w", err)
			}
			return nil
		},
	}

	eng.session, err = game.NewSession(world.Hero, world.StartRoom(), ioDev)
	if err != nil {
		return nil, fmt.Errorf("initializing session: %w", err)
	}

	return eng, nil
}

// Close releases the engine's input resources. It must not be called while
// RunUntilQuit is still running.
func (eng *Engine) Close() error {
	if eng.running {
		return fmt.Errorf("cannot close a running engine")
	}
	if err := eng.in.Close(); err != nil {
		return fmt.Errorf("close command reader: %w", err)
	}
	return nil
}

// RunUntilQuit reads command lines and applies them to the session until the
// player quits, the hero is defeated, or input runs out.
func (eng *Engine) RunUntilQuit() error {
	if err := eng.writeIntro(); err != nil {
		return err
	}
	eng.session.ShowRoom()

	eng.running = true
	defer func() {
		eng.running = false
	}()

	for !eng.session.Done() {
		line, err := eng.in.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		eng.session.ParseAndExecute(line)
	}

	outro := "Goodbye\n"
	if eng.session.GameOver() {
		outro = "Game over.\n"
	}
	if _, err := eng.out.WriteString(outro); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	if err := eng.out.Flush(); err != nil {
		return fmt.Errorf("could not flush output: %w", err)
	}
	return nil
}

func (eng *Engine) writeIntro() error {
	intro := "Welcome to Goblinear\n====================\n\n"
	if _, err := eng.out.WriteString(intro); err != nil {
		return fmt.Errorf("could not write output: %w", err)
	}
	return eng.out.Flush()
}
