// Command terminal plays a maze in the terminal, one command per line.
//
//	p  new maze with Prim's        k  new maze with Kruskal's
//	w/a/s/d or up/left/down/right  move
//	q  quit
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/game/maze"
	logger "github.com/beka-birhanu/vinom-maze/infrastruture/log"
	"github.com/beka-birhanu/vinom-maze/service/i"
)

const wonBanner = "You won! Press p or k to restart"

var keyDirections = map[string]maze.Direction{
	"w": maze.Up, "up": maze.Up,
	"d": maze.Right, "right": maze.Right,
	"s": maze.Down, "down": maze.Down,
	"a": maze.Left, "left": maze.Left,
}

func main() {
	appLogger, err := logger.New("TERMINAL", config.ColorPurple, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %v\n", err)
		os.Exit(1)
	}

	g, err := game.New(config.Envs.MazeWidth, config.Envs.MazeHeight, maze.WithSeed(config.Envs.MazeSeed))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game: %v", err))
		os.Exit(1)
	}

	if err := run(g, os.Stdin, os.Stdout, appLogger); err != nil {
		appLogger.Error(err.Error())
		os.Exit(1)
	}
}

// run drives g from line commands on in and draws to out after every change.
// Prim's generates the first maze.
func run(g *game.Game, in io.Reader, out io.Writer, log i.Logger) error {
	if err := g.Generate(maze.Prims); err != nil {
		return fmt.Errorf("generating first maze: %w", err)
	}
	draw(g, out)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		cmd := strings.ToLower(strings.TrimSpace(scanner.Text()))
		switch cmd {
		case "":
			continue
		case "q", "quit":
			return nil
		case "p", "k":
			alg, _ := maze.ParseAlgorithm(cmd)
			if err := g.Generate(alg); err != nil {
				return fmt.Errorf("generating maze: %w", err)
			}
			log.Info(fmt.Sprintf("generated maze with %s", alg))
		default:
			d, ok := keyDirections[cmd]
			if !ok {
				fmt.Fprintf(out, "unknown command %q\n", cmd)
				continue
			}
			if _, err := g.Move(d); err != nil && !errors.Is(err, game.ErrGameWon) {
				return fmt.Errorf("moving %s: %w", d, err)
			}
		}
		draw(g, out)
	}
	return scanner.Err()
}

func draw(g *game.Game, out io.Writer) {
	fmt.Fprint(out, g.String())
	if g.Won() {
		fmt.Fprintln(out, wonBanner)
	}
}
