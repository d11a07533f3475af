// cubeplay - CLI for applying and playing back Rubik's cube move sequences.
package main

import (
	"github.com/SeamusWaldron/cubeplay/internal/cli"
)

func main() {
	cli.Execute()
}
