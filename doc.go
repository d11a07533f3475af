// Package cubeplay models the logical state of a 3x3x3 Rubik's cube and
// plays move sequences on it.
//
// # Features
//
//   - Corner, edge and center state tracked in a fixed frame
//   - Face, slice, wide and whole-cube moves in standard notation
//   - Moves interpreted relative to how the cube is currently held
//   - Geometry hints for animating each turn
//   - Stepping forwards and backwards through a sequence
//
// # Quick Start
//
// Apply moves to a cube:
//
//	cube := cubeplay.New()
//
//	// Apply moves using predefined constants
//	cube.ApplyMoves(cubeplay.R, cubeplay.U, cubeplay.RPrime, cubeplay.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B2 L' D x M2")
//
//	fmt.Println("Solved:", cube.IsSolved())
//	fmt.Print(cube)
//
// # Playback
//
// A Player holds a sequence and a cursor into it:
//
//	p := cubeplay.NewPlayer(cubeplay.WithPacer(func(ctx context.Context, ev cubeplay.MoveEvent) error {
//	    select {
//	    case <-time.After(300 * time.Millisecond):
//	        return nil
//	    case <-ctx.Done():
//	        return ctx.Err()
//	    }
//	}))
//
//	if _, err := p.LoadSequence("R U R' U' // sexy move"); err != nil {
//	    log.Fatal(err)
//	}
//	p.Play(ctx)
//	p.Rewind(ctx)
//
// # Orientation
//
// Moves are given in the frame the cube is held in. After a rotation such
// as x or a wide move, U turns whatever face is physically on top. The
// state records the centers at each physical face; the pieces never move
// for a whole-cube rotation.
package cubeplay
