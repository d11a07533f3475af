package cubeplay

// Predefined moves for convenience.
//
// Example:
//
//	c := cubeplay.New()
//	c.ApplyMoves(cubeplay.R, cubeplay.U, cubeplay.RPrime, cubeplay.UPrime)
var (
	R      = Move{Face: FaceR}               // Right clockwise
	RPrime = Move{Face: FaceR, Prime: true}  // Right counter-clockwise
	R2     = Move{Face: FaceR, Double: true} // Right 180

	L      = Move{Face: FaceL}
	LPrime = Move{Face: FaceL, Prime: true}
	L2     = Move{Face: FaceL, Double: true}

	U      = Move{Face: FaceU}
	UPrime = Move{Face: FaceU, Prime: true}
	U2     = Move{Face: FaceU, Double: true}

	D      = Move{Face: FaceD}
	DPrime = Move{Face: FaceD, Prime: true}
	D2     = Move{Face: FaceD, Double: true}

	F      = Move{Face: FaceF}
	FPrime = Move{Face: FaceF, Prime: true}
	F2     = Move{Face: FaceF, Double: true}

	B      = Move{Face: FaceB}
	BPrime = Move{Face: FaceB, Prime: true}
	B2     = Move{Face: FaceB, Double: true}

	M      = Move{Face: FaceM}
	MPrime = Move{Face: FaceM, Prime: true}
	S      = Move{Face: FaceS}
	SPrime = Move{Face: FaceS, Prime: true}
	E      = Move{Face: FaceE}
	EPrime = Move{Face: FaceE, Prime: true}

	X      = Move{Face: FaceX}
	XPrime = Move{Face: FaceX, Prime: true}
	Y      = Move{Face: FaceY}
	YPrime = Move{Face: FaceY, Prime: true}
	Z      = Move{Face: FaceZ}
	ZPrime = Move{Face: FaceZ, Prime: true}
)

// Sexy move: R U R' U' - one of the most common algorithms. Order 6.
var SexyMove = []Move{R, U, RPrime, UPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

// AllMoves returns every face crossed with clockwise, prime and double.
func AllMoves() []Move {
	moves := make([]Move, 0, int(numFaces)*3)
	for f := Face(0); f < numFaces; f++ {
		moves = append(moves,
			Move{Face: f},
			Move{Face: f, Prime: true},
			Move{Face: f, Double: true},
		)
	}
	return moves
}
