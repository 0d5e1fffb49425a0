package svg

// Simplify removes points of line that deviate less than epsilon from the
// simplified polyline, using the Ramer–Douglas–Peucker algorithm. End points
// are always kept. A closed line whose every point lies within epsilon of
// its start collapses and nil is returned.
func Simplify(line Polyline, epsilon float64) Polyline {
	if len(line) < 3 || epsilon <= 0 {
		return line
	}

	keep := make([]bool, len(line))
	keep[0] = true
	keep[len(line)-1] = true

	type span struct{ first, last int }
	stack := []span{{0, len(line) - 1}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		index, farthest := -1, epsilon
		for i := sp.first + 1; i < sp.last; i++ {
			if d := segmentDistance(line[i], line[sp.first], line[sp.last]); d > farthest {
				index, farthest = i, d
			}
		}
		if index < 0 {
			continue
		}
		keep[index] = true
		stack = append(stack, span{sp.first, index}, span{index, sp.last})
	}

	simplified := make(Polyline, 0, len(line))
	for i, p := range line {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}
	if len(simplified) == 2 && simplified[0] == simplified[1] {
		return nil
	}

	return simplified
}
