package svg

import (
	"encoding/json"
	"io"
)

// The JSON form of a polyline list is an array of polylines, each an array
// of coordinate records:
//
//	[[{"x":0,"y":0},{"x":10,"y":0}],[{"x":5,"y":5},{"x":6,"y":7}]]
//
// Both the order of the polylines and the order of the points inside each
// polyline are significant and must be preserved by consumers.

// coordinatePair is the JSON record of a Point
type coordinatePair struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarshalJSON encodes p as {"x": ..., "y": ...}
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(coordinatePair{X: p.X, Y: p.Y})
}

// UnmarshalJSON decodes a {"x": ..., "y": ...} record
func (p *Point) UnmarshalJSON(data []byte) error {
	var pair coordinatePair
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	*p = Point{X: pair.X, Y: pair.Y}

	return nil
}

// WriteJSON writes lines in their JSON form, followed by a newline
func WriteJSON(w io.Writer, lines []Polyline, indent bool) error {
	if lines == nil {
		lines = []Polyline{}
	}

	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(lines)
}

// ReadJSON decodes a polyline list written by WriteJSON
func ReadJSON(r io.Reader) ([]Polyline, error) {
	var lines []Polyline
	if err := json.NewDecoder(r).Decode(&lines); err != nil {
		return nil, err
	}

	return lines, nil
}
