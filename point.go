package tmx

import "strings"

// Point is a 2D integer coordinate, used for polygon and polyline
// vertices.
type Point struct {
	X int32
	Y int32
}

// ParsePoint parses a comma-separated pair of integers, e.g. "1,2".
func ParsePoint(raw string) (Point, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return Point{}, &InvalidPointError{Raw: raw}
	}
	x, err := parseInt(parts[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseInt(parts[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ParsePoints parses a whitespace-separated list of points, e.g.
// "0,1 2,3 4,5", preserving order.
func ParsePoints(raw string) ([]Point, error) {
	fields := strings.Fields(raw)
	points := make([]Point, 0, len(fields))
	for _, field := range fields {
		p, err := ParsePoint(field)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, nil
}

// Corners holds the four terrain indices of a tile, one per corner.
type Corners struct {
	TopLeft     uint32
	TopRight    uint32
	BottomLeft  uint32
	BottomRight uint32
}

// parseCorners parses a comma-separated quadruple of terrain indices,
// e.g. "0,1,2,3".
func parseCorners(raw string) (Corners, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return Corners{}, &InvalidPointError{Raw: raw}
	}
	var indices [4]uint32
	for i, part := range parts {
		n, err := parseUint(part)
		if err != nil {
			return Corners{}, err
		}
		indices[i] = n
	}
	return Corners{
		TopLeft:     indices[0],
		TopRight:    indices[1],
		BottomLeft:  indices[2],
		BottomRight: indices[3],
	}, nil
}
