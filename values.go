package tmx

import "strconv"

// parseUint converts an unsigned decimal attribute value.
func parseUint(raw string) (uint32, error) {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, &InvalidNumberError{ParseError{Cause: err}, raw}
	}
	return uint32(n), nil
}

// parseInt converts a signed decimal attribute value.
func parseInt(raw string) (int32, error) {
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &InvalidNumberError{ParseError{Cause: err}, raw}
	}
	return int32(n), nil
}

func parseFloat32(raw string) (float32, error) {
	f, err := strconv.ParseFloat(raw, 32)
	if err != nil {
		return 0, &InvalidNumberError{ParseError{Cause: err}, raw}
	}
	return float32(f), nil
}

func parseFloat64(raw string) (float64, error) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &InvalidNumberError{ParseError{Cause: err}, raw}
	}
	return f, nil
}

// parseBool converts the TMX boolean flags "0" and "1".
func parseBool(raw string) (bool, error) {
	switch raw {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, &InvalidNumberError{Raw: raw}
	}
}

// Orientation is the map grid orientation.
type Orientation int

const (
	Orthogonal Orientation = iota
	Isometric
	Staggered
	Hexagonal
)

var orientationNames = map[Orientation]string{
	Orthogonal: "orthogonal",
	Isometric:  "isometric",
	Staggered:  "staggered",
	Hexagonal:  "hexagonal",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return "unknown"
}

func parseOrientation(raw string) (Orientation, error) {
	switch raw {
	case "orthogonal":
		return Orthogonal, nil
	case "isometric":
		return Isometric, nil
	case "staggered":
		return Staggered, nil
	case "hexagonal":
		return Hexagonal, nil
	default:
		return Orthogonal, &BadOrientationError{Raw: raw}
	}
}

// RenderOrder is the order in which a renderer should paint map tiles.
type RenderOrder int

const (
	RightDown RenderOrder = iota
	RightUp
	LeftDown
	LeftUp
)

var renderOrderNames = map[RenderOrder]string{
	RightDown: "right-down",
	RightUp:   "right-up",
	LeftDown:  "left-down",
	LeftUp:    "left-up",
}

func (r RenderOrder) String() string {
	if name, ok := renderOrderNames[r]; ok {
		return name
	}
	return "unknown"
}

func parseRenderOrder(raw string) (RenderOrder, error) {
	switch raw {
	case "right-down":
		return RightDown, nil
	case "right-up":
		return RightUp, nil
	case "left-down":
		return LeftDown, nil
	case "left-up":
		return LeftUp, nil
	default:
		return RightDown, &BadRenderOrderError{Raw: raw}
	}
}

// Axis selects the staggered axis of hexagonal and staggered maps.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

func parseAxis(raw string) (Axis, error) {
	switch raw {
	case "x":
		return AxisX, nil
	case "y":
		return AxisY, nil
	default:
		return AxisX, &BadAxisError{Raw: raw}
	}
}

// StaggerIndex selects which rows or columns are shifted on a staggered
// grid.
type StaggerIndex int

const (
	Even StaggerIndex = iota
	Odd
)

func (s StaggerIndex) String() string {
	if s == Odd {
		return "odd"
	}
	return "even"
}

func parseStaggerIndex(raw string) (StaggerIndex, error) {
	switch raw {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	default:
		return Even, &BadIndexError{Raw: raw}
	}
}

// DrawOrder is the paint order of objects within an object group.
type DrawOrder int

const (
	TopDown DrawOrder = iota
	Index
)

func (d DrawOrder) String() string {
	if d == Index {
		return "index"
	}
	return "topdown"
}

// parseDrawOrder has no dedicated error kind; unrecognized input falls
// back to the TopDown default.
func parseDrawOrder(raw string) DrawOrder {
	if raw == "index" {
		return Index
	}
	return TopDown
}

// PropertyType tags how a property's string value should be
// reinterpreted by the caller.
type PropertyType int

const (
	StringProperty PropertyType = iota
	IntProperty
	FloatProperty
	BoolProperty
)

var propertyTypeNames = map[PropertyType]string{
	StringProperty: "string",
	IntProperty:    "int",
	FloatProperty:  "float",
	BoolProperty:   "bool",
}

func (p PropertyType) String() string {
	if name, ok := propertyTypeNames[p]; ok {
		return name
	}
	return "unknown"
}

// parsePropertyType has no dedicated error kind; unrecognized input
// falls back to the string default.
func parsePropertyType(raw string) PropertyType {
	switch raw {
	case "int":
		return IntProperty
	case "float":
		return FloatProperty
	case "bool":
		return BoolProperty
	default:
		return StringProperty
	}
}
