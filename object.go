package tmx

import "encoding/xml"

// ObjectGroup is a free-form collection of positioned objects.
type ObjectGroup struct {
	name       string
	color      *Color
	opacity    float32
	visible    bool
	offsetX    int32
	offsetY    int32
	x          int32
	y          int32
	width      uint32
	height     uint32
	drawOrder  DrawOrder
	objects    []Object
	properties propertySet
}

func newObjectGroup() ObjectGroup {
	return ObjectGroup{opacity: 1, visible: true, drawOrder: TopDown}
}

// Name returns the group's name.
func (g *ObjectGroup) Name() string { return g.name }

// Color returns the display color of the group's objects, or nil.
func (g *ObjectGroup) Color() *Color { return g.color }

// Opacity returns the group's opacity, 1.0 when unset.
func (g *ObjectGroup) Opacity() float32 { return g.opacity }

// IsVisible reports whether the group is shown, true when unset.
func (g *ObjectGroup) IsVisible() bool { return g.visible }

// OffsetX returns the horizontal rendering offset in pixels.
func (g *ObjectGroup) OffsetX() int32 { return g.offsetX }

// OffsetY returns the vertical rendering offset in pixels.
func (g *ObjectGroup) OffsetY() int32 { return g.offsetY }

// X returns the group's x position in tiles.
func (g *ObjectGroup) X() int32 { return g.x }

// Y returns the group's y position in tiles.
func (g *ObjectGroup) Y() int32 { return g.y }

// Width returns the group width in tiles.
func (g *ObjectGroup) Width() uint32 { return g.width }

// Height returns the group height in tiles.
func (g *ObjectGroup) Height() uint32 { return g.height }

// DrawOrder returns the group's paint order, TopDown when unset.
func (g *ObjectGroup) DrawOrder() DrawOrder { return g.drawOrder }

// Objects returns the group's objects in document order.
func (g *ObjectGroup) Objects() []Object { return g.objects }

// Properties returns the group's properties in document order.
func (g *ObjectGroup) Properties() []Property { return g.properties.list }

// Property looks up a group property by name.
func (g *ObjectGroup) Property(name string) (Property, bool) { return g.properties.get(name) }

func (g *ObjectGroup) readAttr(name, value string) error {
	switch name {
	case "name":
		g.name = value
	case "color":
		color, err := ParseColor(value)
		if err != nil {
			return err
		}
		g.color = &color
	case "opacity":
		opacity, err := parseFloat32(value)
		if err != nil {
			return err
		}
		g.opacity = opacity
	case "visible":
		visible, err := parseBool(value)
		if err != nil {
			return err
		}
		g.visible = visible
	case "offsetx":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		g.offsetX = offset
	case "offsety":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		g.offsetY = offset
	case "x":
		x, err := parseInt(value)
		if err != nil {
			return err
		}
		g.x = x
	case "y":
		y, err := parseInt(value)
		if err != nil {
			return err
		}
		g.y = y
	case "width":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		g.width = width
	case "height":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		g.height = height
	case "draworder":
		g.drawOrder = parseDrawOrder(value)
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (g *ObjectGroup) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "object":
		object := newObject()
		if err := r.readElement(&object, start); err != nil {
			return err
		}
		g.objects = append(g.objects, object)
	case "properties":
		return r.readElement(&g.properties, start)
	default:
		return r.skip()
	}
	return nil
}

// Object is a positioned entity within an object group. Without a
// shape child it is a plain rectangle.
type Object struct {
	id         uint32
	name       string
	objectType string
	x          float64
	y          float64
	width      float64
	height     float64
	rotation   float64
	visible    bool
	gid        *uint32
	shape      *Shape
	properties propertySet
}

func newObject() Object {
	return Object{visible: true}
}

// ID returns the object's unique id within the map.
func (o *Object) ID() uint32 { return o.id }

// Name returns the object's name.
func (o *Object) Name() string { return o.name }

// Type returns the object's user-defined type string.
func (o *Object) Type() string { return o.objectType }

// X returns the object's x position in pixels.
func (o *Object) X() float64 { return o.x }

// Y returns the object's y position in pixels.
func (o *Object) Y() float64 { return o.y }

// Width returns the object's width in pixels.
func (o *Object) Width() float64 { return o.width }

// Height returns the object's height in pixels.
func (o *Object) Height() float64 { return o.height }

// Rotation returns the object's rotation in degrees, clockwise.
func (o *Object) Rotation() float64 { return o.rotation }

// IsVisible reports whether the object is shown, true when unset.
func (o *Object) IsVisible() bool { return o.visible }

// Gid returns the global tile id of a tile object.
func (o *Object) Gid() (uint32, bool) {
	if o.gid == nil {
		return 0, false
	}
	return *o.gid, true
}

// Shape returns the object's shape, or nil for a plain rectangle.
func (o *Object) Shape() *Shape { return o.shape }

// Properties returns the object's properties in document order.
func (o *Object) Properties() []Property { return o.properties.list }

// Property looks up an object property by name.
func (o *Object) Property(name string) (Property, bool) { return o.properties.get(name) }

func (o *Object) readAttr(name, value string) error {
	switch name {
	case "id":
		id, err := parseUint(value)
		if err != nil {
			return err
		}
		o.id = id
	case "name":
		o.name = value
	case "type":
		o.objectType = value
	case "x":
		x, err := parseFloat64(value)
		if err != nil {
			return err
		}
		o.x = x
	case "y":
		y, err := parseFloat64(value)
		if err != nil {
			return err
		}
		o.y = y
	case "width":
		width, err := parseFloat64(value)
		if err != nil {
			return err
		}
		o.width = width
	case "height":
		height, err := parseFloat64(value)
		if err != nil {
			return err
		}
		o.height = height
	case "rotation":
		rotation, err := parseFloat64(value)
		if err != nil {
			return err
		}
		o.rotation = rotation
	case "visible":
		visible, err := parseBool(value)
		if err != nil {
			return err
		}
		o.visible = visible
	case "gid":
		gid, err := parseUint(value)
		if err != nil {
			return err
		}
		o.gid = &gid
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (o *Object) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "ellipse":
		return o.readShape(r, start, EllipseShape)
	case "polygon":
		return o.readShape(r, start, PolygonShape)
	case "polyline":
		return o.readShape(r, start, PolylineShape)
	case "properties":
		return r.readElement(&o.properties, start)
	default:
		return r.skip()
	}
}

func (o *Object) readShape(r *reader, start xml.StartElement, kind ShapeKind) error {
	shape := Shape{kind: kind}
	if err := r.readElement(&shape, start); err != nil {
		return err
	}
	o.shape = &shape
	return nil
}

// ShapeKind discriminates the Shape variants.
type ShapeKind int

const (
	EllipseShape ShapeKind = iota
	PolygonShape
	PolylineShape
)

func (k ShapeKind) String() string {
	switch k {
	case PolygonShape:
		return "polygon"
	case PolylineShape:
		return "polyline"
	default:
		return "ellipse"
	}
}

// Shape is an object's geometry variant: an ellipse filling the
// object's bounds, or a polygon/polyline with ordered vertices
// relative to the object's position.
type Shape struct {
	kind   ShapeKind
	points []Point
}

// Kind returns the shape variant.
func (s *Shape) Kind() ShapeKind { return s.kind }

// Points returns the shape's vertices in document order; empty for
// ellipses.
func (s *Shape) Points() []Point { return s.points }

func (s *Shape) readAttr(name, value string) error {
	if name == "points" && s.kind != EllipseShape {
		points, err := ParsePoints(value)
		if err != nil {
			return err
		}
		s.points = points
		return nil
	}
	return &UnknownAttributeError{Name: name}
}

func (s *Shape) readChild(r *reader, start xml.StartElement) error {
	return r.skip()
}
