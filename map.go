package tmx

import "encoding/xml"

// Map is the top-level document: grid geometry, orientation, and the
// ordered collections of tilesets, layers, image layers and object
// groups that make up a level.
type Map struct {
	version         string
	orientation     Orientation
	renderOrder     RenderOrder
	width           uint32
	height          uint32
	tileWidth       uint32
	tileHeight      uint32
	nextObjectID    uint32
	hexSideLength   *uint32
	staggerAxis     *Axis
	staggerIndex    *StaggerIndex
	backgroundColor *Color
	tilesets        []Tileset
	layers          []Layer
	imageLayers     []ImageLayer
	objectGroups    []ObjectGroup
	properties      propertySet
}

func newMap() *Map {
	return &Map{renderOrder: RightDown}
}

// Version returns the TMX format version, e.g. "1.0".
func (m *Map) Version() string { return m.version }

// Orientation returns the map's grid orientation.
func (m *Map) Orientation() Orientation { return m.orientation }

// RenderOrder returns the tile paint order, RightDown when unset.
func (m *Map) RenderOrder() RenderOrder { return m.renderOrder }

// Width returns the map width in tiles.
func (m *Map) Width() uint32 { return m.width }

// Height returns the map height in tiles.
func (m *Map) Height() uint32 { return m.height }

// TileWidth returns the width of a grid cell in pixels.
func (m *Map) TileWidth() uint32 { return m.tileWidth }

// TileHeight returns the height of a grid cell in pixels.
func (m *Map) TileHeight() uint32 { return m.tileHeight }

// NextObjectID returns the next free object id.
func (m *Map) NextObjectID() uint32 { return m.nextObjectID }

// HexSideLength returns the hexagon side length for hexagonal maps.
func (m *Map) HexSideLength() (uint32, bool) {
	if m.hexSideLength == nil {
		return 0, false
	}
	return *m.hexSideLength, true
}

// StaggerAxis returns the staggered axis for hexagonal and staggered
// maps.
func (m *Map) StaggerAxis() (Axis, bool) {
	if m.staggerAxis == nil {
		return AxisX, false
	}
	return *m.staggerAxis, true
}

// StaggerIndex returns the stagger parity for hexagonal and staggered
// maps.
func (m *Map) StaggerIndex() (StaggerIndex, bool) {
	if m.staggerIndex == nil {
		return Even, false
	}
	return *m.staggerIndex, true
}

// BackgroundColor returns the map's background color, or nil.
func (m *Map) BackgroundColor() *Color { return m.backgroundColor }

// Tilesets returns the map's tilesets in document order.
func (m *Map) Tilesets() []Tileset { return m.tilesets }

// Layers returns the map's tile layers in document order.
func (m *Map) Layers() []Layer { return m.layers }

// ImageLayers returns the map's image layers in document order.
func (m *Map) ImageLayers() []ImageLayer { return m.imageLayers }

// ObjectGroups returns the map's object groups in document order.
func (m *Map) ObjectGroups() []ObjectGroup { return m.objectGroups }

// Properties returns the map's properties in document order.
func (m *Map) Properties() []Property { return m.properties.list }

// Property looks up a map property by name.
func (m *Map) Property(name string) (Property, bool) { return m.properties.get(name) }

func (m *Map) readAttr(name, value string) error {
	switch name {
	case "version":
		m.version = value
	case "orientation":
		orientation, err := parseOrientation(value)
		if err != nil {
			return err
		}
		m.orientation = orientation
	case "renderorder":
		order, err := parseRenderOrder(value)
		if err != nil {
			return err
		}
		m.renderOrder = order
	case "width":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		m.width = width
	case "height":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		m.height = height
	case "tilewidth":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		m.tileWidth = width
	case "tileheight":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		m.tileHeight = height
	case "nextobjectid":
		id, err := parseUint(value)
		if err != nil {
			return err
		}
		m.nextObjectID = id
	case "hexsidelength":
		length, err := parseUint(value)
		if err != nil {
			return err
		}
		m.hexSideLength = &length
	case "staggeraxis":
		axis, err := parseAxis(value)
		if err != nil {
			return err
		}
		m.staggerAxis = &axis
	case "staggerindex":
		index, err := parseStaggerIndex(value)
		if err != nil {
			return err
		}
		m.staggerIndex = &index
	case "backgroundcolor":
		color, err := ParseColor(value)
		if err != nil {
			return err
		}
		m.backgroundColor = &color
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (m *Map) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "tileset":
		ts := newTileset()
		if err := r.readElement(ts, start); err != nil {
			return err
		}
		m.tilesets = append(m.tilesets, *ts)
	case "layer":
		layer := newLayer()
		if err := r.readElement(&layer, start); err != nil {
			return err
		}
		m.layers = append(m.layers, layer)
	case "imagelayer":
		layer := newImageLayer()
		if err := r.readElement(&layer, start); err != nil {
			return err
		}
		m.imageLayers = append(m.imageLayers, layer)
	case "objectgroup":
		group := newObjectGroup()
		if err := r.readElement(&group, start); err != nil {
			return err
		}
		m.objectGroups = append(m.objectGroups, group)
	case "properties":
		return r.readElement(&m.properties, start)
	default:
		return r.skip()
	}
	return nil
}
