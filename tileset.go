package tmx

import "encoding/xml"

// Tileset is a catalog of reusable tiles, addressed from layer data by
// a first global id offset. A tileset referenced through Source is an
// external file; resolving it is the caller's concern.
type Tileset struct {
	firstGid     uint32
	name         string
	source       string
	tileWidth    uint32
	tileHeight   uint32
	spacing      uint32
	margin       uint32
	tileCount    uint32
	columns      uint32
	image        *Image
	tileOffset   *TileOffset
	tiles        []Tile
	terrainTypes []Terrain
	properties   propertySet
}

func newTileset() *Tileset {
	return &Tileset{}
}

// FirstGid returns the first global tile id of this tileset.
func (t *Tileset) FirstGid() uint32 { return t.firstGid }

// Name returns the tileset's name.
func (t *Tileset) Name() string { return t.name }

// Source returns the path of an external tileset file, empty for
// embedded tilesets.
func (t *Tileset) Source() string { return t.source }

// TileWidth returns the width of each tile in pixels.
func (t *Tileset) TileWidth() uint32 { return t.tileWidth }

// TileHeight returns the height of each tile in pixels.
func (t *Tileset) TileHeight() uint32 { return t.tileHeight }

// Spacing returns the pixel spacing between tiles in the source image.
func (t *Tileset) Spacing() uint32 { return t.spacing }

// Margin returns the pixel margin around tiles in the source image.
func (t *Tileset) Margin() uint32 { return t.margin }

// TileCount returns the number of tiles in the tileset.
func (t *Tileset) TileCount() uint32 { return t.tileCount }

// Columns returns the number of tile columns in the source image.
func (t *Tileset) Columns() uint32 { return t.columns }

// Image returns the tileset's source image, or nil.
func (t *Tileset) Image() *Image { return t.image }

// TileOffset returns the per-tile drawing offset, or nil.
func (t *Tileset) TileOffset() *TileOffset { return t.tileOffset }

// Tiles returns the tileset's tiles in document order.
func (t *Tileset) Tiles() []Tile { return t.tiles }

// TerrainTypes returns the tileset's terrain types in document order.
func (t *Tileset) TerrainTypes() []Terrain { return t.terrainTypes }

// Properties returns the tileset's properties in document order.
func (t *Tileset) Properties() []Property { return t.properties.list }

// Property looks up a tileset property by name.
func (t *Tileset) Property(name string) (Property, bool) { return t.properties.get(name) }

func (t *Tileset) readAttr(name, value string) error {
	switch name {
	case "firstgid":
		gid, err := parseUint(value)
		if err != nil {
			return err
		}
		t.firstGid = gid
	case "name":
		t.name = value
	case "source":
		t.source = value
	case "tilewidth":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		t.tileWidth = width
	case "tileheight":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		t.tileHeight = height
	case "spacing":
		spacing, err := parseUint(value)
		if err != nil {
			return err
		}
		t.spacing = spacing
	case "margin":
		margin, err := parseUint(value)
		if err != nil {
			return err
		}
		t.margin = margin
	case "tilecount":
		count, err := parseUint(value)
		if err != nil {
			return err
		}
		t.tileCount = count
	case "columns":
		columns, err := parseUint(value)
		if err != nil {
			return err
		}
		t.columns = columns
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (t *Tileset) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "image":
		var image Image
		if err := r.readElement(&image, start); err != nil {
			return err
		}
		t.image = &image
	case "tileoffset":
		var offset TileOffset
		if err := r.readElement(&offset, start); err != nil {
			return err
		}
		t.tileOffset = &offset
	case "tile":
		var tile Tile
		if err := r.readElement(&tile, start); err != nil {
			return err
		}
		t.tiles = append(t.tiles, tile)
	case "terraintypes":
		return r.readElement(&terrainTypes{tileset: t}, start)
	case "properties":
		return r.readElement(&t.properties, start)
	default:
		return r.skip()
	}
	return nil
}

// terrainTypes is the <terraintypes> container; it only collects
// <terrain> children into its owning tileset.
type terrainTypes struct {
	tileset *Tileset
}

func (c *terrainTypes) readAttr(name, value string) error {
	return &UnknownAttributeError{Name: name}
}

func (c *terrainTypes) readChild(r *reader, start xml.StartElement) error {
	if start.Name.Local != "terrain" {
		return r.skip()
	}
	var terrain Terrain
	if err := r.readElement(&terrain, start); err != nil {
		return err
	}
	c.tileset.terrainTypes = append(c.tileset.terrainTypes, terrain)
	return nil
}

// Terrain is a named terrain classification referenced by per-tile
// corner indices.
type Terrain struct {
	name       string
	tile       string
	properties propertySet
}

// Name returns the terrain's name.
func (t *Terrain) Name() string { return t.name }

// Tile returns the terrain's representative tile reference.
func (t *Terrain) Tile() string { return t.tile }

// Properties returns the terrain's properties in document order.
func (t *Terrain) Properties() []Property { return t.properties.list }

func (t *Terrain) readAttr(name, value string) error {
	switch name {
	case "name":
		t.name = value
	case "tile":
		t.tile = value
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (t *Terrain) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "properties":
		return r.readElement(&t.properties, start)
	default:
		return r.skip()
	}
}

// Tile is one tile's metadata within a tileset.
type Tile struct {
	id          uint32
	probability *float32
	terrain     *Corners
	image       *Image
	objectGroup *ObjectGroup
	animation   *Animation
	properties  propertySet
}

// ID returns the tile's local id within its tileset.
func (t *Tile) ID() uint32 { return t.id }

// Probability returns the tile's terrain-fill probability.
func (t *Tile) Probability() (float32, bool) {
	if t.probability == nil {
		return 0, false
	}
	return *t.probability, true
}

// Terrain returns the tile's four corner terrain indices, or nil.
func (t *Tile) Terrain() *Corners { return t.terrain }

// Image returns the tile's own image, or nil.
func (t *Tile) Image() *Image { return t.image }

// ObjectGroup returns the tile's collision objects, or nil.
func (t *Tile) ObjectGroup() *ObjectGroup { return t.objectGroup }

// Animation returns the tile's animation, or nil.
func (t *Tile) Animation() *Animation { return t.animation }

// Properties returns the tile's properties in document order.
func (t *Tile) Properties() []Property { return t.properties.list }

// Property looks up a tile property by name.
func (t *Tile) Property(name string) (Property, bool) { return t.properties.get(name) }

func (t *Tile) readAttr(name, value string) error {
	switch name {
	case "id":
		id, err := parseUint(value)
		if err != nil {
			return err
		}
		t.id = id
	case "probability":
		probability, err := parseFloat32(value)
		if err != nil {
			return err
		}
		t.probability = &probability
	case "terrain":
		corners, err := parseCorners(value)
		if err != nil {
			return err
		}
		t.terrain = &corners
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (t *Tile) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "image":
		var image Image
		if err := r.readElement(&image, start); err != nil {
			return err
		}
		t.image = &image
	case "objectgroup":
		group := newObjectGroup()
		if err := r.readElement(&group, start); err != nil {
			return err
		}
		t.objectGroup = &group
	case "animation":
		var animation Animation
		if err := r.readElement(&animation, start); err != nil {
			return err
		}
		t.animation = &animation
	case "properties":
		return r.readElement(&t.properties, start)
	default:
		return r.skip()
	}
	return nil
}

// TileOffset is the pixel offset applied when drawing a tileset's
// tiles.
type TileOffset struct {
	x int32
	y int32
}

// X returns the horizontal offset in pixels.
func (o *TileOffset) X() int32 { return o.x }

// Y returns the vertical offset in pixels.
func (o *TileOffset) Y() int32 { return o.y }

func (o *TileOffset) readAttr(name, value string) error {
	switch name {
	case "x":
		x, err := parseInt(value)
		if err != nil {
			return err
		}
		o.x = x
	case "y":
		y, err := parseInt(value)
		if err != nil {
			return err
		}
		o.y = y
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (o *TileOffset) readChild(r *reader, start xml.StartElement) error {
	return r.skip()
}

// Animation is a tile's animation element.
type Animation struct {
	frame *Frame
}

// Frame returns the animation's frame, or nil.
func (a *Animation) Frame() *Frame { return a.frame }

func (a *Animation) readAttr(name, value string) error {
	return &UnknownAttributeError{Name: name}
}

func (a *Animation) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "frame":
		var frame Frame
		if err := r.readElement(&frame, start); err != nil {
			return err
		}
		a.frame = &frame
	default:
		return r.skip()
	}
	return nil
}

// Frame shows one tile for a duration within an animation.
type Frame struct {
	tileID   uint32
	duration uint32
}

// TileID returns the local id of the tile shown by this frame.
func (f *Frame) TileID() uint32 { return f.tileID }

// Duration returns how long the frame is shown, in milliseconds.
func (f *Frame) Duration() uint32 { return f.duration }

func (f *Frame) readAttr(name, value string) error {
	switch name {
	case "tileid":
		id, err := parseUint(value)
		if err != nil {
			return err
		}
		f.tileID = id
	case "duration":
		duration, err := parseUint(value)
		if err != nil {
			return err
		}
		f.duration = duration
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (f *Frame) readChild(r *reader, start xml.StartElement) error {
	return r.skip()
}
