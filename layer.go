package tmx

import "encoding/xml"

// Layer is a grid of tile references covering the map.
type Layer struct {
	name       string
	opacity    float32
	visible    bool
	offsetX    int32
	offsetY    int32
	x          int32
	y          int32
	width      uint32
	height     uint32
	data       *Data
	properties propertySet
}

func newLayer() Layer {
	return Layer{opacity: 1, visible: true}
}

// Name returns the layer's name.
func (l *Layer) Name() string { return l.name }

// Opacity returns the layer's opacity, 1.0 when unset.
func (l *Layer) Opacity() float32 { return l.opacity }

// IsVisible reports whether the layer is shown, true when unset.
func (l *Layer) IsVisible() bool { return l.visible }

// OffsetX returns the horizontal rendering offset in pixels.
func (l *Layer) OffsetX() int32 { return l.offsetX }

// OffsetY returns the vertical rendering offset in pixels.
func (l *Layer) OffsetY() int32 { return l.offsetY }

// X returns the layer's x position in tiles.
func (l *Layer) X() int32 { return l.x }

// Y returns the layer's y position in tiles.
func (l *Layer) Y() int32 { return l.y }

// Width returns the layer width in tiles.
func (l *Layer) Width() uint32 { return l.width }

// Height returns the layer height in tiles.
func (l *Layer) Height() uint32 { return l.height }

// Data returns the layer's tile data, or nil.
func (l *Layer) Data() *Data { return l.data }

// Properties returns the layer's properties in document order.
func (l *Layer) Properties() []Property { return l.properties.list }

// Property looks up a layer property by name.
func (l *Layer) Property(name string) (Property, bool) { return l.properties.get(name) }

func (l *Layer) readAttr(name, value string) error {
	switch name {
	case "name":
		l.name = value
	case "opacity":
		opacity, err := parseFloat32(value)
		if err != nil {
			return err
		}
		l.opacity = opacity
	case "visible":
		visible, err := parseBool(value)
		if err != nil {
			return err
		}
		l.visible = visible
	case "offsetx":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		l.offsetX = offset
	case "offsety":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		l.offsetY = offset
	case "x":
		x, err := parseInt(value)
		if err != nil {
			return err
		}
		l.x = x
	case "y":
		y, err := parseInt(value)
		if err != nil {
			return err
		}
		l.y = y
	case "width":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		l.width = width
	case "height":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		l.height = height
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (l *Layer) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "data":
		var data Data
		if err := r.readElement(&data, start); err != nil {
			return err
		}
		l.data = &data
	case "properties":
		return r.readElement(&l.properties, start)
	default:
		return r.skip()
	}
	return nil
}

// ImageLayer is a layer backed by a single image rather than tile data.
type ImageLayer struct {
	name       string
	opacity    float32
	visible    bool
	offsetX    int32
	offsetY    int32
	x          int32
	y          int32
	width      uint32
	height     uint32
	image      *Image
	properties propertySet
}

func newImageLayer() ImageLayer {
	return ImageLayer{opacity: 1, visible: true}
}

// Name returns the image layer's name.
func (l *ImageLayer) Name() string { return l.name }

// Opacity returns the image layer's opacity, 1.0 when unset.
func (l *ImageLayer) Opacity() float32 { return l.opacity }

// IsVisible reports whether the image layer is shown, true when unset.
func (l *ImageLayer) IsVisible() bool { return l.visible }

// OffsetX returns the horizontal rendering offset in pixels.
func (l *ImageLayer) OffsetX() int32 { return l.offsetX }

// OffsetY returns the vertical rendering offset in pixels.
func (l *ImageLayer) OffsetY() int32 { return l.offsetY }

// X returns the image layer's x position in tiles.
func (l *ImageLayer) X() int32 { return l.x }

// Y returns the image layer's y position in tiles.
func (l *ImageLayer) Y() int32 { return l.y }

// Width returns the image layer width in tiles.
func (l *ImageLayer) Width() uint32 { return l.width }

// Height returns the image layer height in tiles.
func (l *ImageLayer) Height() uint32 { return l.height }

// Image returns the layer's image, or nil.
func (l *ImageLayer) Image() *Image { return l.image }

// Properties returns the image layer's properties in document order.
func (l *ImageLayer) Properties() []Property { return l.properties.list }

// Property looks up an image layer property by name.
func (l *ImageLayer) Property(name string) (Property, bool) { return l.properties.get(name) }

func (l *ImageLayer) readAttr(name, value string) error {
	switch name {
	case "name":
		l.name = value
	case "opacity":
		opacity, err := parseFloat32(value)
		if err != nil {
			return err
		}
		l.opacity = opacity
	case "visible":
		visible, err := parseBool(value)
		if err != nil {
			return err
		}
		l.visible = visible
	case "offsetx":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		l.offsetX = offset
	case "offsety":
		offset, err := parseInt(value)
		if err != nil {
			return err
		}
		l.offsetY = offset
	case "x":
		x, err := parseInt(value)
		if err != nil {
			return err
		}
		l.x = x
	case "y":
		y, err := parseInt(value)
		if err != nil {
			return err
		}
		l.y = y
	case "width":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		l.width = width
	case "height":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		l.height = height
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (l *ImageLayer) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "image":
		var image Image
		if err := r.readElement(&image, start); err != nil {
			return err
		}
		l.image = &image
	case "properties":
		return r.readElement(&l.properties, start)
	default:
		return r.skip()
	}
	return nil
}

// Data holds a layer's tile payload: either raw encoded content kept
// verbatim for the caller to decode, or plain <tile> references.
type Data struct {
	encoding    string
	hasEncoding bool
	compression string
	hasCompress bool
	rawContent  string
	hasContent  bool
	tiles       []DataTile
}

// Encoding returns the payload encoding label, e.g. "base64".
func (d *Data) Encoding() (string, bool) { return d.encoding, d.hasEncoding }

// Compression returns the payload compression label, e.g. "gzip".
func (d *Data) Compression() (string, bool) { return d.compression, d.hasCompress }

// RawContent returns the undecoded text payload.
func (d *Data) RawContent() (string, bool) { return d.rawContent, d.hasContent }

// Tiles returns the per-cell tile references in document order. Empty
// when the payload is encoded.
func (d *Data) Tiles() []DataTile { return d.tiles }

func (d *Data) readAttr(name, value string) error {
	switch name {
	case "encoding":
		d.encoding = value
		d.hasEncoding = true
	case "compression":
		d.compression = value
		d.hasCompress = true
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (d *Data) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "tile":
		var tile DataTile
		if err := r.readElement(&tile, start); err != nil {
			return err
		}
		d.tiles = append(d.tiles, tile)
	default:
		return r.skip()
	}
	return nil
}

func (d *Data) readText(text string) {
	d.rawContent += text
	d.hasContent = true
}

// DataTile is one cell's tile reference inside uncompressed layer data.
type DataTile struct {
	gid uint32
}

// Gid returns the referenced global tile id.
func (t *DataTile) Gid() uint32 { return t.gid }

func (t *DataTile) readAttr(name, value string) error {
	switch name {
	case "gid":
		gid, err := parseUint(value)
		if err != nil {
			return err
		}
		t.gid = gid
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (t *DataTile) readChild(r *reader, start xml.StartElement) error {
	return r.skip()
}
