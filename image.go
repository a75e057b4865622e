package tmx

import "encoding/xml"

// Image describes a source image, either referenced by path or embedded
// through a <data> child.
type Image struct {
	format string
	source string
	trans  *Color
	width  uint32
	height uint32
	data   *Data
}

// Format returns the image format, e.g. "png".
func (i *Image) Format() string { return i.format }

// Source returns the path of the referenced image file.
func (i *Image) Source() string { return i.source }

// Trans returns the color to treat as transparent, or nil.
func (i *Image) Trans() *Color { return i.trans }

// Width returns the image width in pixels.
func (i *Image) Width() uint32 { return i.width }

// Height returns the image height in pixels.
func (i *Image) Height() uint32 { return i.height }

// Data returns the embedded image payload, or nil.
func (i *Image) Data() *Data { return i.data }

func (i *Image) readAttr(name, value string) error {
	switch name {
	case "format":
		i.format = value
	case "source":
		i.source = value
	case "trans":
		color, err := ParseColor(value)
		if err != nil {
			return err
		}
		i.trans = &color
	case "width":
		width, err := parseUint(value)
		if err != nil {
			return err
		}
		i.width = width
	case "height":
		height, err := parseUint(value)
		if err != nil {
			return err
		}
		i.height = height
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (i *Image) readChild(r *reader, start xml.StartElement) error {
	switch start.Name.Local {
	case "data":
		var data Data
		if err := r.readElement(&data, start); err != nil {
			return err
		}
		i.data = &data
	default:
		return r.skip()
	}
	return nil
}
