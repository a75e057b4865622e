package tmx

import "encoding/xml"

// Property is a named metadata value. The value is kept as a string;
// Type tells the caller how to reinterpret it.
type Property struct {
	name         string
	value        string
	propertyType PropertyType
}

// Name returns the property's name.
func (p *Property) Name() string { return p.name }

// Value returns the property's raw string value.
func (p *Property) Value() string { return p.value }

// Type returns the property's type tag (string when untagged).
func (p *Property) Type() PropertyType { return p.propertyType }

func (p *Property) readAttr(name, value string) error {
	switch name {
	case "name":
		p.name = value
	case "value":
		p.value = value
	case "type":
		p.propertyType = parsePropertyType(value)
	default:
		return &UnknownAttributeError{Name: name}
	}
	return nil
}

func (p *Property) readChild(r *reader, start xml.StartElement) error {
	return r.skip()
}

// propertySet is the <properties> container: insertion-ordered and
// name-unique. A duplicate name replaces the earlier entry in place.
type propertySet struct {
	list []Property
}

func (s *propertySet) add(p Property) {
	for i := range s.list {
		if s.list[i].name == p.name {
			s.list[i] = p
			return
		}
	}
	s.list = append(s.list, p)
}

// get returns the property with the given name.
func (s *propertySet) get(name string) (Property, bool) {
	for _, p := range s.list {
		if p.name == name {
			return p, true
		}
	}
	return Property{}, false
}

func (s *propertySet) readAttr(name, value string) error {
	return &UnknownAttributeError{Name: name}
}

func (s *propertySet) readChild(r *reader, start xml.StartElement) error {
	if start.Name.Local != "property" {
		return r.skip()
	}
	var p Property
	if err := r.readElement(&p, start); err != nil {
		return err
	}
	s.add(p)
	return nil
}
