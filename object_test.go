package tmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapWithObjects(t *testing.T) *Map {
	t.Helper()
	m, err := ParseMap([]byte(`<map>
        <objectgroup>
            <object/>
            <object id="1" name="obj" type="ty"
                    x="1" y="2" width="3" height="4"
                    rotation="0.707" visible="0"
                    gid="123"/>
            <object>
                <properties>
                    <property name="prop1" value="val1"/>
                </properties>
            </object>
            <object>
                <ellipse/>
            </object>
            <object>
                <polygon points="0,1 2,3 4,5"/>
            </object>
            <object>
                <polyline points="0,1 2,3 4,5"/>
            </object>
        </objectgroup>
    </map>`))
	require.NoError(t, err)
	return m
}

func TestObjectDefaults(t *testing.T) {
	groups := mapWithObjects(t).ObjectGroups()
	require.Len(t, groups, 1)
	objects := groups[0].Objects()
	require.Len(t, objects, 6)

	object := objects[0]
	assert.True(t, object.IsVisible())
	_, ok := object.Gid()
	assert.False(t, ok)
	assert.Empty(t, object.Properties())
	assert.Nil(t, object.Shape())
}

func TestObjectAttributes(t *testing.T) {
	objects := mapWithObjects(t).ObjectGroups()[0].Objects()
	require.Len(t, objects, 6)

	object := objects[1]
	assert.Equal(t, uint32(1), object.ID())
	assert.Equal(t, "obj", object.Name())
	assert.Equal(t, "ty", object.Type())
	assert.Equal(t, float64(1), object.X())
	assert.Equal(t, float64(2), object.Y())
	assert.Equal(t, float64(3), object.Width())
	assert.Equal(t, float64(4), object.Height())
	assert.InDelta(t, 0.707, object.Rotation(), 0.0001)
	assert.False(t, object.IsVisible())

	gid, ok := object.Gid()
	assert.True(t, ok)
	assert.Equal(t, uint32(123), gid)
}

func TestObjectProperties(t *testing.T) {
	objects := mapWithObjects(t).ObjectGroups()[0].Objects()
	require.Len(t, objects, 6)

	props := objects[2].Properties()
	require.Len(t, props, 1)
	assert.Equal(t, "prop1", props[0].Name())
	assert.Equal(t, "val1", props[0].Value())
}

func TestObjectShapes(t *testing.T) {
	objects := mapWithObjects(t).ObjectGroups()[0].Objects()
	require.Len(t, objects, 6)

	ellipse := objects[3].Shape()
	require.NotNil(t, ellipse)
	assert.Equal(t, EllipseShape, ellipse.Kind())
	assert.Empty(t, ellipse.Points())

	polygon := objects[4].Shape()
	require.NotNil(t, polygon)
	assert.Equal(t, PolygonShape, polygon.Kind())
	assert.Equal(t, []Point{{0, 1}, {2, 3}, {4, 5}}, polygon.Points())

	polyline := objects[5].Shape()
	require.NotNil(t, polyline)
	assert.Equal(t, PolylineShape, polyline.Kind())
	assert.Equal(t, []Point{{0, 1}, {2, 3}, {4, 5}}, polyline.Points())
}

func TestObjectBadPolygonPoints(t *testing.T) {
	_, err := ParseMap([]byte(`<map><objectgroup>
        <object><polygon points="0,1 2"/></object>
    </objectgroup></map>`))
	require.Error(t, err)
	assert.IsType(t, &InvalidPointError{}, err)
}

func TestEllipseRejectsAttributes(t *testing.T) {
	_, err := ParseMap([]byte(`<map><objectgroup>
        <object><ellipse points="0,1"/></object>
    </objectgroup></map>`))
	require.Error(t, err)
	assert.IsType(t, &UnknownAttributeError{}, err)
}

func TestObjectUnknownAttribute(t *testing.T) {
	_, err := ParseMap([]byte(`<map><objectgroup><object z="1"/></objectgroup></map>`))
	require.Error(t, err)
	assert.IsType(t, &UnknownAttributeError{}, err)
}
