package tmx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleValidTileset(t *testing.T) *Tileset {
	t.Helper()
	ts, err := ParseTileset([]byte(`<tileset firstgid="1"
                name="simple"
                source="some_file.tsx"
                tilewidth="32"
                tileheight="16"
                spacing="4"
                margin="2"
                tilecount="100"
                columns="24">
    </tileset>`))
	require.NoError(t, err)
	return ts
}

func TestTilesetAttributes(t *testing.T) {
	ts := simpleValidTileset(t)
	assert.Equal(t, uint32(1), ts.FirstGid())
	assert.Equal(t, "simple", ts.Name())
	assert.Equal(t, "some_file.tsx", ts.Source())
	assert.Equal(t, uint32(32), ts.TileWidth())
	assert.Equal(t, uint32(16), ts.TileHeight())
	assert.Equal(t, uint32(4), ts.Spacing())
	assert.Equal(t, uint32(2), ts.Margin())
	assert.Equal(t, uint32(100), ts.TileCount())
	assert.Equal(t, uint32(24), ts.Columns())
}

func TestTilesetImage(t *testing.T) {
	ts, err := ParseTileset([]byte(`<tileset>
        <image format="png"
               source="some_file.png"
               trans="FF00FF"
               width="1024"
               height="768">
            <data encoding="base64" compression="gzip"></data>
        </image>
    </tileset>`))
	require.NoError(t, err)

	image := ts.Image()
	require.NotNil(t, image)
	assert.Equal(t, "png", image.Format())
	assert.Equal(t, "some_file.png", image.Source())
	require.NotNil(t, image.Trans())
	assert.Equal(t, Color{A: 255, R: 255, G: 0, B: 255}, *image.Trans())
	assert.Equal(t, uint32(1024), image.Width())
	assert.Equal(t, uint32(768), image.Height())
	assert.NotNil(t, image.Data())
}

func TestTilesetProperties(t *testing.T) {
	ts, err := ParseTileset([]byte(`<tileset>
        <properties>
            <property name="prop1_name" value="prop1_value"/>
            <property name="prop2_name" value="0" type="int"/>
            <property name="prop3_name" value="0.0" type="float"/>
            <property name="prop4_name" value="true" type="bool"/>
        </properties>
    </tileset>`))
	require.NoError(t, err)

	props := ts.Properties()
	require.Len(t, props, 4)
	assert.Equal(t, "prop1_name", props[0].Name())
	assert.Equal(t, "prop1_value", props[0].Value())
	assert.Equal(t, StringProperty, props[0].Type())
	assert.Equal(t, IntProperty, props[1].Type())
	assert.Equal(t, FloatProperty, props[2].Type())
	assert.Equal(t, BoolProperty, props[3].Type())
}

func TestTilesetTileOffset(t *testing.T) {
	ts, err := ParseTileset([]byte(`<tileset>
        <tileoffset x="0" y="1"/>
    </tileset>`))
	require.NoError(t, err)

	offset := ts.TileOffset()
	require.NotNil(t, offset)
	assert.Equal(t, int32(0), offset.X())
	assert.Equal(t, int32(1), offset.Y())
}

func TestTilesetTerrainTypes(t *testing.T) {
	ts, err := ParseTileset([]byte(`
    <tileset>
        <terraintypes>
            <terrain name="terrain1"/>
            <terrain tile="tile-id">
                <properties>
                    <property/>
                </properties>
            </terrain>
        </terraintypes>
    </tileset>`))
	require.NoError(t, err)

	terrains := ts.TerrainTypes()
	require.Len(t, terrains, 2)
	assert.Equal(t, "terrain1", terrains[0].Name())
	assert.Equal(t, "tile-id", terrains[1].Tile())
	assert.Len(t, terrains[1].Properties(), 1)
}

func TestTilesetTiles(t *testing.T) {
	ts, err := ParseTileset([]byte(`
    <tileset>
        <tile id="123">
            <properties>
                <property name="some_name" value="some_value"/>
            </properties>
        </tile>
        <tile>
            <image source="some_file.png" width="8" height="16"/>
        </tile>
        <tile>
            <objectgroup/>
        </tile>
        <tile>
            <animation>
                <frame tileid="123" duration="500"/>
            </animation>
        </tile>
        <tile probability="0.5"/>
        <tile terrain="0,1,2,3"/>
    </tileset>`))
	require.NoError(t, err)

	tiles := ts.Tiles()
	require.Len(t, tiles, 6)

	tile1 := tiles[0]
	assert.Equal(t, uint32(123), tile1.ID())
	assert.Len(t, tile1.Properties(), 1)

	tile2 := tiles[1]
	require.NotNil(t, tile2.Image())
	assert.Equal(t, uint32(8), tile2.Image().Width())

	assert.NotNil(t, tiles[2].ObjectGroup())

	tile4 := tiles[3]
	require.NotNil(t, tile4.Animation())
	frame := tile4.Animation().Frame()
	require.NotNil(t, frame)
	assert.Equal(t, uint32(123), frame.TileID())
	assert.Equal(t, uint32(500), frame.Duration())

	probability, ok := tiles[4].Probability()
	assert.True(t, ok)
	assert.InDelta(t, 0.5, probability, 0.0001)
	_, ok = tiles[0].Probability()
	assert.False(t, ok)

	terrain := tiles[5].Terrain()
	require.NotNil(t, terrain)
	assert.Equal(t, Corners{TopLeft: 0, TopRight: 1, BottomLeft: 2, BottomRight: 3}, *terrain)
}

func TestTilesetUnknownAttribute(t *testing.T) {
	_, err := ParseTileset([]byte(`<tileset grid="fine"/>`))
	require.Error(t, err)
	assert.IsType(t, &UnknownAttributeError{}, err)
}

func TestTilesetBadFirstGid(t *testing.T) {
	_, err := ParseTileset([]byte(`<tileset firstgid="-1"/>`))
	require.Error(t, err)
	assert.IsType(t, &InvalidNumberError{}, err)
}

func TestParseTilesetWrongRoot(t *testing.T) {
	_, err := ParseTileset([]byte(`<map/>`))
	require.Error(t, err)
	assert.IsType(t, &BadXmlError{}, err)
}
