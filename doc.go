// Package tmx reads TMX tile-map documents (the Tiled map editor's XML
// format) into a strongly-typed, read-only document model.
//
// The package is structured in three layers:
//
//   - Tokenizer: encoding/xml turns raw bytes into structural events
//     (element start, element end, character data). The model layer
//     never inspects raw bytes.
//   - Reader: a single recursive-descent walker that, for each element,
//     applies the target type's attribute rules and recursively builds
//     recognized child elements. Unknown child elements are skipped for
//     forward compatibility; unknown attributes are an error.
//   - Model: one type per TMX entity (Map, Tileset, Layer, ObjectGroup,
//     Object, Tile, ...) with accessor methods. Entities are mutated
//     only while their element is being read and are immutable once a
//     parse function returns.
//
// Usage:
//
//	m, err := tmx.ParseMap(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(m.Width(), m.Height(), len(m.Layers()))
//
// Encoded layer payloads (base64/gzip) are stored verbatim on Data;
// decoding them, resolving external tileset sources, and validating
// GID cross-references are left to the caller.
package tmx
