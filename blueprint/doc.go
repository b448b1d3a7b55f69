// Package blueprint models the external blueprint-string wire format
// and its codec. The document shape is a hard compatibility contract
// with the game's circuit simulator and is reproduced field for field.
//
// What:
//
//   - Blueprint wraps one Book: icons, entities, wires, the literal
//     item name "blueprint" and a fixed version magic the game accepts.
//   - Entity is one placed unit (combinator, lamp, substation) with a
//     numeric entity_number, a position and kind-specific
//     control_behavior. Entity numbers are assigned by the synthesis
//     engine and are never renumbered here.
//   - Wire is a [from_id, from_connector, to_id, to_connector] 4-tuple.
//     Connector ids name one of a small closed set of logical buses;
//     endpoints sharing a connector pair observe combined state.
//
// Codec:
//
//	Encode: JSON (UTF-8) → zlib deflate, max compression → std base64
//	        with padding → prepend the version character '0'.
//	Decode: the exact inverse. Round-tripping a document yields a
//	        structurally identical document.
//
// Errors:
//
//   - ErrSerialize: the document cannot be rendered/compressed; the
//     cause is wrapped, nothing partial is returned.
//   - ErrVersion: the string does not start with the supported version
//     character.
//   - ErrDecode: base64, zlib or JSON decoding failed on the way back.
package blueprint
