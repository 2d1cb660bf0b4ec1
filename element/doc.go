// Package element decodes the engine's self-describing data elements into
// native Go value trees.
//
// The external messaging engine delivers every message field as an opaque,
// tree-shaped Element: a node tagged with a schema datatype that may be a
// scalar, a keyed record of named sub-elements, or a homogeneous array of
// either. This package walks that tree once per message and produces one
// Value per call, with deterministic coverage of every declared datatype
// including high-precision datetimes (see the hptime package) and raw byte
// payloads.
//
// # Architecture
//
// This package follows the "accept interfaces, return structs" design pattern:
//   - Element interface: the engine-owned node the decoder reads
//   - ElementDecoder interface: the decoding contract for consumers
//   - Decoder struct: concrete implementation of ElementDecoder
//   - NewDecoder constructor: returns *Decoder (concrete type)
//   - FX module: provides both *Decoder and ElementDecoder for dependency injection
//
// # Decoding rules
//
// Classification precedence is null, then array, then complex, then scalar:
//
//   - a null element decodes to the absent value regardless of datatype
//   - an array element decodes to an ordered list, each slot decoded as a
//     record or a scalar depending on the array's schema type definition
//   - a complex element decodes to an ordered record whose field order is
//     the schema's declaration order
//   - anything else is a scalar read at slot 0 through the accessor
//     matching its datatype
//
// Errors are total and immediate: the first accessor failure, unsupported
// datatype or datetime conversion failure aborts the decode, partially
// built containers are discarded, and the caller receives a single
// *DecodeError classifiable with errors.Is.
//
// # Direct Usage
//
//	dec := element.NewDecoder(element.Config{ServiceName: "ticker-feed"})
//
//	value, err := dec.Decode(ctx, msgElement)
//	if err != nil {
//	    // drop the message, log the DecodeError
//	}
//	bid, _ := value.Field("BID")
//
// The decoder is synchronous and lock-free; it runs on whatever thread the
// engine delivers a message on and is safe to share between goroutines.
package element
