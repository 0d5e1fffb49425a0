// Package svg converts SVG path geometry into polylines: ordered sequences
// of points that approximate lines and curves within a tolerance. The
// output suits devices that only draw straight segments, such as pen
// plotters, laser cutters and CNC tool paths.
//
// # Pipeline
//
// Path data (the "d" attribute) goes through two stages:
//
//   - [Commands] tokenizes the data into [PathCommand] values with absolute
//     coordinates, resolving relative coordinates, implicit repetition,
//     H/V lines and the reflected control points of S/T.
//   - [Flatten] turns the commands into [Polyline] values. Lines are copied
//     as is; quadratic and cubic Béziers are subdivided until every piece
//     is within the tolerance of its chord; arcs are first converted to at
//     most four cubic Béziers.
//
// [FlattenPathData] runs both stages. [Parse] and [ParseDocument] walk a
// whole SVG document and convert each path element independently.
//
// # Errors
//
// Malformed path data is the only failure of the core and is reported as a
// [*MalformedPathDataError]. Degenerate geometry (zero length segments,
// single point subpaths, zero radius arcs) is normalized silently.
//
// # Serialization
//
// Polylines encode to JSON as arrays of {"x", "y"} records, see [WriteJSON].
package svg
