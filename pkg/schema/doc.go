// Package schema validates serialized widget props against the contract expected
// by the rendering layer.
//
// It defines a small type system (string, int, float, bool, nullable, slices and
// nested objects) plus custom validators. A Schema maps prop keys to types:
//
//	contract := schema.Schema{
//	    "component": schema.Literal("ChartWidget"),
//	    "height":    schema.Nullable(schema.Int()),
//	    "data":      schema.Object(schema.Schema{"labels": schema.Slice(schema.String())}),
//	}
//
//	if err := schema.Validate(contract, props); err != nil {
//	    for _, e := range schema.ValidationErrors(err) {
//	        log.Println(e)
//	    }
//	}
//
// Contracts for the built-in widgets are available through For. Their Strict
// variants additionally reject non-positive column counts, bar thickness and
// polling intervals, which the builders themselves accept.
package schema
