// Package sink writes composed layouts in the layout output contract.
//
// [RenderJSON] serialises a [flier.Layout] together with optional extras:
//
//	data, err := sink.RenderJSON(layout,
//	    sink.WithJSONDecisions(cfg.Decisions),
//	    sink.WithJSONIndent(),
//	)
//
// The zone histogram is always included so consumers can check spread
// without walking the records.
package sink
