// Package mapping provides total functions from identities to scalar values,
// stored in a single slice indexed directly by ID.
//
// [IntMapping] and [FloatMapping] cover the domain [0, DomainSize). Reads
// outside the domain fail with errors.ErrOutOfRange and never grow the
// mapping. Writes (Set, Add, Increase, Decrease) to an ID at or beyond the
// domain grow it first, keeping existing values at their IDs and
// zero-filling the new slots. Growth reallocates and copies the backing
// slice, so it costs O(new size); every other operation is O(1) except the
// aggregates and InitializeWith, which are linear.
//
// By default the domain grows to exactly id+1. [WithGrowthPolicy] with
// [GrowDoubling] over-allocates instead, which bounds the total cost of
// writing IDs in increasing order.
//
// A float mapping converts to an integer mapping in two distinct ways:
// [FloatMapping.Round] rounds half away from zero, [TruncateFloatMapping]
// truncates toward zero.
//
//	m, err := mapping.NewIntMapping[*Edge](0, mapping.WithName("capacities"))
//	if err != nil {
//		return err
//	}
//
//	if err := m.Set(edge, 5); err != nil {
//		return err
//	}
//
//	total, err := m.Sum(graph.Edges())
//
// Resize events go to the logger from [WithLogger], or to logger.Get with the
// context from [WithContext]. [WithHashFunc] picks the digest behind HashCode.
//
// Mappings are not safe for concurrent use.
package mapping
