// Package collection provides containers for identity-bearing elements.
//
// # Overview
//
// [Collection] is the contract shared by all identifiable collections: add,
// remove, membership, lookup by ID and predecessor/successor navigation.
// [ListSequence] implements it as a doubly linked list whose order is the
// insertion order, independent of element IDs.
//
// Membership is decided by the element's Equals method, never by its ID. Two
// different elements may share an ID; [Collection.FindByID] then returns the
// first one in iteration order.
//
// Lookup by ID and lookup by position are separate operations:
// [Collection.FindByID] scans for an element whose ID matches, while
// [ListSequence.AtPosition] indexes the sequence.
//
// # Usage
//
//	seq := collection.NewListSequence[*Edge]()
//	seq.Add(a)
//	seq.Add(b)
//	seq.Add(c)
//
//	prev := seq.Predecessor(c)   // Some(b)
//	next := seq.Successor(c)     // None
//	first, _ := seq.RemoveFirst() // a
//
//	for edge := range seq.Seq() {
//	    fmt.Println(edge.ID())
//	}
//
// Elements are stored by reference. [ListSequence.CloneWith] and [Clone]
// produce deep copies that share no elements with the source.
//
// # Thread safety
//
// None of the types in this package are safe for concurrent use. Callers
// that share a collection between goroutines must synchronize access.
package collection
