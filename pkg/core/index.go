package core

import "classroom/pkg/common"

// Index abstracts the secondary age index so the store does not depend on
// the concrete tree.
type Index interface {
	PutGroup(seq int, recs []common.Record)
	Lookup(age int) []common.Record
	Ascend(fn func(rec common.Record) bool)
	Size() int
	Type() string // "BTree"
}
