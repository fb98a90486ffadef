package memory

import (
	"classroom/pkg/common"

	"github.com/google/btree"
)

// Item is one record slot inside a name group, ordered by
// (Age, Seq, Slot). Seq is the insertion position of the group's key and
// Slot the record's position inside the group, so an ascending walk over a
// single age visits groups in key-insertion order.
type Item struct {
	Age  int
	Seq  int
	Slot int
	Rec  common.Record
}

func (i Item) Less(than btree.Item) bool {
	o := than.(Item)
	if i.Age != o.Age {
		return i.Age < o.Age
	}
	if i.Seq != o.Seq {
		return i.Seq < o.Seq
	}
	return i.Slot < o.Slot
}

// AgeTable is the secondary index used by age queries.
type AgeTable struct {
	tree *btree.BTree
}

func NewAgeTable(degree int) *AgeTable {
	return &AgeTable{
		tree: btree.New(degree),
	}
}

// PutGroup indexes every record of the group registered at position seq.
func (at *AgeTable) PutGroup(seq int, recs []common.Record) {
	for slot, r := range recs {
		at.tree.ReplaceOrInsert(Item{Age: r.Age, Seq: seq, Slot: slot, Rec: r})
	}
}

func (at *AgeTable) Lookup(age int) []common.Record {
	res := make([]common.Record, 0)
	at.tree.AscendRange(Item{Age: age}, Item{Age: age + 1}, func(i btree.Item) bool {
		res = append(res, i.(Item).Rec)
		return true
	})
	return res
}

// Ascend visits every indexed record ordered by age, then by group.
// Returning false from fn stops the walk.
func (at *AgeTable) Ascend(fn func(rec common.Record) bool) {
	at.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(Item).Rec)
	})
}

func (at *AgeTable) Size() int {
	return at.tree.Len()
}

func (at *AgeTable) Type() string {
	return "BTree"
}
