package ordmap

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/mrpandey/goalds/bst"
)

const benchN = 100_000

func BenchmarkMap_PutErase(b *testing.B) {
	m := New[int, struct{}](intLess)
	for i := 0; i < benchN; i++ {
		m.Put(i, struct{}{})
	}
	i := 0
	for b.Loop() {
		m.Erase(i % benchN)
		i++
	}
}

func BenchmarkGoDSRedBlackTree_PutRemove(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	for i := 0; i < benchN; i++ {
		tree.Put(i, struct{}{})
	}
	i := 0
	for b.Loop() {
		tree.Remove(i % benchN)
		i++
	}
}

func BenchmarkGoaldsRBTree_InsertDelete(b *testing.B) {
	tree := bst.NewRBTree[int]()
	for i := 0; i < benchN; i++ {
		tree.Insert(i)
	}
	i := 0
	for b.Loop() {
		_ = tree.Delete(i % benchN)
		i++
	}
}

func BenchmarkMap_Put(b *testing.B) {
	m := New[int, struct{}](intLess)
	i := 0
	for b.Loop() {
		m.Put(i, struct{}{})
		i++
	}
}

func BenchmarkGoDSRedBlackTree_Put(b *testing.B) {
	tree := redblacktree.NewWithIntComparator()
	i := 0
	for b.Loop() {
		tree.Put(i, struct{}{})
		i++
	}
}

func BenchmarkGoaldsRBTree_Insert(b *testing.B) {
	tree := bst.NewRBTree[int]()
	i := 0
	for b.Loop() {
		tree.Insert(i)
		i++
	}
}

func BenchmarkMap_Rehash(b *testing.B) {
	m := New[int, struct{}](intLess)
	for i := 0; i < benchN; i++ {
		m.Put(i, struct{}{})
	}
	for i := 0; i < benchN; i += 2 {
		m.Erase(i)
	}
	for b.Loop() {
		m.Rehash()
		for i := 0; i < benchN; i += 2 {
			m.Erase(i)
		}
	}
}
