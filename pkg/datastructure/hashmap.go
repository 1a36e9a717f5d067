package datastructure

import (
	"hash/fnv"

	"github.com/lintang-b-s/tourguide/pkg"
)

type hashEntry[T any] struct {
	key   string
	value T
}

/*
HashMap. string keyed map with separate chaining.

before a new key is added, if (size+1)/numBuckets > maxLoadFactor the table is rebuilt with twice the number of
buckets and every entry is rehashed into it. pointers returned by FindPtr/Index point into the bucket storage and are
invalid after any later call that adds a key.
*/
type HashMap[T any] struct {
	buckets       [][]hashEntry[T]
	size          int
	maxLoadFactor float64
}

func NewHashMap[T any](maxLoadFactor float64) *HashMap[T] {
	return newHashMapWithBuckets[T](pkg.DEFAULT_HASHMAP_BUCKETS, maxLoadFactor)
}

func newHashMapWithBuckets[T any](numBuckets int, maxLoadFactor float64) *HashMap[T] {
	if maxLoadFactor <= 0 {
		maxLoadFactor = pkg.DEFAULT_MAX_LOAD_FACTOR
	}
	return &HashMap[T]{
		buckets:       make([][]hashEntry[T], numBuckets),
		maxLoadFactor: maxLoadFactor,
	}
}

func (hm *HashMap[T]) Size() int {
	return hm.size
}

func (hm *HashMap[T]) NumBuckets() int {
	return len(hm.buckets)
}

func (hm *HashMap[T]) MaxLoadFactor() float64 {
	return hm.maxLoadFactor
}

func hashString(key string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return h.Sum64()
}

func (hm *HashMap[T]) bucketOf(key string) int {
	return int(hashString(key) % uint64(len(hm.buckets)))
}

// Insert associates key with value, replacing the previous value if key already exists.
func (hm *HashMap[T]) Insert(key string, value T) {
	if valuePtr := hm.FindPtr(key); valuePtr != nil {
		*valuePtr = value
		return
	}

	if float64(hm.size+1)/float64(len(hm.buckets)) > hm.maxLoadFactor {
		hm.rehash()
	}

	b := hm.bucketOf(key)
	hm.buckets[b] = append(hm.buckets[b], hashEntry[T]{key: key, value: value})
	hm.size++
}

func (hm *HashMap[T]) rehash() {
	newHm := newHashMapWithBuckets[T](len(hm.buckets)*2, hm.maxLoadFactor)
	for _, bucket := range hm.buckets {
		for _, e := range bucket {
			b := newHm.bucketOf(e.key)
			newHm.buckets[b] = append(newHm.buckets[b], e)
			newHm.size++
		}
	}
	*hm = *newHm
}

// Find returns a copy of the value associated with key. It never modifies the map.
func (hm *HashMap[T]) Find(key string) (T, bool) {
	if valuePtr := hm.FindPtr(key); valuePtr != nil {
		return *valuePtr, true
	}
	var zero T
	return zero, false
}

// FindPtr returns a pointer to the stored value, or nil if key is absent.
func (hm *HashMap[T]) FindPtr(key string) *T {
	bucket := hm.buckets[hm.bucketOf(key)]
	for i := range bucket {
		if bucket[i].key == key {
			return &bucket[i].value
		}
	}
	return nil
}

// Index returns a pointer to the value of key, inserting the zero value of T first if key is absent.
func (hm *HashMap[T]) Index(key string) *T {
	if valuePtr := hm.FindPtr(key); valuePtr != nil {
		return valuePtr
	}
	var zero T
	hm.Insert(key, zero)
	return hm.FindPtr(key)
}

// ForEach visits every entry until handle returns false. Order is unspecified.
func (hm *HashMap[T]) ForEach(handle func(key string, value T) bool) {
	for _, bucket := range hm.buckets {
		for _, e := range bucket {
			if !handle(e.key, e.value) {
				return
			}
		}
	}
}
