package hashing

import "sync"

// ThreadSafeDuplicateDetector wraps DuplicateDetector with mutex protection for concurrent access.
type ThreadSafeDuplicateDetector struct {
	detector *DuplicateDetector
	mu       sync.RWMutex
}

// NewThreadSafeDuplicateDetector creates a new thread-safe detector.
// maxCapacity of 0 means unlimited capacity.
func NewThreadSafeDuplicateDetector(maxCapacity int) *ThreadSafeDuplicateDetector {
	return &ThreadSafeDuplicateDetector{
		detector: NewDuplicateDetector(maxCapacity),
	}
}

// CheckAndAdd atomically checks if a position is a duplicate and records it.
func (d *ThreadSafeDuplicateDetector) CheckAndAdd(sig PositionSignature) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.detector.CheckAndAdd(sig)
}

// DuplicateCount returns the number of duplicates detected.
func (d *ThreadSafeDuplicateDetector) DuplicateCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.DuplicateCount()
}

// UniqueCount returns the number of unique positions.
func (d *ThreadSafeDuplicateDetector) UniqueCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.detector.UniqueCount()
}

// cacheKey identifies a subtree: a position hash and the remaining depth.
type cacheKey struct {
	hash  uint64
	depth int
}

// NodeCache memoises subtree node counts during a perft walk. It is safe for
// concurrent use.
type NodeCache struct {
	mu          sync.RWMutex
	entries     map[cacheKey]uint64
	maxCapacity int
	hits        uint64
}

// NewNodeCache creates a cache holding at most maxCapacity entries
// (0 = unlimited).
func NewNodeCache(maxCapacity int) *NodeCache {
	return &NodeCache{
		entries:     make(map[cacheKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Get returns the stored node count for hash at depth.
func (c *NodeCache) Get(hash uint64, depth int) (uint64, bool) {
	c.mu.RLock()
	nodes, ok := c.entries[cacheKey{hash, depth}]
	c.mu.RUnlock()
	if ok {
		c.mu.Lock()
		c.hits++
		c.mu.Unlock()
	}
	return nodes, ok
}

// Put stores a node count. It is a no-op once the cache is full.
func (c *NodeCache) Put(hash uint64, depth int, nodes uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.maxCapacity > 0 && len(c.entries) >= c.maxCapacity {
		return
	}
	c.entries[cacheKey{hash, depth}] = nodes
}

// Len returns the number of cached entries.
func (c *NodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Hits returns how many lookups were answered from the cache.
func (c *NodeCache) Hits() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hits
}
