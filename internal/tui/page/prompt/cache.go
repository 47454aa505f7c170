package prompt

import "sync"

// renderKey identifies one rendering of a markdown block.
type renderKey struct {
	content string
	width   int
}

// renderCache keeps the most recently rendered markdown blocks so redrawing
// the transcript does not run glamour again for every frame.
type renderCache struct {
	capacity int
	items    map[renderKey]*renderNode
	head     *renderNode // most recently used
	tail     *renderNode
	mu       sync.Mutex
}

type renderNode struct {
	key        renderKey
	value      string
	prev, next *renderNode
}

func newRenderCache(capacity int) *renderCache {
	if capacity < 1 {
		capacity = 1
	}
	return &renderCache{
		capacity: capacity,
		items:    make(map[renderKey]*renderNode),
	}
}

func (c *renderCache) get(key renderKey) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, ok := c.items[key]
	if !ok {
		return "", false
	}
	c.unlink(node)
	c.pushFront(node)
	return node.value, true
}

func (c *renderCache) put(key renderKey, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if node, ok := c.items[key]; ok {
		node.value = value
		c.unlink(node)
		c.pushFront(node)
		return
	}

	node := &renderNode{key: key, value: value}
	c.items[key] = node
	c.pushFront(node)

	if len(c.items) > c.capacity {
		oldest := c.tail
		c.unlink(oldest)
		delete(c.items, oldest.key)
	}
}

func (c *renderCache) pushFront(node *renderNode) {
	node.prev = nil
	node.next = c.head
	if c.head != nil {
		c.head.prev = node
	}
	c.head = node
	if c.tail == nil {
		c.tail = node
	}
}

func (c *renderCache) unlink(node *renderNode) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		c.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		c.tail = node.prev
	}
	node.prev, node.next = nil, nil
}
