package dest

// Cache holds one open workbook per destination path for the duration of a
// batch run, so every extraction targeting the same file sees the writes of
// the ones before it. Entries are never evicted: dropping an open workbook
// mid-run would lose unsaved writes and split the run's view of the file.
//
// The cache belongs to a single run and is not safe for concurrent use.
type Cache struct {
	workbooks map[string]*Workbook
	order     []string
}

// NewCache returns an empty workbook cache.
func NewCache() *Cache {
	return &Cache{workbooks: make(map[string]*Workbook)}
}

// Get returns the open workbook for path, opening or creating it on first
// use.
func (c *Cache) Get(path string) (*Workbook, error) {
	if wb, ok := c.workbooks[path]; ok {
		return wb, nil
	}
	wb, err := OpenOrCreate(path)
	if err != nil {
		return nil, err
	}
	c.workbooks[path] = wb
	c.order = append(c.order, path)
	return wb, nil
}

// Peek returns the workbook for path only if it is already open.
func (c *Cache) Peek(path string) (*Workbook, bool) {
	wb, ok := c.workbooks[path]
	return wb, ok
}

// SaveAll saves every open workbook, in the order they were first opened,
// ignoring individual failures. Used on the fail-fast path to keep already
// successful writes durable.
func (c *Cache) SaveAll() {
	for _, path := range c.order {
		_ = c.workbooks[path].Save()
	}
}

// Close releases every open workbook without saving.
func (c *Cache) Close() {
	for _, path := range c.order {
		_ = c.workbooks[path].Close()
	}
}

// Len reports how many workbooks are open.
func (c *Cache) Len() int {
	return len(c.workbooks)
}
