package source

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Twsharky21/Turbo-Extractor-sub000/pkg/turbex/cell"
)

// cacheEntries bounds the number of parsed source tables held at once. Runs
// that touch more sources than this just re-read on a miss.
const cacheEntries = 32

// Cache memoizes parsed source tables, keyed by path and sheet name, so a
// batch that extracts many regions from one workbook parses it once.
//
// Cached tables are shared between extractions and must be treated as
// read-only; every transform downstream copies instead of mutating. A nil
// *Cache is valid and simply reads through.
type Cache struct {
	tables *lru.Cache[string, [][]cell.Value]
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	tables, _ := lru.New[string, [][]cell.Value](cacheEntries)
	return &Cache{tables: tables}
}

// Load returns the table for (path, sheetName), reading and caching it on
// first use.
func (c *Cache) Load(path, sheetName string) ([][]cell.Value, error) {
	if c == nil {
		return Load(path, sheetName)
	}
	key := path + "\x00" + sheetName
	if rows, ok := c.tables.Get(key); ok {
		return rows, nil
	}
	rows, err := Load(path, sheetName)
	if err != nil {
		return nil, err
	}
	c.tables.Add(key, rows)
	return rows, nil
}

// Len reports how many tables are currently cached.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.tables.Len()
}
