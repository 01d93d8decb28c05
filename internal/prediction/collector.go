package prediction

import (
	"sort"
	"sync"

	"github.com/specialistvlad/predictgo/internal/pathid"
)

// store is one category of predictions.
type store struct {
	mu    sync.Mutex
	items map[string]*entry
}

func newStore() *store {
	return &store{items: make(map[string]*entry)}
}

// add inserts or merges under the store's lock so concurrent reports of the
// same path never lose an attribution.
func (s *store) add(key, path, predictorName string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[key]
	if !ok {
		e = &entry{path: path, attribution: make(map[string]struct{}, 1)}
		s.items[key] = e
	}
	e.attribution[predictorName] = struct{}{}
}

func (s *store) snapshot() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]string, 0, len(s.items))
	for k := range s.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]Item, 0, len(keys))
	for _, k := range keys {
		out = append(out, s.items[k].snapshot())
	}
	return out
}

// Collector aggregates predictions for a single project.
type Collector struct {
	dir      string
	comparer pathid.Comparer
	stores   [4]*store
}

// NewCollector creates a collector that resolves relative paths against dir.
func NewCollector(dir string, comparer pathid.Comparer) *Collector {
	c := &Collector{dir: dir, comparer: comparer}
	for i := range c.stores {
		c.stores[i] = newStore()
	}
	return c
}

// Dir returns the directory relative paths are resolved against.
func (c *Collector) Dir() string {
	return c.dir
}

// Add records path in the given category on behalf of predictorName.
// Empty paths are ignored.
func (c *Collector) Add(category Category, path, predictorName string) {
	if path == "" {
		return
	}
	canonical := pathid.Canonicalize(path, c.dir)
	c.stores[category].add(c.comparer.Key(canonical), canonical, predictorName)
}

// AddInputFile records an input file.
func (c *Collector) AddInputFile(path, predictorName string) {
	c.Add(InputFile, path, predictorName)
}

// AddInputDirectory records an input directory.
func (c *Collector) AddInputDirectory(path, predictorName string) {
	c.Add(InputDirectory, path, predictorName)
}

// AddOutputFile records an output file.
func (c *Collector) AddOutputFile(path, predictorName string) {
	c.Add(OutputFile, path, predictorName)
}

// AddOutputDirectory records an output directory.
func (c *Collector) AddOutputDirectory(path, predictorName string) {
	c.Add(OutputDirectory, path, predictorName)
}

// Bundle snapshots the current contents.
func (c *Collector) Bundle() *Bundle {
	return &Bundle{
		InputFiles:        c.stores[InputFile].snapshot(),
		InputDirectories:  c.stores[InputDirectory].snapshot(),
		OutputFiles:       c.stores[OutputFile].snapshot(),
		OutputDirectories: c.stores[OutputDirectory].snapshot(),
	}
}
