package report

import (
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// CompareAll runs [Compare] on every path using up to `options.Workers`
// goroutines. Each image is handled entirely by one goroutine and nothing is
// shared between them.
//
// Images with the same [NameFor] get a "_2", "_3", ... suffix after the first
// one so no two images share output files.
//
// Rows for images that succeeded are returned in the same order as `paths`.
// Failures don't stop the other images; they're combined into the returned
// error.
func CompareAll(paths []string, options Options) ([]Row, error) {
	workers := options.Workers
	if workers < 1 {
		workers = 1
	}

	names := UniqueNames(paths)
	results := make([]Row, len(paths))
	failed := make([]bool, len(paths))

	var resultErr *multierror.Error
	var errLock sync.Mutex
	var wg sync.WaitGroup
	slots := make(chan struct{}, workers)

	for i, path := range paths {
		wg.Add(1)
		slots <- struct{}{}

		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-slots }()

			row, err := compareNamed(path, names[i], options)
			if err != nil {
				failed[i] = true
				errLock.Lock()
				resultErr = multierror.Append(resultErr, err)
				errLock.Unlock()
				return
			}
			results[i] = row
		}(i, path)
	}
	wg.Wait()

	rows := make([]Row, 0, len(paths))
	for i, row := range results {
		if !failed[i] {
			rows = append(rows, row)
		}
	}
	return rows, resultErr.ErrorOrNil()
}

// UniqueNames returns [NameFor] of every path, with a numeric suffix added to
// repeats so that every returned name is different. Suffixed names never take
// a name that another path has without a suffix.
func UniqueNames(paths []string) []string {
	plain := make(map[string]bool, len(paths))
	for _, path := range paths {
		plain[NameFor(path)] = true
	}

	names := make([]string, len(paths))
	taken := make(map[string]bool, len(paths))
	for i, path := range paths {
		base := NameFor(path)
		name := base
		for suffix := 2; taken[name] || (name != base && plain[name]); suffix++ {
			name = fmt.Sprintf("%s_%d", base, suffix)
		}
		taken[name] = true
		names[i] = name
	}
	return names
}
