package analyzer

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// PackageDependencies aggregates the dependencies of every class declared in
// source files directly inside dir, without descending into subdirectories.
// Only each class's own dependencies count; nested-class subtrees are
// ignored at this scope. Per-file failures are returned alongside the
// partial report.
func (a *Analyzer) PackageDependencies(ctx context.Context, dir string) (*PackageDepsReport, []FileError, error) {
	files, err := a.walker.listDir(dir)
	if err != nil {
		return nil, nil, err
	}

	reports, fileErrs, err := a.processAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	deps := []string{}
	for _, classes := range reports {
		for _, class := range classes {
			deps = append(deps, class.ClassDeps...)
		}
	}

	return &PackageDepsReport{
		PackageName: dir,
		PackageDeps: sortUnique(deps),
	}, fileErrs, nil
}

// ProjectDependencies aggregates the dependencies of every class in the
// directory tree rooted at root, recursively flattening nested classes into
// the union. Per-file failures are returned alongside the partial report.
func (a *Analyzer) ProjectDependencies(ctx context.Context, root string) (*ProjectDepsReport, []FileError, error) {
	files := a.walker.walkTree(root)

	reports, fileErrs, err := a.processAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	deps := []string{}
	for _, classes := range reports {
		for _, class := range classes {
			deps = append(deps, class.Flatten()...)
		}
	}

	return &ProjectDepsReport{
		ProjectFolder: root,
		ProjectDeps:   sortUnique(deps),
	}, fileErrs, nil
}

// ProjectClassReports returns the report tree of every top-level class found
// in the directory tree rooted at root, in no particular order. Consumers
// that need the full per-class structure (graph export, custom rendering)
// use this instead of the flattened aggregates.
func (a *Analyzer) ProjectClassReports(ctx context.Context, root string) ([]ClassDepsReport, []FileError, error) {
	files := a.walker.walkTree(root)

	reports, fileErrs, err := a.processAll(ctx, files)
	if err != nil {
		return nil, nil, err
	}

	classes := []ClassDepsReport{}
	for _, fileClasses := range reports {
		classes = append(classes, fileClasses...)
	}

	return classes, fileErrs, nil
}

// processAll runs ProcessFile over the given files on a bounded worker pool
// and collects results on a single goroutine. File order is not significant:
// every consumer merges results with set semantics. FileErrors are collected
// and returned; any other error (cancellation, structural mismatch) aborts
// the scan.
func (a *Analyzer) processAll(ctx context.Context, files []string) ([][]ClassDepsReport, []FileError, error) {
	if len(files) == 0 {
		return nil, nil, ctx.Err()
	}

	a.progress.OnScanStart(len(files))

	workers := a.workers
	if workers > len(files) {
		workers = len(files)
	}

	type result struct {
		path    string
		classes []ClassDepsReport
		err     error
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				classes, err := a.ProcessFile(ctx, path)
				results <- result{path: path, classes: classes, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range files {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	reports := [][]ClassDepsReport{}
	fileErrs := []FileError{}
	var fatal error

	for res := range results {
		if res.err != nil {
			var fe *FileError
			if errors.As(res.err, &fe) {
				fileErrs = append(fileErrs, *fe)
			} else if fatal == nil {
				fatal = res.err
			}
			a.progress.OnFileProcessed(res.path)
			continue
		}
		reports = append(reports, res.classes)
		a.progress.OnFileProcessed(res.path)
	}

	if fatal != nil {
		return nil, nil, fatal
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	sort.Slice(fileErrs, func(i, j int) bool { return fileErrs[i].Path < fileErrs[j].Path })

	a.progress.OnScanComplete(len(reports), len(fileErrs))

	return reports, fileErrs, nil
}
