package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/wrapgen/wrapgen/internal/trace"
)

// loadMode specifies what information to load from packages.
const loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedCompiledGoFiles |
	packages.NeedSyntax

// Load resolves the given package patterns and returns every annotated
// resource found in them, in source order.
func Load(patterns ...string) ([]*Resource, error) {
	cfg := &packages.Config{Mode: loadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	var resources []*Resource
	for _, pkg := range pkgs {
		for _, file := range pkg.Syntax {
			filename := pkg.Fset.Position(file.Pos()).Filename

			src, err := os.ReadFile(filename)
			if err != nil {
				return nil, fmt.Errorf("failed to read %s: %w", filename, err)
			}

			found, err := fromFile(pkg.Fset, file, filename, src)
			if err != nil {
				return nil, err
			}
			for _, resource := range found {
				resource.Dir = filepath.Dir(filename)
				trace.Debugf("found resource %s in %s with attributes %q",
					resource.Name, filename, resource.Args)
			}
			resources = append(resources, found...)
		}
	}

	return resources, nil
}
