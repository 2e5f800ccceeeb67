// Package index discovers the projects of a product and builds its ProjectIndex.
package index

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/pdctl/internal/adapters/fs"
	"go.trai.ch/pdctl/internal/core/domain"
	"go.trai.ch/pdctl/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

var _ ports.IndexLoader = (*Loader)(nil)

// Loader implements ports.IndexLoader over project.yaml manifests.
type Loader struct {
	walker *fs.Walker
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(walker *fs.Walker, logger ports.Logger) *Loader {
	return &Loader{walker: walker, logger: logger}
}

// Load walks the product, parses every manifest concurrently, assigns each file to the
// innermost project containing it and validates the requirement graph.
func (l *Loader) Load(ctx context.Context, product string) (ports.ProjectIndex, error) {
	var dirs, files []string
	for p := range l.walker.WalkFiles(product, nil) {
		if filepath.Base(p) == domain.ManifestFileName {
			dirs = append(dirs, filepath.Dir(p))
			continue
		}
		files = append(files, p)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	projects, err := l.readManifests(ctx, product, dirs)
	if err != nil {
		return nil, err
	}

	assignFactors(product, projects, files)
	l.resolveRequires(projects)

	graph := domain.NewProjectGraph()
	for _, p := range projects {
		if err := graph.AddProject(p.Identifier, p.Requires); err != nil {
			return nil, err
		}
	}
	if err := graph.Validate(); err != nil {
		return nil, err
	}

	return New(projects)
}

func (l *Loader) readManifests(ctx context.Context, product string, dirs []string) ([]*domain.Project, error) {
	projects := make([]*domain.Project, len(dirs))

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, dir := range dirs {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			p, err := readProject(product, dir)
			if err != nil {
				return err
			}
			projects[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return slices.DeleteFunc(projects, func(p *domain.Project) bool {
		if p.Factor.IsRoot() {
			l.logger.Warn(fmt.Sprintf("ignoring %s at the product root", domain.ManifestFileName))
			return true
		}
		return false
	}), nil
}

func readProject(product, dir string) (*domain.Project, error) {
	file := filepath.Join(dir, domain.ManifestFileName)

	data, err := os.ReadFile(file) //nolint:gosec // path comes from walking the product
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestReadFailed, err), "cannot read manifest"),
			"file", file)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrManifestParseFailed, err), "cannot parse manifest"),
			"file", file)
	}

	rel, err := filepath.Rel(product, dir)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "project outside product"), "dir", dir)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		rel = ""
	}

	factor := domain.ParseFactorPath(rel)
	id := strings.TrimSpace(m.Identifier)
	if id == "" {
		id = factor.String()
	}

	return &domain.Project{
		Identifier: id,
		Factor:     factor,
		Type:       m.Type,
		Dir:        rel,
		Requires:   m.Requires,
	}, nil
}

// assignFactors gives each file to the innermost project whose directory contains it.
// Files sharing a stem form a single factor.
func assignFactors(product string, projects []*domain.Project, files []string) {
	byDepth := slices.Clone(projects)
	slices.SortFunc(byDepth, func(a, b *domain.Project) int {
		return len(b.Dir) - len(a.Dir)
	})

	for _, file := range files {
		rel, err := filepath.Rel(product, file)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)

		for _, p := range byDepth {
			inner, ok := strings.CutPrefix(rel, p.Dir+"/")
			if !ok {
				continue
			}
			ext := path.Ext(inner)
			fp := p.Factor.Join(domain.ParseFactorPath(strings.TrimSuffix(inner, ext)))
			addSource(p, fp, strings.TrimPrefix(ext, "."), rel)
			break
		}
	}
}

func addSource(p *domain.Project, fp domain.FactorPath, typ, source string) {
	for i := range p.Factors {
		if p.Factors[i].Path == fp {
			p.Factors[i].Sources = append(p.Factors[i].Sources, source)
			return
		}
	}
	p.Factors = append(p.Factors, domain.Factor{Path: fp, Type: typ, Sources: []string{source}})
}

// resolveRequires rewrites requirements naming a project's factor path to its identifier.
// resolveRequires rewrites factor path requirements to identifiers and drops requirements
// outside the product. The dropped requirements are reported per project.
func (l *Loader) resolveRequires(projects []*domain.Project) {
	ids := make(map[string]bool, len(projects))
	byFactor := make(map[domain.FactorPath]string, len(projects))
	for _, p := range projects {
		ids[p.Identifier] = true
		byFactor[p.Factor] = p.Identifier
	}

	for _, p := range projects {
		kept := p.Requires[:0]
		for _, req := range p.Requires {
			if ids[req] {
				kept = append(kept, req)
				continue
			}
			if id, ok := byFactor[domain.ParseFactorPath(req)]; ok {
				kept = append(kept, id)
				continue
			}
			l.logger.Warn(fmt.Sprintf("%s requires %s outside the product; ignoring it", p.Identifier, req))
		}
		p.Requires = kept
	}
}

// Snapshot reads the stored index snapshot of the route.
func (l *Loader) Snapshot(route string) (*domain.IndexSnapshot, error) {
	file := domain.IndexSnapshotPath(route)

	data, err := os.ReadFile(file) //nolint:gosec // path is inside the workspace route
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshotReadFailed, err), "cannot read snapshot"),
			"file", file)
	}

	var snapshot domain.IndexSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshotReadFailed, err), "cannot decode snapshot"),
			"file", file)
	}
	return &snapshot, nil
}

// Store replaces the stored index snapshot of the route.
func (l *Loader) Store(route string, snapshot domain.IndexSnapshot) error {
	file := domain.IndexSnapshotPath(route)

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return zerr.Wrap(errors.Join(domain.ErrSnapshotWriteFailed, err), "cannot encode snapshot")
	}

	if err := os.MkdirAll(filepath.Dir(file), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshotWriteFailed, err), "cannot create index directory"),
			"dir", filepath.Dir(file))
	}

	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshotWriteFailed, err), "cannot write snapshot"),
			"file", tmp)
	}
	if err := os.Rename(tmp, file); err != nil {
		return zerr.With(zerr.Wrap(errors.Join(domain.ErrSnapshotWriteFailed, err), "cannot replace snapshot"),
			"file", file)
	}
	return nil
}
