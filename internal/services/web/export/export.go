// Package export pre-renders every precomputable page through the web handler
// into a directory that any static file host can serve.
package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/louisbranch/buildspace/internal/platform/timeouts"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

const (
	indexFile        = "index.html"
	defaultWorkers   = 4
	staticAssetsDir  = "static"
	notFoundFileName = "404.html"
)

// Options configures one export run.
type Options struct {
	OutDir  string
	Handler http.Handler
	// Paths lists the page routes to render, each answered with 200.
	Paths []string
	// Assets is copied under static/ in the output directory.
	Assets fs.FS
	// Workers bounds concurrent page renders; zero uses a small default.
	Workers int
}

// Result summarizes a completed export.
type Result struct {
	Pages  int
	Assets int
}

// Run renders every page and the not-found page, copies assets, then checks
// that every internal link in the rendered pages resolves inside the output.
func Run(ctx context.Context, opts Options) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("context is required")
	}
	outDir := strings.TrimSpace(opts.OutDir)
	if outDir == "" {
		return Result{}, errors.New("output directory is required")
	}
	if opts.Handler == nil {
		return Result{}, errors.New("handler is required")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output directory: %w", err)
	}

	pages := make(map[string][]byte, len(opts.Paths))
	var mu sync.Mutex
	workers := opts.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(workers)
	for _, route := range opts.Paths {
		group.Go(func() error {
			body, err := renderPage(groupCtx, opts.Handler, route, http.StatusOK)
			if err != nil {
				return err
			}
			if err := writeFile(filepath.Join(outDir, pageFile(route)), body); err != nil {
				return err
			}
			mu.Lock()
			pages[route] = body
			mu.Unlock()
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	notFound, err := renderPage(ctx, opts.Handler, routepath.NotFoundExportPath, http.StatusNotFound)
	if err != nil {
		return Result{}, err
	}
	if err := writeFile(filepath.Join(outDir, notFoundFileName), notFound); err != nil {
		return Result{}, err
	}
	pages[routepath.NotFoundExportPath] = notFound

	assets, err := copyAssets(opts.Assets, filepath.Join(outDir, staticAssetsDir))
	if err != nil {
		return Result{}, err
	}
	if err := checkLinks(pages, opts.Paths, assets); err != nil {
		return Result{}, err
	}
	return Result{Pages: len(pages), Assets: len(assets)}, nil
}

// pageFile maps a route to its file: directory routes and extensionless
// routes both get an index.html.
func pageFile(route string) string {
	clean := strings.Trim(path.Clean("/"+route), "/")
	if clean == "" {
		return indexFile
	}
	return filepath.Join(filepath.FromSlash(clean), indexFile)
}

func renderPage(ctx context.Context, handler http.Handler, route string, wantStatus int) ([]byte, error) {
	pageCtx, cancel := context.WithTimeout(ctx, timeouts.ExportPage)
	defer cancel()
	req, err := http.NewRequestWithContext(pageCtx, http.MethodGet, route, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", route, err)
	}
	rec := newPageRecorder()
	handler.ServeHTTP(rec, req)
	if err := pageCtx.Err(); err != nil {
		return nil, fmt.Errorf("render %s: %w", route, err)
	}
	if rec.status != wantStatus {
		return nil, fmt.Errorf("render %s: status = %d, want %d", route, rec.status, wantStatus)
	}
	return rec.body.Bytes(), nil
}

func writeFile(name string, body []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(name, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func copyAssets(assets fs.FS, dest string) (map[string]bool, error) {
	copied := map[string]bool{}
	if assets == nil {
		return copied, nil
	}
	err := fs.WalkDir(assets, ".", func(name string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		src, err := assets.Open(name)
		if err != nil {
			return err
		}
		defer src.Close()
		body, err := io.ReadAll(src)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(dest, filepath.FromSlash(name)), body); err != nil {
			return err
		}
		copied[routepath.Static(name)] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}

// checkLinks parses each routed page and reports internal hrefs and srcs
// that do not resolve to an exported page or asset. The not-found page is a
// valid target but is not itself checked, since its links follow whatever
// path was requested.
func checkLinks(pages map[string][]byte, routes []string, assets map[string]bool) error {
	known := map[string]bool{routepath.NotFoundExportPath: true}
	for _, route := range routes {
		known[strings.TrimSuffix(route, "/")] = true
	}
	var broken []string
	for _, route := range routes {
		links, err := internalLinks(pages[route])
		if err != nil {
			return fmt.Errorf("parse %s: %w", route, err)
		}
		for _, link := range links {
			if assets[link] || known[strings.TrimSuffix(link, "/")] {
				continue
			}
			broken = append(broken, route+" -> "+link)
		}
	}
	if len(broken) > 0 {
		sort.Strings(broken)
		return fmt.Errorf("broken internal links: %s", strings.Join(broken, ", "))
	}
	return nil
}

func internalLinks(body []byte) ([]string, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	var links []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key != "href" && a.Key != "src" {
					continue
				}
				if link, ok := internalPath(a.Val); ok {
					links = append(links, link)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// internalPath returns the path part of a same-site link. Query-only and
// fragment-only links point at the page itself and are skipped.
func internalPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return "", false
	}
	if i := strings.IndexAny(raw, "?#"); i >= 0 {
		raw = raw[:i]
	}
	return raw, true
}

type pageRecorder struct {
	header http.Header
	body   bytes.Buffer
	status int
}

func newPageRecorder() *pageRecorder {
	return &pageRecorder{header: http.Header{}}
}

func (r *pageRecorder) Header() http.Header {
	return r.header
}

func (r *pageRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
}

func (r *pageRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.body.Write(body)
}
