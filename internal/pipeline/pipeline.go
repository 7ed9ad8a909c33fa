// Package pipeline composes the request stages into one client.
//
// Stage order is fixed: lookup, bind, credential resolution, transport,
// normalization. A validation failure stops before the credential is even
// resolved, so no network activity can follow bad input; a missing
// credential stops before the transport.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
	"github.com/tivojn/google-maps-api-skill/internal/credential"
	"github.com/tivojn/google-maps-api-skill/internal/normalize"
	"github.com/tivojn/google-maps-api-skill/internal/registry"
	"github.com/tivojn/google-maps-api-skill/internal/transport"
)

// defaultParallelism bounds InvokeAll when the caller does not.
const defaultParallelism = 4

// Transport abstracts the network stage for testing.
type Transport interface {
	Execute(ctx context.Context, req *bind.BoundRequest, key string) (*transport.RawResult, error)
}

// Request is one operation invocation.
type Request struct {
	Operation string
	Args      bind.Args
	// Output overrides the default destination of a binary payload.
	Output string
}

// Result pairs one InvokeAll request with its outcome.
type Result struct {
	Operation string
	Outcome   *normalize.Outcome
	Err       error
}

// Client runs operations end to end.
type Client struct {
	registry  *registry.Registry
	resolver  *credential.Resolver
	binder    *bind.Binder
	transport Transport
	fs        afero.Fs
	logger    hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport sets the network stage.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithResolver sets the credential resolver.
func WithResolver(r *credential.Resolver) Option {
	return func(c *Client) { c.resolver = r }
}

// WithFs sets the filesystem for body-file reads and binary writes.
func WithFs(fs afero.Fs) Option {
	return func(c *Client) {
		c.fs = fs
		c.binder = bind.New(fs)
	}
}

// WithLogger sets the pipeline logger.
func WithLogger(l hclog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a pipeline Client with production defaults.
func New(opts ...Option) *Client {
	fs := afero.NewOsFs()
	c := &Client{
		registry: registry.New(),
		resolver: credential.NewResolver(),
		binder:   bind.New(fs),
		fs:       fs,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(transport.WithLogger(c.logger))
	}
	return c
}

// Operations returns the catalog's operation names, sorted.
func (c *Client) Operations() []string {
	return c.registry.Names()
}

// Invoke runs one operation through the full pipeline.
func (c *Client) Invoke(ctx context.Context, req Request) (*normalize.Outcome, error) {
	desc, err := c.registry.Lookup(req.Operation)
	if err != nil {
		return nil, err
	}

	bound, err := c.binder.Bind(desc, req.Args)
	if err != nil {
		return nil, err
	}

	cred, err := c.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("credential resolved", "source", cred.Source)

	if desc.Mode == registry.ModeLocal {
		return localOutcome(desc, req.Args, bound, cred.Key), nil
	}

	raw, err := c.transport.Execute(ctx, bound, cred.Key)
	if err != nil {
		return nil, err
	}

	out, err := normalize.Normalize(desc, raw)
	if err != nil {
		return nil, err
	}

	if desc.Mode == registry.ModeBinary && out.Bytes != nil {
		return c.save(desc, req, out)
	}
	return out, nil
}

// InvokeAll runs independent requests concurrently, at most limit at a
// time (a non-positive limit uses the default bound). Results keep the
// request order; each carries its own outcome or error.
func (c *Client) InvokeAll(ctx context.Context, reqs []Request, limit int) []Result {
	if limit <= 0 {
		limit = defaultParallelism
	}

	results := make([]Result, len(reqs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			out, err := c.Invoke(ctx, req)
			results[i] = Result{Operation: req.Operation, Outcome: out, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// localOutcome builds the result of a no-network operation: the fully
// rendered URL, produced from the bound request alone.
func localOutcome(desc *registry.Descriptor, args bind.Args, bound *bind.BoundRequest, key string) *normalize.Outcome {
	mode := strings.TrimSpace(args["mode"])
	if mode == "" {
		if p, ok := desc.Param("mode"); ok {
			mode = p.Default
		}
	}
	return &normalize.Outcome{
		Value: map[string]any{
			"embed_url": bound.URL(key),
			"mode":      mode,
		},
	}
}

// save writes a binary payload and reports the destination instead of the
// raw bytes.
func (c *Client) save(desc *registry.Descriptor, req Request, out *normalize.Outcome) (*normalize.Outcome, error) {
	path := req.Output
	if path == "" {
		path = defaultOutput(desc, req.Args)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := c.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}
	if err := afero.WriteFile(c.fs, path, out.Bytes, 0o644); err != nil {
		return nil, fmt.Errorf("write %s output to %q: %w", desc.Name, path, err)
	}
	c.logger.Debug("binary payload written", "operation", desc.Name,
		"path", path, "bytes", len(out.Bytes))

	out.SavedPath = path
	out.SavedBytes = len(out.Bytes)
	out.Bytes = nil
	return out, nil
}

// defaultOutput names the destination when the caller gives none. The
// descriptor's Output template is used, with {param} placeholders filled
// from the supplied arguments or the parameter's default.
func defaultOutput(desc *registry.Descriptor, args bind.Args) string {
	path := desc.Output
	for _, p := range desc.Params {
		placeholder := "{" + p.Name + "}"
		if !strings.Contains(path, placeholder) {
			continue
		}
		val := strings.TrimSpace(args[p.Name])
		if val == "" {
			val = p.Default
		}
		path = strings.ReplaceAll(path, placeholder, val)
	}
	return path
}
