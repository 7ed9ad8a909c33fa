// Package credential locates the Google Maps Platform API key.
//
// Resolution order is fixed: the process environment, then a .env file in
// the working directory, then a .env file in the user's home directory.
// The first source with a non-empty value wins and later sources are not
// consulted. The resolved credential is immutable and lives for one
// process invocation.
package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
)

// EnvKey is the recognized environment variable and .env key name.
const EnvKey = "GOOGLE_MAPS_API_KEY"

// envFileName is the declaration file searched in each directory source.
const envFileName = ".env"

// Source identifies where a credential was found.
type Source string

const (
	SourceEnvironment Source = "environment"
	SourceProjectFile Source = "project .env"
	SourceHomeFile    Source = "home .env"
)

// Credential is the resolved API key plus its origin.
type Credential struct {
	Key    string
	Source Source
}

// Resolver searches the ordered credential sources.
// The zero value is not usable; construct with NewResolver.
type Resolver struct {
	fs      afero.Fs
	getenv  func(string) string
	workDir func() (string, error)
	homeDir func() (string, error)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFs sets the filesystem used to read .env files.
func WithFs(fs afero.Fs) Option {
	return func(r *Resolver) { r.fs = fs }
}

// WithGetenv sets the environment variable getter.
func WithGetenv(fn func(string) string) Option {
	return func(r *Resolver) { r.getenv = fn }
}

// WithWorkDir sets the working directory provider.
func WithWorkDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.workDir = fn }
}

// WithHomeDir sets the home directory provider.
func WithHomeDir(fn func() (string, error)) Option {
	return func(r *Resolver) { r.homeDir = fn }
}

// NewResolver creates a Resolver with production defaults, overridable
// for tests via options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		fs:      afero.NewOsFs(),
		getenv:  os.Getenv,
		workDir: os.Getwd,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the first credential found in precedence order, or an
// error wrapping apierr.ErrMissingCredential if no source yields a value.
// Resolution is idempotent: repeated calls within one process observe the
// same sources in the same order.
func (r *Resolver) Resolve() (Credential, error) {
	if key := strings.TrimSpace(r.getenv(EnvKey)); key != "" {
		return Credential{Key: key, Source: SourceEnvironment}, nil
	}

	if wd, err := r.workDir(); err == nil {
		if key := r.keyFromFile(filepath.Join(wd, envFileName)); key != "" {
			return Credential{Key: key, Source: SourceProjectFile}, nil
		}
	}

	if home, err := r.homeDir(); err == nil {
		if key := r.keyFromFile(filepath.Join(home, envFileName)); key != "" {
			return Credential{Key: key, Source: SourceHomeFile}, nil
		}
	}

	return Credential{}, fmt.Errorf(
		"set it in a .env file or as an environment variable: %w",
		apierr.ErrMissingCredential)
}

// keyFromFile reads a KEY=value declaration file and returns the value
// for EnvKey, or "" if the file is missing, unreadable, or has no entry.
// A malformed or absent file is not an error; the next source is tried.
func (r *Resolver) keyFromFile(path string) string {
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return ""
	}
	values, err := godotenv.Unmarshal(string(data))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(values[EnvKey])
}
