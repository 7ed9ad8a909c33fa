package credential

import (
	"errors"
	"testing"

	"github.com/spf13/afero"

	"github.com/tivojn/google-maps-api-skill/internal/apierr"
)

// Notes:
// - All I/O goes through afero.MemMapFs and injected getenv/dir providers,
//   so tests are hermetic and parallel-safe (no t.Setenv needed).
// - Precedence cases mirror the fixed search order: env var, ./.env, ~/.env.

const (
	testWorkDir = "/work"
	testHomeDir = "/home/user"
)

// newTestResolver builds a resolver over a MemMapFs with the given
// environment value and .env file contents ("" means absent).
func newTestResolver(t *testing.T, envValue, projectEnv, homeEnv string) *Resolver {
	t.Helper()

	fs := afero.NewMemMapFs()
	if projectEnv != "" {
		if err := afero.WriteFile(fs, testWorkDir+"/.env", []byte(projectEnv), 0o644); err != nil {
			t.Fatalf("write project .env: %v", err)
		}
	}
	if homeEnv != "" {
		if err := afero.WriteFile(fs, testHomeDir+"/.env", []byte(homeEnv), 0o644); err != nil {
			t.Fatalf("write home .env: %v", err)
		}
	}

	return NewResolver(
		WithFs(fs),
		WithGetenv(func(key string) string {
			if key == EnvKey {
				return envValue
			}
			return ""
		}),
		WithWorkDir(func() (string, error) { return testWorkDir, nil }),
		WithHomeDir(func() (string, error) { return testHomeDir, nil }),
	)
}

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		envValue   string
		projectEnv string
		homeEnv    string
		wantKey    string
		wantSource Source
	}{
		{
			name:       "environment wins over both files",
			envValue:   "env-key",
			projectEnv: "GOOGLE_MAPS_API_KEY=project-key\n",
			homeEnv:    "GOOGLE_MAPS_API_KEY=home-key\n",
			wantKey:    "env-key",
			wantSource: SourceEnvironment,
		},
		{
			name:       "project file wins over home file",
			projectEnv: "GOOGLE_MAPS_API_KEY=project-key\n",
			homeEnv:    "GOOGLE_MAPS_API_KEY=home-key\n",
			wantKey:    "project-key",
			wantSource: SourceProjectFile,
		},
		{
			name:       "home file used when others empty",
			homeEnv:    "GOOGLE_MAPS_API_KEY=home-key\n",
			wantKey:    "home-key",
			wantSource: SourceHomeFile,
		},
		{
			name:       "quoted value is unquoted",
			projectEnv: "GOOGLE_MAPS_API_KEY=\"quoted-key\"\n",
			wantKey:    "quoted-key",
			wantSource: SourceProjectFile,
		},
		{
			name:       "comments and unrelated keys are skipped",
			projectEnv: "# comment\nOTHER=x\nGOOGLE_MAPS_API_KEY=real-key\n",
			wantKey:    "real-key",
			wantSource: SourceProjectFile,
		},
		{
			name:       "empty declaration falls through to home",
			projectEnv: "GOOGLE_MAPS_API_KEY=\n",
			homeEnv:    "GOOGLE_MAPS_API_KEY=home-key\n",
			wantKey:    "home-key",
			wantSource: SourceHomeFile,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := newTestResolver(t, tt.envValue, tt.projectEnv, tt.homeEnv)

			cred, err := r.Resolve()
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if cred.Key != tt.wantKey {
				t.Errorf("Key = %q, want %q", cred.Key, tt.wantKey)
			}
			if cred.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", cred.Source, tt.wantSource)
			}
		})
	}
}

func TestResolveMissing(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "", "", "")
	_, err := r.Resolve()
	if !errors.Is(err, apierr.ErrMissingCredential) {
		t.Fatalf("Resolve() error = %v, want ErrMissingCredential", err)
	}
}

func TestResolveIdempotent(t *testing.T) {
	t.Parallel()

	r := newTestResolver(t, "", "GOOGLE_MAPS_API_KEY=stable\n", "")
	first, err := r.Resolve()
	if err != nil {
		t.Fatalf("first Resolve() error = %v", err)
	}
	second, err := r.Resolve()
	if err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated Resolve() = %+v then %+v, want identical", first, second)
	}
}

func TestResolveUnreadableDirsFallThrough(t *testing.T) {
	t.Parallel()

	// Directory providers failing must not abort resolution; the next
	// source is consulted.
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, testHomeDir+"/.env", []byte("GOOGLE_MAPS_API_KEY=home-key\n"), 0o644); err != nil {
		t.Fatalf("write home .env: %v", err)
	}

	r := NewResolver(
		WithFs(fs),
		WithGetenv(func(string) string { return "" }),
		WithWorkDir(func() (string, error) { return "", errors.New("no cwd") }),
		WithHomeDir(func() (string, error) { return testHomeDir, nil }),
	)

	cred, err := r.Resolve()
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cred.Source != SourceHomeFile {
		t.Errorf("Source = %q, want %q", cred.Source, SourceHomeFile)
	}
}
