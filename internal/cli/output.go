package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tivojn/google-maps-api-skill/internal/bind"
	"github.com/tivojn/google-maps-api-skill/internal/normalize"
	"github.com/tivojn/google-maps-api-skill/internal/pipeline"
)

// controlFlags are CLI plumbing, never operation parameters.
// health and pollutants are composed into the extras argument by the
// air-quality command before the generic collection runs.
var controlFlags = map[string]bool{
	"help":       true,
	"verbose":    true,
	"retry":      true,
	"output":     true,
	"health":     true,
	"pollutants": true,
}

// collectArgs copies every explicitly set, non-control flag into args.
// Flag names match parameter names one-to-one, so no translation table is
// needed; descriptor defaults apply to everything left unset.
func collectArgs(cmd *cobra.Command, args bind.Args) bind.Args {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if controlFlags[f.Name] {
			return
		}
		args[f.Name] = f.Value.String()
	})
	return args
}

// run executes one operation and renders its outcome.
func run(cmd *cobra.Command, env *Env, operation string, args bind.Args) error {
	collectArgs(cmd, args)

	req := pipeline.Request{Operation: operation, Args: args}
	if f := cmd.Flags().Lookup("output"); f != nil {
		req.Output = f.Value.String()
	}

	out, err := env.client().Invoke(cmd.Context(), req)
	if err != nil {
		return err
	}
	return render(env, out)
}

// render writes the outcome: JSON on stdout, progress notes on stderr.
func render(env *Env, out *normalize.Outcome) error {
	if out.SavedPath != "" {
		fmt.Fprintf(env.Stderr, "saved %s (%d bytes)\n", out.SavedPath, out.SavedBytes)
		return writeJSON(env.Stdout, map[string]any{
			"saved_path":  out.SavedPath,
			"saved_bytes": out.SavedBytes,
		})
	}
	if out.Empty {
		fmt.Fprintln(env.Stderr, "no results")
	}
	return writeJSON(env.Stdout, out.Value)
}

func writeJSON(w io.Writer, value any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(value)
}

// joinWords merges variadic positional arguments into one free-form value
// so addresses do not need shell quoting.
func joinWords(words []string) string {
	return strings.TrimSpace(strings.Join(words, " "))
}

// joinList merges variadic positional arguments into a pipe-delimited
// list value.
func joinList(items []string) string {
	return strings.Join(items, "|")
}

// pair composes two positional coordinates into a "lat,lng" value.
func pair(lat, lng string) string {
	return lat + "," + lng
}
