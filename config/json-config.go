package config

import (
	"encoding/json"
	"log"
	"os"

	"github.com/carbocation/pfx"
	"github.com/carbocation/rrnacomp"
	"github.com/carbocation/rrnacomp/estimator"
)

// JSONConfig mirrors the rrnacomp command line flags. Unset fields fall back to
// the estimator defaults.
type JSONConfig struct {
	ConfigPath string `json:"-"`

	File   string `json:"file"`
	Layout string `json:"layout"`

	Cutoff     *float64 `json:"cutoff"`
	Mode       string   `json:"mode"`
	Convention string   `json:"convention"`
	Order      string   `json:"order"`
	Workers    int      `json:"workers"`

	Summary string `json:"summary"`
	Save    string `json:"save"`
	Compare string `json:"compare"`
	Title   string `json:"title"`
}

func ParseJSONConfigFromPath(path string) (JSONConfig, error) {
	out := JSONConfig{ConfigPath: path}

	f, err := os.Open(rrnacomp.ExpandHome(path))
	if err != nil {
		return out, pfx.Err(err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&out); err != nil {
		if e, ok := err.(*json.SyntaxError); ok {
			log.Printf("syntax error at byte offset %d", e.Offset)
		}
		return out, pfx.Err(err)
	}

	// Interpret ~ if present
	out.ConfigPath = rrnacomp.ExpandHome(path)
	out.File = rrnacomp.ExpandHome(out.File)
	out.Summary = rrnacomp.ExpandHome(out.Summary)
	out.Save = rrnacomp.ExpandHome(out.Save)
	out.Compare = rrnacomp.ExpandHome(out.Compare)

	return out, nil
}

// EstimatorOptions overlays the configured values on estimator.DefaultOptions
// and validates the result.
func (c JSONConfig) EstimatorOptions() (estimator.Options, error) {
	opts := estimator.DefaultOptions()

	if c.Cutoff != nil {
		opts.Cutoff = *c.Cutoff
	}

	if c.Mode != "" {
		mode, err := estimator.ParseModePolicy(c.Mode)
		if err != nil {
			return opts, err
		}
		opts.Mode = mode
	}

	if c.Convention != "" {
		conv, err := estimator.ParseConvention(c.Convention)
		if err != nil {
			return opts, err
		}
		opts.Convention = conv
	}

	if c.Order != "" {
		order, err := estimator.ParseOrder(c.Order)
		if err != nil {
			return opts, err
		}
		opts.Order = order
	}

	if c.Workers != 0 {
		opts.Workers = c.Workers
	}

	return opts, opts.Validate()
}
