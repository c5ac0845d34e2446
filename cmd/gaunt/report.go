package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gaunt/gaunt"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Report is the rendered outcome of one run.
type Report struct {
	N     int     `json:"n" yaml:"n"`
	Nu    int     `json:"nu" yaml:"nu"`
	M     int     `json:"m" yaml:"m"`
	Mu    int     `json:"mu" yaml:"mu"`
	QMax  int     `json:"qmax" yaml:"qmax"`
	A0    float64 `json:"a0" yaml:"a0"`
	LogA0 float64 `json:"log_a0" yaml:"log_a0"`
	Terms []Term  `json:"terms" yaml:"terms"`
}

// Term is one normalized coefficient ã(q) of P_Degree^Order; a0 is not applied.
type Term struct {
	Q      int     `json:"q" yaml:"q"`
	Degree int     `json:"degree" yaml:"degree"`
	Coeff  float64 `json:"coeff" yaml:"coeff"`
	Branch string  `json:"branch,omitempty" yaml:"branch,omitempty"`
}

// newReport assembles a Report; branches[q] is the branch of ã(q), q ≥ 1.
func newReport(p gaunt.Params, res gaunt.Result, branches map[int]gaunt.Branch) Report {
	r := Report{
		N: p.N, Nu: p.Nu, M: p.M, Mu: p.Mu,
		QMax:  res.QMax,
		A0:    res.A0,
		LogA0: gaunt.LogA0(p.N, p.Nu, p.M, p.Mu),
		Terms: make([]Term, len(res.Coeffs)),
	}
	for q, c := range res.Coeffs {
		t := Term{Q: q, Degree: p.N + p.Nu - 2*q, Coeff: c}
		if b, ok := branches[q]; ok {
			t.Branch = b.String()
		}
		r.Terms[q] = t
	}

	return r
}

// render writes r to w in the given format.
func render(w io.Writer, r Report, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}

		return enc.Close()
	case formatText:
		return renderText(w, r)
	default:
		return fmt.Errorf("%q: %w", format, errUnknownFormat)
	}
}

func renderText(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "P_%d^%d · P_%d^%d = a0 · Σ ã(q) · P_{%d−2q}^%d\n", r.N, r.M, r.Nu, r.Mu, r.N+r.Nu, r.M+r.Mu)
	fmt.Fprintf(tw, "qmax\t%d\n", r.QMax)
	fmt.Fprintf(tw, "a0\t%.16g\n", r.A0)
	fmt.Fprintf(tw, "ln a0\t%.12f\n", r.LogA0)
	fmt.Fprintln(tw, "q\tdegree\tã(q)\tbranch")
	for _, t := range r.Terms {
		fmt.Fprintf(tw, "%d\t%d\t%.16g\t%s\n", t.Q, t.Degree, t.Coeff, t.Branch)
	}

	return tw.Flush()
}
