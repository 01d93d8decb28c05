package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/projectgraph"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
	"gopkg.in/yaml.v3"
)

// Report is the serialised result of a run.
type Report struct {
	Projects []ProjectReport `json:"projects" yaml:"projects"`
}

// ProjectReport is one project's predictions.
type ProjectReport struct {
	Project           string `json:"project" yaml:"project"`
	prediction.Bundle `yaml:",inline"`
}

// newReport orders projects the way the graph does: dependencies first.
func newReport(g *projectgraph.Graph, bundles prediction.GraphBundle) *Report {
	r := &Report{}
	for _, n := range g.Nodes() {
		pr := ProjectReport{Project: n.Path()}
		if b, ok := bundles[n.Path()]; ok && b != nil {
			pr.Bundle = *b
		}
		r.Projects = append(r.Projects, pr)
	}
	return r
}

var categories = []prediction.Category{
	prediction.InputFile,
	prediction.InputDirectory,
	prediction.OutputFile,
	prediction.OutputDirectory,
}

func encode(w io.Writer, format string, r *Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()

	case FormatHCL:
		return encodeHCL(w, r)

	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// encodeHCL writes one `project` block per project with a nested block per
// predicted path, e.g. `input_file "/src/main.go" { predicted_by = [...] }`.
func encodeHCL(w io.Writer, r *Report) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()
	for i, pr := range r.Projects {
		if i > 0 {
			root.AppendNewline()
		}
		block := root.AppendNewBlock("project", []string{pr.Project})
		for _, c := range categories {
			name := strings.ReplaceAll(c.String(), " ", "_")
			for _, item := range pr.Items(c) {
				val, err := gocty.ToCtyValue(item.PredictedBy, cty.List(cty.String))
				if err != nil {
					return fmt.Errorf("error converting attribution of %s: %w", item.Path, err)
				}
				ib := block.Body().AppendNewBlock(name, []string{item.Path})
				ib.Body().SetAttributeValue("predicted_by", val)
			}
		}
	}
	_, err := w.Write(f.Bytes())
	return err
}
