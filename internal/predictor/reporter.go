package predictor

import (
	"github.com/specialistvlad/predictgo/internal/prediction"
	"github.com/specialistvlad/predictgo/internal/project"
)

type reporter struct {
	collector *prediction.Collector
	name      string
}

// NewReporter returns a Reporter that records into c on behalf of the
// predictor called name.
func NewReporter(c *prediction.Collector, name string) Reporter {
	return &reporter{collector: c, name: name}
}

func (r *reporter) ReportInputFile(path string) {
	r.collector.AddInputFile(path, r.name)
}

func (r *reporter) ReportInputDirectory(path string) {
	r.collector.AddInputDirectory(path, r.name)
}

func (r *reporter) ReportOutputFile(path string) {
	r.collector.AddOutputFile(path, r.name)
}

func (r *reporter) ReportOutputDirectory(path string) {
	r.collector.AddOutputDirectory(path, r.name)
}

type graphReporter struct {
	collectors *prediction.GraphCollector
	name       string
}

// NewGraphReporter returns a GraphReporter that routes every report to the
// collector of the project it names. Reporting for a project outside the
// graph panics.
func NewGraphReporter(gc *prediction.GraphCollector, name string) GraphReporter {
	return &graphReporter{collectors: gc, name: name}
}

func (r *graphReporter) ReportInputFile(proj *project.Project, path string) {
	r.collectors.For(proj.FullPath).AddInputFile(path, r.name)
}

func (r *graphReporter) ReportInputDirectory(proj *project.Project, path string) {
	r.collectors.For(proj.FullPath).AddInputDirectory(path, r.name)
}

func (r *graphReporter) ReportOutputFile(proj *project.Project, path string) {
	r.collectors.For(proj.FullPath).AddOutputFile(path, r.name)
}

func (r *graphReporter) ReportOutputDirectory(proj *project.Project, path string) {
	r.collectors.For(proj.FullPath).AddOutputDirectory(path, r.name)
}
