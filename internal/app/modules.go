package app

import (
	"github.com/specialistvlad/predictgo/internal/registry"
	"github.com/specialistvlad/predictgo/modules/copy_task"
	"github.com/specialistvlad/predictgo/modules/copy_to_output"
	"github.com/specialistvlad/predictgo/modules/item_types"
	"github.com/specialistvlad/predictgo/modules/output_directory"
	"github.com/specialistvlad/predictgo/modules/project_file"
	"github.com/specialistvlad/predictgo/modules/reference_outputs"
)

// coreModules is the definitive list of all predictor modules that are
// compiled into the predictgo binary.
var coreModules = []registry.Module{
	&project_file.Module{},
	&copy_task.Module{},
	&output_directory.Module{},
	&item_types.Module{},
	&reference_outputs.Module{},
	&copy_to_output.Module{},
}
