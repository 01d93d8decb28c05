package copy_task

import (
	"testing"

	"github.com/specialistvlad/predictgo/internal/copytask"
	"github.com/specialistvlad/predictgo/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := registry.FromModules(&Module{})
	require.Len(t, r.ProjectPredictors(), 1)
	assert.Equal(t, copytask.PredictorName, r.ProjectPredictors()[0].Name())
	assert.Empty(t, r.GraphPredictors())
}
