//go:build testing

package toolapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeCoversFullRegistry(t *testing.T) {
	descs := Describe()
	assert.Len(t, descs, len(registry))
}

func TestDescribeAttachesParameterSchemaWhereDeclared(t *testing.T) {
	descs := Describe()
	byName := make(map[string]toolDescription, len(descs))
	for _, d := range descs {
		byName[d.Name] = d
	}

	assert.NotNil(t, byName["get_gpu_details"].Parameters)
	assert.Nil(t, byName["get_gpu_list"].Parameters)
}

func TestToolOptionsCoversEveryParameterizedTool(t *testing.T) {
	for name := range paramSchemas {
		assert.NotEmpty(t, toolOptions(name), "expected mcp options for %s", name)
	}
}
