package apicontract_test

import (
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apicontract "github.com/arivera-dev/inventario/api-contract"
)

func TestSpecIsValidOpenAPI(t *testing.T) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(apicontract.GetSpecBytes())
	require.NoError(t, err)

	require.NoError(t, doc.Validate(loader.Context))

	assert.NotNil(t, doc.Paths.Find("/api/chat"))
	assert.NotNil(t, doc.Paths.Find("/api/assistant/query"))
	assert.NotNil(t, doc.Paths.Find("/api/dashboard/summary"))
	assert.NotNil(t, doc.Paths.Find("/healthz"))
}
