package resource_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/stockwise/pkg/resource"
)

type echoResource struct{ resource.Base }

func (r *echoResource) ToArray(v interface{}) resource.Map {
	row := v.(map[string]interface{})
	return resource.Map{"name": row["name"]}
}

func TestCollectionRespond(t *testing.T) {
	rec := httptest.NewRecorder()
	resource.CollectionOf(&echoResource{}, []map[string]interface{}{
		{"name": "Cable"},
		{"name": "Mouse"},
	}).Respond(rec)

	assert.JSONEq(t, `{"success":true,"data":[{"name":"Cable"},{"name":"Mouse"}]}`, rec.Body.String())
}

func TestEmptyCollectionRespondsWithEmptyArray(t *testing.T) {
	rec := httptest.NewRecorder()
	resource.CollectionOf(&echoResource{}, []map[string]interface{}{}).Respond(rec)

	require.Equal(t, 200, rec.Code)
	// Clients iterate the feed; an empty collection is [], never null.
	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}
