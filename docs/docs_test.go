package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type operation struct {
	Tags       []string         `json:"tags"`
	Security   []map[string]any `json:"security"`
	Parameters []struct {
		Name        string `json:"name"`
		In          string `json:"in"`
		Description string `json:"description"`
	} `json:"parameters"`
}

type document struct {
	BasePath    string                          `json:"basePath"`
	Paths       map[string]map[string]operation `json:"paths"`
	Definitions map[string]struct {
		Properties map[string]struct {
			Type   string `json:"type"`
			Format string `json:"format"`
		} `json:"properties"`
	} `json:"definitions"`
}

func readDoc(t *testing.T) document {
	t.Helper()
	var doc document
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))
	return doc
}

func TestSwaggerDoc_MatchesHandlers(t *testing.T) {
	doc := readDoc(t)
	assert.Equal(t, "/api", doc.BasePath)

	tests := []struct {
		path     string
		method   string
		tag      string
		secured  bool
		param    string
		paramDoc string
	}{
		{path: "/public/skills", method: "get", tag: "public"},
		{path: "/admin/certifications", method: "post", tag: "admin", secured: true, param: "request", paramDoc: "New certification"},
		{path: "/admin/projects", method: "delete", tag: "admin", secured: true, param: "id", paramDoc: "Project ID"},
		{path: "/auth/login", method: "post", tag: "auth", param: "loginRequest", paramDoc: "Login Request"},
		{path: "/seed", method: "post", tag: "ops", param: "secret", paramDoc: "Seed secret"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			op, ok := doc.Paths[tt.path][tt.method]
			require.True(t, ok)
			assert.Equal(t, []string{tt.tag}, op.Tags)
			assert.Equal(t, tt.secured, len(op.Security) > 0)
			if tt.param != "" {
				require.Len(t, op.Parameters, 1)
				assert.Equal(t, tt.param, op.Parameters[0].Name)
				assert.Equal(t, tt.paramDoc, op.Parameters[0].Description)
			}
		})
	}
}

func TestSwaggerDoc_IDsAreUUIDStrings(t *testing.T) {
	doc := readDoc(t)

	for _, name := range []string{"models.Skill", "models.ProjectUpdate", "models.ContactMessage"} {
		id, ok := doc.Definitions[name].Properties["id"]
		require.True(t, ok, name)
		assert.Equal(t, "string", id.Type, name)
		assert.Equal(t, "uuid", id.Format, name)
	}
}
