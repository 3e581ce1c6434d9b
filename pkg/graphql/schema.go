package graphql

import (
	"embed"
	"io/fs"
	"path"
	"strings"

	"github.com/go-faster/errors"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema/*.graphql
var schemaFiles embed.FS

// LoadSchema parses the bundled API schema.
func LoadSchema() (*ast.Schema, error) {
	entries, err := fs.ReadDir(schemaFiles, "schema")
	if err != nil {
		return nil, err
	}
	sources := make([]*ast.Source, 0, len(entries))
	for _, e := range entries {
		name := path.Join("schema", e.Name())
		raw, err := schemaFiles.ReadFile(name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &ast.Source{Name: name, Input: string(raw)})
	}
	schema, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, errors.Wrap(err, "load schema")
	}
	return schema, nil
}

// OperationNames returns the names of the operations declared in doc.
func OperationNames(schema *ast.Schema, doc string) ([]string, error) {
	q, errs := gqlparser.LoadQuery(schema, doc)
	if len(errs) > 0 {
		return nil, errs
	}
	names := make([]string, 0, len(q.Operations))
	for _, op := range q.Operations {
		names = append(names, op.Name)
	}
	return names, nil
}

// ValidateDocuments checks every .graphql file found in documents against
// schema. Errors from all files are reported together.
func ValidateDocuments(schema *ast.Schema, documents ...fs.FS) error {
	var problems []string
	for _, fsys := range documents {
		err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !strings.HasSuffix(p, ".graphql") {
				return nil
			}
			raw, err := fs.ReadFile(fsys, p)
			if err != nil {
				return err
			}
			if _, errs := gqlparser.LoadQuery(schema, string(raw)); len(errs) > 0 {
				problems = append(problems, p+": "+errs.Error())
			}
			return nil
		})
		if err != nil {
			return errors.Wrap(err, "walk operation documents")
		}
	}
	if len(problems) > 0 {
		return errors.Errorf("invalid operation documents:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}
