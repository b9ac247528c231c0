package datapackage

import "github.com/ONSdigital/dp-download-all/catalog"

// datastoreTypes maps datastore column types onto manifest field types.
var datastoreTypes = map[string]string{
	"text":      "string",
	"numeric":   "number",
	"timestamp": "datetime",
}

// internal row id column of every datastore table
const datastoreIDField = "_id"

// SchemaFromDatastore builds a table schema from a datastore data dictionary. Unknown
// column types are left untyped.
func SchemaFromDatastore(fields []catalog.DatastoreField) *Schema {
	s := &Schema{Fields: []Field{}}
	for _, f := range fields {
		if f.ID == datastoreIDField {
			continue
		}
		s.Fields = append(s.Fields, Field{
			Name:        f.ID,
			Type:        datastoreTypes[f.Type],
			Title:       f.Info.Label,
			Description: f.Info.Notes,
		})
	}
	return s
}
