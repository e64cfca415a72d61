// Package serializer writes cookbook documents as JSON, YAML or tables and
// reads JSON or YAML files back into Go values.
//
// Output formats:
//   - JSON: indented, machine-readable
//   - YAML: human-readable
//   - Table: columns for documents implementing Tabular, otherwise flattened
//     FIELD/VALUE pairs keyed by JSON field names
//
// Usage:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatYAML, path)
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//	    return err
//	}
//
// Reading:
//
//	cfg, err := serializer.FromFile[Config]("cookbook.yaml")
package serializer
