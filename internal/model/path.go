package model

// Path represents a file system path.
type Path string

// Format selects how a report is rendered.
type Format string

const (
	// FormatTable renders a two-column table.
	FormatTable Format = "table"
	// FormatPlain renders one "old -> new" pair per line.
	FormatPlain Format = "plain"
	// FormatJSON renders the report as JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the report as YAML.
	FormatYAML Format = "yaml"
)

// Formats lists the accepted output formats.
var Formats = []Format{FormatTable, FormatPlain, FormatJSON, FormatYAML}

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}

	return false
}
