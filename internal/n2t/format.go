package n2t

// OutputFormat represents the output format for show-config
type OutputFormat int

const (
	// FormatHuman prints one key=value pair per line
	FormatHuman OutputFormat = iota
	// FormatJSON outputs the configuration as JSON
	FormatJSON
)

func (f OutputFormat) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "text"
}
