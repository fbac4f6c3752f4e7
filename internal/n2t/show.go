package n2t

import (
	"encoding/json"
	"fmt"
)

// ConfigOutput is the JSON form of show-config
type ConfigOutput struct {
	Path    string  `json:"path"`
	Entries []Entry `json:"entries"`
}

// ShowConfig prints the configuration file path followed by every entry
func ShowConfig(store *Store, format OutputFormat) error {
	if format == FormatJSON {
		return outputConfigJSON(store)
	}

	PrintInfo("%s %s", Bold("Configuration file:"), store.Path())
	for _, e := range store.Entries() {
		PrintInfo("%s=%s", e.Key, e.Value)
	}
	return nil
}

func outputConfigJSON(store *Store) error {
	output := ConfigOutput{
		Path:    store.Path(),
		Entries: store.Entries(),
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config to JSON: %w", err)
	}

	fmt.Println(string(data))
	return nil
}
