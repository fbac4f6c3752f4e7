package n2t

// Configuration
const (
	ConfigFileName = ".n2trc" // Stored beside the n2tstatus binary by default
	ConfigEnvVar   = "N2T_CONFIG"
	DebugEnvVar    = "N2T_DEBUG"

	// KeyHardwareSimulator holds the absolute path of the Hardware Simulator executable
	KeyHardwareSimulator = "hardware_simulator_executable"
)

// Report layout
const (
	TestScriptExt     = ".tst"
	ReportColumnWidth = 32
)

// Terminal output formatting
const (
	SuccessIcon = "✓"
	FailureIcon = "✗"
	WarningIcon = "!"
)
