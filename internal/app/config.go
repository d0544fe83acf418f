package app

// Config holds runtime configuration for the application.
type Config struct {
	InputPath string
	OutputDir string

	// Deck
	Profile           string
	Lang              string
	Titles            []string
	TitlesFromMarkers bool
	AssetDir          string

	// Extraction
	Strategy string
	Encoding string

	// Artifacts
	Index          bool
	IndexIntroPath string
	Manifest       bool
	OutlinePDFPath string

	// Behavior
	ServeAddr string
	DryRun    bool
	Verbose   bool
}

// Defaults shared by the CLI flags and the config file overlay.
const (
	DefaultInputPath = "../WGS_Class1_Presentation.html"
	DefaultOutputDir = "."
	DefaultAssetDir  = "data"
)
