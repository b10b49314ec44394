package ipadata

import (
	"embed"
	"sync"
)

//go:embed data/letters/consonants.tsv data/letters/vowels.tsv data/breaks.tsv data/suprasegmentals.tsv data/combining-basic.tsv data/combining-main.tsv data/combining-meta.tsv data/ties.tsv data/brackets.tsv data/substitutions.tsv
var embeddedFiles embed.FS

const (
	consonantsFile      = "data/letters/consonants.tsv"
	vowelsFile          = "data/letters/vowels.tsv"
	breaksFile          = "data/breaks.tsv"
	suprasegmentalsFile = "data/suprasegmentals.tsv"
	combiningBasicFile  = "data/combining-basic.tsv"
	combiningMainFile   = "data/combining-main.tsv"
	combiningMetaFile   = "data/combining-meta.tsv"
	tiesFile            = "data/ties.tsv"
	bracketsFile        = "data/brackets.tsv"
	substitutionsFile   = "data/substitutions.tsv"
)

func readEmbedded(name string) (string, error) {
	contents, err := embeddedFiles.ReadFile(name)
	if err != nil {
		return "", newDataError("data file does not exist: %s", name)
	}
	return string(contents), nil
}

func readTable(name string) (table, error) {
	contents, err := readEmbedded(name)
	if err != nil {
		return nil, err
	}
	return parseTable(name, contents)
}

// Build parses the embedded static tables into a Data bundle. It is
// exported primarily for tests; production code should use Load/Get.
func Build() (*Data, error) {
	tiesTable, err := readTable(tiesFile)
	if err != nil {
		return nil, err
	}
	ties, mainTie, err := parseTieData(tiesTable)
	if err != nil {
		return nil, err
	}

	bracketsTable, err := readTable(bracketsFile)
	if err != nil {
		return nil, err
	}
	outerBrackets, innerBrackets, err := parseBracketData(bracketsTable)
	if err != nil {
		return nil, err
	}

	consonantsTable, err := readTable(consonantsFile)
	if err != nil {
		return nil, err
	}
	consonants, consonantsAlt, err := parseLetterData(consonantsFile, consonantsTable)
	if err != nil {
		return nil, err
	}

	vowelsTable, err := readTable(vowelsFile)
	if err != nil {
		return nil, err
	}
	vowels, vowelsAlt, err := parseLetterData(vowelsFile, vowelsTable)
	if err != nil {
		return nil, err
	}

	breaksTable, err := readTable(breaksFile)
	if err != nil {
		return nil, err
	}
	breaks, err := parseSymbolData(breaksFile, breaksTable)
	if err != nil {
		return nil, err
	}

	suprasegmentalsTable, err := readTable(suprasegmentalsFile)
	if err != nil {
		return nil, err
	}
	suprasegmentals, err := parseSymbolData(suprasegmentalsFile, suprasegmentalsTable)
	if err != nil {
		return nil, err
	}

	combiningBasicTable, err := readTable(combiningBasicFile)
	if err != nil {
		return nil, err
	}
	combiningBasic, err := parseCombiningData(combiningBasicFile, combiningBasicTable)
	if err != nil {
		return nil, err
	}

	combiningMainTable, err := readTable(combiningMainFile)
	if err != nil {
		return nil, err
	}
	combiningMain, err := parseCombiningData(combiningMainFile, combiningMainTable)
	if err != nil {
		return nil, err
	}

	combiningMetaTable, err := readTable(combiningMetaFile)
	if err != nil {
		return nil, err
	}
	combiningMeta, err := parseCombiningData(combiningMetaFile, combiningMetaTable)
	if err != nil {
		return nil, err
	}

	substitutionsTable, err := readTable(substitutionsFile)
	if err != nil {
		return nil, err
	}
	substitutions, err := parseSubstitutionData(substitutionsTable)
	if err != nil {
		return nil, err
	}

	return &Data{
		Consonants:      consonants,
		ConsonantsAlt:   consonantsAlt,
		Vowels:          vowels,
		VowelsAlt:       vowelsAlt,
		Breaks:          breaks,
		Suprasegmentals: suprasegmentals,
		CombiningBasic:  combiningBasic,
		CombiningMain:   combiningMain,
		CombiningMeta:   combiningMeta,
		Ties:            ties,
		MainTie:         mainTie,
		OuterBrackets:   outerBrackets,
		InnerBrackets:   innerBrackets,
		Substitutions:   substitutions,
	}, nil
}

var (
	once       sync.Once
	data       *Data
	loadErr    error
)

// Load eagerly initializes the process-wide static catalog, matching the
// teacher's one-shot-init style for its derived encoder tables. Safe to
// call from multiple goroutines; only the first call does the work.
func Load() error {
	once.Do(func() {
		data, loadErr = Build()
	})
	return loadErr
}

// Get returns the process-wide static catalog, loading it on first use if
// Load has not already been called. Panics with a *DataError if the
// embedded tables are malformed — a data bug, not a caller mistake.
func Get() *Data {
	if err := Load(); err != nil {
		panic(err)
	}
	return data
}
