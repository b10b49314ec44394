package ipadata

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/danmysak/ipaparser/internal/features"
)

// Column and cell delimiters match the teacher's TSV convention for its own
// rc/config tables, generalized here to the richer grid/combining schema
// spec.md §6 documents; the parsing shape itself is grounded on
// danmysak/ipa-parser's _code/data.py (parse_letter_data, parse_symbol_data,
// parse_combining_data, parse_tie_data, parse_bracket_data,
// parse_substitution_data).
const (
	columnDelimiter      = "\t"
	valueDelimiter       = ", "
	disjunctionDelimiter = " | "
	placeholder          = "◌"
	addPrefix            = "+"
	subtractPrefix       = "-"
	nonePlaceholder      = "="
	incompatiblePrefix   = "!"
	incompatibleKindOpen = "("
	incompatibleKindClose = ")"
	alternativeOpen      = "("
	alternativeClose     = ")"
)

// table is a parsed TSV file: rows of columns of cell values (a column's
// cell text is split on valueDelimiter).
type table [][][]string

func parseTable(name, contents string) (table, error) {
	var rows table
	for _, line := range strings.Split(contents, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if !norm.NFD.IsNormalString(line) {
			return nil, newDataError("%s: line is not NFD-normalized: %q", name, line)
		}
		var row [][]string
		for _, column := range strings.Split(line, columnDelimiter) {
			if column == "" {
				row = append(row, nil)
				continue
			}
			row = append(row, strings.Split(column, valueDelimiter))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func getFeature(value string) (features.Feature, error) {
	f, ok := features.FindFeature(value)
	if !ok {
		return nil, newDataError("unknown feature: %q", value)
	}
	return f, nil
}

func getFeatureKind(value string) (features.Kind, error) {
	k, ok := features.FindKind(value)
	if !ok {
		return "", newDataError("unknown feature kind: %q", value)
	}
	return k, nil
}

func toFeatureSet(values []string) (features.Set, error) {
	set := make(features.Set, len(values))
	for _, v := range values {
		f, err := getFeature(v)
		if err != nil {
			return nil, err
		}
		set[f] = struct{}{}
	}
	return set, nil
}

// parseLetterData reads a rectangular letter grid (spec.md §6): row 0 / col
// 0 holds features common to the grid, row 0's other columns hold
// column-features, other rows' column 0 holds row-features, and the
// remaining cells hold comma-separated letter spellings (alternative
// readings wrapped in parentheses).
func parseLetterData(name string, data table) (LetterData, AlternativeSpelling, error) {
	if len(data) == 0 {
		return nil, nil, newDataError("%s: letter data must contain some rows", name)
	}
	columnCount := len(data[0])
	if columnCount == 0 {
		return nil, nil, newDataError("%s: letter data must contain some columns", name)
	}
	for _, row := range data {
		if len(row) != columnCount {
			return nil, nil, newDataError("%s: letter data must be a rectangular grid", name)
		}
	}
	commonSet, err := toFeatureSet(data[0][0])
	if err != nil {
		return nil, nil, err
	}
	columnSets := make([]features.Set, columnCount)
	for i, cell := range data[0] {
		set, err := toFeatureSet(cell)
		if err != nil {
			return nil, nil, err
		}
		columnSets[i] = set
	}
	rowSets := make([]features.Set, len(data))
	for i, row := range data {
		set, err := toFeatureSet(row[0])
		if err != nil {
			return nil, nil, err
		}
		rowSets[i] = set
	}
	mapping := make(LetterData)
	alternatives := make(AlternativeSpelling)
	for rowIndex := 1; rowIndex < len(data); rowIndex++ {
		for columnIndex := 1; columnIndex < columnCount; columnIndex++ {
			for _, letter := range data[rowIndex][columnIndex] {
				if letter == "" {
					return nil, nil, newDataError("%s: no empty letters allowed", name)
				}
				spelling, alt := stripAlternative(letter)
				if spelling == "" {
					return nil, nil, newDataError("%s: no empty letters allowed", name)
				}
				if _, exists := mapping[spelling]; exists {
					return nil, nil, newDataError("%s: the letter %q can be interpreted in multiple ways", name, spelling)
				}
				combined := commonSet.Union(rowSets[rowIndex]).Union(columnSets[columnIndex])
				mapping[spelling] = combined
				alternatives[spelling] = alt
			}
		}
	}
	return mapping, alternatives, nil
}

func stripAlternative(letter string) (string, bool) {
	if strings.HasPrefix(letter, alternativeOpen) && strings.HasSuffix(letter, alternativeClose) && len(letter) > len(alternativeOpen)+len(alternativeClose)-1 {
		return strings.TrimSuffix(strings.TrimPrefix(letter, alternativeOpen), alternativeClose), true
	}
	return letter, false
}

// parseSymbolData reads a two-column (symbols, single feature) table used
// for breaks and suprasegmentals.
func parseSymbolData(name string, data table) (SymbolData, error) {
	mapping := make(SymbolData)
	for _, row := range data {
		if len(row) != 2 {
			return nil, newDataError("%s: each row must contain exactly two columns", name)
		}
		symbols, featureCell := row[0], row[1]
		if len(featureCell) != 1 {
			return nil, newDataError("%s: expected exactly one feature, got %q", name, strings.Join(featureCell, valueDelimiter))
		}
		feature, err := getFeature(featureCell[0])
		if err != nil {
			return nil, err
		}
		for _, symbol := range symbols {
			if symbol == "" {
				return nil, newDataError("%s: no empty symbols allowed", name)
			}
			if _, exists := mapping[symbol]; exists {
				return nil, newDataError("%s: the symbol %q is encountered in data multiple times", name, symbol)
			}
			mapping[symbol] = feature
		}
	}
	return mapping, nil
}

func parseCombiningChar(definition string) (Combining, error) {
	placeholderLen := len([]rune(placeholder))
	runes := []rune(definition)
	if len(runes) != 1+placeholderLen {
		return Combining{}, newDataError("invalid combining format: %q", definition)
	}
	startsWith := strings.HasPrefix(definition, placeholder)
	endsWith := strings.HasSuffix(definition, placeholder)
	if startsWith == endsWith {
		return Combining{}, newDataError("invalid combining format: %q", definition)
	}
	if startsWith {
		character := strings.TrimPrefix(definition, placeholder)
		kind := Following
		if isCombiningMark([]rune(character)[0]) {
			kind = Diacritic
		}
		return Combining{Character: character, Kind: kind}, nil
	}
	character := strings.TrimSuffix(definition, placeholder)
	if isCombiningMark([]rune(character)[0]) {
		return Combining{}, newDataError("definition starts with a combining character: %q", " "+definition)
	}
	return Combining{Character: character, Kind: Preceding}, nil
}

func isCombiningMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc)
}

func parseIncompatible(definition string) (features.Set, error) {
	if !strings.HasPrefix(definition, incompatiblePrefix) {
		return nil, newDataError("incompatible definition must start with %q, got %q", incompatiblePrefix, definition)
	}
	value := strings.TrimPrefix(definition, incompatiblePrefix)
	if strings.HasPrefix(value, incompatibleKindOpen) && strings.HasSuffix(value, incompatibleKindClose) {
		kindName := strings.TrimSuffix(strings.TrimPrefix(value, incompatibleKindOpen), incompatibleKindClose)
		kind, err := getFeatureKind(kindName)
		if err != nil {
			return nil, err
		}
		return features.NewSet(features.KindValues(kind)...), nil
	}
	f, err := getFeature(value)
	if err != nil {
		return nil, err
	}
	return features.NewSet(f), nil
}

func parseChange(definition string, required features.Set, incompatible features.Set) (Transformation, error) {
	for _, prefix := range []string{addPrefix, subtractPrefix} {
		if strings.HasPrefix(definition, prefix) {
			f, err := getFeature(strings.TrimPrefix(definition, prefix))
			if err != nil {
				return Transformation{}, err
			}
			return Transformation{
				Required:     required,
				Incompatible: incompatible,
				Changes:      []Change{{Feature: f, IsPositive: prefix == addPrefix}},
			}, nil
		}
	}
	if definition == nonePlaceholder {
		return Transformation{Required: required, Incompatible: incompatible}, nil
	}
	return Transformation{}, newDataError("expected %q or %q before a transformed feature, got %q", addPrefix, subtractPrefix, definition)
}

// parseCombiningData reads a combining table (spec.md §6): combining
// characters, a disjunction of required features, a change list, and an
// optional incompatibility cell. Each disjunct required feature contributes
// its own Transformation sharing the row's whole change list and
// incompatibility.
func parseCombiningData(name string, data table) (CombiningTable, error) {
	mapping := make(CombiningTable)
	for _, row := range data {
		if len(row) < 3 {
			return nil, newDataError("%s: expected at least three columns, got %d", name, len(row))
		}
		characters, requirementCell, changeCell := row[0], row[1], row[2]
		var incompatibleCells [][]string
		if len(row) > 3 {
			incompatibleCells = row[3:]
		}
		if len(incompatibleCells) > 1 {
			return nil, newDataError("%s: row has an unexpected tail", name)
		}
		if len(requirementCell) != 1 {
			return nil, newDataError("%s: expected exactly one required-feature disjunction, got %q", name, strings.Join(requirementCell, valueDelimiter))
		}
		var incompatible features.Set
		if len(incompatibleCells) == 1 {
			if len(incompatibleCells[0]) != 1 {
				return nil, newDataError("%s: expected exactly one incompatible feature or kind", name)
			}
			var err error
			incompatible, err = parseIncompatible(incompatibleCells[0][0])
			if err != nil {
				return nil, err
			}
		}
		var toAppend []Transformation
		for _, requiredName := range strings.Split(requirementCell[0], disjunctionDelimiter) {
			var required features.Set
			for _, conjunct := range strings.Split(requiredName, " & ") {
				f, err := getFeature(conjunct)
				if err != nil {
					return nil, err
				}
				if required == nil {
					required = make(features.Set)
				}
				required[f] = struct{}{}
			}
			transformation := Transformation{Required: required, Incompatible: incompatible}
			for _, changeDef := range changeCell {
				t, err := parseChange(changeDef, required, incompatible)
				if err != nil {
					return nil, err
				}
				transformation.Changes = append(transformation.Changes, t.Changes...)
			}
			toAppend = append(toAppend, transformation)
		}
		for _, definition := range characters {
			combining, err := parseCombiningChar(definition)
			if err != nil {
				return nil, err
			}
			mapping[combining] = append(mapping[combining], toAppend...)
		}
	}
	return mapping, nil
}

// parseTieData reads the ties table: one single-codepoint combining
// character per row, wrapped "◌X◌". The first row is the canonical tie
// used when inserting ties programmatically (spec.md §4.1).
func parseTieData(data table) (map[string]struct{}, string, error) {
	var ties []string
	for _, row := range data {
		if len(row) != 1 || len(row[0]) != 1 {
			return nil, "", newDataError("ties: expected exactly one value in each row")
		}
		value := row[0][0]
		if !strings.HasPrefix(value, placeholder) || !strings.HasSuffix(value, placeholder) {
			return nil, "", newDataError("ties: expected format %q(single-character tie)%q, got %q", placeholder, placeholder, value)
		}
		tie := strings.TrimSuffix(strings.TrimPrefix(value, placeholder), placeholder)
		for _, existing := range ties {
			if existing == tie {
				return nil, "", newDataError("ties: %q is encountered multiple times", value)
			}
		}
		ties = append(ties, tie)
	}
	if len(ties) == 0 {
		return nil, "", newDataError("ties: expected at least one tie")
	}
	set := make(map[string]struct{}, len(ties))
	for _, t := range ties {
		set[t] = struct{}{}
	}
	return set, ties[0], nil
}

// parseBracketData reads the brackets table: open, close, and an optional
// transcription-type code. Rows without a type code are inner brackets;
// rows with one are outer.
func parseBracketData(data table) ([]OuterBracket, []InnerBracket, error) {
	var outer []OuterBracket
	var inner []InnerBracket
	innerIndex := make(map[string]bool)
	outerIndex := make(map[[2]string]bool)
	innerPairs := make(map[[2]string]bool)
	for _, row := range data {
		if len(row) < 2 {
			return nil, nil, newDataError("brackets: expected at least two columns")
		}
		for _, column := range row {
			if len(column) != 1 {
				return nil, nil, newDataError("brackets: expected exactly one value in each cell")
			}
		}
		open, closeBracket := row[0][0], row[1][0]
		rest := row[2:]
		if len(rest) > 1 {
			return nil, nil, newDataError("brackets: unexpected trailing values")
		}
		pair := [2]string{open, closeBracket}
		if outerIndex[pair] || innerPairs[pair] {
			return nil, nil, newDataError("brackets: the pair %q/%q is encountered multiple times", open, closeBracket)
		}
		if len(rest) == 1 {
			outerIndex[pair] = true
			outer = append(outer, OuterBracket{Open: open, Close: closeBracket, Type: TranscriptionType(rest[0][0])})
			continue
		}
		if innerIndex[open] || innerIndex[closeBracket] || open == closeBracket {
			return nil, nil, newDataError("brackets: inner brackets do not form unique opening-closing pairs")
		}
		innerIndex[open] = true
		innerIndex[closeBracket] = true
		innerPairs[pair] = true
		inner = append(inner, InnerBracket{Open: open, Close: closeBracket})
	}
	return outer, inner, nil
}

func parseSubstitutionData(data table) ([]Substitution, error) {
	var result []Substitution
	for _, row := range data {
		if len(row) != 2 {
			return nil, newDataError("substitutions: expected exactly two columns")
		}
		if len(row[0]) != 1 || len(row[1]) != 1 {
			return nil, newDataError("substitutions: expected exactly one value in each cell")
		}
		result = append(result, Substitution{From: row[0][0], To: row[1][0]})
	}
	return result, nil
}
