// internal/printers/mapping.go
package printers

import (
	"fmt"
	"slices"

	"receipt-encoder/pkg/devicetypes"
)

// CodepageMapping maps codepage names onto the numeric ids a printer uses
// to select them
type CodepageMapping struct {
	Name       string
	IDs        map[string]int
	Candidates []string // names by first appearance, used for automatic selection
}

// codepageTables lists the codepage of every id per language and mapping
// name. Unassigned ids are empty.
var codepageTables = map[devicetypes.Language]map[string][]string{
	devicetypes.LanguageESCPOS: {
		"bixolon/legacy": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 19: "cp858",
		},
		"bixolon": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 16: "windows1252", 17: "cp866",
			18: "cp852", 19: "cp858", 21: "cp862", 22: "cp864",
			23: "thai42", 24: "windows1253", 25: "windows1254", 26: "windows1257",
			28: "windows1251", 29: "cp737", 30: "cp775", 31: "thai14",
			32: "bixolon/hebrew", 33: "windows1255", 34: "thai11", 35: "thai18",
			36: "cp885", 37: "cp857", 38: "iso8859-7", 39: "thai16",
			40: "windows1256", 41: "windows1258", 42: "khmer", 46: "bixolon/cp866",
			47: "windows1250", 49: "tcvn3", 50: "tcvn3capitals", 51: "viscii",
		},
		"citizen": {
			0: "cp437", 1: "epson/katakana", 2: "cp858", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "cp852", 7: "cp866",
			8: "cp857", 16: "windows1252", 21: "thai11", 26: "thai13",
			30: "tcvn3", 31: "tcvn3capitals", 32: "windows1258", 40: "cp864",
		},
		"epson/legacy": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 16: "windows1252", 17: "cp866",
			18: "cp852", 19: "cp858",
		},
		"epson": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 11: "cp851", 12: "cp853",
			13: "cp857", 14: "cp737", 15: "iso8859-7", 16: "windows1252",
			17: "cp866", 18: "cp852", 19: "cp858", 20: "thai42",
			21: "thai11", 26: "thai13", 30: "tcvn3", 31: "tcvn3capitals",
			32: "cp720", 33: "cp775", 34: "cp855", 35: "cp861",
			36: "cp862", 37: "cp864", 38: "cp869", 39: "epson/iso8859-2",
			40: "iso8859-15", 41: "cp1098", 42: "cp774", 43: "cp772",
			44: "cp1125", 45: "windows1250", 46: "windows1251", 47: "windows1253",
			48: "windows1254", 49: "windows1255", 50: "windows1256", 51: "windows1257",
			52: "windows1258", 53: "rk1048",
		},
		"fujitsu": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 8: "cp857", 16: "windows1252",
			17: "cp866", 18: "cp852", 19: "cp858", 26: "thai13",
			40: "cp864",
		},
		"hp": {
			0: "cp437", 1: "cp850", 2: "cp852", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "cp858", 7: "cp866",
			8: "windows1252", 9: "cp862", 10: "cp737", 11: "cp874",
			12: "cp857", 13: "windows1251", 14: "windows1255", 15: "rk1048",
		},
		"metapace": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 19: "cp858",
		},
		"mpt": {
			0: "cp437", 2: "cp850", 3: "cp860", 4: "cp863",
			5: "cp865", 6: "windows1251", 7: "cp866", 8: "cp3021",
			9: "cp3012",
		},
		"pos-5890": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "iso8859-1", 8: "cp862",
			16: "windows1252", 17: "cp866", 18: "cp852", 19: "cp858",
			23: "windows1251", 24: "cp737", 25: "windows1257", 27: "windows1258",
			28: "cp864", 32: "windows1255", 56: "cp861", 60: "cp855",
			61: "cp857", 65: "cp851", 66: "cp869", 68: "cp772",
			69: "cp774", 72: "windows1250", 74: "cp3840", 76: "cp3843",
			77: "cp3844", 78: "cp3845", 79: "cp3846", 80: "cp3847",
			81: "cp3848", 83: "cp771", 84: "cp3001", 85: "cp3002",
			86: "cp3011", 87: "cp3012", 89: "cp3041", 90: "windows1253",
			91: "windows1254", 92: "windows1256", 93: "cp720", 95: "cp775",
		},
		"pos-8360": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "iso8859-1", 7: "windows1253",
			8: "cp862", 16: "windows1252", 17: "cp866", 18: "cp852",
			19: "cp858", 21: "latvian", 23: "windows1251", 24: "cp737",
			25: "windows1257", 27: "windows1258", 28: "cp864", 31: "pos8360/hebrew",
			32: "windows1255", 56: "cp861", 60: "cp855", 61: "cp857",
			65: "cp851", 66: "cp869", 68: "cp772", 69: "cp774",
			72: "windows1250", 74: "cp3840", 76: "cp3843", 77: "cp3844",
			78: "cp3845", 79: "cp3846", 80: "cp3847", 81: "cp3848",
			83: "cp771", 84: "cp3001", 85: "cp3002", 86: "cp3011",
			87: "cp3012", 91: "windows1254", 92: "windows1256", 93: "cp720",
			95: "cp775",
		},
		"star": {
			0: "cp437", 1: "star/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 16: "windows1252", 17: "cp866",
			18: "cp852", 19: "cp858", 20: "thai42", 21: "thai11",
			22: "thai13", 23: "thai14", 24: "thai16", 26: "thai18",
		},
		"xprinter": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "iso8859-1", 7: "windows1253",
			8: "xprinter/hebrew", 9: "cp3012", 11: "windows1255", 16: "windows1252",
			17: "cp866", 18: "cp852", 19: "cp858", 21: "latvian",
			22: "cp864", 23: "windows1251", 24: "cp737", 25: "windows1257",
			33: "windows1256",
		},
		"youku": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "windows1251", 7: "cp866",
			8: "cp3021", 9: "cp3012", 15: "cp862", 16: "windows1252",
			18: "cp852", 19: "cp858", 22: "cp864", 23: "iso8859-1",
			24: "cp737", 25: "windows1257", 28: "cp855", 29: "cp857",
			30: "windows1250", 31: "cp775", 32: "windows1254", 33: "windows1255",
			34: "windows1256", 35: "windows1258", 38: "iso8859-1", 44: "iso8859-15",
			47: "cp874",
		},
		"zijang": {
			0: "cp437", 1: "epson/katakana", 2: "cp850", 3: "cp860",
			4: "cp863", 5: "cp865", 6: "iso8859-1", 8: "cp862",
			16: "windows1252", 17: "cp866", 18: "cp852", 19: "cp858",
			23: "windows1251", 24: "cp737", 25: "windows1257", 27: "windows1258",
			28: "cp864", 32: "windows1255", 56: "cp861", 60: "cp855",
			61: "cp857", 65: "cp851", 66: "cp869", 68: "cp772",
			69: "cp774", 72: "windows1250", 74: "cp3840", 76: "cp3843",
			77: "cp3844", 78: "cp3845", 79: "cp3846", 80: "cp3847",
			81: "cp3848", 83: "cp771", 84: "cp3001", 85: "cp3002",
			86: "cp3011", 87: "cp3012", 89: "cp3041", 90: "windows1253",
			91: "windows1254", 92: "windows1256", 93: "cp720", 95: "cp775",
		},
	},
	devicetypes.LanguageStarPRNT: {
		"star": starTable,
	},
	devicetypes.LanguageStarLine: {
		"star": starTable,
	},
}

// starTable is shared by StarPRNT and Star Line mode printers
var starTable = []string{
	0: "star/standard", 1: "cp437", 2: "star/katakana", 4: "cp858",
	5: "cp852", 6: "cp860", 7: "cp861", 8: "cp863",
	9: "cp865", 10: "cp866", 11: "cp855", 12: "cp857",
	13: "cp862", 14: "cp864", 15: "cp737", 16: "cp851",
	17: "cp869", 18: "star/cp928", 19: "cp772", 20: "cp774",
	21: "star/cp874", 32: "windows1252", 33: "windows1250", 34: "windows1251",
	64: "cp3840", 65: "cp3841", 66: "cp3843", 67: "cp3844",
	68: "cp3845", 69: "cp3846", 70: "cp3847", 71: "cp3848",
	72: "cp1001", 73: "cp771", 74: "cp3001", 75: "cp3002",
	76: "cp3011", 77: "cp3012", 78: "cp3021", 79: "cp3041",
}

// Mapping resolves a named codepage mapping for a language. When a name
// occurs at several ids the highest id wins; candidates keep the order of
// first appearance.
func Mapping(language devicetypes.Language, name string) (*CodepageMapping, error) {
	tables, ok := codepageTables[language]
	if !ok {
		return nil, fmt.Errorf("no codepage mappings for language %s", language)
	}

	table, ok := tables[name]
	if !ok {
		return nil, fmt.Errorf("unknown codepage mapping %q for language %s", name, language)
	}

	return NewCodepageMapping(name, table), nil
}

// NewCodepageMapping builds a mapping from a table indexed by id
func NewCodepageMapping(name string, table []string) *CodepageMapping {
	mapping := &CodepageMapping{
		Name: name,
		IDs:  make(map[string]int, len(table)),
	}

	for id, codepage := range table {
		if codepage == "" {
			continue
		}
		if _, seen := mapping.IDs[codepage]; !seen {
			mapping.Candidates = append(mapping.Candidates, codepage)
		}
		mapping.IDs[codepage] = id
	}

	return mapping
}

// MappingNames returns the mapping names available for a language
func MappingNames(language devicetypes.Language) []string {
	names := make([]string, 0, len(codepageTables[language]))
	for name := range codepageTables[language] {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Clone returns a deep copy of the mapping
func (m *CodepageMapping) Clone() *CodepageMapping {
	if m == nil {
		return nil
	}

	clone := &CodepageMapping{
		Name:       m.Name,
		IDs:        make(map[string]int, len(m.IDs)),
		Candidates: slices.Clone(m.Candidates),
	}
	for name, id := range m.IDs {
		clone.IDs[name] = id
	}
	return clone
}

// ID returns the id of a codepage
func (m *CodepageMapping) ID(codepage string) (int, bool) {
	id, ok := m.IDs[codepage]
	return id, ok
}
