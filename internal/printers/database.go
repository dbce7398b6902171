// internal/printers/database.go - Printer capability database
package printers

import (
	"slices"
	"strings"
	"sync"

	"receipt-encoder/pkg/devicetypes"
	"receipt-encoder/pkg/driver"
)

// Font describes one printer font by glyph size and characters per line
type Font struct {
	Size    string `json:"size"`
	Columns int    `json:"columns"`
}

// BarcodeCapabilities lists the supported barcode symbologies
type BarcodeCapabilities struct {
	Supported   bool     `json:"supported"`
	Symbologies []string `json:"symbologies"`
}

// QRCodeCapabilities lists the supported QR code models
type QRCodeCapabilities struct {
	Supported bool     `json:"supported"`
	Models    []string `json:"models"`
}

// PDF417Fallback names the barcode printed instead of an unsupported PDF417 code
type PDF417Fallback struct {
	Symbology string `json:"symbology"`
}

// PDF417Capabilities describes PDF417 support
type PDF417Capabilities struct {
	Supported bool            `json:"supported"`
	Fallback  *PDF417Fallback `json:"fallback,omitempty"`
}

// ImageCapabilities holds the preferred image mode, empty when undeclared
type ImageCapabilities struct {
	Mode driver.ImageMode `json:"mode,omitempty"`
}

// CutterCapabilities holds the lines fed before cutting, zero when undeclared
type CutterCapabilities struct {
	Feed int `json:"feed,omitempty"`
}

// Capabilities describes what a printer model can do
type Capabilities struct {
	Language  devicetypes.Language          `json:"language"`
	Codepages string                        `json:"codepages"`
	Newline   devicetypes.Newline           `json:"newline,omitempty"`
	Fonts     map[devicetypes.FontType]Font `json:"fonts"`
	Barcodes  BarcodeCapabilities           `json:"barcodes"`
	QRCode    QRCodeCapabilities            `json:"qrcode"`
	PDF417    PDF417Capabilities            `json:"pdf417"`
	Images    ImageCapabilities             `json:"images"`
	Cutter    CutterCapabilities            `json:"cutter"`
}

// Clone returns a deep copy of the capabilities
func (c Capabilities) Clone() Capabilities {
	clone := c
	clone.Fonts = make(map[devicetypes.FontType]Font, len(c.Fonts))
	for letter, font := range c.Fonts {
		clone.Fonts[letter] = font
	}
	clone.Barcodes.Symbologies = slices.Clone(c.Barcodes.Symbologies)
	clone.QRCode.Models = slices.Clone(c.QRCode.Models)
	if c.PDF417.Fallback != nil {
		fallback := *c.PDF417.Fallback
		clone.PDF417.Fallback = &fallback
	}
	return clone
}

// FontBySize returns the letter of the first font, in letter order, with
// the given glyph size
func (c Capabilities) FontBySize(size string) (devicetypes.FontType, bool) {
	letters := make([]devicetypes.FontType, 0, len(c.Fonts))
	for letter := range c.Fonts {
		letters = append(letters, letter)
	}
	slices.Sort(letters)

	for _, letter := range letters {
		if c.Fonts[letter].Size == size {
			return letter, true
		}
	}
	return "", false
}

// Media describes the paper
type Media struct {
	DPI   int `json:"dpi"`
	Width int `json:"width"` // millimetres
}

// Definition is one known printer model
type Definition struct {
	ID           string       `json:"id"`
	Vendor       string       `json:"vendor"`
	Model        string       `json:"model"`
	Media        Media        `json:"media"`
	Capabilities Capabilities `json:"capabilities"`
}

// Name returns the display name of the model
func (d *Definition) Name() string {
	return d.Vendor + " " + d.Model
}

// ModelInfo identifies a printer model
type ModelInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	standardSymbologies = []string{
		"upca", "upce", "ean13", "ean8", "code39", "itf", "codabar", "code93", "code128",
	}
	databarSymbologies = symbologyList(standardSymbologies,
		"gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded",
	)
)

func symbologyList(base []string, extra ...string) []string {
	list := make([]string, 0, len(base)+len(extra))
	list = append(list, base...)
	return append(list, extra...)
}

// DefaultCapabilities returns the capabilities assumed when no printer model
// is configured
func DefaultCapabilities() Capabilities {
	return Capabilities{
		Language:  devicetypes.LanguageESCPOS,
		Codepages: "epson",
		Fonts: map[devicetypes.FontType]Font{
			devicetypes.FontA: {Size: "12x24", Columns: 42},
			devicetypes.FontB: {Size: "9x24", Columns: 56},
		},
		Barcodes: BarcodeCapabilities{Supported: true, Symbologies: slices.Clone(devicetypes.DefaultSymbologies)},
		QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
		PDF417:   PDF417Capabilities{Supported: true},
	}
}

// Database contains the known printer models
type Database struct {
	models map[string]*Definition
}

// NewDatabase creates and initializes the printer database
func NewDatabase() *Database {
	db := &Database{
		models: make(map[string]*Definition),
	}
	db.initializeDatabase()
	return db
}

var (
	defaultDatabase     *Database
	defaultDatabaseOnce sync.Once
)

// DefaultDatabase returns the shared printer database
func DefaultDatabase() *Database {
	defaultDatabaseOnce.Do(func() {
		defaultDatabase = NewDatabase()
	})
	return defaultDatabase
}

// Lookup returns a copy of the definition of a printer model
func (db *Database) Lookup(id string) (*Definition, bool) {
	definition, ok := db.models[strings.ToLower(id)]
	if !ok {
		return nil, false
	}

	clone := *definition
	clone.Capabilities = definition.Capabilities.Clone()
	return &clone, true
}

// Models lists the known printer models sorted by id
func (db *Database) Models() []ModelInfo {
	models := make([]ModelInfo, 0, len(db.models))
	for id, definition := range db.models {
		models = append(models, ModelInfo{ID: id, Name: definition.Name()})
	}
	slices.SortFunc(models, func(a, b ModelInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return models
}

// Count returns the number of known printer models
func (db *Database) Count() int {
	return len(db.models)
}

func (db *Database) add(id string, definition *Definition) {
	definition.ID = id
	db.models[id] = definition
}

// initializeDatabase populates the known printer models
func (db *Database) initializeDatabase() {
	// Bixolon
	db.add("bixolon-srp350", &Definition{
		Vendor: "Bixolon",
		Model:  "SRP-350",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "bixolon/legacy",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: false, Models: []string{}},
			PDF417:   PDF417Capabilities{Supported: false},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("bixolon-srp350iii", &Definition{
		Vendor: "Bixolon",
		Model:  "SRP-350III",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "bixolon",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
				devicetypes.FontC: {Size: "9x24", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// Citizen
	db.add("citizen-ct-s310ii", &Definition{
		Vendor: "Citizen",
		Model:  "CT-S310II",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "citizen",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 64},
				devicetypes.FontC: {Size: "8x16", Columns: 72},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})

	// Epson
	db.add("epson-tm-p20ii", &Definition{
		Vendor: "Epson",
		Model:  "TM-P20II",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x24", Columns: 42},
				devicetypes.FontC: {Size: "9x17", Columns: 42},
				devicetypes.FontD: {Size: "10x24", Columns: 38},
				devicetypes.FontE: {Size: "8x16", Columns: 48},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies, "code128-auto")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Images:   ImageCapabilities{Mode: driver.ImageModeRaster},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("epson-tm-t20iii", &Definition{
		Vendor: "Epson",
		Model:  "TM-T20III",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x17", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t70", &Definition{
		Vendor: "Epson",
		Model:  "TM-T70",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson/legacy",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Images:   ImageCapabilities{Mode: driver.ImageModeRaster},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t70ii", &Definition{
		Vendor: "Epson",
		Model:  "TM-T70II",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Images:   ImageCapabilities{Mode: driver.ImageModeRaster},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88ii", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88II",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson/legacy",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88iii", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88III",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson/legacy",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88iv", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88IV",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson/legacy",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88v", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88V",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88vi", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88VI",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("epson-tm-t88vii", &Definition{
		Vendor: "Epson",
		Model:  "TM-T88VII",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "epson",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies, "code128-auto")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// Fujitsu
	db.add("fujitsu-fp1000", &Definition{
		Vendor: "Fujitsu",
		Model:  "FP-1000",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "fujitsu",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 56},
				devicetypes.FontC: {Size: "8x16", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(databarSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: false},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// HP
	db.add("hp-a779", &Definition{
		Vendor: "HP",
		Model:  "A779",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "hp",
			Newline:   devicetypes.NewlineLF,
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 44},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417: PDF417Capabilities{
				Supported: false,
				Fallback:  &PDF417Fallback{Symbology: "gs1-databar-omni"},
			},
			Cutter: CutterCapabilities{Feed: 4},
		},
	})

	// Metapace
	db.add("metapace-t1", &Definition{
		Vendor: "Metapace",
		Model:  "T-1",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "metapace",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 42},
				devicetypes.FontB: {Size: "9x17", Columns: 56},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: false, Models: []string{}},
			PDF417:   PDF417Capabilities{Supported: false},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// Generic
	db.add("mpt-ii", &Definition{
		Vendor: "",
		Model:  "MPT-II",
		Media:  Media{DPI: 180, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "mpt",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x17", Columns: 64},
				devicetypes.FontC: {Size: "0x0", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{}},
			PDF417:   PDF417Capabilities{Supported: false},
		},
	})
	db.add("pos-5890", &Definition{
		Vendor: "",
		Model:  "POS-5890",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "pos-5890",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x17", Columns: 42},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "ean13", "ean8", "code39", "itf", "codabar", "code93", "code128"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Images:   ImageCapabilities{Mode: driver.ImageModeRaster},
			Cutter:   CutterCapabilities{Feed: 1},
		},
	})
	db.add("pos-8360", &Definition{
		Vendor: "",
		Model:  "POS-8360",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "pos-8360",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x17", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "ean13", "ean8", "code39", "itf", "codabar", "code93", "code128"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Images:   ImageCapabilities{Mode: driver.ImageModeRaster},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// Star
	db.add("star-mc-print2", &Definition{
		Vendor: "Star",
		Model:  "mC-Print2",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarPRNT,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x24", Columns: 42},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "upce", "ean13", "ean8", "itf", "codabar", "code93", "code128", "gs1-128", "gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("star-mpop", &Definition{
		Vendor: "Star",
		Model:  "mPOP",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarPRNT,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x24", Columns: 42},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "upce", "ean13", "ean8", "itf", "codabar", "code93", "code128", "gs1-128", "gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("star-sm-l200", &Definition{
		Vendor: "Star",
		Model:  "SM-L200",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarPRNT,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x24", Columns: 42},
				devicetypes.FontC: {Size: "9x17", Columns: 42},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "upce", "ean13", "ean8", "itf", "codabar", "code93", "code128"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
		},
	})
	db.add("star-tsp100iii", &Definition{
		Vendor: "Star",
		Model:  "TSP100III",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarPRNT,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("star-tsp100iv", &Definition{
		Vendor: "Star",
		Model:  "TSP100IV",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarPRNT,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies, "gs1-128", "gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("star-tsp650", &Definition{
		Vendor: "Star",
		Model:  "TSP650",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarLine,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies)},
			QRCode:   QRCodeCapabilities{Supported: false, Models: []string{}},
			PDF417:   PDF417Capabilities{Supported: false},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})
	db.add("star-tsp650ii", &Definition{
		Vendor: "Star",
		Model:  "TSP650II",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageStarLine,
			Codepages: "star",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x24", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies, "gs1-128", "gs1-databar-omni", "gs1-databar-truncated", "gs1-databar-limited", "gs1-databar-expanded")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"1", "2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 3},
		},
	})

	// Xprinter
	db.add("xprinter-xp-n160ii", &Definition{
		Vendor: "Xprinter",
		Model:  "XP-N160II",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "xprinter",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x17", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies, "gs1-128")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})
	db.add("xprinter-xp-t80q", &Definition{
		Vendor: "Xprinter",
		Model:  "XP-T80Q",
		Media:  Media{DPI: 203, Width: 80},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "xprinter",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 48},
				devicetypes.FontB: {Size: "9x17", Columns: 64},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: symbologyList(standardSymbologies, "gs1-128")},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: true},
			Cutter:   CutterCapabilities{Feed: 4},
		},
	})

	// Youku
	db.add("youku-58t", &Definition{
		Vendor: "Youku",
		Model:  "58T",
		Media:  Media{DPI: 203, Width: 58},
		Capabilities: Capabilities{
			Language:  devicetypes.LanguageESCPOS,
			Codepages: "youku",
			Fonts: map[devicetypes.FontType]Font{
				devicetypes.FontA: {Size: "12x24", Columns: 32},
				devicetypes.FontB: {Size: "9x24", Columns: 42},
			},
			Barcodes: BarcodeCapabilities{Supported: true, Symbologies: []string{"upca", "ean13", "ean8", "code39", "itf", "codabar", "code93", "code128"}},
			QRCode:   QRCodeCapabilities{Supported: true, Models: []string{"2"}},
			PDF417:   PDF417Capabilities{Supported: false},
		},
	})
}
