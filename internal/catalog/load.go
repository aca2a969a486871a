// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package catalog

import (
	"embed"
	"errors"
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
	"github.com/tomtom215/sakefinder/internal/validation"
)

//go:embed data/*.yaml
var embedded embed.FS

const (
	embeddedCatalog = "data/catalog.yaml"
	embeddedMatrix  = "data/matrix.yaml"
)

// Source says where catalog records come from.
type Source struct {
	// Path is a YAML file on disk. Empty means the embedded catalog.
	Path string
	// IncludeMatrix appends the embedded matrix-derived records.
	IncludeMatrix bool
}

// document is the on-disk layout.
type document struct {
	Version string      `koanf:"version"`
	Sakes   []rawEntry  `koanf:"sakes"`
	Matrix  []matrixRow `koanf:"matrix"`
}

type rawEntry struct {
	ID          string   `koanf:"id" validate:"required"`
	Name        string   `koanf:"name" validate:"required"`
	Brewery     string   `koanf:"brewery"`
	Price       int      `koanf:"price" validate:"gte=0"`
	Alcohol     float64  `koanf:"alcohol" validate:"gte=0,lte=100"`
	RiceMilling float64  `koanf:"rice_milling" validate:"gte=0,lte=100"`
	Sweetness   float64  `koanf:"sweetness"`
	Richness    float64  `koanf:"richness"`
	Acidity     float64  `koanf:"acidity"`
	Aroma       float64  `koanf:"aroma"`
	Class       string   `koanf:"class" validate:"required"`
	Prefecture  string   `koanf:"prefecture"`
	Description string   `koanf:"description"`
	ImageURL    string   `koanf:"image_url" validate:"omitempty,url"`
	ECURL       string   `koanf:"ec_url" validate:"required,url"`
	Tags        []string `koanf:"tags"`
	Style       string   `koanf:"style"`
	SakeDegree  *float64 `koanf:"sake_degree"`
	RealAcidity *float64 `koanf:"real_acidity"`
}

// bytesProvider feeds an in-memory YAML document to koanf.
type bytesProvider []byte

func (b bytesProvider) ReadBytes() ([]byte, error) {
	return b, nil
}

func (b bytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("bytesProvider does not support Read")
}

// Load reads and converts every record named by src.
func Load(src Source) (*Catalog, error) {
	var doc document
	var err error

	if src.Path == "" {
		doc, err = readEmbedded(embeddedCatalog)
	} else {
		doc, err = readDocument(file.Provider(src.Path), src.Path)
	}
	if err != nil {
		return nil, err
	}

	if src.IncludeMatrix {
		extra, err := readEmbedded(embeddedMatrix)
		if err != nil {
			return nil, err
		}
		doc.Sakes = append(doc.Sakes, extra.Sakes...)
		doc.Matrix = append(doc.Matrix, extra.Matrix...)
	}

	entries := make([]Entry, 0, len(doc.Sakes)+len(doc.Matrix))
	for i := range doc.Sakes {
		e, err := doc.Sakes[i].toEntry()
		if err != nil {
			return nil, fmt.Errorf("sakes[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}
	for i := range doc.Matrix {
		e, err := doc.Matrix[i].toEntry(i + 1)
		if err != nil {
			return nil, fmt.Errorf("matrix[%d]: %w", i, err)
		}
		entries = append(entries, e)
	}

	return New(doc.Version, entries)
}

func readEmbedded(name string) (document, error) {
	data, err := embedded.ReadFile(name)
	if err != nil {
		return document{}, fmt.Errorf("read embedded catalog: %w", err)
	}
	return readDocument(bytesProvider(data), name)
}

func readDocument(p koanf.Provider, name string) (document, error) {
	k := koanf.New(".")
	if err := k.Load(p, yaml.Parser()); err != nil {
		return document{}, fmt.Errorf("load catalog %s: %w", name, err)
	}

	var doc document
	if err := k.Unmarshal("", &doc); err != nil {
		return document{}, fmt.Errorf("decode catalog %s: %w", name, err)
	}
	return doc, nil
}

func (r *rawEntry) toEntry() (Entry, error) {
	if verr := validation.ValidateStruct(r); verr != nil {
		return Entry{}, fmt.Errorf("%s: %w", r.ID, verr)
	}

	class, err := ParseSakeClass(r.Class)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", r.ID, err)
	}

	var style pairing.Style
	if r.Style != "" {
		if style, err = pairing.ParseStyle(r.Style); err != nil {
			return Entry{}, fmt.Errorf("%s: %w", r.ID, err)
		}
	}

	return Entry{
		ID:          r.ID,
		Name:        r.Name,
		Brewery:     r.Brewery,
		Price:       r.Price,
		Alcohol:     r.Alcohol,
		RiceMilling: r.RiceMilling,
		Taste:       taste.New(r.Sweetness, r.Richness, r.Acidity, r.Aroma),
		Class:       class,
		Prefecture:  r.Prefecture,
		Description: r.Description,
		ImageURL:    r.ImageURL,
		ECURL:       r.ECURL,
		Tags:        r.Tags,
		Style:       style,
		SakeDegree:  r.SakeDegree,
		RealAcidity: r.RealAcidity,
	}, nil
}
