// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package catalog

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/sakefinder/internal/pairing"
	"github.com/tomtom215/sakefinder/internal/taste"
	"github.com/tomtom215/sakefinder/internal/validation"
)

// defaultECURL is used for matrix rows that do not carry a shop link.
const defaultECURL = "https://issendo.jp/"

// matrixRow is a product expressed only by its matrix measurements, as
// exported from the pairing spreadsheet.
type matrixRow struct {
	ID         string  `koanf:"id"`
	Name       string  `koanf:"name" validate:"required"`
	Category   string  `koanf:"category" validate:"required"`
	SakeDegree float64 `koanf:"nihonshu_degree"`
	Acidity    float64 `koanf:"acidity" validate:"gte=0"`
	Alcohol    float64 `koanf:"alcohol" validate:"gte=0,lte=100"`
	TypeClass  string  `koanf:"type_class" validate:"required"`
	PriceRange string  `koanf:"price_range" validate:"omitempty,oneof=L M H"`
	Price      int     `koanf:"price" validate:"gte=0"`
	Brewery    string  `koanf:"brewery"`
	Prefecture string  `koanf:"prefecture"`
	ECURL      string  `koanf:"ec_url" validate:"omitempty,url"`
}

// stylePreset is the richness/aroma assumed for a type class when only
// matrix measurements are known.
type stylePreset struct {
	richness, aroma float64
}

var stylePresets = map[pairing.TypeClass]stylePreset{
	pairing.ClassA: {4.5, 8.5},
	pairing.ClassB: {4.0, 6.0},
	pairing.ClassC: {7.5, 5.5},
	pairing.ClassD: {5.0, 6.0},
}

func riceMillingFor(c SakeClass) float64 {
	switch c {
	case ClassGinjoShu, ClassGinjo:
		return 60
	case ClassJunmaiShu, ClassJunmai:
		return 65
	default:
		return 70
	}
}

func priceTag(priceRange string) string {
	switch priceRange {
	case "H":
		return "高級"
	case "L":
		return "コスパ良"
	default:
		return "お手頃"
	}
}

func signed(x float64) string {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if x >= 0 {
		return "+" + s
	}
	return s
}

// toEntry converts the row into a full profile. Sweetness is derived with
// the same fixed conversion the scorer uses, so the measured sake-degree and
// the derived sweetness always agree.
func (m *matrixRow) toEntry(position int) (Entry, error) {
	if verr := validation.ValidateStruct(m); verr != nil {
		return Entry{}, fmt.Errorf("%s: %w", m.Name, verr)
	}

	class, err := ParseSakeClass(m.Category)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", m.Name, err)
	}
	tc, err := pairing.ParseTypeClass(m.TypeClass)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", m.Name, err)
	}
	style := tc.Style()
	preset := stylePresets[tc]

	id := m.ID
	if id == "" {
		id = fmt.Sprintf("matrix_%d", position)
	}
	brewery := m.Brewery
	if brewery == "" {
		brewery = m.Name + "酒造"
	}
	prefecture := m.Prefecture
	if prefecture == "" {
		prefecture = "不明"
	}
	ecURL := m.ECURL
	if ecURL == "" {
		ecURL = defaultECURL
	}

	degree, acidity := m.SakeDegree, m.Acidity

	return Entry{
		ID:          id,
		Name:        fmt.Sprintf("%s %s 720ml", m.Name, class),
		Brewery:     brewery,
		Price:       m.Price,
		Alcohol:     m.Alcohol,
		RiceMilling: riceMillingFor(class),
		Taste: taste.New(
			taste.SweetnessFromDegree(degree),
			preset.richness,
			acidity,
			preset.aroma,
		),
		Class:      class,
		Prefecture: prefecture,
		Description: fmt.Sprintf("日本酒度%s、酸度%sの%sタイプの%s。",
			signed(degree), strconv.FormatFloat(acidity, 'f', -1, 64), style, class),
		ECURL:       ecURL,
		Tags:        []string{string(class), string(style), priceTag(m.PriceRange)},
		Style:       style,
		SakeDegree:  &degree,
		RealAcidity: &acidity,
	}, nil
}
