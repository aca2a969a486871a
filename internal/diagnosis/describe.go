// Sakefinder - Sake Preference Quiz and Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/sakefinder

package diagnosis

import "github.com/tomtom215/sakefinder/internal/taste"

// PreferenceDescription summarizes a taste vector in one sentence, e.g.
// "辛口で淡麗、華やかな香りのお酒がお好みです".
func PreferenceDescription(v taste.Vector) string {
	sweetness := "中口"
	switch {
	case v.Sweetness >= 7:
		sweetness = "甘口"
	case v.Sweetness <= 4:
		sweetness = "辛口"
	}

	body := "バランスの良い味わい"
	switch {
	case v.Richness >= 7:
		body = "濃醇"
	case v.Richness <= 4:
		body = "淡麗"
	}

	aroma := "程よい香り"
	switch {
	case v.Aroma >= 7:
		aroma = "華やかな香り"
	case v.Aroma <= 4:
		aroma = "控えめな香り"
	}

	return sweetness + "で" + body + "、" + aroma + "のお酒がお好みです"
}
