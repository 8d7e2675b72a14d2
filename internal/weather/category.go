// SPDX-FileCopyrightText: The wxpeek Authors
//
// SPDX-License-Identifier: MIT

package weather

// Category is a coarse weather condition class used for display theming.
type Category string

const (
	CategorySunny      Category = "sunny"
	CategoryClearNight Category = "clear-night"
	CategoryCloudy     Category = "cloudy"
	CategoryRainy      Category = "rainy"
	CategorySnowy      Category = "snowy"
	CategoryWindy      Category = "windy"
	CategoryFoggy      Category = "foggy"
)

// iconCategories maps the provider's icon classifier tokens to categories.
var iconCategories = map[string]Category{
	"clear-day":             CategorySunny,
	"clear-night":           CategoryClearNight,
	"partly-cloudy-day":     CategoryCloudy,
	"partly-cloudy-night":   CategoryCloudy,
	"cloudy":                CategoryCloudy,
	"rain":                  CategoryRainy,
	"showers-day":           CategoryRainy,
	"showers-night":         CategoryRainy,
	"thunder-rain":          CategoryRainy,
	"thunder-showers-day":   CategoryRainy,
	"thunder-showers-night": CategoryRainy,
	"snow":                  CategorySnowy,
	"snow-showers-day":      CategorySnowy,
	"snow-showers-night":    CategorySnowy,
	"sleet":                 CategorySnowy,
	"wind":                  CategoryWindy,
	"fog":                   CategoryFoggy,
}

// CategoryOf maps an icon classifier token to its Category. It is total over
// all string inputs: unrecognized tokens fall back to CategoryCloudy.
func CategoryOf(icon string) Category {
	if cat, ok := iconCategories[icon]; ok {
		return cat
	}
	return CategoryCloudy
}
