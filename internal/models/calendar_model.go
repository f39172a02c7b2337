package models

// Outfit is one row of the static outfit catalog: a color combination plus
// the individual pieces that make up the look.
type Outfit struct {
	ColorCombination string `json:"colorCombination" firestore:"colorCombination"`
	Top              string `json:"top" firestore:"top"`
	Bottom           string `json:"bottom" firestore:"bottom"`
	Layer            string `json:"layer,omitempty" firestore:"layer,omitempty"`
	Shoes            string `json:"shoes" firestore:"shoes"` // shoes and accessories
}

// CalendarSuggestion is a single day's outfit plan. DateString is the
// canonical YYYY-MM-DD key and doubles as the map key for both generated
// months and persisted overrides.
//
// Occasion and Style are free strings rather than closed enums: the generator
// only ever produces Professional/Party/Casual and American/Indian, but a
// user edit may store any value the editor offers (including "Fusion" or
// "Other"), and overrides are persisted verbatim.
type CalendarSuggestion struct {
	Outfit
	DateString string `json:"dateString" firestore:"dateString"`
	Occasion   string `json:"occasion" firestore:"occasion"`
	Style      string `json:"style" firestore:"style"`
}

// PersonalizedOutfit is one AI-generated outfit recommendation, decoded from
// the stylist model's JSON response.
type PersonalizedOutfit struct {
	OutfitName       string   `json:"outfitName"`
	Occasion         string   `json:"occasion"`
	ColorCombination []string `json:"colorCombination"`
	TopWear          string   `json:"topWear"`
	BottomWear       string   `json:"bottomWear"`
	Layering         string   `json:"layering,omitempty"`
	Footwear         string   `json:"footwear"`
	Accessories      string   `json:"accessories"`
	WhyItWorks       string   `json:"whyItWorks"`
	StyleCategory    string   `json:"styleCategory"`
}

// ColorSuggestion is one AI-generated color recommendation.
type ColorSuggestion struct {
	ColorName string `json:"colorName"`
	HexCode   string `json:"hexCode"`
	Reason    string `json:"reason"`
}
