package weather

// Province is a region of the Old World the journey passes through. Each
// has a typical temperature per season that daily variation swings around.
type Province string

const (
	ProvinceReikland    Province = "reikland"
	ProvinceAverland    Province = "averland"
	ProvinceHochland    Province = "hochland"
	ProvinceMiddenland  Province = "middenland"
	ProvinceNordland    Province = "nordland"
	ProvinceOstermark   Province = "ostermark"
	ProvinceOstland     Province = "ostland"
	ProvinceStirland    Province = "stirland"
	ProvinceTalabecland Province = "talabecland"
	ProvinceWissenland  Province = "wissenland"
	ProvinceSylvania    Province = "sylvania"
	ProvinceMootland    Province = "mootland"
	ProvinceWasteland   Province = "wasteland"
	ProvinceDrakwald    Province = "drakwald"
	ProvinceKislev      Province = "kislev"
)

// seasonTemps holds base temperatures in degrees Celsius, indexed by season.
type seasonTemps struct {
	spring, summer, autumn, winter int
}

// baseTemps is the provincial climate table. Southern provinces run warm,
// the northern coast and Kislev run cold.
var baseTemps = map[Province]seasonTemps{
	ProvinceReikland:    {10, 18, 11, 2},
	ProvinceAverland:    {12, 21, 13, 3},
	ProvinceHochland:    {8, 16, 9, -1},
	ProvinceMiddenland:  {8, 16, 9, -2},
	ProvinceNordland:    {6, 14, 7, -4},
	ProvinceOstermark:   {7, 16, 8, -5},
	ProvinceOstland:     {6, 15, 7, -6},
	ProvinceStirland:    {10, 19, 11, 1},
	ProvinceTalabecland: {9, 17, 10, -1},
	ProvinceWissenland:  {11, 20, 12, 2},
	ProvinceSylvania:    {8, 17, 9, -2},
	ProvinceMootland:    {11, 19, 12, 2},
	ProvinceWasteland:   {9, 16, 10, 1},
	ProvinceDrakwald:    {7, 15, 8, -2},
	ProvinceKislev:      {4, 13, 4, -12},
}

// Provinces lists all known provinces in display order.
func Provinces() []Province {
	return []Province{
		ProvinceReikland, ProvinceAverland, ProvinceHochland,
		ProvinceMiddenland, ProvinceNordland, ProvinceOstermark,
		ProvinceOstland, ProvinceStirland, ProvinceTalabecland,
		ProvinceWissenland, ProvinceSylvania, ProvinceMootland,
		ProvinceWasteland, ProvinceDrakwald, ProvinceKislev,
	}
}

// ValidProvince reports whether p names a known province.
func ValidProvince(p Province) bool {
	_, ok := baseTemps[p]
	return ok
}

// BaseTemperature returns the provincial norm for a season in degrees
// Celsius. Unknown provinces fall back to Reikland's climate.
func BaseTemperature(p Province, s Season) int {
	t, ok := baseTemps[p]
	if !ok {
		t = baseTemps[ProvinceReikland]
	}
	switch s {
	case SeasonSpring:
		return t.spring
	case SeasonSummer:
		return t.summer
	case SeasonAutumn:
		return t.autumn
	case SeasonWinter:
		return t.winter
	}
	return t.spring
}
