package curp

import (
	"sort"
	"strings"
)

// UnspecifiedRegion is returned for names missing from the region table.
const UnspecifiedRegion = "NE"

// Region pairs a birth state name with its two-letter code.
type Region struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

var regionCodes = map[string]string{
	"DISTRITO FEDERAL":    "DF",
	"AGUASCALIENTES":      "AS",
	"BAJA CALIFORNIA":     "BC",
	"BAJA CALIFORNIA SUR": "BS",
	"CAMPECHE":            "CC",
	"CHIAPAS":             "CS",
	"CHIHUAHUA":           "CH",
	"COAHUILA":            "CA",
	"COLIMA":              "CM",
	"DURANGO":             "DO",
	"ESTADO DE MEXICO":    "EM",
	"GUANAJUATO":          "GO",
	"GUERRERO":            "GR",
	"HIDALGO":             "HO",
	"JALISCO":             "JO",
	"MICHOACAN":           "MC",
	"MORELOS":             "MS",
	"NAYARIT":             "NT",
	"NUEVO LEON":          "NL",
	"OAXACA":              "OX",
	"PUEBLA":              "PA",
	"QUERETARO":           "QO",
	"QUINTANA ROO":        "QR",
	"SAN LUIS POTOSI":     "SL",
	"SINALOA":             "SA",
	"SONORA":              "SO",
	"TABASCO":             "TB",
	"TAMAULIPAS":          "TM",
	"TLAXCALA":            "TX",
	"VERACRUZ":            "VZ",
	"YUCATAN":             "YC",
	"ZACATECAS":           "ZS",
}

// RegionCode returns the code for a birth state, matched case-insensitively.
// Unknown names, including misspellings, resolve to UnspecifiedRegion.
func RegionCode(name string) string {
	code, _ := LookupRegion(name)
	return code
}

// LookupRegion is RegionCode that also reports whether the name was found.
func LookupRegion(name string) (string, bool) {
	if code, ok := regionCodes[strings.ToUpper(name)]; ok {
		return code, true
	}
	return UnspecifiedRegion, false
}

// Regions returns the table ordered by name.
func Regions() []Region {
	out := make([]Region, 0, len(regionCodes))
	for name, code := range regionCodes {
		out = append(out, Region{Name: name, Code: code})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
