package curp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionCodeCoversTable(t *testing.T) {
	expected := map[string]string{
		"Distrito Federal":    "DF",
		"Aguascalientes":      "AS",
		"Baja California":     "BC",
		"Baja California Sur": "BS",
		"Campeche":            "CC",
		"Chiapas":             "CS",
		"Chihuahua":           "CH",
		"Coahuila":            "CA",
		"Colima":              "CM",
		"Durango":             "DO",
		"Estado de Mexico":    "EM",
		"Guanajuato":          "GO",
		"Guerrero":            "GR",
		"Hidalgo":             "HO",
		"Jalisco":             "JO",
		"Michoacan":           "MC",
		"Morelos":             "MS",
		"Nayarit":             "NT",
		"Nuevo Leon":          "NL",
		"Oaxaca":              "OX",
		"Puebla":              "PA",
		"Queretaro":           "QO",
		"Quintana Roo":        "QR",
		"San Luis Potosi":     "SL",
		"Sinaloa":             "SA",
		"Sonora":              "SO",
		"Tabasco":             "TB",
		"Tamaulipas":          "TM",
		"Tlaxcala":            "TX",
		"Veracruz":            "VZ",
		"Yucatan":             "YC",
		"Zacatecas":           "ZS",
	}
	require.Len(t, regionCodes, len(expected))

	for name, code := range expected {
		assert.Equal(t, code, RegionCode(name), name)
		assert.Equal(t, code, RegionCode(strings.ToLower(name)), name)
		assert.Equal(t, code, RegionCode(strings.ToUpper(name)), name)
	}
}

func TestRegionCodeFallback(t *testing.T) {
	for _, name := range []string{"", "Texas", "Jalisco ", "Michoacán", "Ciudad de Mexico", "Baja"} {
		code, ok := LookupRegion(name)
		assert.False(t, ok, name)
		assert.Equal(t, UnspecifiedRegion, code, name)
		assert.Equal(t, UnspecifiedRegion, RegionCode(name), name)
	}
}

func TestRegionsSorted(t *testing.T) {
	regions := Regions()
	require.Len(t, regions, len(regionCodes))
	for i := 1; i < len(regions); i++ {
		assert.Less(t, regions[i-1].Name, regions[i].Name)
	}
	assert.Equal(t, Region{Name: "AGUASCALIENTES", Code: "AS"}, regions[0])
}
