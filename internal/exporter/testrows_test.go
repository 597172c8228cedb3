package exporter

import "hwreport/pkg/contracts/domain"

func sampleRows() []domain.Row {
	return []domain.Row{
		{
			Source: domain.SourceGSD, SKU: "NINTENDO SWITCH OLED", Platform: domain.PlatformSwitch,
			Bundle: "STANDALONE", HDSize: "64 GB", Class: "OLED", Country: "GERMANY", Territory: "SWITZERLAND",
			FY: domain.SomeInt(2023), Month: "04", Week: 14,
			PanelUnits: domain.SomeFloat(40), PanelValueEuro: domain.SomeFloat(12000.5),
			Extrapolation: domain.SomeFloat(0.8), Units100: domain.SomeFloat(50), ValueEuro100: domain.SomeFloat(15000.625),
		},
		{
			Source: domain.SourceGFK, SKU: "SONY PS5", Platform: domain.PlatformPS5,
			Bundle: "BUNDLE", HDSize: "825 GB", Class: "ORIGINAL", Country: "Austria", Territory: "AUSTRIA",
			FY: domain.SomeInt(2022), Month: "12", Week: 9,
			PanelUnits: domain.SomeFloat(3),
		},
	}
}
