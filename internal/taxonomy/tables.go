package taxonomy

// ClassRules returns the product class rules. "SWITCH 64 GB" follows "OLED"
// so both OLED spellings resolve the same way.
func ClassRules() Rules {
	return Rules{
		{Match: "4 PRO", Tag: "PRO"},
		{Match: "4 SLIM", Tag: "SLIM"},
		{Match: "DIGITAL EDITION", Tag: "DIGITAL EDITION"},
		{Match: "SWITCH LITE", Tag: "LITE"},
		{Match: "OLED", Tag: "OLED"},
		{Match: "SWITCH 64 GB", Tag: "OLED"},
		{Match: "XBOX ONE S", Tag: "ONE S"},
		{Match: "XBOX ONE X", Tag: "ONE X"},
		{Match: "XBOX SERIES S", Tag: "SERIES S"},
		{Match: "XBOX SERIES X", Tag: "SERIES X"},
	}
}

// TerritorySynonyms returns the regional group names GSD reports and the
// territory each one is reported under.
func TerritorySynonyms() Synonyms {
	return Synonyms{
		{Match: "GSA", Tag: "SWITZERLAND"},
		{Match: "BENE", Tag: "BENELUX"},
		{Match: "OCEANIA", Tag: "ANZ"},
		{Match: "ASIA", Tag: "JAPAN"},
	}
}

// HDSizeRules returns the storage size rules. Spelling variants come after
// the canonical spelling; model names that imply a size come last among
// their size group.
func HDSizeRules() Rules {
	return Rules{
		{Match: "32 GB", Tag: "32 GB"},
		{Match: "64 GB", Tag: "64 GB"},
		{Match: "OLED", Tag: "64 GB"},
		{Match: "250 GB", Tag: "250 GB"},
		{Match: "500 GB", Tag: "500 GB"},
		{Match: "500GB", Tag: "500 GB"},
		{Match: "SONY PLAYSTATION 4", Tag: "500 GB"},
		{Match: "512", Tag: "512 GB"},
		{Match: "825", Tag: "825 GB"},
		{Match: "1 TB", Tag: "1 TB"},
		{Match: "1TB", Tag: "1 TB"},
		{Match: "2 TB", Tag: "2 TB"},
		{Match: "2TB", Tag: "2 TB"},
	}
}

// GFKPlatformLabels returns GFK platform labels that differ from the
// canonical platform names.
func GFKPlatformLabels() Synonyms {
	return Synonyms{
		{Match: "NINTENDO SWITCH", Tag: "SWITCH"},
	}
}
