package server

import "github.com/avetrov/kyclens/internal/model"

// SampleCase returns a demo profile and hit set for trying the API.
func SampleCase() (model.UserProfile, []model.MediaHit) {
	profile := model.UserProfile{
		FullName:    "John Michael Smith",
		DateOfBirth: "1985-03-15",
		City:        "New York",
		Employer:    "ABC Financial Corp",
		IDData:      map[string]string{"passport": "P12345678", "ssn": "XXX-XX-1234"},
		Aliases:     []string{"John Smith", "J.M. Smith"},
	}

	hits := []model.MediaHit{
		{
			Title:    "ABC Financial Corp CFO Charged with Securities Fraud",
			Snippet:  "John Smith, 39, Chief Financial Officer at ABC Financial Corp in New York, was charged yesterday with securities fraud by federal prosecutors.",
			FullText: "Federal prosecutors announced charges against John Michael Smith, age 39, the Chief Financial Officer of ABC Financial Corp based in New York City. Smith is accused of securities fraud in connection with the alleged manipulation of quarterly earnings reports submitted to the SEC between 2020 and 2023. According to court documents filed in the Southern District of New York, Smith allegedly worked with other executives to inflate revenue figures and hide mounting losses. Smith's attorney declined to comment. ABC Financial Corp is a mid-sized investment firm with offices in Manhattan. Smith joined ABC Financial in 2018 as CFO after working at rival firm XYZ Capital. Court records show Smith was born March 15, 1985 and resides in Manhattan.",
			Date:     "2024-11-15",
			Source:   "Financial Times",
			URL:      "https://ft.com/content/abc-cfo-charged",
			HitType:  model.HitAdverseMedia,
		},
		{
			Title:   "Investment Firm Executive Denies Fraud Allegations",
			Snippet: "John Smith of ABC Financial Corp denies all allegations of securities fraud. His lawyer says the charges are unfounded and they will fight them vigorously in court.",
			Date:    "2024-11-16",
			Source:  "Reuters",
			URL:     "https://reuters.com/business/abc-executive-denies",
			HitType: model.HitAdverseMedia,
		},
		{
			Title:   "Local Man Arrested for DUI",
			Snippet: "John Smith, 45, of Boston was arrested for driving under the influence on Highway 95. Smith works as a mechanic at Joe's Auto Repair.",
			Date:    "2024-11-10",
			Source:  "Boston Herald",
			URL:     "https://bostonherald.com/local/dui-arrest",
			HitType: model.HitAdverseMedia,
		},
	}

	return profile, hits
}
