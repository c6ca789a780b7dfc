package models

import "time"

// SeedProjects returns the sample projects a fresh data directory starts with
func SeedProjects() []Project {
	return []Project{
		{ID: "proj_001", Name: "Research Analysis", Description: "Literature review for psychology study", IsActive: true},
		{ID: "proj_002", Name: "Lab Setup", Description: "Preparing equipment for spring experiments", IsActive: true},
		{ID: "proj_003", Name: "Grant Writing", Description: "NSERC proposal development", IsActive: true},
	}
}

// SeedTimeEntries returns the sample entries matching SeedProjects, in local time
func SeedTimeEntries() []TimeEntry {
	at := func(day, hour, minute int) *time.Time {
		t := time.Date(2025, time.October, day, hour, minute, 0, 0, time.Local)
		return &t
	}

	return []TimeEntry{
		{
			ID:            "entry_001",
			ProjectID:     "proj_001",
			StartDatetime: *at(19, 9, 0),
			EndDatetime:   at(19, 11, 30),
			Notes:         "Reviewed 15 papers on cognitive load",
		},
		{
			ID:            "entry_002",
			ProjectID:     "proj_002",
			StartDatetime: *at(19, 13, 0),
			EndDatetime:   at(19, 15, 15),
			Notes:         "Calibrated microscopes",
		},
		{
			ID:            "entry_003",
			ProjectID:     "proj_001",
			StartDatetime: *at(20, 10, 0),
			EndDatetime:   at(20, 12, 0),
			Notes:         "Drafted introduction section",
		},
	}
}
