package calendar

import "time"

// Colombia2024_2025 is the civil holiday table for Colombia covering 2024
// and 2025. Movable feasts are expanded to their observed dates for each
// year; the table must be regenerated when a new year is published.
var Colombia2024_2025 = Table{
	Jurisdiction: "CO",
	Version:      "2024-2025.1",
	Holidays: []Holiday{
		{2024, time.January, 1},
		{2024, time.January, 6},
		{2024, time.March, 19},
		{2024, time.March, 28},
		{2024, time.March, 29},
		{2024, time.May, 1},
		{2024, time.May, 13},
		{2024, time.June, 3},
		{2024, time.June, 10},
		{2024, time.July, 1},
		{2024, time.July, 20},
		{2024, time.August, 7},
		{2024, time.August, 19},
		{2024, time.October, 14},
		{2024, time.November, 4},
		{2024, time.November, 11},
		{2024, time.December, 8},
		{2024, time.December, 25},

		{2025, time.January, 1},
		{2025, time.January, 6},
		{2025, time.March, 24},
		{2025, time.April, 17},
		{2025, time.April, 18},
		{2025, time.May, 1},
		{2025, time.June, 2},
		{2025, time.June, 23},
		{2025, time.June, 30},
		{2025, time.July, 20},
		{2025, time.August, 7},
		{2025, time.August, 18},
		{2025, time.October, 13},
		{2025, time.November, 3},
		{2025, time.November, 17},
		{2025, time.December, 8},
		{2025, time.December, 25},
	},
}
