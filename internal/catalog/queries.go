// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

// X-Ray query templates targeting Utah-connected candidates. SDR queries
// look for fresh graduates, athletes, door-to-door reps, and hospitality
// pivoters who have NOT already held an SDR title; AE queries look for
// closers with SaaS experience at Utah tech companies.

var sdrQueries = []string{
	// Recent college graduates.
	`site:linkedin.com/in "Class of 2025" Utah`,
	`site:linkedin.com/in "Class of 2024" Utah`,
	`site:linkedin.com/in "Class of 2023" Utah`,
	`site:linkedin.com/in "Recent Graduate" Utah 2024`,
	`site:linkedin.com/in "Recent Graduate" Utah 2025`,
	`site:linkedin.com/in "New Graduate" Utah Sales`,
	`site:linkedin.com/in "BYU" "2024" OR "2025" -SDR -BDR`,
	`site:linkedin.com/in "Utah State" "2024" OR "2025" -SDR -BDR`,
	`site:linkedin.com/in "University of Utah" "2024" OR "2025" -SDR -BDR`,
	`site:linkedin.com/in "UVU" OR "Utah Valley" "2024" OR "2025"`,
	`site:linkedin.com/in "Weber State" "2024" OR "2025"`,

	// Student athletes.
	`site:linkedin.com/in "Student Athlete" "2024" Utah -SDR -BDR`,
	`site:linkedin.com/in "Student Athlete" "2025" Utah`,
	`site:linkedin.com/in "NCAA" "2024" Utah -SDR -BDR`,
	`site:linkedin.com/in "NCAA" "2025" Utah`,
	`site:linkedin.com/in "Varsity" "Captain" Utah 2024`,
	`site:linkedin.com/in "Student Athlete" "BYU" OR "Utah State" 2024`,

	// Door-to-door sales backgrounds.
	`site:linkedin.com/in "Door to Door" Solar Sales Utah`,
	`site:linkedin.com/in Vivint "Sales Representative" Utah`,
	`site:linkedin.com/in "D2D Sales" Utah`,
	`site:linkedin.com/in "Outside Sales" "Door-to-Door" Utah`,
	`site:linkedin.com/in "Pest Control" Sales Utah`,
	`site:linkedin.com/in "Alarm" "Sales Rep" Utah`,

	// Restaurant and hospitality pivoters.
	`site:linkedin.com/in "Restaurant Manager" Utah -SDR`,
	`site:linkedin.com/in Bartender Utah "looking for" OR "seeking"`,
	`site:linkedin.com/in "Server" "Restaurant" Utah 2024`,
	`site:linkedin.com/in "Hospitality" Utah "Sales" OR "Business"`,

	// Restaurant tech sellers.
	`site:linkedin.com/in Toast "Sales Representative" Utah`,
	`site:linkedin.com/in 7Shifts Sales Utah`,
	`site:linkedin.com/in "Restaurant Tech" Sales Utah`,

	// Entrepreneurs and side hustlers.
	`site:linkedin.com/in Founder "Side Hustle" Sales Utah`,
	`site:linkedin.com/in Entrepreneur "Small Business" Utah`,

	// Entry-level and internship backgrounds.
	`site:linkedin.com/in "Sales Intern" Utah 2024`,
	`site:linkedin.com/in "Marketing Intern" Utah 2024`,
	`site:linkedin.com/in "Business Intern" Utah 2024`,
	`site:linkedin.com/in "Entry Level" Sales Utah -SDR -BDR`,
	`site:linkedin.com/in "Seeking opportunities" Sales Utah`,

	// Communications and business majors.
	`site:linkedin.com/in "Communications" "Bachelor" Utah 2024`,
	`site:linkedin.com/in "Business Administration" Utah 2024 OR 2025`,
	`site:linkedin.com/in "Marketing" "Bachelor" Utah 2024 OR 2025`,

	// Affinity signals for female candidates.
	`site:linkedin.com/in "she/her" "2024" OR "2025" Utah Sales`,
	`site:linkedin.com/in "she/her" "Student Athlete" Utah 2024`,
	`site:linkedin.com/in "she/her" "Recent Graduate" Utah`,
	`site:linkedin.com/in "Women in Sales" Utah "Entry Level" OR "New Grad"`,
	`site:linkedin.com/in "she/her" "Door to Door" Sales Utah`,
	`site:linkedin.com/in "she/her" "BYU" OR "Utah State" 2024 Sales`,
	`site:linkedin.com/in "she/her" "Restaurant" OR "Hospitality" Utah`,
}

var aeQueries = []string{
	// AEs with SaaS experience.
	`site:linkedin.com/in "Account Executive" "SaaS" Utah "2 years"`,
	`site:linkedin.com/in "Account Executive" "SaaS" Utah tech`,
	`site:linkedin.com/in "AE" "B2B SaaS" Utah`,

	// AEs at specific Utah tech companies.
	`site:linkedin.com/in "Account Executive" Qualtrics Utah`,
	`site:linkedin.com/in "Account Executive" Pluralsight Utah`,
	`site:linkedin.com/in "Account Executive" Podium Utah`,
	`site:linkedin.com/in "Account Executive" Lucid Utah`,
	`site:linkedin.com/in "Account Executive" Domo Utah`,
	`site:linkedin.com/in "Account Executive" Entrata Utah`,
	`site:linkedin.com/in "Account Executive" Weave Utah`,
	`site:linkedin.com/in "Account Executive" Divvy Utah`,
	`site:linkedin.com/in "Account Executive" MX Utah`,
	`site:linkedin.com/in "Account Executive" Instructure Utah`,

	// SDRs ready to promote into a closing role.
	`site:linkedin.com/in "SDR" "promoted" "Account Executive" Utah`,
	`site:linkedin.com/in "Sales Development" "SaaS" Utah "2022" OR "2023"`,

	// AEs at Utah startups.
	`site:linkedin.com/in "Account Executive" "Series A" OR "Series B" Utah SaaS`,
	`site:linkedin.com/in "Account Executive" startup Utah tech sales`,

	// Mid-market and SMB AEs.
	`site:linkedin.com/in "Account Executive" "SMB" Utah SaaS`,
	`site:linkedin.com/in "Account Executive" "Mid-Market" Utah`,

	// Affinity signals for female candidates.
	`site:linkedin.com/in "she/her" "Account Executive" Utah`,
	`site:linkedin.com/in "she/her" "Account Executive" SaaS Utah`,
	`site:linkedin.com/in "Women in Sales" "Account Executive" Utah`,
	`site:linkedin.com/in "Women in Tech" "Account Executive" Utah`,
	`site:linkedin.com/in "she/her" AE SaaS Utah`,
	`site:linkedin.com/in "she/her" "Account Executive" tech Utah`,
}
